package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"revenueplatform/internal/calculator"
	"revenueplatform/internal/log"
	"revenueplatform/internal/model"
	"revenueplatform/internal/state"
)

// statusFor 错误到 HTTP 状态码
func statusFor(err error) int {
	switch {
	case errors.Is(err, calculator.ErrNoRecords), errors.Is(err, calculator.ErrZeroBaseline):
		return http.StatusConflict
	case errors.Is(err, model.ErrUnknownView),
		errors.Is(err, calculator.ErrUnknownSelector),
		errors.Is(err, state.ErrInvalidRecords):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func (h *Handler) writeError(c *gin.Context, err error) {
	code := statusFor(err)
	if code >= http.StatusInternalServerError {
		h.logger.ErrorContext(c.Request.Context(), "request failed", log.FieldPath, c.Request.URL.Path, log.FieldError, err)
	}
	_ = c.Error(err)
	c.JSON(code, gin.H{"error": err.Error()})
}
