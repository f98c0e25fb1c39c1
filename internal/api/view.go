package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type selectViewRequest struct {
	View string `json:"view" binding:"required"`
}

// GetView 当前面板
// GET /api/view
func (h *Handler) GetView(c *gin.Context) {
	v := h.app.ActiveView()
	c.JSON(http.StatusOK, gin.H{
		"view":  v,
		"title": v.Title(),
		"views": navigation(v),
	})
}

// SelectView 切换面板
// POST /api/view
func (h *Handler) SelectView(c *gin.Context) {
	var req selectViewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if _, err := h.app.SelectView(req.View); err != nil {
		h.writeError(c, err)
		return
	}
	h.GetView(c)
}
