package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"revenueplatform/internal/model"
	"revenueplatform/internal/state"
)

// StatusResponse 系统状态响应
type StatusResponse struct {
	state.Snapshot
	Views []viewItem `json:"views"` // 侧边栏导航
}

type viewItem struct {
	ID     model.View `json:"id"`
	Title  string     `json:"title"`
	Active bool       `json:"active"`
}

func navigation(active model.View) []viewItem {
	items := make([]viewItem, 0, 3)
	for _, v := range model.Views() {
		items = append(items, viewItem{ID: v, Title: v.Title(), Active: v == active})
	}
	return items
}

// GetStatus 获取系统状态
// GET /api/status
func (h *Handler) GetStatus(c *gin.Context) {
	snap, err := h.app.Snapshot()
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, StatusResponse{
		Snapshot: snap,
		Views:    navigation(snap.View),
	})
}

// Reset 恢复演示数据
// POST /api/reset
func (h *Handler) Reset(c *gin.Context) {
	if err := h.app.Reset(); err != nil {
		h.writeError(c, err)
		return
	}
	h.GetStatus(c)
}
