package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"revenueplatform/internal/importer"
)

// Upload 模拟上传（SSE 流式响应）
// POST /api/upload
//
// 只读取文件名与大小，内容不解析。
func (h *Handler) Upload(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid form data"})
		return
	}

	files := make([]importer.FileInfo, 0, len(form.File["file"]))
	for _, fh := range form.File["file"] {
		files = append(files, importer.FileInfo{Name: fh.Filename, Size: fh.Size})
	}

	send, ok := beginSSE(c)
	if !ok {
		return
	}

	for event := range h.importer.Import(importer.ImportOptions{Files: files}) {
		send(event)
	}
}

// ListUploads 上传日志
// GET /api/uploads?limit=20
func (h *Handler) ListUploads(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	items, err := h.store.ListUploadLogs(limit)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status": h.app.UploadStatus(),
		"items":  items,
	})
}
