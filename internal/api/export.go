package api

import (
	"fmt"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"revenueplatform/internal/calculator"
	"revenueplatform/internal/exporter"
	"revenueplatform/internal/log"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type exportProgressEvent struct {
	Type      string      `json:"type"`
	Message   string      `json:"message"`
	Data      interface{} `json:"data"`
	Timestamp time.Time   `json:"timestamp"`
}

// buildExportContentDisposition 下载文件名：revenue-report-<period>.xlsx
func buildExportContentDisposition(period string) string {
	slug := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		default:
			return '-'
		}
	}, strings.TrimSpace(period))
	if slug == "" {
		slug = "latest"
	}
	ascii := fmt.Sprintf("revenue-report-%s.xlsx", slug)
	utf8Name := url.PathEscape(fmt.Sprintf("Revenue Report %s.xlsx", period))
	return fmt.Sprintf("attachment; filename=\"%s\"; filename*=UTF-8''%s", ascii, utf8Name)
}

// Export 直接下载 Excel
// GET /api/export
func (h *Handler) Export(c *gin.Context) {
	records, err := h.app.Records()
	if err != nil {
		h.writeError(c, err)
		return
	}

	file, err := exporter.NewExporter(nil).Export(records)
	if err != nil {
		h.writeError(c, err)
		return
	}
	defer file.Close()

	current, _, _ := calculator.Latest(records)
	c.Header("Content-Disposition", buildExportContentDisposition(current.Period))
	c.Header("Content-Type", xlsxContentType)

	if err := file.Write(c.Writer); err != nil {
		h.logger.ErrorContext(c.Request.Context(), "write export failed", log.FieldError, err)
	}
}

// ExportStream 导出 Excel（SSE 进度 + 完成后提供下载地址）
// POST /api/export/stream
func (h *Handler) ExportStream(c *gin.Context) {
	records, err := h.app.Records()
	if err != nil {
		h.writeError(c, err)
		return
	}

	send, ok := beginSSE(c)
	if !ok {
		return
	}

	send(exportProgressEvent{
		Type:      "start",
		Message:   "Export started",
		Data:      map[string]any{"records": len(records)},
		Timestamp: time.Now(),
	})

	lastPercent := -1
	progressFn := func(p exporter.ProgressEvent) {
		if p.Percent == lastPercent {
			return
		}
		lastPercent = p.Percent
		send(exportProgressEvent{
			Type:      "progress",
			Message:   p.Stage,
			Data:      map[string]any{"percent": p.Percent},
			Timestamp: time.Now(),
		})
	}

	file, err := exporter.NewExporter(progressFn).Export(records)
	if err != nil {
		send(exportProgressEvent{
			Type:      "error",
			Message:   "Export failed: " + err.Error(),
			Data:      map[string]any{},
			Timestamp: time.Now(),
		})
		return
	}
	defer file.Close()

	tempPath := filepath.Join(os.TempDir(), fmt.Sprintf("revenue_export_%d_%d.xlsx", time.Now().UnixNano(), os.Getpid()))
	if err := file.SaveAs(tempPath); err != nil {
		send(exportProgressEvent{
			Type:      "error",
			Message:   "Write export file failed: " + err.Error(),
			Data:      map[string]any{},
			Timestamp: time.Now(),
		})
		_ = os.Remove(tempPath)
		return
	}

	current, _, _ := calculator.Latest(records)
	token := h.downloads.put(tempPath, current.Period, 10*time.Minute)

	send(exportProgressEvent{
		Type:    "done",
		Message: "Export finished",
		Data: map[string]any{
			"percent":     100,
			"downloadUrl": "/api/export/download/" + token,
		},
		Timestamp: time.Now(),
	})
}

// DownloadExport 下载导出的 Excel 文件（一次性）
// GET /api/export/download/:token
func (h *Handler) DownloadExport(c *gin.Context) {
	token := c.Param("token")

	item, ok := h.downloads.get(token)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "download link expired"})
		return
	}

	if _, err := os.Stat(item.filePath); err != nil {
		h.downloads.delete(token)
		c.JSON(http.StatusNotFound, gin.H{"error": "export file not found"})
		return
	}

	c.Header("Content-Disposition", buildExportContentDisposition(item.period))
	c.Header("Content-Type", xlsxContentType)
	c.File(item.filePath)

	h.downloads.delete(token)
	_ = os.Remove(item.filePath)
}
