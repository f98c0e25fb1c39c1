package api

import (
	"github.com/gin-gonic/gin"

	"revenueplatform/internal/format"
	"revenueplatform/internal/importer"
	"revenueplatform/internal/log"
	"revenueplatform/internal/state"
	"revenueplatform/internal/store"
)

// Handler API 处理器
type Handler struct {
	app       *state.App
	store     *store.Store
	importer  *importer.Coordinator
	format    *format.Formatter
	logger    *log.Logger
	downloads *exportDownloadStore
}

// NewHandler 创建 API 处理器
func NewHandler(app *state.App, st *store.Store, coord *importer.Coordinator, f *format.Formatter, logger *log.Logger) *Handler {
	if f == nil {
		f = format.Default()
	}
	if logger == nil {
		logger = log.Discard()
	}
	return &Handler{
		app:       app,
		store:     st,
		importer:  coord,
		format:    f,
		logger:    logger.WithComponent(log.ComponentHTTP),
		downloads: newExportDownloadStore(),
	}
}

// RegisterRoutes 注册 API 路由
func (h *Handler) RegisterRoutes(router *gin.RouterGroup) {
	// 系统状态
	router.GET("/status", h.GetStatus)
	router.POST("/reset", h.Reset)

	// 面板切换
	router.GET("/view", h.GetView)
	router.POST("/view", h.SelectView)

	// 汇总与图表
	router.GET("/overview", h.GetOverview)
	router.GET("/charts", h.GetCharts)
	router.GET("/charts/breakdown/:selector", h.GetBreakdown)
	router.GET("/records", h.ListRecords)

	// 上传（模拟）
	router.POST("/upload", h.Upload)
	router.GET("/uploads", h.ListUploads)

	// 导出
	router.GET("/export", h.Export)
	router.POST("/export/stream", h.ExportStream)
	router.GET("/export/download/:token", h.DownloadExport)
}
