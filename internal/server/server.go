package server

import (
	"embed"
	"io/fs"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"revenueplatform/internal/api"
	"revenueplatform/internal/config"
	"revenueplatform/internal/log"
)

//go:embed all:dist
var staticFiles embed.FS

// devServerURL 前端开发服务器
const devServerURL = "http://localhost:5173"

// Server HTTP服务器
type Server struct {
	router *gin.Engine
	api    *api.Handler
	logger *log.Logger
}

// NewServer 创建服务器
func NewServer(cfg *config.AppConfig, h *api.Handler, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Discard()
	}
	devMode := cfg.Server.DevMode
	if !devMode && gin.Mode() != gin.TestMode {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery(), log.GinMiddleware(logger))

	s := &Server{
		router: router,
		api:    h,
		logger: logger,
	}

	s.setupRoutes(devMode)

	return s
}

// setupRoutes 设置路由
func (s *Server) setupRoutes(devMode bool) {
	// CORS
	s.router.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})

	apiGroup := s.router.Group("/api")
	{
		s.api.RegisterRoutes(apiGroup)
	}
	s.router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// 静态资源
	if devMode {
		// 开发模式：重定向到前端开发服务器
		s.router.NoRoute(func(c *gin.Context) {
			c.Redirect(http.StatusTemporaryRedirect, devServerURL+c.Request.URL.Path)
		})
		return
	}

	sub, _ := fs.Sub(staticFiles, "dist")

	assetsSub, _ := fs.Sub(sub, "assets")
	s.router.StaticFS("/assets", http.FS(assetsSub))

	s.router.GET("/favicon.svg", func(c *gin.Context) {
		data, err := fs.ReadFile(sub, "favicon.svg")
		if err != nil {
			c.Status(http.StatusNotFound)
			return
		}
		c.Data(http.StatusOK, "image/svg+xml", data)
	})

	index := func(c *gin.Context) {
		data, err := fs.ReadFile(sub, "index.html")
		if err != nil {
			c.Status(http.StatusNotFound)
			return
		}
		c.Data(http.StatusOK, "text/html; charset=utf-8", data)
	}
	s.router.GET("/", index)

	// 单页应用 fallback；未知 API 路径仍返回 404
	s.router.NoRoute(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api/") {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}
		index(c)
	})
}

// Handler 供 http.Server 使用
func (s *Server) Handler() http.Handler {
	return s.router
}
