package server

import (
	"embed"
	"io/fs"
	"log"
	"net/http"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"

	v1 "merchplan/internal/api/v1"
	"merchplan/internal/auth"
	"merchplan/internal/config"
	"merchplan/internal/store"
)

//go:embed all:dist
var staticFiles embed.FS

// Server HTTP 服务器
type Server struct {
	router *gin.Engine
	store  *store.AppStore
	users  *auth.UserStore
	v1     *v1.Handler
}

// NewServer 创建服务器
func NewServer(cfg *config.AppConfig) *Server {
	devMode := cfg.Server.DevMode
	if !devMode {
		gin.SetMode(gin.ReleaseMode)
	}

	// 账户库落在数据目录
	dataDir, err := config.EnsureDataDir(cfg)
	if err != nil {
		dataDir = cfg.Data.DataDir
	}
	users, err := auth.NewUserStore(filepath.Join(dataDir, "merchplan.db"))
	if err != nil {
		log.Fatalf("Failed to initialize user database: %v", err)
	}

	appStore := store.NewAppStore()

	s := &Server{
		router: gin.Default(),
		store:  appStore,
		users:  users,
		v1:     v1.NewHandler(appStore),
	}

	ttl := time.Duration(cfg.Auth.TokenTTLHours) * time.Hour
	s.setupRoutes(cfg.Auth.JWTSecret, ttl, devMode)
	return s
}

// setupRoutes 设置路由
func (s *Server) setupRoutes(jwtSecret string, tokenTTL time.Duration, devMode bool) {
	// CORS
	s.router.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PATCH, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	})

	authHandler := auth.NewHandler(s.users, jwtSecret, tokenTTL)

	// 认证入口不设门槛
	authGroup := s.router.Group("/api/auth")
	{
		authHandler.RegisterRoutes(authGroup)
	}

	// 业务 API 全部在认证门后
	api := s.router.Group("/api")
	api.Use(auth.Middleware(jwtSecret))
	{
		authHandler.RegisterProtectedRoutes(api.Group("/auth"))
		s.v1.RegisterRoutes(api)
	}

	// 静态资源
	if devMode {
		// 开发模式：代理到前端开发服务器
		s.router.NoRoute(func(c *gin.Context) {
			c.Redirect(http.StatusTemporaryRedirect, "http://localhost:5173"+c.Request.URL.Path)
		})
	} else {
		// 生产模式：使用 embed 的静态资源
		sub, _ := fs.Sub(staticFiles, "dist")

		s.router.GET("/", func(c *gin.Context) {
			data, _ := fs.ReadFile(sub, "index.html")
			c.Data(http.StatusOK, "text/html; charset=utf-8", data)
		})

		// SPA 路由 fallback
		s.router.NoRoute(func(c *gin.Context) {
			data, _ := fs.ReadFile(sub, "index.html")
			c.Data(http.StatusOK, "text/html; charset=utf-8", data)
		})
	}
}

// Run 启动服务器
func (s *Server) Run(addr string) error {
	return s.router.Run(addr)
}

// Close 释放资源
func (s *Server) Close() error {
	return s.users.Close()
}

// GetStore 获取应用状态（用于测试）
func (s *Server) GetStore() *store.AppStore {
	return s.store
}
