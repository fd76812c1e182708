package app

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/findelmundo/core/internal/middleware"
	"github.com/findelmundo/core/internal/modules/auth"
	"github.com/findelmundo/core/internal/modules/category"
	"github.com/findelmundo/core/internal/modules/contact"
	"github.com/findelmundo/core/internal/modules/media"
	"github.com/findelmundo/core/internal/modules/settings"
	"github.com/findelmundo/core/internal/modules/stats"
	"github.com/findelmundo/core/internal/pkg/response"
)

func (a *App) registerRoutes() error {
	a.router.NoRoute(func(c *gin.Context) { response.NotFound(c) })
	a.router.NoMethod(func(c *gin.Context) { response.MethodNotAllowed(c) })
	a.router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := a.router.Group("/api")

	info := func(c *gin.Context) {
		c.JSON(200, gin.H{"name": "findelmundo", "env": a.cfg.Env})
	}
	api.GET("", info)
	api.GET("/info", info)
	api.GET("/ping", func(c *gin.Context) {
		c.String(200, "pong")
	})
	api.Use(middleware.OptionalAuth(a.db))
	if a.rdb != nil {
		api.Use(middleware.RateLimit(a.rdb.Raw()))
	}

	authMW := middleware.Auth(a.db)

	local, err := media.NewLocalStorage(a.cfg.UploadsDir())
	if err != nil {
		return fmt.Errorf("uploads dir: %w", err)
	}
	var storage media.Storage = local
	if a.cfg.S3Enabled() {
		storage = media.NewS3Storage(a.cfg.S3)
	}

	auth.NewHandler(auth.NewService(a.db)).RegisterRoutes(api, authMW)
	media.NewHandler(media.NewService(a.db, storage), local).RegisterRoutes(api, authMW)
	category.NewHandler(a.db).RegisterRoutes(api, authMW)
	settings.NewHandler(settings.NewService(a.db)).RegisterRoutes(api, authMW)
	contact.NewHandler(contact.NewService(a.db, a.rdb)).RegisterRoutes(api, authMW)
	stats.NewHandler(a.db).RegisterRoutes(api, authMW)

	return nil
}
