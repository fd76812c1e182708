// Package app wires configuration, storage, and HTTP routes into a
// runnable server.
package app

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/findelmundo/core/internal/config"
	"github.com/findelmundo/core/internal/database"
	"github.com/findelmundo/core/internal/middleware"
	"github.com/findelmundo/core/internal/pkg/jwt"
	pkgredis "github.com/findelmundo/core/internal/pkg/redis"
)

// App holds all application dependencies.
type App struct {
	cfg    *config.AppConfig
	router *gin.Engine
	db     *gorm.DB
	rdb    *pkgredis.Client
	logger *zap.Logger
}

// New initializes the application: config → DB → Redis → routes.
func New(logger *zap.Logger, cfg *config.AppConfig) (*App, error) {
	if cfg == nil {
		return nil, errors.New("config is nil")
	}

	if secret := strings.TrimSpace(cfg.JWTSecret); secret != "" {
		jwt.SetSecret(secret)
	} else if !cfg.IsDev() {
		return nil, errors.New("jwt_secret is required in production")
	} else {
		logger.Warn("jwt_secret is empty, using built-in default secret")
	}

	db, err := database.Connect(cfg, true)
	if err != nil {
		return nil, fmt.Errorf("database: %w", err)
	}

	// the site stays up without redis; throttling just switches off
	rdb, err := pkgredis.Connect(cfg.Redis.URLValue())
	if err != nil {
		logger.Warn("redis unavailable, rate limiting disabled", zap.Error(err))
		rdb = nil
	}

	if cfg.IsDev() {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.HandleMethodNotAllowed = true
	router.Use(gin.Recovery())
	router.Use(middleware.Logger(logger))
	router.Use(cors.New(corsConfig(cfg)))

	app := &App{cfg: cfg, router: router, db: db, rdb: rdb, logger: logger}
	if err := app.registerRoutes(); err != nil {
		return nil, err
	}
	return app, nil
}

// Addr returns the listen address.
func (a *App) Addr() string { return fmt.Sprintf(":%d", a.cfg.Port) }

// Router returns the HTTP handler.
func (a *App) Router() http.Handler { return a.router }

// DB exposes the database handle for maintenance commands.
func (a *App) DB() *gorm.DB { return a.db }
