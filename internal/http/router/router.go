// Package router builds the gin engine and mounts all domain modules.
package router

import (
	"net/http"
	"strings"

	apphttp "eventfinder_backend/internal/http"
	"eventfinder_backend/platform/config"
	"eventfinder_backend/platform/httpkit"
	"eventfinder_backend/platform/logger"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// New constructs the gin engine with shared middleware and registers the
// routes of every module.
func New(cfg config.HTTPConfig, log *logger.Logger, modules []apphttp.Module) *gin.Engine {
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(httpkit.RequestID())
	engine.Use(httpkit.RequestLogger(log))
	engine.Use(httpkit.SecurityHeaders())
	engine.Use(cors.New(corsConfig(cfg)))

	engine.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	engine.NoRoute(func(c *gin.Context) {
		httpkit.Error(c, http.StatusNotFound, "route not found")
	})

	ctx := &apphttp.RouterContext{
		Engine: engine,
		V1:     engine.Group("/api/v1"),
	}

	for _, m := range modules {
		m.RegisterRoutes(ctx)
		log.Info("module routes registered", "module", m.Name())
	}

	return engine
}

func corsConfig(cfg config.HTTPConfig) cors.Config {
	corsCfg := cors.DefaultConfig()
	corsCfg.AllowMethods = []string{"GET", "OPTIONS"}
	corsCfg.AllowHeaders = []string{"Origin", "Content-Type", "Accept", httpkit.HeaderRequestID}

	if cfg.GetCORSAllowAll() {
		corsCfg.AllowOriginFunc = func(origin string) bool { return true }
		corsCfg.AllowCredentials = cfg.GetCORSAllowCreds()
		return corsCfg
	}

	origins := cfg.GetCORSOrigins()
	for i, o := range origins {
		origins[i] = strings.TrimRight(o, "/")
	}
	corsCfg.AllowOrigins = origins
	corsCfg.AllowCredentials = cfg.GetCORSAllowCreds()
	return corsCfg
}
