// Package api wires the console manager HTTP surface.
package api

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/voiceconsole/manager/internal/api/handlers"
	"github.com/voiceconsole/manager/internal/auth"
	"github.com/voiceconsole/manager/internal/config"
	"github.com/voiceconsole/manager/internal/metrics"
	"github.com/voiceconsole/manager/internal/utils"
)

// Deps are the services the router needs.
type Deps struct {
	Config *config.Config
	Auth   *auth.Service
	Setup  handlers.SetupService
}

// SetupRouter configures and returns the main API router with all routes and middleware.
func SetupRouter(deps Deps) *gin.Engine {
	cfg := deps.Config
	h := handlers.NewHandlers(deps.Setup)
	authHandlers := NewAuthHandlers(deps.Auth)

	if cfg.Environment.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())
	r.Use(utils.TraceMiddleware())
	r.Use(metricsMiddleware())

	// Session middleware runs before anything that reads the session
	r.Use(deps.Auth.SessionMiddleware())
	r.Use(corsMiddleware(cfg))

	api := r.Group("/api")
	{
		setupGroup := api.Group("/setup")
		{
			setupGroup.GET("/status", h.GetSetupStatus)
			setupGroup.POST("/admin", h.CreateInitialAdmin)
		}

		api.POST("/session/login", authHandlers.Login)

		protected := api.Group("")
		protected.Use(deps.Auth.Middleware())
		{
			protected.GET("/session", authHandlers.GetCurrentUser)
			protected.DELETE("/session", authHandlers.Logout)
			protected.PUT("/session/first-login", deps.Auth.RequirePermission(auth.ResourceSetup, auth.ActionWrite), authHandlers.MarkFirstLoginDone)

			protected.GET("/tts/providers", deps.Auth.RequirePermission(auth.ResourceTTS, auth.ActionRead), h.ListProviders)
			protected.GET("/tts/providers/:provider/voices", deps.Auth.RequirePermission(auth.ResourceTTS, auth.ActionRead), h.ListProviderVoices)
		}
	}

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, handlers.HealthResponse{
			Status:  "ok",
			Service: "console-manager",
		})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}

// metricsMiddleware records request latency by matched route.
func metricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		metrics.HTTPRequestDuration.
			WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).
			Observe(time.Since(start).Seconds())
	}
}

func corsMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")

		// If no allowed origins are configured, disable CORS (secure by default)
		if cfg.Server.AllowedOrigins == "" {
			if c.Request.Method == http.MethodOptions {
				c.AbortWithStatus(http.StatusNoContent)
				return
			}
			c.Next()
			return
		}

		if isAllowedOrigin(origin, cfg.Server.AllowedOrigins) {
			// Drop CORS headers a proxy may have set
			c.Writer.Header().Del("Access-Control-Allow-Origin")
			c.Writer.Header().Del("Access-Control-Allow-Credentials")
			c.Writer.Header().Del("Access-Control-Allow-Headers")
			c.Writer.Header().Del("Access-Control-Allow-Methods")

			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
			c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
			c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, X-Request-ID, accept, origin, Cache-Control, X-Requested-With")
			c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")
			c.Writer.Header().Set("Access-Control-Expose-Headers", utils.RequestIDHeader)
		}

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

// isAllowedOrigin checks if the origin is in the comma-separated list of allowed origins
func isAllowedOrigin(origin string, allowedOrigins string) bool {
	if origin == "" {
		return false
	}

	for _, allowed := range strings.Split(allowedOrigins, ",") {
		if strings.TrimSpace(allowed) == origin {
			return true
		}
	}

	return false
}
