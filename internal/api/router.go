package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lt1hs/d-bms/internal/config"
	"github.com/lt1hs/d-bms/internal/service"
	"github.com/rs/zerolog"
)

// NewRouter creates and configures the Gin router
func NewRouter(services *service.Services, cfg *config.Config, log zerolog.Logger) *gin.Engine {
	// Set Gin mode
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	// Middleware
	router.Use(recoveryMiddleware(log))
	router.Use(loggingMiddleware(log))
	router.Use(corsMiddleware())

	// Handlers
	bookHandler := NewBookHandler(services, cfg, log)
	authHandler := NewAuthHandler(services, cfg, log)
	userHandler := NewUserHandler(services, cfg, log)

	// Health check
	router.GET("/health", healthCheck)
	router.GET("/metrics", metricsHandler(services))

	// API v1. Every route resolves the bearer token if one is present;
	// routes needing an authenticated caller add requireAuth on top.
	v1 := router.Group("/v1")
	v1.Use(resolveUserMiddleware(services))
	{
		v1.POST("/login", authHandler.Login)
		v1.POST("/logout", requireAuth(), authHandler.Logout)
		v1.GET("/user", requireAuth(), authHandler.CurrentUser)

		// Publication endpoints; reads are public (with redaction),
		// mutations are permission-gated in the service layer.
		books := v1.Group("/books")
		{
			books.GET("", bookHandler.List)
			books.GET("/:id", bookHandler.Get)
			books.POST("", requireAuth(), bookHandler.Create)
			books.PUT("/:id", requireAuth(), bookHandler.Update)
			books.DELETE("/:id", requireAuth(), bookHandler.Delete)
		}

		// User management endpoints (SUPER_ADMIN gated in the service)
		users := v1.Group("/users")
		users.Use(requireAuth())
		{
			users.GET("", userHandler.List)
			users.POST("", userHandler.Create)
			users.PUT("/:id", userHandler.Update)
			users.DELETE("/:id", userHandler.Delete)
		}
	}

	return router
}

// healthCheck returns the health status
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().Format(time.RFC3339),
		"service":   "d-bms-api",
	})
}

// metricsHandler returns catalog record counts
func metricsHandler(services *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		stats, err := services.Catalog.Stats(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to collect metrics"})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"books":     stats,
			"timestamp": time.Now().Format(time.RFC3339),
		})
	}
}

// contextWithTimeout creates a context with timeout for handlers
func contextWithTimeout(c *gin.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Request.Context(), timeout)
}
