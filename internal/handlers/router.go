package handlers

import (
	"github.com/ecosaver/energy-server/internal/middleware"
	"github.com/ecosaver/energy-server/internal/repository"
	"github.com/gin-gonic/gin"
)

// NewRouter wires every endpoint onto a gin engine.
func NewRouter(store *repository.Store, jwtAuth *middleware.JWTAuth) *gin.Engine {
	deviceHandler := NewDeviceHandler(store)
	usageHandler := NewUsageHandler(store)
	optimizeHandler := NewOptimizeHandler()
	authHandler := NewAuthHandler(store, jwtAuth)
	adminHandler := NewAdminHandler(store)

	r := gin.Default()

	// CORS middleware
	r.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	})

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Device routes
	devices := r.Group("/devices")
	{
		devices.GET("", deviceHandler.List)
		devices.POST("", deviceHandler.Create)
		devices.GET("/:id", deviceHandler.Get)
		devices.PUT("/:id", deviceHandler.Replace)
		devices.PATCH("/:id", deviceHandler.Update)
		devices.DELETE("/:id", deviceHandler.Delete)
	}

	// Energy usage routes
	usage := r.Group("/energy-usage")
	{
		usage.GET("", usageHandler.List)
		usage.POST("", usageHandler.Create)
		usage.GET("/:id", usageHandler.Get)
		usage.PUT("/:id", usageHandler.Replace)
		usage.PATCH("/:id", usageHandler.Update)
		usage.DELETE("/:id", usageHandler.Delete)
	}

	// Optimization placeholder
	r.GET("/optimize", optimizeHandler.Optimize)

	// Admin record browser
	admin := r.Group("/admin")
	{
		admin.POST("/login", authHandler.Login)

		protected := admin.Group("")
		protected.Use(jwtAuth.Middleware())
		{
			protected.GET("/records/:kind", adminHandler.ListRecords)
			protected.GET("/records/:kind/:id", adminHandler.GetRecord)
			protected.PUT("/records/:kind/:id", adminHandler.EditRecord)
			protected.DELETE("/records/:kind/:id", adminHandler.DeleteRecord)
			protected.GET("/stats", adminHandler.Stats)
		}
	}

	return r
}
