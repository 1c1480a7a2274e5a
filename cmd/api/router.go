package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"hypehouse-backend/internal/shared/middleware"
	"hypehouse-backend/pkg/cache"
	"hypehouse-backend/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	// Multipart vượt ngưỡng này được gin ghi ra file tạm
	router.MaxMultipartMemory = 32 << 20

	// Global middlewares
	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(c.Config.CORS.AllowedOrigins),
		middleware.ClientIPMiddleware(),
		middleware.Metrics(c.Metrics),
	)

	if c.Config.Metrics.Enabled {
		router.GET("/metrics", gin.WrapH(c.Metrics.Handler()))
	}

	v1 := router.Group("/api/v1")
	// Token hợp lệ → caller gắn vào context; thiếu/sai token vẫn đi tiếp như anonymous
	v1.Use(middleware.Authenticate(c.AuthService))
	{
		v1.GET("/health", healthCheckHandler(c))

		setupAuthRoutes(v1, c)
		setupPublicRoutes(v1, c)
		setupAdminRoutes(v1, c)
	}

	return router
}

// ========================================
// AUTH ROUTES
// ========================================
func setupAuthRoutes(v1 *gin.RouterGroup, c *container.Container) {
	auth := v1.Group("/auth")
	{
		auth.POST("/login", c.AuthHandler.Login)
		auth.POST("/logout", c.AuthHandler.Logout)
	}
}

// ========================================
// PUBLIC ROUTES (marketing site)
// ========================================
func setupPublicRoutes(v1 *gin.RouterGroup, c *container.Container) {
	v1.GET("/artists", c.ArtistHandler.ListPublic)
	v1.GET("/artists/:slug", c.ArtistHandler.GetPublic)
	v1.GET("/releases", c.ReleaseHandler.ListPublic)
	v1.GET("/events", c.EventHandler.ListPublic)
	v1.GET("/events/:id", c.EventHandler.GetPublic)
	v1.GET("/promos", c.PromoHandler.ListPublic)
	v1.POST("/demos", c.DemoHandler.Submit)
}

// ========================================
// ADMIN ROUTES
// ========================================
func setupAdminRoutes(v1 *gin.RouterGroup, c *container.Container) {
	admin := v1.Group("/admin")
	admin.Use(middleware.RequireAdmin(c.AuthService))

	confirm := middleware.RequireConfirmation()

	admin.GET("/session", c.AuthHandler.Session)
	admin.GET("/dashboard", c.DashboardHandler.Summary)

	artists := admin.Group("/artists")
	{
		artists.GET("", c.ArtistHandler.ListAll)
		artists.GET("/options", c.ArtistHandler.Options)
		artists.GET("/:id", c.ArtistHandler.Get)
		artists.POST("", c.ArtistHandler.Create)
		artists.PATCH("/:id", c.ArtistHandler.Update)
		artists.POST("/:id/toggle-active", c.ArtistHandler.ToggleActive)
		artists.POST("/:id/toggle-featured", c.ArtistHandler.ToggleFeatured)
		artists.DELETE("/:id", confirm, c.ArtistHandler.Delete)
	}

	admin.GET("/music", c.ReleaseHandler.MusicScreen)
	releases := admin.Group("/releases")
	{
		releases.GET("", c.ReleaseHandler.ListAll)
		releases.GET("/:id", c.ReleaseHandler.Get)
		releases.POST("", c.ReleaseHandler.Create)
		releases.PATCH("/:id", c.ReleaseHandler.Update)
		releases.POST("/:id/toggle-active", c.ReleaseHandler.ToggleActive)
		releases.POST("/:id/toggle-featured", c.ReleaseHandler.ToggleFeatured)
		releases.DELETE("/:id", confirm, c.ReleaseHandler.Delete)
	}

	events := admin.Group("/events")
	{
		events.GET("", c.EventHandler.ListAll)
		events.GET("/:id", c.EventHandler.Get)
		events.POST("", c.EventHandler.Create)
		events.PATCH("/:id", c.EventHandler.Update)
		events.POST("/:id/toggle-active", c.EventHandler.ToggleActive)
		events.POST("/:id/toggle-featured", c.EventHandler.ToggleFeatured)
		events.DELETE("/:id", confirm, c.EventHandler.Delete)
	}

	promos := admin.Group("/promos")
	{
		promos.GET("", c.PromoHandler.ListAll)
		promos.GET("/:id", c.PromoHandler.Get)
		promos.POST("", c.PromoHandler.Create)
		promos.PATCH("/:id", c.PromoHandler.Update)
		promos.POST("/:id/toggle-active", c.PromoHandler.ToggleActive)
		promos.DELETE("/:id", confirm, c.PromoHandler.Delete)
	}

	demos := admin.Group("/demos")
	{
		demos.GET("", c.DemoHandler.List)
		demos.GET("/export", c.DemoHandler.Export)
		demos.PATCH("/:id/status", c.DemoHandler.UpdateStatus)
		demos.PATCH("/:id/notes", c.DemoHandler.UpdateNotes)
		demos.DELETE("/:id", confirm, c.DemoHandler.Delete)
	}

	media := admin.Group("/media")
	{
		media.GET("", c.MediaHandler.Library)
		media.POST("", c.MediaHandler.Upload)
	}
}

// ========================================
// HEALTH CHECK HANDLER
// ========================================
func healthCheckHandler(appCtx *container.Container) gin.HandlerFunc {
	return func(c *gin.Context) {
		health := gin.H{
			"status":    "ok",
			"timestamp": time.Now().Format(time.RFC3339),
			"version":   appCtx.Config.App.Version,
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		// Check database
		dbStatus := "ok"
		if appCtx.DB == nil || appCtx.DB.Pool == nil {
			dbStatus = "disconnected"
		} else if err := appCtx.DB.HealthCheck(ctx); err != nil {
			dbStatus = fmt.Sprintf("error: %v", err)
		} else if stats, err := appCtx.DB.Stats(); err == nil {
			health["pool"] = stats
		}

		// Check redis
		redisStatus := "ok"
		switch {
		case appCtx.Cache == nil:
			redisStatus = "disconnected"
		case isMemoryCache(appCtx.Cache):
			redisStatus = "fallback: in-memory"
		default:
			if err := appCtx.Cache.Ping(ctx); err != nil {
				redisStatus = fmt.Sprintf("error: %v", err)
			}
		}

		// Check object storage
		storageStatus := "ok"
		if appCtx.Storage == nil {
			storageStatus = "disconnected"
		} else if err := appCtx.Storage.HealthCheck(ctx); err != nil {
			storageStatus = fmt.Sprintf("error: %v", err)
		}

		health["services"] = gin.H{
			"database": dbStatus,
			"redis":    redisStatus,
			"storage":  storageStatus,
		}

		statusCode := http.StatusOK
		if dbStatus != "ok" {
			health["status"] = "unavailable"
			statusCode = http.StatusServiceUnavailable
		} else if redisStatus != "ok" || storageStatus != "ok" {
			health["status"] = "degraded"
		}

		c.JSON(statusCode, health)
	}
}

func isMemoryCache(c cache.Cache) bool {
	_, ok := c.(*cache.MemoryCache)
	return ok
}
