// internal/router/router.go
package router

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/ateliernord/gallery/internal/config"
	"github.com/ateliernord/gallery/internal/handlers"
	"github.com/ateliernord/gallery/internal/middleware"
	"github.com/ateliernord/gallery/internal/services"
)

func Initialize(catalog *services.CatalogService, cfg *config.Config) *gin.Engine {
	// Initialize services
	notificationService := services.NewNotificationService(cfg)
	checkoutService := services.NewCheckoutService(catalog)

	// Initialize handlers
	artworkHandler := handlers.NewArtworkHandler(catalog)
	checkoutHandler := handlers.NewCheckoutHandler(checkoutService, catalog, notificationService)

	// Rate limiters: one general bucket, a stricter one for outbound email
	generalLimit := middleware.NewRateLimiter(cfg.RateLimit.RequestsPerMinute, cfg.RateLimit.Burst)
	emailLimit := middleware.NewRateLimiter(cfg.RateLimit.EmailPerMinute, cfg.RateLimit.EmailBurst)

	// Initialize Gin router
	r := gin.New()

	// Global middleware
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS(cfg))
	r.Use(generalLimit.Middleware())

	// Health check
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	// API routes
	api := r.Group("/api")
	{
		api.GET("/artworks", artworkHandler.GetArtworks)
		api.GET("/artworks/:slug", artworkHandler.GetArtwork)
		api.POST("/checkout/email", emailLimit.Middleware(), checkoutHandler.CheckoutEmail)
		api.POST("/inquiry", emailLimit.Middleware(), checkoutHandler.Inquiry)
	}

	// Static images with long-lived caching
	images := r.Group("/images", cacheControl(cfg.Static.ImagesMaxAge))
	images.Static("/", cfg.Static.ImagesDir)

	// SPA fallback for the web build, when one is configured
	if cfg.Static.WebDir != "" {
		registerSPA(r, cfg.Static.WebDir)
	}

	return r
}

func cacheControl(maxAge int) gin.HandlerFunc {
	value := fmt.Sprintf("public, max-age=%d, immutable", maxAge)
	return func(c *gin.Context) {
		c.Header("Cache-Control", value)
		c.Next()
	}
}

// registerSPA serves the web build's assets and falls back to index.html for
// any unknown non-API path, so client-side routes survive a reload.
func registerSPA(r *gin.Engine, webDir string) {
	r.NoRoute(func(c *gin.Context) {
		path := c.Request.URL.Path
		if strings.HasPrefix(path, "/api") || strings.HasPrefix(path, "/images") {
			c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
			return
		}

		candidate := filepath.Join(webDir, filepath.Clean("/"+path))
		if path != "/" && fileExists(candidate) {
			c.File(candidate)
			return
		}

		c.File(filepath.Join(webDir, "index.html"))
	})
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
