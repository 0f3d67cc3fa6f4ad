package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"

	"chamber-directory/config"
	"chamber-directory/internal/mw"
	"chamber-directory/web"
)

// NewRouter creates and configures a new Gin router.
func NewRouter(h *Handler, cfg config.ServerConfig) *gin.Engine {
	r := gin.Default()

	rateLimiter := mw.RateLimit(rate.Limit(cfg.RateLimitPerSec), cfg.RateLimitBurst)

	ttl := time.Duration(cfg.CacheTTLSeconds) * time.Second
	caching := mw.ResponseCache(cache.New(ttl, 2*ttl), ttl)

	r.StaticFS("/static", http.FS(web.Static()))
	if cfg.ImagesDir != "" {
		r.Static("/images", cfg.ImagesDir)
	}

	r.GET("/", h.GetHome)
	r.GET("/directory", h.GetDirectory)
	r.GET("/discover", h.GetDiscover)
	r.GET("/join", h.GetJoin)
	r.POST("/join", rateLimiter, h.PostJoin)
	r.GET("/thankyou", h.GetThankYou)
	r.POST("/theme", h.PostTheme)

	api := r.Group("/api")
	api.Use(rateLimiter)
	{
		api.GET("/members", caching, h.GetMembers)
		api.GET("/attractions", caching, h.GetAttractions)
		// The weather gate has its own freshness window.
		api.GET("/weather", h.GetWeather)
	}

	return r
}
