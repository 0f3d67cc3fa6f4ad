package api

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetMembers handles GET /api/members.
func (h *Handler) GetMembers(c *gin.Context) {
	members, err := h.site.Members(c.Request.Context())
	if err != nil {
		log.Printf("Error loading members for API: %v", err)
		c.AbortWithStatusJSON(errorStatus(err), gin.H{"error": "Failed to load member data"})
		return
	}
	c.JSON(http.StatusOK, members)
}

// GetAttractions handles GET /api/attractions.
func (h *Handler) GetAttractions(c *gin.Context) {
	attractions, err := h.site.Attractions(c.Request.Context())
	if err != nil {
		log.Printf("Error loading attractions for API: %v", err)
		c.AbortWithStatusJSON(errorStatus(err), gin.H{"error": "Failed to load attractions data"})
		return
	}
	c.JSON(http.StatusOK, attractions)
}

// GetWeather handles GET /api/weather. It always succeeds; the report says
// whether it is fallback data.
func (h *Handler) GetWeather(c *gin.Context) {
	c.JSON(http.StatusOK, h.site.Weather(c.Request.Context()))
}
