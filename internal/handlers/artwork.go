// internal/handlers/artwork.go
package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ateliernord/gallery/internal/models"
	"github.com/ateliernord/gallery/internal/services"
	"github.com/ateliernord/gallery/internal/utils"
)

type ArtworkHandler struct {
	catalog *services.CatalogService
}

func NewArtworkHandler(catalog *services.CatalogService) *ArtworkHandler {
	return &ArtworkHandler{catalog: catalog}
}

// GET /api/artworks
func (h *ArtworkHandler) GetArtworks(c *gin.Context) {
	criteria := models.FilterCriteria{
		Query: c.Query("q"),
		Style: c.Query("style"),
	}

	if maxPriceStr := c.Query("maxPrice"); maxPriceStr != "" {
		if maxPrice, err := strconv.ParseFloat(maxPriceStr, 64); err == nil {
			criteria.MaxPrice = maxPrice
		}
	}

	c.JSON(http.StatusOK, h.catalog.List(criteria))
}

// GET /api/artworks/:slug
func (h *ArtworkHandler) GetArtwork(c *gin.Context) {
	art, ok := h.catalog.BySlug(c.Param("slug"))
	if !ok {
		utils.NotFoundResponse(c)
		return
	}

	c.JSON(http.StatusOK, art)
}
