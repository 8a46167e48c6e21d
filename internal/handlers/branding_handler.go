package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Pastormerlo/pilates-sistema/internal/branding"
	"github.com/Pastormerlo/pilates-sistema/internal/httperr"
)

// BrandingHandler sirve el branding público de un estudio (nombre y
// logo) para la pantalla de login del front, pasando por el cache.
type BrandingHandler struct {
	cache *branding.Cache
}

func NewBrandingHandler(cache *branding.Cache) *BrandingHandler {
	return &BrandingHandler{cache: cache}
}

func (h *BrandingHandler) Get(c *gin.Context) {
	slug := c.Param("slug")

	b, err := h.cache.GetBySlug(c.Request.Context(), slug)
	if err != nil {
		httperr.NotFound(c, "studio_not_found", "Estudio no encontrado.")
		return
	}

	c.JSON(http.StatusOK, b)
}
