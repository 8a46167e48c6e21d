package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Pastormerlo/pilates-sistema/internal/branding"
	"github.com/Pastormerlo/pilates-sistema/internal/httperr"
	"github.com/Pastormerlo/pilates-sistema/internal/infra/storage"
	"github.com/Pastormerlo/pilates-sistema/internal/middleware"
	"github.com/Pastormerlo/pilates-sistema/internal/models"
	"github.com/Pastormerlo/pilates-sistema/internal/timezone"
)

type StudioHandler struct {
	db    *gorm.DB
	logos *storage.LogoStore
	cache *branding.Cache
}

func NewStudioHandler(db *gorm.DB, logos *storage.LogoStore, cache *branding.Cache) *StudioHandler {
	return &StudioHandler{db: db, logos: logos, cache: cache}
}

type UpdateStudioRequest struct {
	Name     *string `json:"name"`
	Phone    *string `json:"phone"`
	Address  *string `json:"address"`
	Timezone *string `json:"timezone"`

	FirstHour    *int `json:"first_hour"`
	LastHour     *int `json:"last_hour"`
	ScheduleDays *int `json:"schedule_days"`
}

func (h *StudioHandler) GetMeStudio(c *gin.Context) {
	studioID := c.MustGet(middleware.ContextStudioID).(uint)

	var studio models.Studio
	if err := h.db.First(&studio, studioID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "studio_not_found", "Estudio no encontrado.")
			return
		}
		httperr.Internal(c, "failed_to_get_studio", "Error al buscar el estudio.")
		return
	}

	c.JSON(http.StatusOK, studio)
}

func (h *StudioHandler) UpdateMeStudio(c *gin.Context) {
	studioID := c.MustGet(middleware.ContextStudioID).(uint)

	var studio models.Studio
	if err := h.db.First(&studio, studioID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "studio_not_found", "Estudio no encontrado.")
			return
		}
		httperr.Internal(c, "failed_to_get_studio", "Error al buscar el estudio.")
		return
	}

	var req UpdateStudioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	if req.Name != nil {
		studio.Name = *req.Name
	}
	if req.Phone != nil {
		studio.Phone = *req.Phone
	}
	if req.Address != nil {
		studio.Address = *req.Address
	}
	if req.Timezone != nil {
		if !timezone.IsValid(*req.Timezone) {
			httperr.BadRequest(c, "invalid_timezone", "Zona horaria inválida.")
			return
		}
		studio.Timezone = *req.Timezone
	}

	if req.FirstHour != nil {
		if *req.FirstHour < 0 || *req.FirstHour > 23 {
			httperr.BadRequest(c, "invalid_schedule_bounds", "Hora inicial fuera de rango.")
			return
		}
		studio.FirstHour = *req.FirstHour
	}
	if req.LastHour != nil {
		if *req.LastHour < studio.FirstHour || *req.LastHour > 23 {
			httperr.BadRequest(c, "invalid_schedule_bounds", "Hora final fuera de rango.")
			return
		}
		studio.LastHour = *req.LastHour
	}
	if req.ScheduleDays != nil {
		if *req.ScheduleDays != 5 && *req.ScheduleDays != 6 {
			httperr.BadRequest(c, "invalid_schedule_days", "La semana operativa es de 5 o 6 días.")
			return
		}
		studio.ScheduleDays = *req.ScheduleDays
	}

	if err := h.db.Save(&studio).Error; err != nil {
		httperr.Internal(c, "failed_to_update_studio", "Error al guardar el estudio.")
		return
	}

	h.cache.Invalidate(c.Request.Context(), studio.Slug)

	c.JSON(http.StatusOK, studio)
}

// ======================================================
// LOGO
// ======================================================

func (h *StudioHandler) UploadLogo(c *gin.Context) {
	studioID := c.MustGet(middleware.ContextStudioID).(uint)

	if h.logos == nil {
		httperr.Internal(c, "logo_storage_disabled", "La carga de logos no está configurada.")
		return
	}

	var studio models.Studio
	if err := h.db.First(&studio, studioID).Error; err != nil {
		httperr.Internal(c, "failed_to_get_studio", "Error al buscar el estudio.")
		return
	}

	file, err := c.FormFile("logo")
	if err != nil {
		httperr.BadRequest(c, "missing_logo", "Falta el archivo del logo.")
		return
	}

	src, err := file.Open()
	if err != nil {
		httperr.Internal(c, "failed_to_read_logo", "Error al leer el archivo.")
		return
	}
	defer src.Close()

	url, err := h.logos.Upload(c.Request.Context(), src)
	if err != nil {
		if err == storage.ErrInvalidImage {
			httperr.BadRequest(c, "invalid_image", "El archivo no es una imagen válida.")
			return
		}
		httperr.Internal(c, "failed_to_upload_logo", "Error al subir el logo.")
		return
	}

	studio.LogoURL = url
	if err := h.db.Save(&studio).Error; err != nil {
		httperr.Internal(c, "failed_to_update_studio", "Error al guardar el logo.")
		return
	}

	h.cache.Invalidate(c.Request.Context(), studio.Slug)

	c.JSON(http.StatusOK, gin.H{"logo_url": url})
}
