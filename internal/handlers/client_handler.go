package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Pastormerlo/pilates-sistema/internal/httperr"
	"github.com/Pastormerlo/pilates-sistema/internal/httpresp"
	"github.com/Pastormerlo/pilates-sistema/internal/middleware"
	"github.com/Pastormerlo/pilates-sistema/internal/models"
)

type ClientHandler struct {
	db *gorm.DB
}

func NewClientHandler(db *gorm.DB) *ClientHandler {
	return &ClientHandler{db: db}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateClientRequest struct {
	Name         string `json:"name" binding:"required"`
	Surname      string `json:"surname"`
	Phone        string `json:"phone"`
	Email        string `json:"email"`
	MedicalNotes string `json:"medical_notes"`
}

type UpdateClientRequest struct {
	Name         *string `json:"name"`
	Surname      *string `json:"surname"`
	Phone        *string `json:"phone"`
	Email        *string `json:"email"`
	MedicalNotes *string `json:"medical_notes"`
}

// ======================================================
// LIST
// ======================================================

func (h *ClientHandler) List(c *gin.Context) {
	studioID := c.MustGet(middleware.ContextStudioID).(uint)

	query := strings.ToLower(strings.TrimSpace(c.Query("query")))

	q := h.db.Where("studio_id = ?", studioID)

	if query != "" {
		like := "%" + query + "%"
		q = q.Where(
			"LOWER(name) LIKE ? OR LOWER(surname) LIKE ? OR phone LIKE ? OR LOWER(email) LIKE ?",
			like, like, like, like,
		)
	}

	var clients []models.Client
	if err := q.
		Order("name ASC").
		Find(&clients).Error; err != nil {

		httperr.Internal(c, "failed_to_list_clients", "Error al listar alumnos.")
		return
	}

	httpresp.List(c, clients)
}

// ======================================================
// CREATE
// ======================================================

func (h *ClientHandler) Create(c *gin.Context) {
	studioID := c.MustGet(middleware.ContextStudioID).(uint)

	var req CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	client := models.Client{
		StudioID:     studioID,
		Name:         req.Name,
		Surname:      req.Surname,
		Phone:        req.Phone,
		Email:        req.Email,
		MedicalNotes: req.MedicalNotes,
	}

	if err := h.db.Create(&client).Error; err != nil {
		httperr.Internal(c, "failed_to_create_client", "Error al crear el alumno.")
		return
	}

	c.JSON(http.StatusCreated, client)
}

// ======================================================
// UPDATE
// ======================================================

func (h *ClientHandler) Update(c *gin.Context) {
	studioID := c.MustGet(middleware.ContextStudioID).(uint)
	id := c.Param("id")

	var client models.Client
	if err := h.db.
		Where("id = ? AND studio_id = ?", id, studioID).
		First(&client).Error; err != nil {

		httperr.NotFound(c, httperr.CodeClientNotFound, "Alumno no encontrado.")
		return
	}

	var req UpdateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	if req.Name != nil {
		client.Name = *req.Name
	}
	if req.Surname != nil {
		client.Surname = *req.Surname
	}
	if req.Phone != nil {
		client.Phone = *req.Phone
	}
	if req.Email != nil {
		client.Email = *req.Email
	}
	if req.MedicalNotes != nil {
		client.MedicalNotes = *req.MedicalNotes
	}

	if err := h.db.Save(&client).Error; err != nil {
		httperr.Internal(c, "failed_to_update_client", "Error al guardar el alumno.")
		return
	}

	c.JSON(http.StatusOK, client)
}

// ======================================================
// DELETE
// ======================================================

func (h *ClientHandler) Delete(c *gin.Context) {
	studioID := c.MustGet(middleware.ContextStudioID).(uint)
	id := c.Param("id")

	res := h.db.
		Where("id = ? AND studio_id = ?", id, studioID).
		Delete(&models.Client{})

	if res.Error != nil {
		httperr.Internal(c, "failed_to_delete_client", "Error al borrar el alumno.")
		return
	}

	if res.RowsAffected == 0 {
		httperr.NotFound(c, httperr.CodeClientNotFound, "Alumno no encontrado.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
