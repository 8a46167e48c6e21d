package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Pastormerlo/pilates-sistema/internal/httperr"
	"github.com/Pastormerlo/pilates-sistema/internal/middleware"
	"github.com/Pastormerlo/pilates-sistema/internal/models"
	"github.com/Pastormerlo/pilates-sistema/internal/payments"
	"github.com/Pastormerlo/pilates-sistema/internal/timezone"
)

// ======================================================
// HANDLER
// ======================================================

type PaymentHandler struct {
	db    *gorm.DB
	links *payments.LinkBuilder
}

func NewPaymentHandler(db *gorm.DB, links *payments.LinkBuilder) *PaymentHandler {
	return &PaymentHandler{db: db, links: links}
}

// ======================================================
// REQUESTS
// ======================================================

type CreatePaymentRequest struct {
	ClientID uint    `json:"client_id" binding:"required"`
	Amount   float64 `json:"amount" binding:"required,gt=0"`
	Concept  string  `json:"concept" binding:"required"`
	Status   string  `json:"status"`
	Date     string  `json:"date"`

	// Agrega " - <mes en curso>" al concepto, como las cuotas
	// mensuales del sistema original.
	AppendMonth bool `json:"append_month"`

	// Pide un link de checkout de Mercado Pago para pagos pendientes.
	WithCheckoutLink bool `json:"with_checkout_link"`
}

var monthNames = [12]string{
	"enero", "febrero", "marzo", "abril", "mayo", "junio",
	"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre",
}

// ======================================================
// LIST (facturación)
// ======================================================

func (h *PaymentHandler) List(c *gin.Context) {
	studioID := c.MustGet(middleware.ContextStudioID).(uint)

	var pagos []models.Payment
	if err := h.db.
		Preload("Client").
		Where("studio_id = ?", studioID).
		Order("date DESC, id DESC").
		Find(&pagos).Error; err != nil {

		httperr.Internal(c, "failed_to_list_payments", "Error al listar pagos.")
		return
	}

	c.JSON(http.StatusOK, pagos)
}

// ======================================================
// CREATE (registrar pago)
// ======================================================

func (h *PaymentHandler) Create(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	studioID := c.MustGet(middleware.ContextStudioID).(uint)

	var studio models.Studio
	if err := h.db.First(&studio, studioID).Error; err != nil {
		httperr.Internal(c, "studio_not_found", "Estudio no encontrado.")
		return
	}

	var req CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	now := timezone.NowIn(studio.Timezone)

	date := now
	if req.Date != "" {
		parsed, err := time.ParseInLocation("2006-01-02", req.Date, timezone.Location(studio.Timezone))
		if err != nil {
			httperr.BadRequest(c, "invalid_date", "Fecha inválida.")
			return
		}
		date = parsed
	}

	concept := req.Concept
	if req.AppendMonth {
		concept = fmt.Sprintf("%s - %s %d", concept, monthNames[date.Month()-1], date.Year())
	}

	status := req.Status
	if status == "" {
		status = "pagado"
	}

	pago := models.Payment{
		StudioID: studioID,
		ClientID: req.ClientID,
		Amount:   req.Amount,
		Concept:  concept,
		Status:   status,
		Date:     date,
	}

	if err := h.db.Create(&pago).Error; err != nil {
		if httperr.IsForeignKeyViolation(err) {
			httperr.BadRequest(c, httperr.CodeClientNotFound, "El alumno no existe.")
			return
		}
		httperr.Internal(c, "failed_to_create_payment", "Error al registrar el pago.")
		return
	}

	writeAudit(h.db, studioID, &userID, "payment_registered", "payment", &pago.ID, gin.H{
		"amount": pago.Amount,
	})

	resp := gin.H{"payment": pago}

	if req.WithCheckoutLink && h.links != nil && status == "pendiente" {
		link, err := h.links.CheckoutLink(c.Request.Context(), &studio, &pago)
		if err != nil {
			// el pago ya quedó registrado; el link es accesorio
			resp["checkout_link_error"] = "mercadopago_unavailable"
		} else {
			resp["checkout_link"] = link
		}
	}

	c.JSON(http.StatusCreated, resp)
}

// ======================================================
// DELETE
// ======================================================

// Los pagos nunca se editan: se borran y se cargan de nuevo.
func (h *PaymentHandler) Delete(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	studioID := c.MustGet(middleware.ContextStudioID).(uint)
	id := c.Param("id")

	res := h.db.
		Where("id = ? AND studio_id = ?", id, studioID).
		Delete(&models.Payment{})

	if res.Error != nil {
		httperr.Internal(c, "failed_to_delete_payment", "Error al borrar el pago.")
		return
	}

	if res.RowsAffected == 0 {
		httperr.NotFound(c, "payment_not_found", "Pago no encontrado.")
		return
	}

	writeAudit(h.db, studioID, &userID, "payment_deleted", "payment", nil, gin.H{"id": id})

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// ======================================================
// SUMMARY (conteo y suma por rango de fechas)
// ======================================================

func (h *PaymentHandler) Summary(c *gin.Context) {
	studioID := c.MustGet(middleware.ContextStudioID).(uint)

	fromStr := c.Query("from")
	toStr := c.Query("to")
	if fromStr == "" || toStr == "" {
		httperr.BadRequest(c, "missing_range", "Rango de fechas obligatorio.")
		return
	}

	from, err := time.Parse("2006-01-02", fromStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Fecha inválida.")
		return
	}
	to, err := time.Parse("2006-01-02", toStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Fecha inválida.")
		return
	}

	var result struct {
		Count int64   `json:"count"`
		Total float64 `json:"total"`
	}

	if err := h.db.
		Model(&models.Payment{}).
		Select("COUNT(*) AS count, COALESCE(SUM(amount), 0) AS total").
		Where(
			"studio_id = ? AND date >= ? AND date <= ?",
			studioID, from, to,
		).
		Scan(&result).Error; err != nil {

		httperr.Internal(c, "failed_to_summarize", "Error al calcular el resumen.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"from":  fromStr,
		"to":    toStr,
		"count": result.Count,
		"total": result.Total,
	})
}
