package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domain "github.com/Pastormerlo/pilates-sistema/internal/domain/appointment"
	"github.com/Pastormerlo/pilates-sistema/internal/httperr"
	"github.com/Pastormerlo/pilates-sistema/internal/middleware"
	ucSchedule "github.com/Pastormerlo/pilates-sistema/internal/usecase/schedule"
)

// ======================================================
// HANDLER
// ======================================================

type ScheduleHandler struct {
	repo       domain.Repository
	buildWeek  *ucSchedule.BuildWeek
	insertSlot *ucSchedule.InsertSlot
	moveSlot   *ucSchedule.MoveSlot
	deleteSlot *ucSchedule.DeleteSlot
}

func NewScheduleHandler(
	repo domain.Repository,
	buildWeek *ucSchedule.BuildWeek,
	insertSlot *ucSchedule.InsertSlot,
	moveSlot *ucSchedule.MoveSlot,
	deleteSlot *ucSchedule.DeleteSlot,
) *ScheduleHandler {
	return &ScheduleHandler{
		repo:       repo,
		buildWeek:  buildWeek,
		insertSlot: insertSlot,
		moveSlot:   moveSlot,
		deleteSlot: deleteSlot,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateSlotRequest struct {
	ClientID     uint   `json:"client_id" binding:"required"`
	Day          string `json:"day" binding:"required"`
	Hour         int    `json:"hour" binding:"required"`
	WeeklyRepeat int    `json:"weekly_repeat"`
	Notes        string `json:"notes"`
	Week         string `json:"week"`
}

type MoveSlotRequest struct {
	NewDay  string `json:"new_day" binding:"required"`
	NewHour int    `json:"new_hour" binding:"required"`
	Week    string `json:"week"`
}

// ======================================================
// WEEK (grilla)
// ======================================================

func (h *ScheduleHandler) Week(c *gin.Context) {
	studioID := c.MustGet(middleware.ContextStudioID).(uint)

	view, err := h.buildWeek.Execute(c.Request.Context(), studioID, c.Query("week"))
	if err != nil {
		if httperr.IsBusiness(err, "invalid_date") {
			httperr.BadRequest(c, "invalid_date", "Fecha inválida.")
			return
		}
		httperr.Internal(c, "failed_to_build_week", "Error al armar la agenda.")
		return
	}

	c.JSON(http.StatusOK, view)
}

// ======================================================
// CREATE
// ======================================================

func (h *ScheduleHandler) Create(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	studioID := c.MustGet(middleware.ContextStudioID).(uint)

	var req CreateSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	ap, err := h.insertSlot.Execute(c.Request.Context(), ucSchedule.InsertSlotInput{
		StudioID:     studioID,
		UserID:       userID,
		ClientID:     req.ClientID,
		Day:          req.Day,
		Hour:         req.Hour,
		WeeklyRepeat: req.WeeklyRepeat,
		Notes:        req.Notes,
		Reference:    req.Week,
	})
	if err != nil {
		h.writeScheduleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, ap)
}

// ======================================================
// MOVE (drag and drop)
// ======================================================

func (h *ScheduleHandler) Move(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	studioID := c.MustGet(middleware.ContextStudioID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Id inválido.")
		return
	}

	var req MoveSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	err = h.moveSlot.Execute(c.Request.Context(), ucSchedule.MoveSlotInput{
		StudioID:      studioID,
		UserID:        userID,
		AppointmentID: uint(id),
		NewDay:        req.NewDay,
		NewHour:       req.NewHour,
		Reference:     req.Week,
	})
	if err != nil {
		h.writeScheduleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// ======================================================
// GET (lookup directo por id)
// ======================================================

// Un turno fuera de la grilla configurada no aparece en Week pero
// sigue siendo consultable acá.
func (h *ScheduleHandler) Get(c *gin.Context) {
	studioID := c.MustGet(middleware.ContextStudioID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Id inválido.")
		return
	}

	ap, err := h.repo.GetAppointment(c.Request.Context(), studioID, uint(id))
	if err != nil {
		httperr.NotFound(c, httperr.CodeAppointmentNotFound, "Turno no encontrado.")
		return
	}

	c.JSON(http.StatusOK, ap)
}

// ======================================================
// DELETE
// ======================================================

func (h *ScheduleHandler) Delete(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	studioID := c.MustGet(middleware.ContextStudioID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Id inválido.")
		return
	}

	if err := h.deleteSlot.Execute(c.Request.Context(), studioID, userID, uint(id)); err != nil {
		h.writeScheduleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// ======================================================
// ERRORES
// ======================================================

func (h *ScheduleHandler) writeScheduleError(c *gin.Context, err error) {
	switch {
	case httperr.IsBusiness(err, httperr.CodeInvalidSlot):
		httperr.BadRequest(c, httperr.CodeInvalidSlot, "Día u hora fuera de la grilla.")
	case httperr.IsBusiness(err, "invalid_date"):
		httperr.BadRequest(c, "invalid_date", "Fecha inválida.")
	case httperr.IsBusiness(err, httperr.CodeClientNotFound):
		httperr.BadRequest(c, httperr.CodeClientNotFound, "El alumno no existe.")
	case httperr.IsBusiness(err, httperr.CodeAppointmentNotFound):
		httperr.NotFound(c, httperr.CodeAppointmentNotFound, "Turno no encontrado.")
	default:
		httperr.Internal(c, "schedule_error", "Error en la agenda.")
	}
}
