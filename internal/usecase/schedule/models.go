package schedule

import (
	domain "github.com/Pastormerlo/pilates-sistema/internal/domain/schedule"
)

// WeekView es todo lo que necesita el front para dibujar una semana:
// la grilla, las cabeceras y las fechas de navegación.
type WeekView struct {
	WeekStart string             `json:"week_start"`
	WeekEnd   string             `json:"week_end"`
	Headers   []domain.DayHeader `json:"headers"`
	Grid      domain.Grid        `json:"grid"`
	PrevWeek  string             `json:"prev_week"`
	NextWeek  string             `json:"next_week"`
}

type InsertSlotInput struct {
	StudioID uint
	UserID   uint

	ClientID     uint
	Day          string
	Hour         int
	WeeklyRepeat int
	Notes        string

	// Fecha de referencia de la semana mostrada; ancla la resolución
	// de labels de día. Vacío usa la semana actual del estudio.
	Reference string
}

type MoveSlotInput struct {
	StudioID uint
	UserID   uint

	AppointmentID uint
	NewDay        string
	NewHour       int

	Reference string
}
