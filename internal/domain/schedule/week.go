package schedule

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// DateKey es el formato con el que la grilla indexa sus columnas.
const DateKey = "2006-01-02"

var ErrUnknownDay = errors.New("unknown day designator")

// Labels en el orden de la semana operativa: lunes = offset 0.
var weekdayLabels = [7]string{
	"Lunes",
	"Martes",
	"Miércoles",
	"Jueves",
	"Viernes",
	"Sábado",
	"Domingo",
}

var accentReplacer = strings.NewReplacer(
	"á", "a", "é", "e", "í", "i", "ó", "o", "ú", "u",
)

// Week es la ventana visible de la agenda. Start es siempre un lunes
// a medianoche; Days es la cantidad de días operativos (5 o 6).
type Week struct {
	Start time.Time
	Days  int
}

// WindowFor calcula la semana que contiene a reference. La fecha de
// referencia puede caer en cualquier día de la ventana; lo único
// garantizado es que Start es lunes y End un offset fijo.
func WindowFor(reference time.Time, days int) Week {
	if days < 1 || days > 7 {
		days = DefaultSlotSet().Days
	}

	ref := truncateToDay(reference)
	weekday := int(ref.Weekday())
	if weekday == 0 {
		weekday = 7 // el domingo pertenece a la semana que terminó
	}

	return Week{
		Start: ref.AddDate(0, 0, -(weekday - 1)),
		Days:  days,
	}
}

// End devuelve el último día operativo (viernes o sábado).
func (w Week) End() time.Time {
	return w.Start.AddDate(0, 0, w.Days-1)
}

func (w Week) Contains(d time.Time) bool {
	d = truncateToDay(d)
	return !d.Before(w.Start) && !d.After(w.End())
}

// Dates lista los días operativos en orden.
func (w Week) Dates() []time.Time {
	out := make([]time.Time, 0, w.Days)
	for i := 0; i < w.Days; i++ {
		out = append(out, w.Start.AddDate(0, 0, i))
	}
	return out
}

func (w Week) PrevStart() time.Time {
	return w.Start.AddDate(0, 0, -7)
}

func (w Week) NextStart() time.Time {
	return w.Start.AddDate(0, 0, 7)
}

// DayHeader es la terna que consume el render de cabeceras.
type DayHeader struct {
	Weekday string `json:"weekday"`
	Date    string `json:"date"`
	Label   string `json:"label"`
}

func (w Week) Headers() []DayHeader {
	headers := make([]DayHeader, 0, w.Days)
	for i, d := range w.Dates() {
		headers = append(headers, DayHeader{
			Weekday: weekdayLabels[i],
			Date:    d.Format(DateKey),
			Label:   fmt.Sprintf("%s %02d/%02d", weekdayLabels[i], d.Day(), int(d.Month())),
		})
	}
	return headers
}

// ResolveDay convierte el designador de día de un request en fecha
// absoluta: acepta una fecha YYYY-MM-DD tal cual, o un label de día
// de semana que se resuelve como lunes de la semana + offset. El
// cambio de label nunca cruza el límite de la semana.
func (w Week) ResolveDay(day string) (time.Time, error) {
	day = strings.TrimSpace(day)
	if day == "" {
		return time.Time{}, ErrUnknownDay
	}

	if d, err := time.Parse(DateKey, day); err == nil {
		return d, nil
	}

	normalized := accentReplacer.Replace(strings.ToLower(day))
	for offset, label := range weekdayLabels {
		if normalized == accentReplacer.Replace(strings.ToLower(label)) {
			return w.Start.AddDate(0, 0, offset), nil
		}
	}

	return time.Time{}, ErrUnknownDay
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
