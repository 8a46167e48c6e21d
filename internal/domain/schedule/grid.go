package schedule

import "github.com/Pastormerlo/pilates-sistema/internal/models"

// Entry es un turno ya desnormalizado para el render de la grilla.
type Entry struct {
	AppointmentID uint   `json:"appointment_id"`
	ClientID      uint   `json:"client_id"`
	ClientName    string `json:"client_name"`
	Date          string `json:"date"`
	Hour          int    `json:"hour"`
	WeeklyRepeat  int    `json:"weekly_repeat"`
	Notes         string `json:"notes"`
}

// Grid es la vista hora × día de una semana. Es derivada y efímera:
// se reconstruye en cada lectura, nunca se persiste.
type Grid struct {
	Hours []int                      `json:"hours"`
	Days  []string                   `json:"days"`
	Cells map[int]map[string][]Entry `json:"cells"`

	// Turnos cuyo (hora, día) quedó fuera del set configurado.
	// No aparecen en ninguna celda pero siguen en la base.
	Dropped int `json:"dropped"`
}

// Build reparte los turnos de una semana en celdas (hora, fecha).
// Los turnos llegan ya filtrados por estudio y semana: ese recorte es
// responsabilidad del repositorio. Dentro de una celda el orden es el
// del store (hora ascendente, después orden de inserción).
func Build(appointments []models.Appointment, set SlotSet, week Week) Grid {
	set = set.Normalized()

	g := Grid{
		Hours: set.Hours(),
		Days:  make([]string, 0, week.Days),
		Cells: make(map[int]map[string][]Entry, set.LastHour-set.FirstHour+1),
	}

	for _, d := range week.Dates() {
		g.Days = append(g.Days, d.Format(DateKey))
	}

	for _, h := range g.Hours {
		row := make(map[string][]Entry, len(g.Days))
		for _, d := range g.Days {
			row[d] = []Entry{}
		}
		g.Cells[h] = row
	}

	for _, ap := range appointments {
		key := ap.Date.Format(DateKey)

		row, ok := g.Cells[ap.Hour]
		if !ok {
			g.Dropped++
			continue
		}
		if _, ok := row[key]; !ok {
			g.Dropped++
			continue
		}

		row[key] = append(row[key], Entry{
			AppointmentID: ap.ID,
			ClientID:      ap.ClientID,
			ClientName:    ap.Client.DisplayName(),
			Date:          key,
			Hour:          ap.Hour,
			WeeklyRepeat:  ap.WeeklyRepeat,
			Notes:         ap.Notes,
		})
	}

	return g
}

// Total cuenta las entradas de todas las celdas.
func (g Grid) Total() int {
	n := 0
	for _, row := range g.Cells {
		for _, cell := range row {
			n += len(cell)
		}
	}
	return n
}
