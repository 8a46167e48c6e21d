package schedule

import "github.com/Pastormerlo/pilates-sistema/internal/models"

// SlotSet define la grilla de un estudio: horas enteras inclusive
// entre FirstHour y LastHour, y Days días corridos desde el lunes.
type SlotSet struct {
	FirstHour int
	LastHour  int
	Days      int
}

func DefaultSlotSet() SlotSet {
	return SlotSet{FirstHour: 8, LastHour: 21, Days: 6}
}

// ForStudio arma el SlotSet configurado del estudio, con defaults
// cuando los campos todavía no fueron cargados.
func ForStudio(st *models.Studio) SlotSet {
	s := SlotSet{
		FirstHour: st.FirstHour,
		LastHour:  st.LastHour,
		Days:      st.ScheduleDays,
	}
	return s.Normalized()
}

// Normalized corrige límites fuera de rango en vez de fallar:
// la grilla siempre tiene que poder dibujarse.
func (s SlotSet) Normalized() SlotSet {
	def := DefaultSlotSet()
	if s.FirstHour < 0 || s.FirstHour > 23 {
		s.FirstHour = def.FirstHour
	}
	if s.LastHour < s.FirstHour || s.LastHour > 23 {
		s.LastHour = def.LastHour
	}
	if s.Days != 5 && s.Days != 6 {
		s.Days = def.Days
	}
	return s
}

func (s SlotSet) Hours() []int {
	hours := make([]int, 0, s.LastHour-s.FirstHour+1)
	for h := s.FirstHour; h <= s.LastHour; h++ {
		hours = append(hours, h)
	}
	return hours
}

func (s SlotSet) ContainsHour(h int) bool {
	return h >= s.FirstHour && h <= s.LastHour
}
