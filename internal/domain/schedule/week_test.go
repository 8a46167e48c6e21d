package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse(DateKey, s)
	require.NoError(t, err)
	return d
}

func TestWindowFor(t *testing.T) {
	tests := []struct {
		name      string
		reference string
		wantStart string
	}{
		{
			name:      "lunes ancla su propia semana",
			reference: "2024-03-04",
			wantStart: "2024-03-04",
		},
		{
			name:      "jueves cae en la semana del lunes anterior",
			reference: "2024-03-07",
			wantStart: "2024-03-04",
		},
		{
			name:      "sábado sigue en la misma semana",
			reference: "2024-03-09",
			wantStart: "2024-03-04",
		},
		{
			name:      "domingo pertenece a la semana que terminó",
			reference: "2024-03-10",
			wantStart: "2024-03-04",
		},
		{
			name:      "el lunes siguiente abre otra semana",
			reference: "2024-03-11",
			wantStart: "2024-03-11",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := WindowFor(mustDate(t, tt.reference), 6)
			assert.Equal(t, tt.wantStart, w.Start.Format(DateKey))
			assert.Equal(t, time.Monday, w.Start.Weekday())
		})
	}
}

func TestWindowForIgnoresTimeOfDay(t *testing.T) {
	ref := time.Date(2024, 3, 7, 18, 30, 0, 0, time.UTC)
	w := WindowFor(ref, 6)
	assert.Equal(t, "2024-03-04", w.Start.Format(DateKey))
}

func TestWindowForBadDaysFallsBack(t *testing.T) {
	w := WindowFor(mustDate(t, "2024-03-04"), 0)
	assert.Equal(t, DefaultSlotSet().Days, w.Days)
}

func TestWeekEndAndDates(t *testing.T) {
	w := WindowFor(mustDate(t, "2024-03-04"), 6)

	assert.Equal(t, "2024-03-09", w.End().Format(DateKey))

	dates := w.Dates()
	require.Len(t, dates, 6)
	assert.Equal(t, "2024-03-04", dates[0].Format(DateKey))
	assert.Equal(t, "2024-03-09", dates[5].Format(DateKey))

	short := WindowFor(mustDate(t, "2024-03-04"), 5)
	assert.Equal(t, "2024-03-08", short.End().Format(DateKey))
}

func TestWeekContains(t *testing.T) {
	w := WindowFor(mustDate(t, "2024-03-04"), 6)

	assert.True(t, w.Contains(mustDate(t, "2024-03-04")))
	assert.True(t, w.Contains(mustDate(t, "2024-03-09")))
	assert.False(t, w.Contains(mustDate(t, "2024-03-10")))
	assert.False(t, w.Contains(mustDate(t, "2024-03-03")))
}

func TestWeekNavigation(t *testing.T) {
	w := WindowFor(mustDate(t, "2024-03-04"), 6)

	assert.Equal(t, "2024-02-26", w.PrevStart().Format(DateKey))
	assert.Equal(t, "2024-03-11", w.NextStart().Format(DateKey))
}

func TestHeaders(t *testing.T) {
	w := WindowFor(mustDate(t, "2024-03-04"), 6)

	headers := w.Headers()
	require.Len(t, headers, 6)

	assert.Equal(t, "Lunes", headers[0].Weekday)
	assert.Equal(t, "2024-03-04", headers[0].Date)
	assert.Equal(t, "Lunes 04/03", headers[0].Label)

	assert.Equal(t, "Sábado", headers[5].Weekday)
	assert.Equal(t, "Sábado 09/03", headers[5].Label)
}

func TestResolveDay(t *testing.T) {
	w := WindowFor(mustDate(t, "2024-03-04"), 6)

	tests := []struct {
		name string
		day  string
		want string
	}{
		{"label exacto", "Jueves", "2024-03-07"},
		{"minúsculas", "jueves", "2024-03-07"},
		{"sin acento", "miercoles", "2024-03-06"},
		{"mayúsculas con acento", "SÁBADO", "2024-03-09"},
		{"fecha absoluta dentro de la semana", "2024-03-05", "2024-03-05"},
		{"fecha absoluta de otra semana", "2024-04-22", "2024-04-22"},
		{"espacios alrededor", "  Lunes ", "2024-03-04"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := w.ResolveDay(tt.day)
			require.NoError(t, err)
			assert.Equal(t, tt.want, d.Format(DateKey))
		})
	}
}

func TestResolveDayUnknown(t *testing.T) {
	w := WindowFor(mustDate(t, "2024-03-04"), 6)

	for _, day := range []string{"", "Feriado", "03/04/2024", "lun"} {
		_, err := w.ResolveDay(day)
		assert.ErrorIs(t, err, ErrUnknownDay, "day=%q", day)
	}
}
