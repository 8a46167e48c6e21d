package schedule

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/Pastormerlo/pilates-sistema/internal/domain/schedule"
	"github.com/Pastormerlo/pilates-sistema/internal/httperr"
	"github.com/Pastormerlo/pilates-sistema/internal/models"
)

// ======================================================
// FAKE REPOSITORY
// ======================================================

type fakeRepo struct {
	studio *models.Studio

	appointments map[uint]*models.Appointment
	nextID       uint

	insertErr error
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		studio: &models.Studio{
			ID:           1,
			Name:         "Estudio Norte",
			Slug:         "estudio-norte",
			Timezone:     "America/Argentina/Buenos_Aires",
			FirstHour:    8,
			LastHour:     21,
			ScheduleDays: 6,
		},
		appointments: map[uint]*models.Appointment{},
	}
}

func (r *fakeRepo) GetStudioByID(_ context.Context, id uint) (*models.Studio, error) {
	if r.studio == nil || r.studio.ID != id {
		return nil, httperr.ErrBusiness("studio_not_found")
	}
	return r.studio, nil
}

func (r *fakeRepo) FetchAppointments(
	_ context.Context,
	studioID uint,
	from time.Time,
	to time.Time,
) ([]models.Appointment, error) {

	var out []models.Appointment
	for _, ap := range r.appointments {
		if ap.StudioID != studioID {
			continue
		}
		if ap.Date.Before(from) || !ap.Date.Before(to) {
			continue
		}
		out = append(out, *ap)
	}
	return out, nil
}

func (r *fakeRepo) GetAppointment(_ context.Context, studioID, id uint) (*models.Appointment, error) {
	ap, ok := r.appointments[id]
	if !ok || ap.StudioID != studioID {
		return nil, httperr.ErrBusiness(httperr.CodeAppointmentNotFound)
	}
	out := *ap
	return &out, nil
}

func (r *fakeRepo) InsertAppointment(_ context.Context, ap *models.Appointment) error {
	if r.insertErr != nil {
		return r.insertErr
	}
	r.nextID++
	ap.ID = r.nextID
	stored := *ap
	r.appointments[ap.ID] = &stored
	return nil
}

func (r *fakeRepo) UpdateAppointmentSlot(
	_ context.Context,
	studioID uint,
	id uint,
	date time.Time,
	hour int,
) (int64, error) {

	ap, ok := r.appointments[id]
	if !ok || ap.StudioID != studioID {
		return 0, nil
	}
	ap.Date = date
	ap.Hour = hour
	return 1, nil
}

func (r *fakeRepo) DeleteAppointment(_ context.Context, studioID, id uint) (int64, error) {
	ap, ok := r.appointments[id]
	if !ok || ap.StudioID != studioID {
		return 0, nil
	}
	delete(r.appointments, id)
	return 1, nil
}

func (r *fakeRepo) seed(studioID uint, date string, hour int) *models.Appointment {
	d, _ := time.Parse(domain.DateKey, date)
	r.nextID++
	ap := &models.Appointment{
		ID:       r.nextID,
		StudioID: studioID,
		ClientID: 1,
		Client:   models.Client{ID: 1, Name: "Ana"},
		Date:     d,
		Hour:     hour,
	}
	r.appointments[ap.ID] = ap
	return ap
}

// ======================================================
// INSERT
// ======================================================

func TestInsertSlot(t *testing.T) {
	repo := newFakeRepo()
	uc := NewInsertSlot(repo, nil)

	ap, err := uc.Execute(context.Background(), InsertSlotInput{
		StudioID:  1,
		UserID:    10,
		ClientID:  1,
		Day:       "Jueves",
		Hour:      9,
		Reference: "2024-03-04",
	})
	require.NoError(t, err)

	assert.Equal(t, "2024-03-07", ap.Date.Format(domain.DateKey))
	assert.Equal(t, 9, ap.Hour)

	// Round-trip: la semana leída devuelve exactamente ese turno.
	from := mustParse(t, "2024-03-04")
	fetched, err := repo.FetchAppointments(context.Background(), 1, from, from.AddDate(0, 0, 7))
	require.NoError(t, err)
	require.Len(t, fetched, 1)
	assert.Equal(t, ap.ID, fetched[0].ID)
}

func mustParse(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse(domain.DateKey, s)
	require.NoError(t, err)
	return d
}

func TestInsertSlotInvalidHour(t *testing.T) {
	repo := newFakeRepo()
	uc := NewInsertSlot(repo, nil)

	for _, hour := range []int{7, 22, 23, -1} {
		_, err := uc.Execute(context.Background(), InsertSlotInput{
			StudioID:  1,
			ClientID:  1,
			Day:       "Lunes",
			Hour:      hour,
			Reference: "2024-03-04",
		})
		assert.True(t, httperr.IsBusiness(err, httperr.CodeInvalidSlot), "hour=%d", hour)
	}

	assert.Empty(t, repo.appointments)
}

func TestInsertSlotUnknownDay(t *testing.T) {
	repo := newFakeRepo()
	uc := NewInsertSlot(repo, nil)

	_, err := uc.Execute(context.Background(), InsertSlotInput{
		StudioID:  1,
		ClientID:  1,
		Day:       "Feriado",
		Hour:      9,
		Reference: "2024-03-04",
	})
	assert.True(t, httperr.IsBusiness(err, httperr.CodeInvalidSlot))
}

func TestInsertSlotBadReference(t *testing.T) {
	repo := newFakeRepo()
	uc := NewInsertSlot(repo, nil)

	_, err := uc.Execute(context.Background(), InsertSlotInput{
		StudioID:  1,
		ClientID:  1,
		Day:       "Lunes",
		Hour:      9,
		Reference: "04/03/2024",
	})
	assert.True(t, httperr.IsBusiness(err, "invalid_date"))
}

func TestInsertSlotClampsNegativeRepeat(t *testing.T) {
	repo := newFakeRepo()
	uc := NewInsertSlot(repo, nil)

	ap, err := uc.Execute(context.Background(), InsertSlotInput{
		StudioID:     1,
		ClientID:     1,
		Day:          "Lunes",
		Hour:         9,
		WeeklyRepeat: -3,
		Reference:    "2024-03-04",
	})
	require.NoError(t, err)
	assert.Zero(t, ap.WeeklyRepeat)
}

func TestInsertSlotStorePassthrough(t *testing.T) {
	repo := newFakeRepo()
	repo.insertErr = httperr.ErrBusiness(httperr.CodeClientNotFound)
	uc := NewInsertSlot(repo, nil)

	_, err := uc.Execute(context.Background(), InsertSlotInput{
		StudioID:  1,
		ClientID:  999,
		Day:       "Lunes",
		Hour:      9,
		Reference: "2024-03-04",
	})
	assert.True(t, httperr.IsBusiness(err, httperr.CodeClientNotFound))
}

// ======================================================
// MOVE
// ======================================================

func TestMoveSlot(t *testing.T) {
	repo := newFakeRepo()
	ap := repo.seed(1, "2024-03-04", 9)
	uc := NewMoveSlot(repo, nil)

	err := uc.Execute(context.Background(), MoveSlotInput{
		StudioID:      1,
		UserID:        10,
		AppointmentID: ap.ID,
		NewDay:        "Viernes",
		NewHour:       15,
		Reference:     "2024-03-04",
	})
	require.NoError(t, err)

	moved := repo.appointments[ap.ID]
	assert.Equal(t, "2024-03-08", moved.Date.Format(domain.DateKey))
	assert.Equal(t, 15, moved.Hour)
}

func TestMoveSlotIsIdempotent(t *testing.T) {
	repo := newFakeRepo()
	ap := repo.seed(1, "2024-03-04", 9)
	uc := NewMoveSlot(repo, nil)

	in := MoveSlotInput{
		StudioID:      1,
		AppointmentID: ap.ID,
		NewDay:        "Martes",
		NewHour:       11,
		Reference:     "2024-03-04",
	}

	require.NoError(t, uc.Execute(context.Background(), in))
	require.NoError(t, uc.Execute(context.Background(), in))

	moved := repo.appointments[ap.ID]
	assert.Equal(t, "2024-03-05", moved.Date.Format(domain.DateKey))
	assert.Equal(t, 11, moved.Hour)
	assert.Len(t, repo.appointments, 1)
}

func TestMoveSlotAcrossWeeks(t *testing.T) {
	repo := newFakeRepo()
	ap := repo.seed(1, "2024-03-04", 9)
	uc := NewMoveSlot(repo, nil)

	// Una fecha absoluta puede salir de la ventana mostrada.
	err := uc.Execute(context.Background(), MoveSlotInput{
		StudioID:      1,
		AppointmentID: ap.ID,
		NewDay:        "2024-04-22",
		NewHour:       10,
		Reference:     "2024-03-04",
	})
	require.NoError(t, err)

	assert.Equal(t, "2024-04-22", repo.appointments[ap.ID].Date.Format(domain.DateKey))
}

func TestMoveSlotNotFound(t *testing.T) {
	repo := newFakeRepo()
	uc := NewMoveSlot(repo, nil)

	err := uc.Execute(context.Background(), MoveSlotInput{
		StudioID:      1,
		AppointmentID: 404,
		NewDay:        "Lunes",
		NewHour:       9,
		Reference:     "2024-03-04",
	})
	assert.True(t, httperr.IsBusiness(err, httperr.CodeAppointmentNotFound))
}

func TestMoveSlotOtherStudio(t *testing.T) {
	repo := newFakeRepo()
	ap := repo.seed(2, "2024-03-04", 9)
	uc := NewMoveSlot(repo, nil)

	err := uc.Execute(context.Background(), MoveSlotInput{
		StudioID:      1,
		AppointmentID: ap.ID,
		NewDay:        "Lunes",
		NewHour:       9,
		Reference:     "2024-03-04",
	})
	assert.True(t, httperr.IsBusiness(err, httperr.CodeAppointmentNotFound))

	// El turno del otro estudio queda intacto.
	assert.Equal(t, "2024-03-04", repo.appointments[ap.ID].Date.Format(domain.DateKey))
}

func TestMoveSlotInvalidHour(t *testing.T) {
	repo := newFakeRepo()
	ap := repo.seed(1, "2024-03-04", 9)
	uc := NewMoveSlot(repo, nil)

	err := uc.Execute(context.Background(), MoveSlotInput{
		StudioID:      1,
		AppointmentID: ap.ID,
		NewDay:        "Lunes",
		NewHour:       23,
		Reference:     "2024-03-04",
	})
	assert.True(t, httperr.IsBusiness(err, httperr.CodeInvalidSlot))
	assert.Equal(t, 9, repo.appointments[ap.ID].Hour)
}

// ======================================================
// DELETE
// ======================================================

func TestDeleteSlot(t *testing.T) {
	repo := newFakeRepo()
	ap := repo.seed(1, "2024-03-04", 9)
	uc := NewDeleteSlot(repo, nil)

	require.NoError(t, uc.Execute(context.Background(), 1, 10, ap.ID))
	assert.Empty(t, repo.appointments)

	err := uc.Execute(context.Background(), 1, 10, ap.ID)
	assert.True(t, httperr.IsBusiness(err, httperr.CodeAppointmentNotFound))
}

func TestDeleteSlotOtherStudio(t *testing.T) {
	repo := newFakeRepo()
	ap := repo.seed(2, "2024-03-04", 9)
	uc := NewDeleteSlot(repo, nil)

	err := uc.Execute(context.Background(), 1, 10, ap.ID)
	assert.True(t, httperr.IsBusiness(err, httperr.CodeAppointmentNotFound))
	assert.Len(t, repo.appointments, 1)
}

// ======================================================
// BUILD WEEK
// ======================================================

func TestBuildWeek(t *testing.T) {
	repo := newFakeRepo()
	repo.seed(1, "2024-03-04", 9)
	repo.seed(1, "2024-03-07", 18)
	repo.seed(1, "2024-03-11", 9) // semana siguiente, no entra
	repo.seed(2, "2024-03-04", 9) // otro estudio, no entra

	uc := NewBuildWeek(repo)

	view, err := uc.Execute(context.Background(), 1, "2024-03-07")
	require.NoError(t, err)

	assert.Equal(t, "2024-03-04", view.WeekStart)
	assert.Equal(t, "2024-03-09", view.WeekEnd)
	assert.Equal(t, "2024-02-26", view.PrevWeek)
	assert.Equal(t, "2024-03-11", view.NextWeek)

	require.Len(t, view.Headers, 6)
	assert.Equal(t, "Lunes 04/03", view.Headers[0].Label)

	assert.Equal(t, 2, view.Grid.Total())
	assert.Zero(t, view.Grid.Dropped)
}

func TestBuildWeekReportsDropped(t *testing.T) {
	repo := newFakeRepo()
	ap := repo.seed(1, "2024-03-04", 23)

	uc := NewBuildWeek(repo)

	view, err := uc.Execute(context.Background(), 1, "2024-03-04")
	require.NoError(t, err)

	assert.Zero(t, view.Grid.Total())
	assert.Equal(t, 1, view.Grid.Dropped)

	// Fuera de la grilla pero no de la base.
	got, err := repo.GetAppointment(context.Background(), 1, ap.ID)
	require.NoError(t, err)
	assert.Equal(t, 23, got.Hour)
}

func TestBuildWeekBadReference(t *testing.T) {
	repo := newFakeRepo()
	uc := NewBuildWeek(repo)

	_, err := uc.Execute(context.Background(), 1, "7 de marzo")
	assert.True(t, httperr.IsBusiness(err, "invalid_date"))
}

func TestBuildWeekFiveDayStudio(t *testing.T) {
	repo := newFakeRepo()
	repo.studio.ScheduleDays = 5
	repo.seed(1, "2024-03-09", 9) // sábado fuera de la semana de 5 días

	uc := NewBuildWeek(repo)

	view, err := uc.Execute(context.Background(), 1, "2024-03-04")
	require.NoError(t, err)

	assert.Equal(t, "2024-03-08", view.WeekEnd)
	require.Len(t, view.Headers, 5)
	assert.Zero(t, view.Grid.Total())
}
