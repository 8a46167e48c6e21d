package schedule

import (
	"context"
	"time"

	"github.com/Pastormerlo/pilates-sistema/internal/domain/appointment"
	domain "github.com/Pastormerlo/pilates-sistema/internal/domain/schedule"
	"github.com/Pastormerlo/pilates-sistema/internal/httperr"
	"github.com/Pastormerlo/pilates-sistema/internal/timezone"
)

type BuildWeek struct {
	repo appointment.Repository
}

func NewBuildWeek(repo appointment.Repository) *BuildWeek {
	return &BuildWeek{repo: repo}
}

// Execute arma la vista semanal completa. reference es una fecha
// YYYY-MM-DD dentro de la semana pedida; vacío significa hoy.
func (uc *BuildWeek) Execute(
	ctx context.Context,
	studioID uint,
	reference string,
) (*WeekView, error) {

	studio, err := uc.repo.GetStudioByID(ctx, studioID)
	if err != nil {
		return nil, err
	}

	loc := timezone.Location(studio.Timezone)

	ref := timezone.NowIn(studio.Timezone)
	if reference != "" {
		ref, err = time.ParseInLocation(domain.DateKey, reference, loc)
		if err != nil {
			return nil, httperr.ErrBusiness("invalid_date")
		}
	}

	set := domain.ForStudio(studio)
	week := domain.WindowFor(ref, set.Days)

	// El recorte por semana es tarea del store, no de la grilla.
	aps, err := uc.repo.FetchAppointments(
		ctx,
		studioID,
		week.Start,
		week.End().AddDate(0, 0, 1),
	)
	if err != nil {
		return nil, err
	}

	grid := domain.Build(aps, set, week)

	return &WeekView{
		WeekStart: week.Start.Format(domain.DateKey),
		WeekEnd:   week.End().Format(domain.DateKey),
		Headers:   week.Headers(),
		Grid:      grid,
		PrevWeek:  week.PrevStart().Format(domain.DateKey),
		NextWeek:  week.NextStart().Format(domain.DateKey),
	}, nil
}
