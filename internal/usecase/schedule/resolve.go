package schedule

import (
	"context"
	"time"

	"github.com/Pastormerlo/pilates-sistema/internal/domain/appointment"
	domain "github.com/Pastormerlo/pilates-sistema/internal/domain/schedule"
	"github.com/Pastormerlo/pilates-sistema/internal/httperr"
	"github.com/Pastormerlo/pilates-sistema/internal/models"
	"github.com/Pastormerlo/pilates-sistema/internal/timezone"
)

// resolveSlot valida la hora contra el set del estudio y convierte el
// designador de día en fecha absoluta, anclado a la semana de
// reference. Un label de día cambia sólo el día de la semana, nunca
// cruza el límite de la semana; una fecha absoluta puede caer fuera
// de la ventana mostrada (movimientos entre semanas permitidos).
func resolveSlot(
	ctx context.Context,
	repo appointment.Repository,
	studioID uint,
	reference string,
	day string,
	hour int,
) (*models.Studio, time.Time, error) {

	studio, err := repo.GetStudioByID(ctx, studioID)
	if err != nil {
		return nil, time.Time{}, err
	}

	set := domain.ForStudio(studio)
	if !set.ContainsHour(hour) {
		return nil, time.Time{}, httperr.ErrBusiness(httperr.CodeInvalidSlot)
	}

	loc := timezone.Location(studio.Timezone)

	ref := timezone.NowIn(studio.Timezone)
	if reference != "" {
		ref, err = time.ParseInLocation(domain.DateKey, reference, loc)
		if err != nil {
			return nil, time.Time{}, httperr.ErrBusiness("invalid_date")
		}
	}

	week := domain.WindowFor(ref, set.Days)

	date, err := week.ResolveDay(day)
	if err != nil {
		return nil, time.Time{}, httperr.ErrBusiness(httperr.CodeInvalidSlot)
	}

	return studio, date, nil
}
