package schedule

import (
	"context"

	"github.com/Pastormerlo/pilates-sistema/internal/audit"
	"github.com/Pastormerlo/pilates-sistema/internal/domain/appointment"
	"github.com/Pastormerlo/pilates-sistema/internal/models"
)

type InsertSlot struct {
	repo  appointment.Repository
	audit *audit.Dispatcher
}

func NewInsertSlot(
	repo appointment.Repository,
	audit *audit.Dispatcher,
) *InsertSlot {
	return &InsertSlot{
		repo:  repo,
		audit: audit,
	}
}

// Execute da de alta un turno. No valida que la celda esté libre:
// el doble turno está permitido a propósito. La existencia del alumno
// la garantiza la FK del store (client_not_found si no existe).
func (uc *InsertSlot) Execute(
	ctx context.Context,
	in InsertSlotInput,
) (*models.Appointment, error) {

	_, date, err := resolveSlot(
		ctx,
		uc.repo,
		in.StudioID,
		in.Reference,
		in.Day,
		in.Hour,
	)
	if err != nil {
		return nil, err
	}

	repeat := in.WeeklyRepeat
	if repeat < 0 {
		repeat = 0
	}

	ap := &models.Appointment{
		StudioID:     in.StudioID,
		ClientID:     in.ClientID,
		Date:         date,
		Hour:         in.Hour,
		WeeklyRepeat: repeat,
		Notes:        in.Notes,
	}

	if err := uc.repo.InsertAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		StudioID: in.StudioID,
		UserID:   &in.UserID,
		Action:   "slot_created",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
