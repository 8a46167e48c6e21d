package schedule

import (
	"context"

	"github.com/Pastormerlo/pilates-sistema/internal/audit"
	"github.com/Pastormerlo/pilates-sistema/internal/domain/appointment"
	"github.com/Pastormerlo/pilates-sistema/internal/httperr"
)

type DeleteSlot struct {
	repo  appointment.Repository
	audit *audit.Dispatcher
}

func NewDeleteSlot(
	repo appointment.Repository,
	audit *audit.Dispatcher,
) *DeleteSlot {
	return &DeleteSlot{
		repo:  repo,
		audit: audit,
	}
}

// Execute borra un turno del estudio. Un id inexistente o de otro
// estudio devuelve appointment_not_found.
func (uc *DeleteSlot) Execute(
	ctx context.Context,
	studioID uint,
	userID uint,
	appointmentID uint,
) error {

	rows, err := uc.repo.DeleteAppointment(ctx, studioID, appointmentID)
	if err != nil {
		return err
	}
	if rows == 0 {
		return httperr.ErrBusiness(httperr.CodeAppointmentNotFound)
	}

	uc.audit.Dispatch(audit.Event{
		StudioID: studioID,
		UserID:   &userID,
		Action:   "slot_deleted",
		Entity:   "appointment",
		EntityID: &appointmentID,
	})

	return nil
}
