package schedule

import (
	"context"

	"github.com/Pastormerlo/pilates-sistema/internal/audit"
	"github.com/Pastormerlo/pilates-sistema/internal/domain/appointment"
	domain "github.com/Pastormerlo/pilates-sistema/internal/domain/schedule"
	"github.com/Pastormerlo/pilates-sistema/internal/httperr"
)

type MoveSlot struct {
	repo  appointment.Repository
	audit *audit.Dispatcher
}

func NewMoveSlot(
	repo appointment.Repository,
	audit *audit.Dispatcher,
) *MoveSlot {
	return &MoveSlot{
		repo:  repo,
		audit: audit,
	}
}

// Execute pisa (fecha, hora) de exactamente un turno. Sin chequeo de
// celda ocupada ni historial; repetir el mismo Execute es idempotente.
// Cero filas afectadas se reporta como appointment_not_found en vez
// del éxito silencioso del diseño original.
func (uc *MoveSlot) Execute(
	ctx context.Context,
	in MoveSlotInput,
) error {

	_, date, err := resolveSlot(
		ctx,
		uc.repo,
		in.StudioID,
		in.Reference,
		in.NewDay,
		in.NewHour,
	)
	if err != nil {
		return err
	}

	rows, err := uc.repo.UpdateAppointmentSlot(
		ctx,
		in.StudioID,
		in.AppointmentID,
		date,
		in.NewHour,
	)
	if err != nil {
		return err
	}
	if rows == 0 {
		return httperr.ErrBusiness(httperr.CodeAppointmentNotFound)
	}

	uc.audit.Dispatch(audit.Event{
		StudioID: in.StudioID,
		UserID:   &in.UserID,
		Action:   "slot_moved",
		Entity:   "appointment",
		EntityID: &in.AppointmentID,
		Metadata: map[string]any{
			"date": date.Format(domain.DateKey),
			"hour": in.NewHour,
		},
	})

	return nil
}
