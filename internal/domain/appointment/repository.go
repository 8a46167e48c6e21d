package appointment

import (
	"context"
	"time"

	"github.com/Pastormerlo/pilates-sistema/internal/models"
)

// Repository es el contrato con el store. Todas las operaciones
// llevan el studioID explícito: acá no existe tenant ambiente.
// La integridad referencial de client_id la garantiza el store,
// no este componente.
type Repository interface {
	// -------- Studio --------
	GetStudioByID(
		ctx context.Context,
		id uint,
	) (*models.Studio, error)

	// -------- Appointments (lectura) --------
	FetchAppointments(
		ctx context.Context,
		studioID uint,
		from time.Time,
		to time.Time,
	) ([]models.Appointment, error)

	GetAppointment(
		ctx context.Context,
		studioID uint,
		id uint,
	) (*models.Appointment, error)

	// -------- Appointments (escritura) --------
	InsertAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// Devuelven la cantidad de filas afectadas: cero significa que
	// el id no existe o pertenece a otro estudio.
	UpdateAppointmentSlot(
		ctx context.Context,
		studioID uint,
		id uint,
		date time.Time,
		hour int,
	) (int64, error)

	DeleteAppointment(
		ctx context.Context,
		studioID uint,
		id uint,
	) (int64, error)
}
