package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	domain "github.com/Pastormerlo/pilates-sistema/internal/domain/appointment"
	"github.com/Pastormerlo/pilates-sistema/internal/httperr"
	"github.com/Pastormerlo/pilates-sistema/internal/models"
)

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

// --------------------------------------------------
// Studio
// --------------------------------------------------

func (r *AppointmentGormRepository) GetStudioByID(
	ctx context.Context,
	id uint,
) (*models.Studio, error) {

	var studio models.Studio
	if err := r.db.WithContext(ctx).First(&studio, id).Error; err != nil {
		return nil, err
	}
	return &studio, nil
}

// --------------------------------------------------
// Appointments (lectura)
// --------------------------------------------------

func (r *AppointmentGormRepository) FetchAppointments(
	ctx context.Context,
	studioID uint,
	from time.Time,
	to time.Time,
) ([]models.Appointment, error) {

	var aps []models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Client").
		Where(
			"studio_id = ? AND date >= ? AND date < ?",
			studioID, from, to,
		).
		Order("hour ASC").
		Find(&aps).Error; err != nil {
		return nil, err
	}

	return aps, nil
}

func (r *AppointmentGormRepository) GetAppointment(
	ctx context.Context,
	studioID uint,
	id uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Client").
		Where("id = ? AND studio_id = ?", id, studioID).
		First(&ap).Error; err != nil {
		return nil, err
	}

	return &ap, nil
}

// --------------------------------------------------
// Appointments (escritura)
// --------------------------------------------------

func (r *AppointmentGormRepository) InsertAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {

	if err := r.db.WithContext(ctx).Create(ap).Error; err != nil {
		if httperr.IsForeignKeyViolation(err) {
			return httperr.ErrBusiness(httperr.CodeClientNotFound)
		}
		return err
	}
	return nil
}

func (r *AppointmentGormRepository) UpdateAppointmentSlot(
	ctx context.Context,
	studioID uint,
	id uint,
	date time.Time,
	hour int,
) (int64, error) {

	res := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("id = ? AND studio_id = ?", id, studioID).
		Updates(map[string]any{
			"date": date,
			"hour": hour,
		})

	return res.RowsAffected, res.Error
}

func (r *AppointmentGormRepository) DeleteAppointment(
	ctx context.Context,
	studioID uint,
	id uint,
) (int64, error) {

	res := r.db.WithContext(ctx).
		Where("id = ? AND studio_id = ?", id, studioID).
		Delete(&models.Appointment{})

	return res.RowsAffected, res.Error
}

// Compile-time check
var _ domain.Repository = (*AppointmentGormRepository)(nil)
