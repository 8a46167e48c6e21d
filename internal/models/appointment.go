package models

import "time"

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	StudioID uint   `gorm:"index" json:"studio_id"`
	Studio   Studio `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	ClientID uint   `json:"client_id"`
	Client   Client `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"client"`

	// Fecha absoluta del turno. Los labels de día de semana se
	// resuelven a fecha antes de llegar acá.
	Date time.Time `gorm:"type:date;index" json:"date"`
	Hour int       `json:"hour"`

	// Repeticiones semanales pedidas al crear el turno.
	// Se guarda como dato, no se expande en registros.
	WeeklyRepeat int `gorm:"default:0" json:"weekly_repeat"`

	Notes string `gorm:"size:255" json:"notes"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
