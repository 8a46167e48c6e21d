package models

import "time"

type Payment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	StudioID uint `gorm:"index" json:"studio_id"`

	ClientID uint   `json:"client_id"`
	Client   Client `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"client"`

	Amount  float64 `gorm:"type:numeric(12,2)" json:"amount"`
	Concept string  `gorm:"size:150" json:"concept"`
	Status  string  `gorm:"size:20;default:'pagado'" json:"status"`

	// Fecha del pago; por defecto el día de alta del registro.
	Date time.Time `gorm:"type:date" json:"date"`

	CreatedAt time.Time `json:"created_at"`
}
