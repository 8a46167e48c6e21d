package models

import "time"

// Alumno del estudio, sin login propio
type Client struct {
	ID       uint `gorm:"primaryKey" json:"id"`
	StudioID uint `json:"studio_id"`

	Name    string `gorm:"size:100;not null" json:"name"`
	Surname string `gorm:"size:100" json:"surname"`
	Phone   string `gorm:"size:20" json:"phone"`
	Email   string `gorm:"size:100" json:"email"`

	MedicalNotes string `gorm:"size:500" json:"medical_notes"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// DisplayName arma el nombre que muestra la grilla.
func (c *Client) DisplayName() string {
	if c.Surname == "" {
		return c.Name
	}
	return c.Name + " " + c.Surname
}
