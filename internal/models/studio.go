package models

import "time"

type Studio struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	Name    string `gorm:"size:100;not null" json:"name"`
	Slug    string `gorm:"size:100;uniqueIndex;not null" json:"slug"`
	Phone   string `gorm:"size:20" json:"phone"`
	Address string `gorm:"size:255" json:"address"`

	Timezone string `gorm:"size:60" json:"timezone"`
	LogoURL  string `gorm:"size:255" json:"logo_url"`

	// Límites de la grilla semanal: horas enteras inclusive y
	// cantidad de días operativos desde el lunes (5 o 6).
	FirstHour    int `gorm:"default:8" json:"first_hour"`
	LastHour     int `gorm:"default:21" json:"last_hour"`
	ScheduleDays int `gorm:"default:6" json:"schedule_days"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
