package db

import (
	"log"
	"time"

	"github.com/Pastormerlo/pilates-sistema/internal/config"
	"github.com/Pastormerlo/pilates-sistema/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func NewDB(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("failed to get sql.DB: %v", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.AutoMigrate(
		&models.Studio{},
		&models.User{},
		&models.Client{},
		&models.Appointment{},
		&models.Payment{},
		&models.AuditLog{},
	); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	db.Exec(`
        UPDATE studios
        SET timezone = 'America/Argentina/Buenos_Aires'
        WHERE timezone IS NULL OR timezone = ''
    `)

	db.Exec(`
        UPDATE studios
        SET first_hour = 8, last_hour = 21, schedule_days = 6
        WHERE last_hour IS NULL OR last_hour = 0
    `)

	return db
}
