package handlers

import (
	"encoding/json"

	"gorm.io/gorm"

	"github.com/Pastormerlo/pilates-sistema/internal/models"
)

// writeAudit registra sincrónico desde handlers que hablan directo
// con la base; los usecases de agenda usan el dispatcher asíncrono.
func writeAudit(
	db *gorm.DB,
	studioID uint,
	userID *uint,
	action string,
	entity string,
	entityID *uint,
	meta any,
) {

	var payload string
	if meta != nil {
		if b, err := json.Marshal(meta); err == nil {
			payload = string(b)
		}
	}

	entry := models.AuditLog{
		StudioID: studioID,
		UserID:   userID,
		Action:   action,
		Entity:   entity,
		EntityID: entityID,
		Metadata: payload,
	}

	db.Create(&entry)
}
