package audit

import (
	"encoding/json"

	"gorm.io/gorm"

	"github.com/northlightstudio/studio-booking/internal/models"
)

// Sink receives audit entries. The gorm-backed Logger is the production
// sink; tests swap in their own.
type Sink interface {
	Log(action, entity string, entityID *uint, metadata any) error
}

type Logger struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Logger {
	return &Logger{db: db}
}

func (l *Logger) Log(
	action string,
	entity string,
	entityID *uint,
	metadata any,
) error {

	var metaJSON string
	if metadata != nil {
		if b, err := json.Marshal(metadata); err == nil {
			metaJSON = string(b)
		}
	}

	entry := models.AuditLog{
		Action:   action,
		Entity:   entity,
		EntityID: entityID,
		Metadata: metaJSON,
	}

	return l.db.Create(&entry).Error
}

var _ Sink = (*Logger)(nil)
