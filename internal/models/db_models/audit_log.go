package db_models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// AuditLog is a write-only trail of every mutating action. Nothing in the
// workflow reads it back.
type AuditLog struct {
	BaseModel
	Action  string         `gorm:"not null;index" json:"action"`
	ActorID uuid.UUID      `gorm:"index" json:"actorId"`
	Details datatypes.JSON `gorm:"type:jsonb;default:'{}'" json:"details"`
}
