package services

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"polisure/internal/models/db_models"
	"polisure/internal/repositories"
	"polisure/pkg/utils"
)

// AuditRecorder appends one trail entry per mutating action. Entries are
// written synchronously as part of the workflow.
type AuditRecorder interface {
	Record(ctx context.Context, action string, actorID uuid.UUID, details map[string]any) error
}

type auditService struct {
	repo repositories.AuditRepository
}

func NewAuditService(repo repositories.AuditRepository) AuditRecorder {
	return &auditService{repo: repo}
}

func (s *auditService) Record(ctx context.Context, action string, actorID uuid.UUID, details map[string]any) error {
	payload, err := json.Marshal(details)
	if err != nil {
		return utils.Infrastructure("failed to record audit entry", err)
	}

	entry := &db_models.AuditLog{
		Action:  action,
		ActorID: actorID,
		Details: datatypes.JSON(payload),
	}
	if err := s.repo.Insert(ctx, entry); err != nil {
		return utils.Infrastructure("failed to record audit entry", err)
	}
	return nil
}
