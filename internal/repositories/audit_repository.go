package repositories

import (
	"context"

	"gorm.io/gorm"

	"polisure/internal/models/db_models"
)

type AuditRepository interface {
	Insert(ctx context.Context, entry *db_models.AuditLog) error
	ListRecent(ctx context.Context, limit int) ([]db_models.AuditLog, error)
}

type auditRepository struct {
	db *gorm.DB
}

func NewAuditRepository(db *gorm.DB) AuditRepository {
	return &auditRepository{db: db}
}

func (r *auditRepository) Insert(ctx context.Context, entry *db_models.AuditLog) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *auditRepository) ListRecent(ctx context.Context, limit int) ([]db_models.AuditLog, error) {
	var entries []db_models.AuditLog
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&entries).Error
	return entries, err
}
