package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"polisure/internal/models/db_models"
)

type PaymentRepository interface {
	Insert(ctx context.Context, payment *db_models.Payment) error
	ExistsByReference(ctx context.Context, reference string) (bool, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]db_models.Payment, error)
}

type paymentRepository struct {
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) PaymentRepository {
	return &paymentRepository{db: db}
}

func (r *paymentRepository) Insert(ctx context.Context, payment *db_models.Payment) error {
	return r.db.WithContext(ctx).Create(payment).Error
}

func (r *paymentRepository) ExistsByReference(ctx context.Context, reference string) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&db_models.Payment{}).
		Where("reference = ?", reference).
		Count(&n).Error
	return n > 0, err
}

func (r *paymentRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]db_models.Payment, error) {
	var payments []db_models.Payment
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&payments).Error
	return payments, err
}
