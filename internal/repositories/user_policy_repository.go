package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"polisure/internal/models/db_models"
)

type UserPolicyRepository interface {
	// CreateWithPayment persists the subscription and its payment inside one
	// database transaction.
	CreateWithPayment(ctx context.Context, policy *db_models.UserPolicy, payment *db_models.Payment) error
	FindByID(ctx context.Context, id uuid.UUID) (*db_models.UserPolicy, error)
	FindOwnedActive(ctx context.Context, id, userID uuid.UUID) (*db_models.UserPolicy, error)
	HasOpenSubscription(ctx context.Context, userID, productID uuid.UUID) (bool, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]db_models.UserPolicy, error)
	// Cancel flips an owned ACTIVE subscription to CANCELLED. Returns nil
	// when no matching active subscription exists.
	Cancel(ctx context.Context, id, userID uuid.UUID) (*db_models.UserPolicy, error)
}

type userPolicyRepository struct {
	db *gorm.DB
}

func NewUserPolicyRepository(db *gorm.DB) UserPolicyRepository {
	return &userPolicyRepository{db: db}
}

func (r *userPolicyRepository) CreateWithPayment(ctx context.Context, policy *db_models.UserPolicy, payment *db_models.Payment) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(policy).Error; err != nil {
			return err
		}
		payment.UserPolicyID = policy.ID
		return tx.Create(payment).Error
	})
}

func (r *userPolicyRepository) FindByID(ctx context.Context, id uuid.UUID) (*db_models.UserPolicy, error) {
	var policy db_models.UserPolicy
	err := r.db.WithContext(ctx).First(&policy, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &policy, nil
}

func (r *userPolicyRepository) FindOwnedActive(ctx context.Context, id, userID uuid.UUID) (*db_models.UserPolicy, error) {
	var policy db_models.UserPolicy
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ? AND status = ?", id, userID, db_models.UserPolicyActive).
		First(&policy).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &policy, nil
}

func (r *userPolicyRepository) HasOpenSubscription(ctx context.Context, userID, productID uuid.UUID) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&db_models.UserPolicy{}).
		Where("user_id = ? AND policy_product_id = ? AND status IN ?",
			userID, productID,
			[]db_models.UserPolicyStatus{db_models.UserPolicyActive, db_models.UserPolicyPending}).
		Count(&n).Error
	return n > 0, err
}

func (r *userPolicyRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]db_models.UserPolicy, error) {
	var policies []db_models.UserPolicy
	err := r.db.WithContext(ctx).
		Preload("PolicyProduct").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&policies).Error
	return policies, err
}

func (r *userPolicyRepository) Cancel(ctx context.Context, id, userID uuid.UUID) (*db_models.UserPolicy, error) {
	var policy db_models.UserPolicy
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ? AND status = ?", id, userID, db_models.UserPolicyActive).
		First(&policy).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	policy.Status = db_models.UserPolicyCancelled
	if err := r.db.WithContext(ctx).Save(&policy).Error; err != nil {
		return nil, err
	}
	return &policy, nil
}
