package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"polisure/internal/models/db_models"
)

type PolicyProductRepository interface {
	Insert(ctx context.Context, product *db_models.PolicyProduct) error
	Update(ctx context.Context, product *db_models.PolicyProduct) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*db_models.PolicyProduct, error)
	FindByCode(ctx context.Context, code string) (*db_models.PolicyProduct, error)
	ListAll(ctx context.Context) ([]db_models.PolicyProduct, error)
	CountAll(ctx context.Context) (int64, error)
}

type policyProductRepository struct {
	db *gorm.DB
}

func NewPolicyProductRepository(db *gorm.DB) PolicyProductRepository {
	return &policyProductRepository{db: db}
}

func (r *policyProductRepository) Insert(ctx context.Context, product *db_models.PolicyProduct) error {
	return r.db.WithContext(ctx).Create(product).Error
}

func (r *policyProductRepository) Update(ctx context.Context, product *db_models.PolicyProduct) error {
	return r.db.WithContext(ctx).Save(product).Error
}

func (r *policyProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&db_models.PolicyProduct{}, "id = ?", id).Error
}

func (r *policyProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*db_models.PolicyProduct, error) {
	var product db_models.PolicyProduct
	err := r.db.WithContext(ctx).First(&product, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &product, nil
}

func (r *policyProductRepository) FindByCode(ctx context.Context, code string) (*db_models.PolicyProduct, error) {
	var product db_models.PolicyProduct
	err := r.db.WithContext(ctx).First(&product, "code = ?", code).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &product, nil
}

func (r *policyProductRepository) ListAll(ctx context.Context) ([]db_models.PolicyProduct, error) {
	var products []db_models.PolicyProduct
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&products).Error
	return products, err
}

func (r *policyProductRepository) CountAll(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&db_models.PolicyProduct{}).Count(&n).Error
	return n, err
}
