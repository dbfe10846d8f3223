package services

import (
	"context"

	"github.com/google/uuid"

	"polisure/internal/infra"
	"polisure/internal/models/db_models"
	"polisure/internal/models/request_models"
	"polisure/internal/repositories"
	"polisure/pkg/logger"
	"polisure/pkg/utils"
)

type CatalogServiceInterface interface {
	ListProducts(ctx context.Context) ([]db_models.PolicyProduct, error)
	GetProduct(ctx context.Context, id uuid.UUID) (*db_models.PolicyProduct, error)
	CreateProduct(ctx context.Context, actorID uuid.UUID, req request_models.CreatePolicyProductRequest) (*db_models.PolicyProduct, error)
	UpdateProduct(ctx context.Context, actorID, id uuid.UUID, req request_models.UpdatePolicyProductRequest) (*db_models.PolicyProduct, error)
	DeleteProduct(ctx context.Context, actorID, id uuid.UUID) error
}

type catalogService struct {
	products repositories.PolicyProductRepository
	store    infra.ObjectStore
	audit    AuditRecorder
	log      *logger.Logger
}

func NewCatalogService(
	products repositories.PolicyProductRepository,
	store infra.ObjectStore,
	audit AuditRecorder,
	log *logger.Logger,
) CatalogServiceInterface {
	return &catalogService{
		products: products,
		store:    store,
		audit:    audit,
		log:      log.With("service", "CatalogService"),
	}
}

func (s *catalogService) ListProducts(ctx context.Context) ([]db_models.PolicyProduct, error) {
	products, err := s.products.ListAll(ctx)
	if err != nil {
		return nil, utils.Infrastructure("failed to list policies", err)
	}
	return products, nil
}

func (s *catalogService) GetProduct(ctx context.Context, id uuid.UUID) (*db_models.PolicyProduct, error) {
	product, err := s.products.FindByID(ctx, id)
	if err != nil {
		return nil, utils.Infrastructure("failed to load policy", err)
	}
	if product == nil {
		return nil, utils.NotFound("Policy not found")
	}
	return product, nil
}

func (s *catalogService) CreateProduct(ctx context.Context, actorID uuid.UUID, req request_models.CreatePolicyProductRequest) (*db_models.PolicyProduct, error) {
	existing, err := s.products.FindByCode(ctx, req.Code)
	if err != nil {
		return nil, utils.Infrastructure("failed to look up policy code", err)
	}
	if existing != nil {
		return nil, utils.Validation("Policy with this code already exists")
	}
	if req.Premium <= 0 {
		return nil, utils.Validation("Premium must be greater than zero")
	}
	if req.TermMonths <= 0 {
		return nil, utils.Validation("Term must be at least one month")
	}

	product := &db_models.PolicyProduct{
		Code:          req.Code,
		Title:         req.Title,
		Description:   req.Description,
		Premium:       req.Premium,
		TermMonths:    req.TermMonths,
		MinSumInsured: req.MinSumInsured,
		ImageURL:      normalizeImageRef(ctx, s.store, s.log, "policies", req.Image),
	}
	if err := s.products.Insert(ctx, product); err != nil {
		return nil, utils.Infrastructure("failed to create policy", err)
	}

	if err := s.audit.Record(ctx, "CREATE_POLICY", actorID, map[string]any{
		"policyId": product.ID.String(),
		"code":     product.Code,
		"title":    product.Title,
	}); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *catalogService) UpdateProduct(ctx context.Context, actorID, id uuid.UUID, req request_models.UpdatePolicyProductRequest) (*db_models.PolicyProduct, error) {
	product, err := s.products.FindByID(ctx, id)
	if err != nil {
		return nil, utils.Infrastructure("failed to load policy", err)
	}
	if product == nil {
		return nil, utils.NotFound("Policy not found")
	}

	if req.Title != nil {
		product.Title = *req.Title
	}
	if req.Description != nil {
		product.Description = *req.Description
	}
	if req.Premium != nil {
		if *req.Premium <= 0 {
			return nil, utils.Validation("Premium must be greater than zero")
		}
		product.Premium = *req.Premium
	}
	if req.TermMonths != nil {
		if *req.TermMonths <= 0 {
			return nil, utils.Validation("Term must be at least one month")
		}
		product.TermMonths = *req.TermMonths
	}
	if req.MinSumInsured != nil {
		product.MinSumInsured = *req.MinSumInsured
	}
	if req.Image != nil && *req.Image != "" {
		product.ImageURL = normalizeImageRef(ctx, s.store, s.log, "policies", *req.Image)
	}

	if err := s.products.Update(ctx, product); err != nil {
		return nil, utils.Infrastructure("failed to update policy", err)
	}

	if err := s.audit.Record(ctx, "UPDATE_POLICY", actorID, map[string]any{
		"policyId": product.ID.String(),
		"code":     product.Code,
	}); err != nil {
		return nil, err
	}
	return product, nil
}

// DeleteProduct soft-deletes a catalog entry. Existing subscriptions keep
// their snapshotted terms and are unaffected.
func (s *catalogService) DeleteProduct(ctx context.Context, actorID, id uuid.UUID) error {
	product, err := s.products.FindByID(ctx, id)
	if err != nil {
		return utils.Infrastructure("failed to load policy", err)
	}
	if product == nil {
		return utils.NotFound("Policy not found")
	}

	if err := s.products.Delete(ctx, id); err != nil {
		return utils.Infrastructure("failed to delete policy", err)
	}

	return s.audit.Record(ctx, "DELETE_POLICY", actorID, map[string]any{
		"policyId": product.ID.String(),
		"code":     product.Code,
	})
}
