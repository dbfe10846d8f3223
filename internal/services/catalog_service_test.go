package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"polisure/internal/models/request_models"
	"polisure/pkg/logger"
	"polisure/pkg/utils"
)

func newCatalogService(t *testing.T) (CatalogServiceInterface, *fakeProductRepo, *fakeAuditRepo) {
	t.Helper()
	products := newFakeProductRepo()
	audit := newFakeAuditRepo()
	svc := NewCatalogService(products, &fakeObjectStore{}, NewAuditService(audit), logger.NewNop())
	return svc, products, audit
}

func createReq() request_models.CreatePolicyProductRequest {
	return request_models.CreatePolicyProductRequest{
		Code:          "HEALTH-PLUS",
		Title:         "Health Plus",
		Description:   "Comprehensive health cover",
		Premium:       2400,
		TermMonths:    12,
		MinSumInsured: 100000,
		Image:         "data:image/png;base64,aGk=",
	}
}

func TestCatalogCRUD(t *testing.T) {
	ctx := context.Background()
	adminID := uuid.New()

	t.Run("create uploads the image and audits", func(t *testing.T) {
		svc, _, audit := newCatalogService(t)
		product, err := svc.CreateProduct(ctx, adminID, createReq())
		require.NoError(t, err)
		assert.Contains(t, product.ImageURL, "https://cdn.test/policies/")
		assert.Contains(t, audit.actions(), "CREATE_POLICY")
	})

	t.Run("duplicate code is rejected", func(t *testing.T) {
		svc, _, _ := newCatalogService(t)
		_, err := svc.CreateProduct(ctx, adminID, createReq())
		require.NoError(t, err)

		_, err = svc.CreateProduct(ctx, adminID, createReq())
		require.Error(t, err)
		assert.Equal(t, utils.KindValidation, utils.KindOf(err))
	})

	t.Run("update touches only the provided fields", func(t *testing.T) {
		svc, _, _ := newCatalogService(t)
		product, err := svc.CreateProduct(ctx, adminID, createReq())
		require.NoError(t, err)

		premium := 2600.0
		updated, err := svc.UpdateProduct(ctx, adminID, product.ID, request_models.UpdatePolicyProductRequest{
			Premium: &premium,
		})
		require.NoError(t, err)
		assert.Equal(t, 2600.0, updated.Premium)
		assert.Equal(t, product.Title, updated.Title)
		assert.Equal(t, product.Code, updated.Code)
	})

	t.Run("update rejects non-positive premium", func(t *testing.T) {
		svc, _, _ := newCatalogService(t)
		product, err := svc.CreateProduct(ctx, adminID, createReq())
		require.NoError(t, err)

		bad := -1.0
		_, err = svc.UpdateProduct(ctx, adminID, product.ID, request_models.UpdatePolicyProductRequest{Premium: &bad})
		require.Error(t, err)
		assert.Equal(t, utils.KindValidation, utils.KindOf(err))
	})

	t.Run("delete removes the product", func(t *testing.T) {
		svc, _, audit := newCatalogService(t)
		product, err := svc.CreateProduct(ctx, adminID, createReq())
		require.NoError(t, err)

		require.NoError(t, svc.DeleteProduct(ctx, adminID, product.ID))
		_, err = svc.GetProduct(ctx, product.ID)
		require.Error(t, err)
		assert.Equal(t, utils.KindNotFound, utils.KindOf(err))
		assert.Contains(t, audit.actions(), "DELETE_POLICY")
	})

	t.Run("delete of unknown product is not found", func(t *testing.T) {
		svc, _, _ := newCatalogService(t)
		err := svc.DeleteProduct(ctx, adminID, uuid.New())
		require.Error(t, err)
		assert.Equal(t, utils.KindNotFound, utils.KindOf(err))
	})
}
