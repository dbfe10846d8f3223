package catalog_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"polisure/internal/infra"
	"polisure/internal/repositories"
	"polisure/internal/services"
	"polisure/pkg/logger"
)

var Module = fx.Provide(
	provideProductRepo, provideCatalogService)

func provideProductRepo(db *gorm.DB) repositories.PolicyProductRepository {
	return repositories.NewPolicyProductRepository(db)
}

func provideCatalogService(
	products repositories.PolicyProductRepository,
	store infra.ObjectStore,
	audit services.AuditRecorder,
	log *logger.Logger,
) services.CatalogServiceInterface {
	return services.NewCatalogService(products, store, audit, log)
}
