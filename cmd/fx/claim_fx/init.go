package claim_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"polisure/internal/infra"
	"polisure/internal/repositories"
	"polisure/internal/services"
	"polisure/pkg/logger"
)

var Module = fx.Provide(
	provideClaimRepo, provideClaimService)

func provideClaimRepo(db *gorm.DB) repositories.ClaimRepository {
	return repositories.NewClaimRepository(db)
}

func provideClaimService(
	users repositories.UserRepository,
	policies repositories.UserPolicyRepository,
	claims repositories.ClaimRepository,
	store infra.ObjectStore,
	audit services.AuditRecorder,
	notifier services.Notifier,
	log *logger.Logger,
) services.ClaimServiceInterface {
	return services.NewClaimService(users, policies, claims, store, audit, notifier, log)
}
