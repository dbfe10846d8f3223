package policy_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"polisure/internal/repositories"
	"polisure/internal/services"
	"polisure/pkg/logger"
)

var Module = fx.Provide(
	provideUserPolicyRepo, providePaymentRepo, providePolicyService)

func provideUserPolicyRepo(db *gorm.DB) repositories.UserPolicyRepository {
	return repositories.NewUserPolicyRepository(db)
}

func providePaymentRepo(db *gorm.DB) repositories.PaymentRepository {
	return repositories.NewPaymentRepository(db)
}

func providePolicyService(
	users repositories.UserRepository,
	products repositories.PolicyProductRepository,
	policies repositories.UserPolicyRepository,
	payments repositories.PaymentRepository,
	audit services.AuditRecorder,
	notifier services.Notifier,
	log *logger.Logger,
) services.PolicyServiceInterface {
	return services.NewPolicyService(users, products, policies, payments, audit, notifier, log)
}
