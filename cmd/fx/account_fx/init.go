package account_fx

import (
	"os"
	"time"

	"go.uber.org/fx"
	"gorm.io/gorm"

	"polisure/internal/infra"
	"polisure/internal/repositories"
	"polisure/internal/services"
	"polisure/pkg/logger"
	"polisure/pkg/utils"
)

var Module = fx.Provide(
	provideUserRepo, provideTokenManager, provideAccountService)

func provideUserRepo(db *gorm.DB) repositories.UserRepository {
	return repositories.NewUserRepository(db)
}

func provideTokenManager() *utils.TokenManager {
	ttl := 24 * time.Hour
	if v, err := time.ParseDuration(os.Getenv("JWT_TTL")); err == nil && v > 0 {
		ttl = v
	}
	return utils.NewTokenManager(os.Getenv("JWT_SECRET"), ttl)
}

func provideAccountService(
	users repositories.UserRepository,
	tokens *utils.TokenManager,
	store infra.ObjectStore,
	audit services.AuditRecorder,
	notifier services.Notifier,
	log *logger.Logger,
) services.AccountServiceInterface {
	return services.NewAccountService(users, tokens, store, audit, notifier, log)
}
