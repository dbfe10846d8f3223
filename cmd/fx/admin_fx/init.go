package admin_fx

import (
	"go.uber.org/fx"

	"polisure/internal/repositories"
	"polisure/internal/services"
	"polisure/pkg/logger"
)

var Module = fx.Provide(provideAdminService)

func provideAdminService(
	users repositories.UserRepository,
	auditLog repositories.AuditRepository,
	audit services.AuditRecorder,
	notifier services.Notifier,
	log *logger.Logger,
) services.AdminServiceInterface {
	return services.NewAdminService(users, auditLog, audit, notifier, log)
}
