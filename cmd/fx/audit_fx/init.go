package audit_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"polisure/internal/repositories"
	"polisure/internal/services"
)

var Module = fx.Provide(
	provideAuditRepo, provideAuditRecorder)

func provideAuditRepo(db *gorm.DB) repositories.AuditRepository {
	return repositories.NewAuditRepository(db)
}

func provideAuditRecorder(repo repositories.AuditRepository) services.AuditRecorder {
	return services.NewAuditService(repo)
}
