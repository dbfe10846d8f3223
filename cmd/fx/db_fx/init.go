package db_fx

import (
	"context"

	"go.uber.org/fx"
	"gorm.io/gorm"

	"polisure/internal/infra"
	"polisure/pkg/logger"
)

var Module = fx.Provide(provideDB)

func provideDB(lc fx.Lifecycle, log *logger.Logger) (*gorm.DB, error) {
	db, err := infra.InitPostgresql(log)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			infra.ClosePostgresql(db, log)
			return nil
		},
	})
	return db, nil
}
