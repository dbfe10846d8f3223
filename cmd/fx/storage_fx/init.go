package storage_fx

import (
	"context"

	"go.uber.org/fx"

	"polisure/internal/infra"
	"polisure/pkg/logger"
)

var Module = fx.Provide(provideObjectStore)

func provideObjectStore(log *logger.Logger) (infra.ObjectStore, error) {
	return infra.NewBucketStore(context.Background(), log, infra.BucketConfigFromEnv())
}
