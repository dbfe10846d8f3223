package logger_fx

import (
	"os"

	"go.uber.org/fx"

	"polisure/pkg/logger"
)

var Module = fx.Provide(provideLogger)

func provideLogger() (*logger.Logger, error) {
	return logger.New(os.Getenv("APP_MODE"))
}
