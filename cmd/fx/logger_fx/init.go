package logger_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"progulka/internal/infra"
)

var Module = fx.Provide(
	provideLogger)

func provideLogger() *zap.SugaredLogger {
	return infra.NewLogger()
}
