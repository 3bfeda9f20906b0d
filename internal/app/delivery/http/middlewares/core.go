package middlewares

import (
	"timetable-service/internal/app/config"

	"go.uber.org/zap"
)

type Middlewares struct {
	InternalConfig *config.InternalConfig
	Log            *zap.Logger
}

func NewMiddlewares(internalConfig *config.InternalConfig, log *zap.Logger) *Middlewares {
	return &Middlewares{
		InternalConfig: internalConfig,
		Log:            log,
	}
}
