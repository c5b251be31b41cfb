package logger

import (
	"go.uber.org/zap"

	"github.com/quran-quest/quran-quest-api/pkg/config"
)

func New(cfg *config.Config) (*zap.Logger, error) {
	if cfg.AppEnv == "production" {
		return zap.NewProduction()
	}

	return zap.NewDevelopment()
}
