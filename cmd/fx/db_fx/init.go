package db_fx

import (
	"context"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"shinkai/internal/config"
	"shinkai/internal/infra"
)

var Module = fx.Options(
	fx.Provide(provideDB),
	fx.Invoke(registerClose),
)

func provideDB(cfg *config.Config, logger *zap.Logger) (*gorm.DB, error) {
	return infra.InitPostgresql(cfg, logger)
}

func registerClose(lc fx.Lifecycle, db *gorm.DB, logger *zap.Logger) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			infra.ClosePostgresql(db, logger)
			return nil
		},
	})
}
