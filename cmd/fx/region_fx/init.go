package region_fx

import (
	"context"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"shinkai/internal/config"
	"shinkai/internal/infra"
	"shinkai/internal/repositories"
	"shinkai/internal/services"
)

var Module = fx.Options(
	fx.Provide(
		provideRegionRepo,
		provideSpotRepo,
		services.NewRegionService,
		services.NewSpotService,
	),
	fx.Invoke(seedCatalog),
)

func provideRegionRepo(db *gorm.DB) repositories.RegionRepository {
	return repositories.NewRegionRepository(db)
}

func provideSpotRepo(db *gorm.DB) repositories.SpotRepository {
	return repositories.NewSpotRepository(db)
}

func seedCatalog(lc fx.Lifecycle, cfg *config.Config, repo repositories.RegionRepository, logger *zap.Logger) {
	if !cfg.Database.SeedCatalog {
		return
	}
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return infra.SeedCatalog(ctx, repo, logger)
		},
	})
}
