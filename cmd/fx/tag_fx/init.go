package tag_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"shinkai/internal/repositories"
	"shinkai/internal/services"
)

var Module = fx.Provide(provideTagRepo, services.NewTagService)

func provideTagRepo(db *gorm.DB) repositories.TagRepositoryInterface {
	return repositories.NewTagRepository(db)
}
