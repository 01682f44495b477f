package journey_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"shinkai/internal/repositories"
	"shinkai/internal/services"
)

var Module = fx.Provide(provideJourneyRepo, services.NewJourneyService)

func provideJourneyRepo(db *gorm.DB) repositories.JourneyRepository {
	return repositories.NewJourneyRepository(db)
}
