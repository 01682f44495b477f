package controllers_fx

import (
	"go.uber.org/fx"

	"shinkai/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewHealthController),
	fx.Provide(controllers.NewRegionController),
	fx.Provide(controllers.NewTagController),
	fx.Provide(controllers.NewItineraryController),
	fx.Provide(controllers.NewJourneyController),
	fx.Provide(controllers.NewAccountController),
)
