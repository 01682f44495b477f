package itinerary_fx

import (
	"go.uber.org/fx"

	"shinkai/internal/services"
	"shinkai/pkg/itinerary"
)

var Module = fx.Provide(
	itinerary.NewBuilder,
	services.NewItineraryService,
)
