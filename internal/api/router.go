package api

import (
	"github.com/gin-gonic/gin"

	"shinkai/internal/api/controllers"
	"shinkai/internal/config"
	"shinkai/internal/metrics"
	"shinkai/pkg/middleware"
	"shinkai/pkg/utils"
)

type Controllers struct {
	Health    *controllers.HealthController
	Regions   *controllers.RegionController
	Tags      *controllers.TagController
	Itinerary *controllers.ItineraryController
	Journeys  *controllers.JourneyController
	Accounts  *controllers.AccountController
}

func NewRouter(cfg *config.Config, tokens *utils.TokenIssuer, ctrl Controllers) *gin.Engine {
	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.CORSMiddleware(cfg.Server.CorsOrigins))
	r.Use(middleware.MetricsMiddleware())

	RegisterRoutes(r, tokens, ctrl)
	return r
}

func RegisterRoutes(r *gin.Engine, tokens *utils.TokenIssuer, ctrl Controllers) {
	r.GET("/health", ctrl.Health.Health)
	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	regions := r.Group("/regions")
	regions.GET("", ctrl.Regions.ListRegions)
	regions.GET("/:region", ctrl.Regions.GetRegion)
	regions.GET("/:region/spots", ctrl.Regions.ListSpots)

	r.GET("/seasons/:season", ctrl.Regions.RecommendForSeason)
	r.GET("/tags/priorities", ctrl.Tags.ListTagPriorities)

	itineraries := r.Group("/itineraries")
	itineraries.POST("", ctrl.Itinerary.Generate)
	itineraries.GET("/:region/summary", ctrl.Itinerary.Summary)

	accounts := r.Group("/accounts")
	accounts.POST("/register", ctrl.Accounts.Register)
	accounts.POST("/login", ctrl.Accounts.Login)

	journeys := r.Group("/journeys", middleware.JWTAuthMiddleware(tokens))
	journeys.POST("", ctrl.Journeys.SaveJourney)
	journeys.GET("", ctrl.Journeys.ListJourneys)
	journeys.GET("/:id", ctrl.Journeys.GetJourney)
	journeys.DELETE("/:id", ctrl.Journeys.DeleteJourney)
}
