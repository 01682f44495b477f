package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"

	"shinkai/cmd/fx/account_fx"
	"shinkai/cmd/fx/cache_fx"
	"shinkai/cmd/fx/config_fx"
	"shinkai/cmd/fx/controllers_fx"
	"shinkai/cmd/fx/db_fx"
	"shinkai/cmd/fx/itinerary_fx"
	"shinkai/cmd/fx/journey_fx"
	"shinkai/cmd/fx/region_fx"
	"shinkai/cmd/fx/tag_fx"
	"shinkai/internal/api"
	"shinkai/internal/api/controllers"
	"shinkai/internal/config"
	"shinkai/pkg/utils"
)

func main() {
	app := fx.New(
		fx.WithLogger(func(logger *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: logger}
		}),
		config_fx.Module,
		db_fx.Module,
		cache_fx.Module,
		region_fx.Module,
		tag_fx.Module,
		itinerary_fx.Module,
		journey_fx.Module,
		account_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, cfg *config.Config, engine *gin.Engine, logger *zap.Logger) {
	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ln, err := net.Listen("tcp", srv.Addr)
			if err != nil {
				return err
			}
			logger.Info("Starting HTTP server", zap.String("addr", srv.Addr))
			go func() {
				if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
					logger.Error("HTTP server stopped", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("Stopping HTTP server")
			return srv.Shutdown(ctx)
		},
	})
}

type routerParams struct {
	fx.In

	Config *config.Config
	Tokens *utils.TokenIssuer

	Health    *controllers.HealthController
	Regions   *controllers.RegionController
	Tags      *controllers.TagController
	Itinerary *controllers.ItineraryController
	Journeys  *controllers.JourneyController
	Accounts  *controllers.AccountController
}

func ProvideRouter(p routerParams) *gin.Engine {
	return api.NewRouter(p.Config, p.Tokens, api.Controllers{
		Health:    p.Health,
		Regions:   p.Regions,
		Tags:      p.Tags,
		Itinerary: p.Itinerary,
		Journeys:  p.Journeys,
		Accounts:  p.Accounts,
	})
}
