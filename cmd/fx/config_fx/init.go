package config_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"shinkai/internal/config"
	"shinkai/internal/infra"
	"shinkai/pkg/utils"
)

var Module = fx.Provide(
	config.Load,
	infra.NewLogger,
	provideTokenIssuer,
)

func provideTokenIssuer(cfg *config.Config, logger *zap.Logger) *utils.TokenIssuer {
	if cfg.Auth.JWTSecret == config.DefaultJWTSecret && !cfg.IsDevelopment() {
		logger.Warn("JWT_SECRET is not set, tokens are signed with the development secret")
	}
	return utils.NewTokenIssuer(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
}
