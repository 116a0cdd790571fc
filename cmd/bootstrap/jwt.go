package bootstrap

import (
	"paseos-api/internal/pkg/clock"
	"paseos-api/internal/pkg/config"
	"paseos-api/internal/pkg/jwt"

	"go.uber.org/fx"
)

var JWTModule = fx.Module("jwt",
	fx.Provide(
		NewJWTService,
	),
)

func NewJWTService(cfg config.Config, clk clock.Clock) (*jwt.Service, error) {
	access, refresh, err := cfg.JWT.Durations()
	if err != nil {
		return nil, err
	}
	return jwt.NewServiceWithClock(cfg.JWT.Secret, access, refresh, clk), nil
}
