package db_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"nestling/internal/infra"
	"nestling/pkg/config"
)

var Module = fx.Provide(
	config.Load,
	provideDB)

func provideDB(cfg *config.Config) *gorm.DB {
	return infra.InitPostgresql(cfg)
}
