package mail_fx

import (
	"go.uber.org/fx"

	"nestling/internal/services"
	"nestling/pkg/config"
)

var Module = fx.Provide(provideMailService)

func provideMailService(cfg *config.Config) services.MailServiceInterface {
	return services.NewMailService(cfg.SMTP)
}
