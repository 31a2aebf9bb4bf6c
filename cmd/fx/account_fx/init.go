package account_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"nestling/internal/repositories"
	"nestling/internal/services"
	"nestling/pkg/memcache"
)

var Module = fx.Provide(
	provideParentRepo,
	provideParentService,
	provideAuthService)

func provideParentRepo(db *gorm.DB) repositories.ParentRepository {
	return repositories.NewParentRepository(db)
}

func provideParentService(
	parentRepo repositories.ParentRepository,
	guard services.GuardianServiceInterface,
	mail services.MailServiceInterface,
) services.ParentServiceInterface {
	return services.NewParentService(parentRepo, guard, mail)
}

func provideAuthService(
	parentRepo repositories.ParentRepository,
	guard services.GuardianServiceInterface,
	resetTokens memcache.ResetTokenStore,
	mail services.MailServiceInterface,
) services.AuthServiceInterface {
	return services.NewAuthService(parentRepo, guard, resetTokens, mail)
}
