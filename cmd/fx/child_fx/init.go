package child_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"nestling/internal/repositories"
	"nestling/internal/services"
)

var Module = fx.Provide(provideChildRepo, provideChildService)

func provideChildRepo(db *gorm.DB) repositories.ChildRepository {
	return repositories.NewChildRepository(db)
}

func provideChildService(
	childRepo repositories.ChildRepository,
	vaccineRepo repositories.VaccineRepository,
	guard services.GuardianServiceInterface,
) services.ChildServiceInterface {
	return services.NewChildService(childRepo, vaccineRepo, guard)
}
