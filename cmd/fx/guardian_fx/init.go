package guardian_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"nestling/internal/repositories"
	"nestling/internal/services"
)

var Module = fx.Provide(provideParentChildRepo, provideGuardianService)

func provideParentChildRepo(db *gorm.DB) repositories.ParentChildRepository {
	return repositories.NewParentChildRepository(db)
}

func provideGuardianService(relationRepo repositories.ParentChildRepository) services.GuardianServiceInterface {
	return services.NewGuardianService(relationRepo)
}
