package records_fx

import (
	"go.uber.org/fx"

	"nestling/internal/models/db_models"
	"nestling/internal/repositories"
	"nestling/internal/services"
)

// Module wires the per-child record kinds that need nothing beyond their
// repository and the guardianship check.
var Module = fx.Provide(
	repositories.NewGrowthRepository,
	repositories.NewSleepRepository,
	repositories.NewBottleRepository,
	repositories.NewNursingRepository,
	repositories.NewSolidsRepository,
	provideGrowthService,
	provideSleepService,
	provideBottleService,
	provideNursingService,
	provideSolidsService)

func provideGrowthService(
	repo repositories.RecordRepository[db_models.Growth],
	guard services.GuardianServiceInterface,
) services.GrowthServiceInterface {
	return services.NewGrowthService(repo, guard)
}

func provideSleepService(
	repo repositories.RecordRepository[db_models.Sleep],
	guard services.GuardianServiceInterface,
) services.SleepServiceInterface {
	return services.NewSleepService(repo, guard)
}

func provideBottleService(
	repo repositories.RecordRepository[db_models.Bottle],
	milkTypeRepo repositories.CatalogRepository[db_models.MilkType],
	guard services.GuardianServiceInterface,
) services.BottleServiceInterface {
	return services.NewBottleService(repo, milkTypeRepo, guard)
}

func provideNursingService(
	repo repositories.RecordRepository[db_models.Nursing],
	guard services.GuardianServiceInterface,
) services.NursingServiceInterface {
	return services.NewNursingService(repo, guard)
}

func provideSolidsService(
	repo repositories.RecordRepository[db_models.Solids],
	itemRepo repositories.CategoryItemRepository,
	guard services.GuardianServiceInterface,
) services.SolidsServiceInterface {
	return services.NewSolidsService(repo, itemRepo, guard)
}
