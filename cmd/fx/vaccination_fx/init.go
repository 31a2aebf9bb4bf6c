package vaccination_fx

import (
	"go.uber.org/fx"

	"nestling/internal/models/db_models"
	"nestling/internal/repositories"
	"nestling/internal/services"
)

var Module = fx.Provide(
	repositories.NewVaccinationRepository,
	repositories.NewVaccinationSymptomRepository,
	provideVaccinationService)

func provideVaccinationService(
	repo repositories.RecordRepository[db_models.Vaccination],
	vaccineRepo repositories.VaccineRepository,
	symptomRepo repositories.CatalogRepository[db_models.Symptom],
	linkRepo repositories.RecordRepository[db_models.VaccinationSymptom],
	guard services.GuardianServiceInterface,
) services.VaccinationServiceInterface {
	return services.NewVaccinationService(repo, vaccineRepo, symptomRepo, linkRepo, guard)
}
