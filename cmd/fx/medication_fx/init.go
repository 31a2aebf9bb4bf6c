package medication_fx

import (
	"go.uber.org/fx"

	"nestling/internal/models/db_models"
	"nestling/internal/repositories"
	"nestling/internal/services"
)

var Module = fx.Provide(
	repositories.NewMedicationRepository,
	repositories.NewMedicationSlotRepository,
	provideMedicationService,
	provideMedicationSlotService)

func provideMedicationService(
	repo repositories.RecordRepository[db_models.Medication],
	medicineRepo repositories.MedicineRepository,
	guard services.GuardianServiceInterface,
) services.MedicationServiceInterface {
	return services.NewMedicationService(repo, medicineRepo, guard)
}

func provideMedicationSlotService(
	slotRepo repositories.MedicationSlotRepository,
	medicationRepo repositories.RecordRepository[db_models.Medication],
	guard services.GuardianServiceInterface,
) services.MedicationSlotServiceInterface {
	return services.NewMedicationSlotService(slotRepo, medicationRepo, guard)
}
