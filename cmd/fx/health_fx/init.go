package health_fx

import (
	"go.uber.org/fx"

	"nestling/internal/models/db_models"
	"nestling/internal/repositories"
	"nestling/internal/services"
)

var Module = fx.Provide(
	repositories.NewAllergyRepository,
	repositories.NewAppointmentRepository,
	repositories.NewHealthRecordRepository,
	provideAllergyService,
	provideAppointmentService,
	provideHealthRecordService)

func provideAllergyService(
	repo repositories.RecordRepository[db_models.Allergy],
	guard services.GuardianServiceInterface,
) services.AllergyServiceInterface {
	return services.NewAllergyService(repo, guard)
}

func provideAppointmentService(
	repo repositories.RecordRepository[db_models.Appointment],
	guard services.GuardianServiceInterface,
) services.AppointmentServiceInterface {
	return services.NewAppointmentService(repo, guard)
}

func provideHealthRecordService(
	repo repositories.RecordRepository[db_models.HealthRecord],
	guard services.GuardianServiceInterface,
) services.HealthRecordServiceInterface {
	return services.NewHealthRecordService(repo, guard)
}
