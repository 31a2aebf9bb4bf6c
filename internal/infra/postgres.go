package infra

import (
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"nestling/internal/models/db_models"
	"nestling/pkg/config"
	"nestling/pkg/logger"
)

func InitPostgresql(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.Database.URL), &gorm.Config{})
	if err != nil {
		logger.GetLogger().Fatal("error connecting to database", zap.Error(err))
	}

	return db
}

// Migrate keeps the schema in step with the model structs.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&db_models.Parent{},
		&db_models.Child{},
		&db_models.ParentChild{},
		&db_models.Growth{},
		&db_models.Sleep{},
		&db_models.MilkType{},
		&db_models.Bottle{},
		&db_models.Nursing{},
		&db_models.Category{},
		&db_models.CategoryItem{},
		&db_models.Solids{},
		&db_models.SolidLine{},
		&db_models.Medicine{},
		&db_models.Medication{},
		&db_models.MedicationSlot{},
		&db_models.Vaccine{},
		&db_models.Symptom{},
		&db_models.Vaccination{},
		&db_models.VaccinationSymptom{},
		&db_models.VaccinationImage{},
		&db_models.Allergy{},
		&db_models.Appointment{},
		&db_models.HealthRecord{},
		&db_models.Article{},
		&db_models.Feedback{},
	)
}

func ClosePostgresql(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		logger.GetLogger().Error("error getting database instance", zap.Error(err))
		return
	}

	if err := sqlDB.Close(); err != nil {
		logger.GetLogger().Error("error closing database connection", zap.Error(err))
	}
}
