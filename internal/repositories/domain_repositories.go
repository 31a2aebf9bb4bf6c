package repositories

import (
	"gorm.io/gorm"

	"nestling/internal/models/db_models"
)

// Per-domain repository constructors. Each one declares the record's natural
// date column, its eager-loaded associations and the dependents its soft
// delete cascades to.

func NewGrowthRepository(db *gorm.DB) RecordRepository[db_models.Growth] {
	return NewRecordRepository[db_models.Growth](db, "date")
}

func NewSleepRepository(db *gorm.DB) RecordRepository[db_models.Sleep] {
	return NewRecordRepository[db_models.Sleep](db, "date")
}

func NewBottleRepository(db *gorm.DB) RecordRepository[db_models.Bottle] {
	return NewRecordRepository[db_models.Bottle](db, "date",
		WithPreloads[db_models.Bottle]("MilkType"))
}

func NewNursingRepository(db *gorm.DB) RecordRepository[db_models.Nursing] {
	return NewRecordRepository[db_models.Nursing](db, "date")
}

func NewSolidsRepository(db *gorm.DB) RecordRepository[db_models.Solids] {
	return NewRecordRepository[db_models.Solids](db, "date",
		WithPreloads[db_models.Solids]("Lines", "Lines.CategoryItem", "Lines.CategoryItem.Category"),
		WithCascade(func(tx *gorm.DB, rec *db_models.Solids) error {
			return tx.Model(&db_models.SolidLine{}).
				Where("solids_id = ?", rec.ID).
				Update("is_deleted", true).Error
		}))
}

func NewSolidLineRepository(db *gorm.DB) RecordRepository[db_models.SolidLine] {
	return NewRecordRepository[db_models.SolidLine](db, "created_at",
		WithPreloads[db_models.SolidLine]("CategoryItem"))
}

func NewMedicationRepository(db *gorm.DB) RecordRepository[db_models.Medication] {
	return NewRecordRepository[db_models.Medication](db, "start_date",
		WithPreloads[db_models.Medication]("Medicine", "Slots"),
		WithCascade(func(tx *gorm.DB, rec *db_models.Medication) error {
			return tx.Model(&db_models.MedicationSlot{}).
				Where("medication_id = ?", rec.ID).
				Update("is_deleted", true).Error
		}))
}

func NewVaccinationRepository(db *gorm.DB) RecordRepository[db_models.Vaccination] {
	return NewRecordRepository[db_models.Vaccination](db, "date",
		WithPreloads[db_models.Vaccination]("Vaccine", "Symptoms", "Symptoms.Symptom", "Images"),
		WithCascade(func(tx *gorm.DB, rec *db_models.Vaccination) error {
			if err := tx.Model(&db_models.VaccinationSymptom{}).
				Where("vaccination_id = ?", rec.ID).
				Update("is_deleted", true).Error; err != nil {
				return err
			}
			return tx.Model(&db_models.VaccinationImage{}).
				Where("vaccination_id = ?", rec.ID).
				Update("is_deleted", true).Error
		}))
}

func NewVaccinationSymptomRepository(db *gorm.DB) RecordRepository[db_models.VaccinationSymptom] {
	return NewRecordRepository[db_models.VaccinationSymptom](db, "created_at",
		WithPreloads[db_models.VaccinationSymptom]("Symptom"))
}

func NewAllergyRepository(db *gorm.DB) RecordRepository[db_models.Allergy] {
	return NewRecordRepository[db_models.Allergy](db, "date")
}

func NewAppointmentRepository(db *gorm.DB) RecordRepository[db_models.Appointment] {
	return NewRecordRepository[db_models.Appointment](db, "date")
}

func NewHealthRecordRepository(db *gorm.DB) RecordRepository[db_models.HealthRecord] {
	return NewRecordRepository[db_models.HealthRecord](db, "date")
}
