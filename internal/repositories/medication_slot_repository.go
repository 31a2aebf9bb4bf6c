package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"nestling/internal/models/db_models"
)

type MedicationSlotRepository interface {
	RecordRepository[db_models.MedicationSlot]
	// ListForChild walks the slot -> medication -> child chain, skipping
	// slots whose owning medication is soft-deleted.
	ListForChild(ctx context.Context, childID uuid.UUID) ([]db_models.MedicationSlot, error)
}

type medicationSlotRepository struct {
	RecordRepository[db_models.MedicationSlot]
	db *gorm.DB
}

func NewMedicationSlotRepository(db *gorm.DB) MedicationSlotRepository {
	return &medicationSlotRepository{
		RecordRepository: NewRecordRepository[db_models.MedicationSlot](db, "date"),
		db:               db,
	}
}

func (r *medicationSlotRepository) ListForChild(ctx context.Context, childID uuid.UUID) ([]db_models.MedicationSlot, error) {
	var slots []db_models.MedicationSlot
	err := r.db.WithContext(ctx).
		Joins("JOIN medications ON medications.id = medication_slots.medication_id").
		Where("medications.child_id = ? AND medications.is_deleted = ?", childID, false).
		Where("medication_slots.is_deleted = ?", false).
		Order("medication_slots.date DESC").
		Find(&slots).Error
	if err != nil {
		return nil, err
	}
	return slots, nil
}
