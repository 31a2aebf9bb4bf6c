package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"nestling/internal/models/db_models"
)

type MedicineRepository interface {
	CatalogRepository[db_models.Medicine]
	// FindAvailable returns the medicine only when the parent may use it:
	// either a shared catalog definition or the parent's own custom entry.
	FindAvailable(ctx context.Context, id, parentID uuid.UUID) (*db_models.Medicine, error)
	// ListVisible returns the shared catalog plus the parent's custom medicines.
	ListVisible(ctx context.Context, parentID uuid.UUID) ([]db_models.Medicine, error)
}

type medicineRepository struct {
	CatalogRepository[db_models.Medicine]
	db *gorm.DB
}

func NewMedicineRepository(db *gorm.DB) MedicineRepository {
	return &medicineRepository{
		CatalogRepository: NewCatalogRepository[db_models.Medicine](db),
		db:                db,
	}
}

func (r *medicineRepository) FindAvailable(ctx context.Context, id, parentID uuid.UUID) (*db_models.Medicine, error) {
	var medicine db_models.Medicine
	err := r.db.WithContext(ctx).
		Where("id = ? AND is_deleted = ?", id, false).
		Where("owner_parent_id IS NULL OR owner_parent_id = ?", parentID).
		First(&medicine).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &medicine, nil
}

func (r *medicineRepository) ListVisible(ctx context.Context, parentID uuid.UUID) ([]db_models.Medicine, error) {
	var medicines []db_models.Medicine
	err := r.db.WithContext(ctx).
		Where("is_deleted = ?", false).
		Where("owner_parent_id IS NULL OR owner_parent_id = ?", parentID).
		Find(&medicines).Error
	if err != nil {
		return nil, err
	}
	return medicines, nil
}
