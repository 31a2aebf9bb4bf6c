package repositories

import (
	"context"

	"gorm.io/gorm"

	"nestling/internal/models/db_models"
)

type VaccineRepository interface {
	CatalogRepository[db_models.Vaccine]
	// ListByRegion matches the region case-insensitively, deleted
	// definitions excluded. Used to generate a child's schedule.
	ListByRegion(ctx context.Context, region string) ([]db_models.Vaccine, error)
}

type vaccineRepository struct {
	CatalogRepository[db_models.Vaccine]
	db *gorm.DB
}

func NewVaccineRepository(db *gorm.DB) VaccineRepository {
	return &vaccineRepository{
		CatalogRepository: NewCatalogRepository[db_models.Vaccine](db),
		db:                db,
	}
}

func (r *vaccineRepository) ListByRegion(ctx context.Context, region string) ([]db_models.Vaccine, error) {
	var vaccines []db_models.Vaccine
	err := r.db.WithContext(ctx).
		Where("LOWER(region) = LOWER(?) AND is_deleted = ?", region, false).
		Find(&vaccines).Error
	if err != nil {
		return nil, err
	}
	return vaccines, nil
}
