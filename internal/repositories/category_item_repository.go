package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"nestling/internal/models/db_models"
)

type CategoryItemRepository interface {
	CatalogRepository[db_models.CategoryItem]
	// ListVisible returns the default items plus the parent's custom ones.
	ListVisible(ctx context.Context, parentID uuid.UUID) ([]db_models.CategoryItem, error)
	ExistsInCategory(ctx context.Context, categoryID uuid.UUID, name string) (bool, error)
}

type categoryItemRepository struct {
	CatalogRepository[db_models.CategoryItem]
	db *gorm.DB
}

func NewCategoryItemRepository(db *gorm.DB) CategoryItemRepository {
	return &categoryItemRepository{
		CatalogRepository: NewCatalogRepository[db_models.CategoryItem](db),
		db:                db,
	}
}

func (r *categoryItemRepository) ListVisible(ctx context.Context, parentID uuid.UUID) ([]db_models.CategoryItem, error) {
	var items []db_models.CategoryItem
	err := r.db.WithContext(ctx).
		Preload("Category").
		Where("is_deleted = ?", false).
		Where("is_default = ? OR owner_parent_id = ?", true, parentID).
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *categoryItemRepository) ExistsInCategory(ctx context.Context, categoryID uuid.UUID, name string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&db_models.CategoryItem{}).
		Where("category_id = ? AND LOWER(name) = LOWER(?) AND is_deleted = ?", categoryID, name, false).
		Count(&count).Error
	return count > 0, err
}
