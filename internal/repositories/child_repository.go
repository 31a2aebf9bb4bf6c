package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"nestling/internal/models/db_models"
)

type ChildRepository interface {
	// Register creates the child, its Active guardianship relation and the
	// generated vaccination schedule in one transaction. Schedule rows get
	// the new child's id filled in.
	Register(ctx context.Context, child *db_models.Child, relation *db_models.ParentChild, schedule []db_models.Vaccination) error
	FindByID(ctx context.Context, id uuid.UUID) (*db_models.Child, error)
	ApplyPatch(ctx context.Context, id uuid.UUID, patch map[string]any) error
}

type childRepository struct {
	db *gorm.DB
}

func NewChildRepository(db *gorm.DB) ChildRepository {
	return &childRepository{db: db}
}

func (r *childRepository) Register(ctx context.Context, child *db_models.Child, relation *db_models.ParentChild, schedule []db_models.Vaccination) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(child).Error; err != nil {
			return err
		}

		relation.ChildID = child.ID
		if err := tx.Create(relation).Error; err != nil {
			return err
		}

		if len(schedule) == 0 {
			return nil
		}
		for i := range schedule {
			schedule[i].ChildID = child.ID
		}
		return tx.Create(&schedule).Error
	})
}

func (r *childRepository) FindByID(ctx context.Context, id uuid.UUID) (*db_models.Child, error) {
	var child db_models.Child
	err := r.db.WithContext(ctx).First(&child, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &child, nil
}

func (r *childRepository) ApplyPatch(ctx context.Context, id uuid.UUID, patch map[string]any) error {
	return r.db.WithContext(ctx).
		Model(&db_models.Child{}).
		Where("id = ?", id).
		Updates(patch).Error
}
