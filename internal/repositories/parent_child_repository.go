package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"nestling/internal/models/db_models"
)

// ParentChildRepository is the store behind the guardianship check. Lookups
// always filter on status explicitly; a Deleted row must keep existing for
// history but never grants access.
type ParentChildRepository interface {
	// FindActive returns (nil, nil) when no Active relation links the pair.
	FindActive(ctx context.Context, parentID, childID uuid.UUID) (*db_models.ParentChild, error)
	ListActiveByParent(ctx context.Context, parentID uuid.UUID) ([]db_models.ParentChild, error)
	Insert(ctx context.Context, relation *db_models.ParentChild) error
	MarkDeleted(ctx context.Context, relationID uuid.UUID) error
}

type parentChildRepository struct {
	db *gorm.DB
}

func NewParentChildRepository(db *gorm.DB) ParentChildRepository {
	return &parentChildRepository{db: db}
}

func (r *parentChildRepository) FindActive(ctx context.Context, parentID, childID uuid.UUID) (*db_models.ParentChild, error) {
	var relation db_models.ParentChild
	err := r.db.WithContext(ctx).
		Where("parent_id = ? AND child_id = ? AND status = ?", parentID, childID, db_models.RelationActive).
		First(&relation).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &relation, nil
}

func (r *parentChildRepository) ListActiveByParent(ctx context.Context, parentID uuid.UUID) ([]db_models.ParentChild, error) {
	var relations []db_models.ParentChild
	err := r.db.WithContext(ctx).
		Preload("Child").
		Where("parent_id = ? AND status = ?", parentID, db_models.RelationActive).
		Find(&relations).Error
	if err != nil {
		return nil, err
	}
	return relations, nil
}

func (r *parentChildRepository) Insert(ctx context.Context, relation *db_models.ParentChild) error {
	if relation.RequestedDate.IsZero() {
		relation.RequestedDate = time.Now()
	}
	return r.db.WithContext(ctx).Create(relation).Error
}

func (r *parentChildRepository) MarkDeleted(ctx context.Context, relationID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Model(&db_models.ParentChild{}).
		Where("id = ?", relationID).
		Update("status", db_models.RelationDeleted).Error
}
