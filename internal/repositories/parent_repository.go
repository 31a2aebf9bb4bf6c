package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"nestling/internal/models/db_models"
)

type ParentRepository interface {
	Insert(ctx context.Context, parent *db_models.Parent) error
	FindByID(ctx context.Context, id uuid.UUID) (*db_models.Parent, error)
	FindByEmail(ctx context.Context, email string) (*db_models.Parent, error)
	FindByPhone(ctx context.Context, phone string) (*db_models.Parent, error)
	ApplyPatch(ctx context.Context, id uuid.UUID, patch map[string]any) error
	// Delete removes the row outright. Account deletion is the one hard
	// delete in the system.
	Delete(ctx context.Context, id uuid.UUID) error
}

type parentRepository struct {
	db *gorm.DB
}

func NewParentRepository(db *gorm.DB) ParentRepository {
	return &parentRepository{db: db}
}

func (r *parentRepository) Insert(ctx context.Context, parent *db_models.Parent) error {
	return r.db.WithContext(ctx).Create(parent).Error
}

func (r *parentRepository) FindByID(ctx context.Context, id uuid.UUID) (*db_models.Parent, error) {
	var parent db_models.Parent
	err := r.db.WithContext(ctx).First(&parent, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &parent, nil
}

func (r *parentRepository) FindByEmail(ctx context.Context, email string) (*db_models.Parent, error) {
	var parent db_models.Parent
	err := r.db.WithContext(ctx).First(&parent, "email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &parent, nil
}

func (r *parentRepository) FindByPhone(ctx context.Context, phone string) (*db_models.Parent, error) {
	var parent db_models.Parent
	err := r.db.WithContext(ctx).First(&parent, "phone_number = ?", phone).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &parent, nil
}

func (r *parentRepository) ApplyPatch(ctx context.Context, id uuid.UUID, patch map[string]any) error {
	return r.db.WithContext(ctx).
		Model(&db_models.Parent{}).
		Where("id = ?", id).
		Updates(patch).Error
}

func (r *parentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&db_models.Parent{}, "id = ?", id).Error
}
