package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CatalogRepository serves the reference entities (milk types, categories,
// symptoms, vaccines, medicines). Same soft-delete discipline as domain
// records, but rows are not child-scoped.
type CatalogRepository[T any] interface {
	FindByID(ctx context.Context, id uuid.UUID) (*T, error)
	ListActive(ctx context.Context) ([]T, error)
	CountWhere(ctx context.Context, query string, args ...any) (int64, error)
	Insert(ctx context.Context, rec *T) error
	ApplyPatch(ctx context.Context, id uuid.UUID, patch map[string]any) error
	SoftDelete(ctx context.Context, id uuid.UUID) error
}

type catalogRepository[T any] struct {
	db *gorm.DB
}

func NewCatalogRepository[T any](db *gorm.DB) CatalogRepository[T] {
	return &catalogRepository[T]{db: db}
}

func (r *catalogRepository[T]) FindByID(ctx context.Context, id uuid.UUID) (*T, error) {
	var rec T
	err := r.db.WithContext(ctx).
		Where("id = ? AND is_deleted = ?", id, false).
		First(&rec).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (r *catalogRepository[T]) ListActive(ctx context.Context) ([]T, error) {
	var recs []T
	err := r.db.WithContext(ctx).
		Where("is_deleted = ?", false).
		Find(&recs).Error
	if err != nil {
		return nil, err
	}
	return recs, nil
}

func (r *catalogRepository[T]) CountWhere(ctx context.Context, query string, args ...any) (int64, error) {
	var rec T
	var count int64
	err := r.db.WithContext(ctx).
		Model(&rec).
		Where("is_deleted = ?", false).
		Where(query, args...).
		Count(&count).Error
	return count, err
}

func (r *catalogRepository[T]) Insert(ctx context.Context, rec *T) error {
	return r.db.WithContext(ctx).Create(rec).Error
}

func (r *catalogRepository[T]) ApplyPatch(ctx context.Context, id uuid.UUID, patch map[string]any) error {
	var rec T
	return r.db.WithContext(ctx).
		Model(&rec).
		Where("id = ?", id).
		Updates(patch).Error
}

func (r *catalogRepository[T]) SoftDelete(ctx context.Context, id uuid.UUID) error {
	var rec T
	return r.db.WithContext(ctx).
		Model(&rec).
		Where("id = ?", id).
		Update("is_deleted", true).Error
}
