package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RecordRepository is the shared store access layer for child-owned domain
// records. Every read filters on is_deleted = false; SoftDelete flips the
// flag instead of erasing the row and runs the configured cascade in the
// same transaction.
type RecordRepository[T any] interface {
	// FindByID returns (nil, nil) when the record is absent or soft-deleted.
	FindByID(ctx context.Context, id uuid.UUID) (*T, error)
	ListByChild(ctx context.Context, childID uuid.UUID, limit, offset int) ([]T, error)
	ListByChildBetween(ctx context.Context, childID uuid.UUID, start, end time.Time) ([]T, error)
	Insert(ctx context.Context, rec *T) error
	ApplyPatch(ctx context.Context, id uuid.UUID, patch map[string]any) error
	SoftDelete(ctx context.Context, id uuid.UUID) error
}

// CascadeFunc soft-deletes the dependents a record owns. It runs inside the
// transaction that soft-deletes the record itself.
type CascadeFunc[T any] func(tx *gorm.DB, rec *T) error

type recordRepository[T any] struct {
	db         *gorm.DB
	dateColumn string
	preloads   []string
	cascade    CascadeFunc[T]
}

type RecordRepositoryOption[T any] func(*recordRepository[T])

// WithPreloads eager-loads the named associations on every read.
func WithPreloads[T any](preloads ...string) RecordRepositoryOption[T] {
	return func(r *recordRepository[T]) {
		r.preloads = preloads
	}
}

// WithCascade registers the dependent soft-delete for SoftDelete.
func WithCascade[T any](cascade CascadeFunc[T]) RecordRepositoryOption[T] {
	return func(r *recordRepository[T]) {
		r.cascade = cascade
	}
}

// NewRecordRepository builds a repository for T ordering reads newest-first
// by dateColumn.
func NewRecordRepository[T any](db *gorm.DB, dateColumn string, opts ...RecordRepositoryOption[T]) RecordRepository[T] {
	r := &recordRepository[T]{db: db, dateColumn: dateColumn}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *recordRepository[T]) withPreloads(db *gorm.DB) *gorm.DB {
	for _, p := range r.preloads {
		db = db.Preload(p, "is_deleted = ?", false)
	}
	return db
}

func (r *recordRepository[T]) FindByID(ctx context.Context, id uuid.UUID) (*T, error) {
	var rec T
	err := r.withPreloads(r.db.WithContext(ctx)).
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

func (r *recordRepository[T]) ListByChild(ctx context.Context, childID uuid.UUID, limit, offset int) ([]T, error) {
	var recs []T
	err := r.withPreloads(r.db.WithContext(ctx)).
		Where("child_id = ? AND is_deleted = ?", childID, false).
		Order(r.dateColumn + " DESC").
		Limit(limit).
		Offset(offset).
		Find(&recs).Error
	if err != nil {
		return nil, err
	}
	return recs, nil
}

func (r *recordRepository[T]) ListByChildBetween(ctx context.Context, childID uuid.UUID, start, end time.Time) ([]T, error) {
	var recs []T
	err := r.withPreloads(r.db.WithContext(ctx)).
		Where("child_id = ? AND is_deleted = ?", childID, false).
		Where(r.dateColumn+" >= ? AND "+r.dateColumn+" <= ?", start, end).
		Order(r.dateColumn + " DESC").
		Find(&recs).Error
	if err != nil {
		return nil, err
	}
	return recs, nil
}

func (r *recordRepository[T]) Insert(ctx context.Context, rec *T) error {
	return r.db.WithContext(ctx).Create(rec).Error
}

func (r *recordRepository[T]) ApplyPatch(ctx context.Context, id uuid.UUID, patch map[string]any) error {
	var rec T
	return r.db.WithContext(ctx).
		Model(&rec).
		Where("id = ?", id).
		Updates(patch).Error
}

func (r *recordRepository[T]) SoftDelete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var rec T
		if err := tx.Where("id = ? AND is_deleted = ?", id, false).First(&rec).Error; err != nil {
			return err
		}
		if err := tx.Model(&rec).Where("id = ?", id).Update("is_deleted", true).Error; err != nil {
			return err
		}
		if r.cascade != nil {
			return r.cascade(tx, &rec)
		}
		return nil
	})
}
