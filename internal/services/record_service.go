package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"nestling/internal/repositories"
	"nestling/pkg/utils"
)

// ChildResolver maps a record to its root child. For directly owned records
// it reads the child id off the struct; for nested records (medication
// slots, solid lines) it fetches the intermediate entity and fails with the
// intermediate's not-found error when that entity is absent or soft-deleted.
type ChildResolver[T any] func(ctx context.Context, rec *T) (uuid.UUID, error)

// RecordService is the ownership-checked CRUD protocol shared by every
// domain record type. The order of steps is fixed: create authorizes before
// validating, the single-record reads and writes check existence before
// authorization so NotFound and Forbidden stay distinguishable.
type RecordService[T any] struct {
	repo         repositories.RecordRepository[T]
	guard        GuardianServiceInterface
	resolveChild ChildResolver[T]
}

func NewRecordService[T any](
	repo repositories.RecordRepository[T],
	guard GuardianServiceInterface,
	resolveChild ChildResolver[T],
) *RecordService[T] {
	return &RecordService[T]{
		repo:         repo,
		guard:        guard,
		resolveChild: resolveChild,
	}
}

// Create authorizes against the record's root child, then runs the domain
// validation, then persists. validate may be nil.
func (s *RecordService[T]) Create(ctx context.Context, parentID uuid.UUID, rec *T, validate func() error) (*T, error) {
	childID, err := s.resolveChild(ctx, rec)
	if err != nil {
		return nil, err
	}
	if err := s.guard.VerifyGuardianship(ctx, parentID, childID); err != nil {
		return nil, err
	}
	if validate != nil {
		if err := validate(); err != nil {
			return nil, err
		}
	}
	if err := s.repo.Insert(ctx, rec); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return rec, nil
}

// FindAll returns the child's live records newest-first. Pagination bounds
// are checked before any query runs; an empty result is an empty slice, not
// an error.
func (s *RecordService[T]) FindAll(ctx context.Context, parentID, childID uuid.UUID, limit, offset int) ([]T, error) {
	if limit <= 0 {
		return nil, utils.ErrInvalidLimit
	}
	if offset < 0 {
		return nil, utils.ErrInvalidOffset
	}
	if err := s.guard.VerifyGuardianship(ctx, parentID, childID); err != nil {
		return nil, err
	}

	recs, err := s.repo.ListByChild(ctx, childID, limit, offset)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return recs, nil
}

// FindAllBetween returns the child's live records with dates inside
// [start, end] inclusive.
func (s *RecordService[T]) FindAllBetween(ctx context.Context, parentID, childID uuid.UUID, start, end time.Time) ([]T, error) {
	if err := s.guard.VerifyGuardianship(ctx, parentID, childID); err != nil {
		return nil, err
	}

	recs, err := s.repo.ListByChildBetween(ctx, childID, start, end)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return recs, nil
}

func (s *RecordService[T]) FindOne(ctx context.Context, parentID, id uuid.UUID) (*T, error) {
	rec, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if rec == nil {
		return nil, utils.ErrRecordNotFound
	}

	childID, err := s.resolveChild(ctx, rec)
	if err != nil {
		return nil, err
	}
	if err := s.guard.VerifyGuardianship(ctx, parentID, childID); err != nil {
		return nil, err
	}
	return rec, nil
}

// Update applies a sparse patch over the existing record. Fields the patch
// omits keep their stored values; the soft-delete flag is controller-managed
// and any attempt to patch it is rejected outright.
func (s *RecordService[T]) Update(ctx context.Context, parentID, id uuid.UUID, patch map[string]any) (*T, error) {
	rec, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if rec == nil {
		return nil, utils.ErrRecordNotFound
	}

	childID, err := s.resolveChild(ctx, rec)
	if err != nil {
		return nil, err
	}
	if err := s.guard.VerifyGuardianship(ctx, parentID, childID); err != nil {
		return nil, err
	}

	if _, ok := patch["is_deleted"]; ok {
		return nil, utils.ErrProtectedField
	}
	if len(patch) == 0 {
		return rec, nil
	}

	if err := s.repo.ApplyPatch(ctx, id, patch); err != nil {
		return nil, utils.ErrDatabaseError
	}

	updated, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return updated, nil
}

// Remove soft-deletes the record and cascades to its owned dependents in
// one transaction. Removing an already-removed record is NotFound.
func (s *RecordService[T]) Remove(ctx context.Context, parentID, id uuid.UUID) error {
	rec, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if rec == nil {
		return utils.ErrRecordNotFound
	}

	childID, err := s.resolveChild(ctx, rec)
	if err != nil {
		return err
	}
	if err := s.guard.VerifyGuardianship(ctx, parentID, childID); err != nil {
		return err
	}

	if err := s.repo.SoftDelete(ctx, id); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}
