package services

import (
	"context"

	"github.com/google/uuid"

	"nestling/internal/models/db_models"
	"nestling/internal/models/request_models"
	"nestling/internal/repositories"
	"nestling/pkg/utils"
)

type SymptomServiceInterface interface {
	Create(ctx context.Context, req request_models.CreateSymptomRequest) (*db_models.Symptom, error)
	FindAll(ctx context.Context) ([]db_models.Symptom, error)
	FindOne(ctx context.Context, id uuid.UUID) (*db_models.Symptom, error)
	Update(ctx context.Context, id uuid.UUID, req request_models.UpdateSymptomRequest) (*db_models.Symptom, error)
	Remove(ctx context.Context, id uuid.UUID) error
}

type SymptomService struct {
	repo repositories.CatalogRepository[db_models.Symptom]
}

func NewSymptomService(repo repositories.CatalogRepository[db_models.Symptom]) SymptomServiceInterface {
	return &SymptomService{repo: repo}
}

func (s *SymptomService) Create(ctx context.Context, req request_models.CreateSymptomRequest) (*db_models.Symptom, error) {
	count, err := s.repo.CountWhere(ctx, "LOWER(name) = LOWER(?)", req.Name)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if count > 0 {
		return nil, utils.ErrDuplicateName
	}
	rec := &db_models.Symptom{Name: req.Name}
	if err := s.repo.Insert(ctx, rec); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return rec, nil
}

func (s *SymptomService) FindAll(ctx context.Context) ([]db_models.Symptom, error) {
	symptoms, err := s.repo.ListActive(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return symptoms, nil
}

func (s *SymptomService) FindOne(ctx context.Context, id uuid.UUID) (*db_models.Symptom, error) {
	symptom, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if symptom == nil {
		return nil, utils.ErrSymptomNotFound
	}
	return symptom, nil
}

func (s *SymptomService) Update(ctx context.Context, id uuid.UUID, req request_models.UpdateSymptomRequest) (*db_models.Symptom, error) {
	symptom, err := s.FindOne(ctx, id)
	if err != nil {
		return nil, err
	}
	patch := req.ToPatch()
	if len(patch) == 0 {
		return symptom, nil
	}
	if req.Name != nil {
		count, err := s.repo.CountWhere(ctx, "LOWER(name) = LOWER(?) AND id <> ?", *req.Name, id)
		if err != nil {
			return nil, utils.ErrDatabaseError
		}
		if count > 0 {
			return nil, utils.ErrDuplicateName
		}
	}
	if err := s.repo.ApplyPatch(ctx, id, patch); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return s.repo.FindByID(ctx, id)
}

// Remove soft-deletes the definition; vaccination links made while it was
// live keep resolving through their preloads.
func (s *SymptomService) Remove(ctx context.Context, id uuid.UUID) error {
	if _, err := s.FindOne(ctx, id); err != nil {
		return err
	}
	if err := s.repo.SoftDelete(ctx, id); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}
