package services

import (
	"context"

	"github.com/google/uuid"

	"nestling/internal/models/db_models"
	"nestling/internal/models/request_models"
	"nestling/internal/repositories"
	"nestling/pkg/utils"
)

type CategoryServiceInterface interface {
	Create(ctx context.Context, req request_models.CreateCategoryRequest) (*db_models.Category, error)
	FindAll(ctx context.Context) ([]db_models.Category, error)
	FindOne(ctx context.Context, id uuid.UUID) (*db_models.Category, error)
	Update(ctx context.Context, id uuid.UUID, req request_models.UpdateCategoryRequest) (*db_models.Category, error)
	Remove(ctx context.Context, id uuid.UUID) error
}

type CategoryService struct {
	repo repositories.CatalogRepository[db_models.Category]
}

func NewCategoryService(repo repositories.CatalogRepository[db_models.Category]) CategoryServiceInterface {
	return &CategoryService{repo: repo}
}

func (s *CategoryService) Create(ctx context.Context, req request_models.CreateCategoryRequest) (*db_models.Category, error) {
	count, err := s.repo.CountWhere(ctx, "LOWER(name) = LOWER(?)", req.Name)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if count > 0 {
		return nil, utils.ErrDuplicateName
	}
	rec := &db_models.Category{Name: req.Name}
	if err := s.repo.Insert(ctx, rec); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return rec, nil
}

func (s *CategoryService) FindAll(ctx context.Context) ([]db_models.Category, error) {
	categories, err := s.repo.ListActive(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return categories, nil
}

func (s *CategoryService) FindOne(ctx context.Context, id uuid.UUID) (*db_models.Category, error) {
	rec, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if rec == nil {
		return nil, utils.ErrCategoryNotFound
	}
	return rec, nil
}

func (s *CategoryService) Update(ctx context.Context, id uuid.UUID, req request_models.UpdateCategoryRequest) (*db_models.Category, error) {
	rec, err := s.FindOne(ctx, id)
	if err != nil {
		return nil, err
	}
	patch := req.ToPatch()
	if len(patch) == 0 {
		return rec, nil
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

// Remove soft-deletes the category only. Items keep their rows; they stop
// being listed under the category but stay resolvable from old solids lines.
func (s *CategoryService) Remove(ctx context.Context, id uuid.UUID) error {
	if _, err := s.FindOne(ctx, id); err != nil {
		return err
	}
	if err := s.repo.SoftDelete(ctx, id); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}
