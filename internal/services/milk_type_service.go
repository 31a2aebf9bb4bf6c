package services

import (
	"context"

	"github.com/google/uuid"

	"nestling/internal/models/db_models"
	"nestling/internal/models/request_models"
	"nestling/internal/repositories"
	"nestling/pkg/utils"
)

type MilkTypeServiceInterface interface {
	Create(ctx context.Context, req request_models.CreateMilkTypeRequest) (*db_models.MilkType, error)
	FindAll(ctx context.Context) ([]db_models.MilkType, error)
	FindOne(ctx context.Context, id uuid.UUID) (*db_models.MilkType, error)
	Update(ctx context.Context, id uuid.UUID, req request_models.UpdateMilkTypeRequest) (*db_models.MilkType, error)
	Remove(ctx context.Context, id uuid.UUID) error
}

type MilkTypeService struct {
	repo repositories.CatalogRepository[db_models.MilkType]
}

func NewMilkTypeService(repo repositories.CatalogRepository[db_models.MilkType]) MilkTypeServiceInterface {
	return &MilkTypeService{repo: repo}
}

func (s *MilkTypeService) Create(ctx context.Context, req request_models.CreateMilkTypeRequest) (*db_models.MilkType, error) {
	count, err := s.repo.CountWhere(ctx, "LOWER(name) = LOWER(?)", req.Name)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if count > 0 {
		return nil, utils.ErrDuplicateName
	}
	rec := &db_models.MilkType{Name: req.Name}
	if err := s.repo.Insert(ctx, rec); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return rec, nil
}

func (s *MilkTypeService) FindAll(ctx context.Context) ([]db_models.MilkType, error) {
	types, err := s.repo.ListActive(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return types, nil
}

func (s *MilkTypeService) FindOne(ctx context.Context, id uuid.UUID) (*db_models.MilkType, error) {
	rec, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if rec == nil {
		return nil, utils.ErrMilkTypeNotFound
	}
	return rec, nil
}

func (s *MilkTypeService) Update(ctx context.Context, id uuid.UUID, req request_models.UpdateMilkTypeRequest) (*db_models.MilkType, error) {
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

func (s *MilkTypeService) Remove(ctx context.Context, id uuid.UUID) error {
	if _, err := s.FindOne(ctx, id); err != nil {
		return err
	}
	if err := s.repo.SoftDelete(ctx, id); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}
