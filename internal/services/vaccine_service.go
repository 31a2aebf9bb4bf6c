package services

import (
	"context"

	"github.com/google/uuid"

	"nestling/internal/models/db_models"
	"nestling/internal/models/request_models"
	"nestling/internal/repositories"
	"nestling/pkg/utils"
)

type VaccineServiceInterface interface {
	Create(ctx context.Context, req request_models.CreateVaccineRequest) (*db_models.Vaccine, error)
	FindAll(ctx context.Context) ([]db_models.Vaccine, error)
	FindByRegion(ctx context.Context, region string) ([]db_models.Vaccine, error)
	FindOne(ctx context.Context, id uuid.UUID) (*db_models.Vaccine, error)
	Update(ctx context.Context, id uuid.UUID, req request_models.UpdateVaccineRequest) (*db_models.Vaccine, error)
	Remove(ctx context.Context, id uuid.UUID) error
}

type VaccineService struct {
	repo repositories.VaccineRepository
}

func NewVaccineService(repo repositories.VaccineRepository) VaccineServiceInterface {
	return &VaccineService{repo: repo}
}

func (s *VaccineService) Create(ctx context.Context, req request_models.CreateVaccineRequest) (*db_models.Vaccine, error) {
	if req.AgeInMonths < 0 {
		return nil, utils.ErrInvalidInput
	}
	count, err := s.repo.CountWhere(ctx, "LOWER(name) = LOWER(?) AND LOWER(region) = LOWER(?)", req.Name, req.Region)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if count > 0 {
		return nil, utils.ErrDuplicateName
	}
	rec := &db_models.Vaccine{
		Name:        req.Name,
		Region:      req.Region,
		AgeInMonths: req.AgeInMonths,
		Description: req.Description,
	}
	if err := s.repo.Insert(ctx, rec); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return rec, nil
}

func (s *VaccineService) FindAll(ctx context.Context) ([]db_models.Vaccine, error) {
	vaccines, err := s.repo.ListActive(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return vaccines, nil
}

func (s *VaccineService) FindByRegion(ctx context.Context, region string) ([]db_models.Vaccine, error) {
	vaccines, err := s.repo.ListByRegion(ctx, region)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return vaccines, nil
}

func (s *VaccineService) FindOne(ctx context.Context, id uuid.UUID) (*db_models.Vaccine, error) {
	vaccine, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if vaccine == nil {
		return nil, utils.ErrVaccineNotFound
	}
	return vaccine, nil
}

func (s *VaccineService) Update(ctx context.Context, id uuid.UUID, req request_models.UpdateVaccineRequest) (*db_models.Vaccine, error) {
	vaccine, err := s.FindOne(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.AgeInMonths != nil && *req.AgeInMonths < 0 {
		return nil, utils.ErrInvalidInput
	}
	patch := req.ToPatch()
	if len(patch) == 0 {
		return vaccine, nil
	}
	if req.Name != nil || req.Region != nil {
		// uniqueness is per (name, region) after the patch applies
		name, region := vaccine.Name, vaccine.Region
		if req.Name != nil {
			name = *req.Name
		}
		if req.Region != nil {
			region = *req.Region
		}
		count, err := s.repo.CountWhere(ctx,
			"LOWER(name) = LOWER(?) AND LOWER(region) = LOWER(?) AND id <> ?", name, region, id)
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

// Remove soft-deletes the definition. Schedules already generated from it
// keep their vaccination rows; future registrations stop picking it up.
func (s *VaccineService) Remove(ctx context.Context, id uuid.UUID) error {
	if _, err := s.FindOne(ctx, id); err != nil {
		return err
	}
	if err := s.repo.SoftDelete(ctx, id); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}
