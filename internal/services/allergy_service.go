package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"nestling/internal/models/db_models"
	"nestling/internal/models/request_models"
	"nestling/internal/repositories"
	"nestling/pkg/utils"
)

type AllergyServiceInterface interface {
	Create(ctx context.Context, parentID uuid.UUID, req request_models.CreateAllergyRequest) (*db_models.Allergy, error)
	FindAll(ctx context.Context, parentID, childID uuid.UUID, limit, offset int) ([]db_models.Allergy, error)
	FindBetween(ctx context.Context, parentID, childID uuid.UUID, start, end time.Time) ([]db_models.Allergy, error)
	FindOne(ctx context.Context, parentID, id uuid.UUID) (*db_models.Allergy, error)
	Update(ctx context.Context, parentID, id uuid.UUID, req request_models.UpdateAllergyRequest) (*db_models.Allergy, error)
	Remove(ctx context.Context, parentID, id uuid.UUID) error
}

type AllergyService struct {
	records *RecordService[db_models.Allergy]
}

func NewAllergyService(
	repo repositories.RecordRepository[db_models.Allergy],
	guard GuardianServiceInterface,
) AllergyServiceInterface {
	return &AllergyService{
		records: NewRecordService(repo, guard, func(ctx context.Context, rec *db_models.Allergy) (uuid.UUID, error) {
			return rec.ChildID, nil
		}),
	}
}

func (s *AllergyService) Create(ctx context.Context, parentID uuid.UUID, req request_models.CreateAllergyRequest) (*db_models.Allergy, error) {
	rec := &db_models.Allergy{
		ChildID:  req.ChildID,
		Name:     req.Name,
		Severity: req.Severity,
		Note:     req.Note,
		Date:     req.Date,
	}
	return s.records.Create(ctx, parentID, rec, func() error {
		if req.Name == "" || req.Date.IsZero() {
			return utils.ErrMissingFields
		}
		return nil
	})
}

func (s *AllergyService) FindAll(ctx context.Context, parentID, childID uuid.UUID, limit, offset int) ([]db_models.Allergy, error) {
	return s.records.FindAll(ctx, parentID, childID, limit, offset)
}

func (s *AllergyService) FindBetween(ctx context.Context, parentID, childID uuid.UUID, start, end time.Time) ([]db_models.Allergy, error) {
	return s.records.FindAllBetween(ctx, parentID, childID, start, end)
}

func (s *AllergyService) FindOne(ctx context.Context, parentID, id uuid.UUID) (*db_models.Allergy, error) {
	return s.records.FindOne(ctx, parentID, id)
}

func (s *AllergyService) Update(ctx context.Context, parentID, id uuid.UUID, req request_models.UpdateAllergyRequest) (*db_models.Allergy, error) {
	return s.records.Update(ctx, parentID, id, req.ToPatch())
}

func (s *AllergyService) Remove(ctx context.Context, parentID, id uuid.UUID) error {
	return s.records.Remove(ctx, parentID, id)
}
