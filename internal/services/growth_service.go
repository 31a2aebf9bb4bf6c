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

type GrowthServiceInterface interface {
	Create(ctx context.Context, parentID uuid.UUID, req request_models.CreateGrowthRequest) (*db_models.Growth, error)
	FindAll(ctx context.Context, parentID, childID uuid.UUID, limit, offset int) ([]db_models.Growth, error)
	FindBetween(ctx context.Context, parentID, childID uuid.UUID, start, end time.Time) ([]db_models.Growth, error)
	FindOne(ctx context.Context, parentID, id uuid.UUID) (*db_models.Growth, error)
	Update(ctx context.Context, parentID, id uuid.UUID, req request_models.UpdateGrowthRequest) (*db_models.Growth, error)
	Remove(ctx context.Context, parentID, id uuid.UUID) error
}

type GrowthService struct {
	records *RecordService[db_models.Growth]
}

func NewGrowthService(repo repositories.RecordRepository[db_models.Growth], guard GuardianServiceInterface) GrowthServiceInterface {
	return &GrowthService{
		records: NewRecordService(repo, guard, func(ctx context.Context, rec *db_models.Growth) (uuid.UUID, error) {
			return rec.ChildID, nil
		}),
	}
}

func (s *GrowthService) Create(ctx context.Context, parentID uuid.UUID, req request_models.CreateGrowthRequest) (*db_models.Growth, error) {
	rec := &db_models.Growth{
		ChildID: req.ChildID,
		Date:    req.Date,
		Weight:  req.Weight,
		Height:  req.Height,
		Note:    req.Note,
	}
	return s.records.Create(ctx, parentID, rec, func() error {
		// a growth entry with no measurement and no note is meaningless
		if req.Weight == 0 && req.Height == 0 && req.Note == "" {
			return utils.ErrMissingFields
		}
		return nil
	})
}

func (s *GrowthService) FindAll(ctx context.Context, parentID, childID uuid.UUID, limit, offset int) ([]db_models.Growth, error) {
	return s.records.FindAll(ctx, parentID, childID, limit, offset)
}

func (s *GrowthService) FindBetween(ctx context.Context, parentID, childID uuid.UUID, start, end time.Time) ([]db_models.Growth, error) {
	return s.records.FindAllBetween(ctx, parentID, childID, start, end)
}

func (s *GrowthService) FindOne(ctx context.Context, parentID, id uuid.UUID) (*db_models.Growth, error) {
	return s.records.FindOne(ctx, parentID, id)
}

func (s *GrowthService) Update(ctx context.Context, parentID, id uuid.UUID, req request_models.UpdateGrowthRequest) (*db_models.Growth, error) {
	return s.records.Update(ctx, parentID, id, req.ToPatch())
}

func (s *GrowthService) Remove(ctx context.Context, parentID, id uuid.UUID) error {
	return s.records.Remove(ctx, parentID, id)
}
