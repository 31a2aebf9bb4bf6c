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

type BottleServiceInterface interface {
	Create(ctx context.Context, parentID uuid.UUID, req request_models.CreateBottleRequest) (*db_models.Bottle, error)
	FindAll(ctx context.Context, parentID, childID uuid.UUID, limit, offset int) ([]db_models.Bottle, error)
	FindBetween(ctx context.Context, parentID, childID uuid.UUID, start, end time.Time) ([]db_models.Bottle, error)
	FindOne(ctx context.Context, parentID, id uuid.UUID) (*db_models.Bottle, error)
	Update(ctx context.Context, parentID, id uuid.UUID, req request_models.UpdateBottleRequest) (*db_models.Bottle, error)
	Remove(ctx context.Context, parentID, id uuid.UUID) error
}

type BottleService struct {
	records      *RecordService[db_models.Bottle]
	milkTypeRepo repositories.CatalogRepository[db_models.MilkType]
}

func NewBottleService(
	repo repositories.RecordRepository[db_models.Bottle],
	milkTypeRepo repositories.CatalogRepository[db_models.MilkType],
	guard GuardianServiceInterface,
) BottleServiceInterface {
	return &BottleService{
		records: NewRecordService(repo, guard, func(ctx context.Context, rec *db_models.Bottle) (uuid.UUID, error) {
			return rec.ChildID, nil
		}),
		milkTypeRepo: milkTypeRepo,
	}
}

func (s *BottleService) Create(ctx context.Context, parentID uuid.UUID, req request_models.CreateBottleRequest) (*db_models.Bottle, error) {
	rec := &db_models.Bottle{
		ChildID:    req.ChildID,
		MilkTypeID: req.MilkTypeID,
		Date:       req.Date,
		Time:       req.Time,
		Volume:     req.Volume,
		Stash:      req.Stash,
		Notes:      req.Notes,
	}
	return s.records.Create(ctx, parentID, rec, func() error {
		if req.Volume == 0 && req.Stash == "" && req.Notes == "" {
			return utils.ErrMissingFields
		}
		return s.requireMilkType(ctx, req.MilkTypeID)
	})
}

func (s *BottleService) requireMilkType(ctx context.Context, id uuid.UUID) error {
	milkType, err := s.milkTypeRepo.FindByID(ctx, id)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if milkType == nil {
		return utils.ErrMilkTypeNotFound
	}
	return nil
}

func (s *BottleService) FindAll(ctx context.Context, parentID, childID uuid.UUID, limit, offset int) ([]db_models.Bottle, error) {
	return s.records.FindAll(ctx, parentID, childID, limit, offset)
}

func (s *BottleService) FindBetween(ctx context.Context, parentID, childID uuid.UUID, start, end time.Time) ([]db_models.Bottle, error) {
	return s.records.FindAllBetween(ctx, parentID, childID, start, end)
}

func (s *BottleService) FindOne(ctx context.Context, parentID, id uuid.UUID) (*db_models.Bottle, error) {
	return s.records.FindOne(ctx, parentID, id)
}

func (s *BottleService) Update(ctx context.Context, parentID, id uuid.UUID, req request_models.UpdateBottleRequest) (*db_models.Bottle, error) {
	if req.MilkTypeID != nil {
		if err := s.requireMilkType(ctx, *req.MilkTypeID); err != nil {
			return nil, err
		}
	}
	return s.records.Update(ctx, parentID, id, req.ToPatch())
}

func (s *BottleService) Remove(ctx context.Context, parentID, id uuid.UUID) error {
	return s.records.Remove(ctx, parentID, id)
}
