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

type SolidsServiceInterface interface {
	Create(ctx context.Context, parentID uuid.UUID, req request_models.CreateSolidsRequest) (*db_models.Solids, error)
	FindAll(ctx context.Context, parentID, childID uuid.UUID, limit, offset int) ([]db_models.Solids, error)
	FindBetween(ctx context.Context, parentID, childID uuid.UUID, start, end time.Time) ([]db_models.Solids, error)
	FindOne(ctx context.Context, parentID, id uuid.UUID) (*db_models.Solids, error)
	Update(ctx context.Context, parentID, id uuid.UUID, req request_models.UpdateSolidsRequest) (*db_models.Solids, error)
	Remove(ctx context.Context, parentID, id uuid.UUID) error
}

type SolidsService struct {
	records  *RecordService[db_models.Solids]
	itemRepo repositories.CategoryItemRepository
}

func NewSolidsService(
	repo repositories.RecordRepository[db_models.Solids],
	itemRepo repositories.CategoryItemRepository,
	guard GuardianServiceInterface,
) SolidsServiceInterface {
	return &SolidsService{
		records: NewRecordService(repo, guard, func(ctx context.Context, rec *db_models.Solids) (uuid.UUID, error) {
			return rec.ChildID, nil
		}),
		itemRepo: itemRepo,
	}
}

func (s *SolidsService) Create(ctx context.Context, parentID uuid.UUID, req request_models.CreateSolidsRequest) (*db_models.Solids, error) {
	rec := &db_models.Solids{
		ChildID: req.ChildID,
		Date:    req.Date,
		Note:    req.Note,
	}
	for _, line := range req.Lines {
		rec.Lines = append(rec.Lines, db_models.SolidLine{
			CategoryItemID: line.CategoryItemID,
			Amount:         line.Amount,
		})
	}

	return s.records.Create(ctx, parentID, rec, func() error {
		if len(req.Lines) == 0 {
			return utils.ErrMissingFields
		}
		// every ingredient line must point at a live category item
		for _, line := range req.Lines {
			item, err := s.itemRepo.FindByID(ctx, line.CategoryItemID)
			if err != nil {
				return utils.ErrDatabaseError
			}
			if item == nil {
				return utils.ErrCategoryItemNotFound
			}
		}
		return nil
	})
}

func (s *SolidsService) FindAll(ctx context.Context, parentID, childID uuid.UUID, limit, offset int) ([]db_models.Solids, error) {
	return s.records.FindAll(ctx, parentID, childID, limit, offset)
}

func (s *SolidsService) FindBetween(ctx context.Context, parentID, childID uuid.UUID, start, end time.Time) ([]db_models.Solids, error) {
	return s.records.FindAllBetween(ctx, parentID, childID, start, end)
}

func (s *SolidsService) FindOne(ctx context.Context, parentID, id uuid.UUID) (*db_models.Solids, error) {
	return s.records.FindOne(ctx, parentID, id)
}

func (s *SolidsService) Update(ctx context.Context, parentID, id uuid.UUID, req request_models.UpdateSolidsRequest) (*db_models.Solids, error) {
	return s.records.Update(ctx, parentID, id, req.ToPatch())
}

func (s *SolidsService) Remove(ctx context.Context, parentID, id uuid.UUID) error {
	return s.records.Remove(ctx, parentID, id)
}
