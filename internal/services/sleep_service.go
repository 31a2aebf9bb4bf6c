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

type SleepServiceInterface interface {
	Create(ctx context.Context, parentID uuid.UUID, req request_models.CreateSleepRequest) (*db_models.Sleep, error)
	FindAll(ctx context.Context, parentID, childID uuid.UUID, limit, offset int) ([]db_models.Sleep, error)
	FindBetween(ctx context.Context, parentID, childID uuid.UUID, start, end time.Time) ([]db_models.Sleep, error)
	FindOne(ctx context.Context, parentID, id uuid.UUID) (*db_models.Sleep, error)
	Update(ctx context.Context, parentID, id uuid.UUID, req request_models.UpdateSleepRequest) (*db_models.Sleep, error)
	Remove(ctx context.Context, parentID, id uuid.UUID) error
}

type SleepService struct {
	records *RecordService[db_models.Sleep]
}

func NewSleepService(repo repositories.RecordRepository[db_models.Sleep], guard GuardianServiceInterface) SleepServiceInterface {
	return &SleepService{
		records: NewRecordService(repo, guard, func(ctx context.Context, rec *db_models.Sleep) (uuid.UUID, error) {
			return rec.ChildID, nil
		}),
	}
}

func (s *SleepService) Create(ctx context.Context, parentID uuid.UUID, req request_models.CreateSleepRequest) (*db_models.Sleep, error) {
	rec := &db_models.Sleep{
		ChildID:    req.ChildID,
		Date:       req.Date,
		StartTime:  req.StartTime,
		Duration:   req.Duration,
		Note:       req.Note,
		SleepStyle: req.SleepStyle,
	}
	return s.records.Create(ctx, parentID, rec, func() error {
		if req.Duration < 1 {
			return utils.ErrInvalidInput
		}
		return nil
	})
}

func (s *SleepService) FindAll(ctx context.Context, parentID, childID uuid.UUID, limit, offset int) ([]db_models.Sleep, error) {
	return s.records.FindAll(ctx, parentID, childID, limit, offset)
}

func (s *SleepService) FindBetween(ctx context.Context, parentID, childID uuid.UUID, start, end time.Time) ([]db_models.Sleep, error) {
	return s.records.FindAllBetween(ctx, parentID, childID, start, end)
}

func (s *SleepService) FindOne(ctx context.Context, parentID, id uuid.UUID) (*db_models.Sleep, error) {
	return s.records.FindOne(ctx, parentID, id)
}

func (s *SleepService) Update(ctx context.Context, parentID, id uuid.UUID, req request_models.UpdateSleepRequest) (*db_models.Sleep, error) {
	return s.records.Update(ctx, parentID, id, req.ToPatch())
}

func (s *SleepService) Remove(ctx context.Context, parentID, id uuid.UUID) error {
	return s.records.Remove(ctx, parentID, id)
}
