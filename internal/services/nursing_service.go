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

type NursingServiceInterface interface {
	Create(ctx context.Context, parentID uuid.UUID, req request_models.CreateNursingRequest) (*db_models.Nursing, error)
	FindAll(ctx context.Context, parentID, childID uuid.UUID, limit, offset int) ([]db_models.Nursing, error)
	FindBetween(ctx context.Context, parentID, childID uuid.UUID, start, end time.Time) ([]db_models.Nursing, error)
	FindOne(ctx context.Context, parentID, id uuid.UUID) (*db_models.Nursing, error)
	Update(ctx context.Context, parentID, id uuid.UUID, req request_models.UpdateNursingRequest) (*db_models.Nursing, error)
	Remove(ctx context.Context, parentID, id uuid.UUID) error
}

type NursingService struct {
	records *RecordService[db_models.Nursing]
}

func NewNursingService(repo repositories.RecordRepository[db_models.Nursing], guard GuardianServiceInterface) NursingServiceInterface {
	return &NursingService{
		records: NewRecordService(repo, guard, func(ctx context.Context, rec *db_models.Nursing) (uuid.UUID, error) {
			return rec.ChildID, nil
		}),
	}
}

func (s *NursingService) Create(ctx context.Context, parentID uuid.UUID, req request_models.CreateNursingRequest) (*db_models.Nursing, error) {
	rec := &db_models.Nursing{
		ChildID:       req.ChildID,
		Date:          req.Date,
		Time:          req.Time,
		LeftDuration:  req.LeftDuration,
		RightDuration: req.RightDuration,
		Notes:         req.Notes,
	}
	return s.records.Create(ctx, parentID, rec, func() error {
		if req.LeftDuration == 0 && req.RightDuration == 0 && req.Notes == "" {
			return utils.ErrMissingFields
		}
		return nil
	})
}

func (s *NursingService) FindAll(ctx context.Context, parentID, childID uuid.UUID, limit, offset int) ([]db_models.Nursing, error) {
	return s.records.FindAll(ctx, parentID, childID, limit, offset)
}

func (s *NursingService) FindBetween(ctx context.Context, parentID, childID uuid.UUID, start, end time.Time) ([]db_models.Nursing, error) {
	return s.records.FindAllBetween(ctx, parentID, childID, start, end)
}

func (s *NursingService) FindOne(ctx context.Context, parentID, id uuid.UUID) (*db_models.Nursing, error) {
	return s.records.FindOne(ctx, parentID, id)
}

func (s *NursingService) Update(ctx context.Context, parentID, id uuid.UUID, req request_models.UpdateNursingRequest) (*db_models.Nursing, error) {
	return s.records.Update(ctx, parentID, id, req.ToPatch())
}

func (s *NursingService) Remove(ctx context.Context, parentID, id uuid.UUID) error {
	return s.records.Remove(ctx, parentID, id)
}
