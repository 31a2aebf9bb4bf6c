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

type HealthRecordServiceInterface interface {
	Create(ctx context.Context, parentID uuid.UUID, req request_models.CreateHealthRecordRequest) (*db_models.HealthRecord, error)
	FindAll(ctx context.Context, parentID, childID uuid.UUID, limit, offset int) ([]db_models.HealthRecord, error)
	FindOne(ctx context.Context, parentID, id uuid.UUID) (*db_models.HealthRecord, error)
	Update(ctx context.Context, parentID, id uuid.UUID, req request_models.UpdateHealthRecordRequest) (*db_models.HealthRecord, error)
	Remove(ctx context.Context, parentID, id uuid.UUID) error
}

type HealthRecordService struct {
	records *RecordService[db_models.HealthRecord]
}

func NewHealthRecordService(
	repo repositories.RecordRepository[db_models.HealthRecord],
	guard GuardianServiceInterface,
) HealthRecordServiceInterface {
	return &HealthRecordService{
		records: NewRecordService(repo, guard, func(ctx context.Context, rec *db_models.HealthRecord) (uuid.UUID, error) {
			return rec.ChildID, nil
		}),
	}
}

func (s *HealthRecordService) Create(ctx context.Context, parentID uuid.UUID, req request_models.CreateHealthRecordRequest) (*db_models.HealthRecord, error) {
	date := req.Date
	if date.IsZero() {
		date = time.Now()
	}
	rec := &db_models.HealthRecord{
		ChildID: req.ChildID,
		Title:   req.Title,
		File:    req.File,
		Date:    date,
		Notes:   req.Notes,
	}
	return s.records.Create(ctx, parentID, rec, func() error {
		if req.Title == "" {
			return utils.ErrMissingFields
		}
		return nil
	})
}

func (s *HealthRecordService) FindAll(ctx context.Context, parentID, childID uuid.UUID, limit, offset int) ([]db_models.HealthRecord, error) {
	return s.records.FindAll(ctx, parentID, childID, limit, offset)
}

func (s *HealthRecordService) FindOne(ctx context.Context, parentID, id uuid.UUID) (*db_models.HealthRecord, error) {
	return s.records.FindOne(ctx, parentID, id)
}

func (s *HealthRecordService) Update(ctx context.Context, parentID, id uuid.UUID, req request_models.UpdateHealthRecordRequest) (*db_models.HealthRecord, error) {
	return s.records.Update(ctx, parentID, id, req.ToPatch())
}

func (s *HealthRecordService) Remove(ctx context.Context, parentID, id uuid.UUID) error {
	return s.records.Remove(ctx, parentID, id)
}
