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

type AppointmentServiceInterface interface {
	Create(ctx context.Context, parentID uuid.UUID, req request_models.CreateAppointmentRequest) (*db_models.Appointment, error)
	FindAll(ctx context.Context, parentID, childID uuid.UUID, limit, offset int) ([]db_models.Appointment, error)
	FindBetween(ctx context.Context, parentID, childID uuid.UUID, start, end time.Time) ([]db_models.Appointment, error)
	FindOne(ctx context.Context, parentID, id uuid.UUID) (*db_models.Appointment, error)
	Update(ctx context.Context, parentID, id uuid.UUID, req request_models.UpdateAppointmentRequest) (*db_models.Appointment, error)
	Remove(ctx context.Context, parentID, id uuid.UUID) error
}

type AppointmentService struct {
	records *RecordService[db_models.Appointment]
}

func NewAppointmentService(
	repo repositories.RecordRepository[db_models.Appointment],
	guard GuardianServiceInterface,
) AppointmentServiceInterface {
	return &AppointmentService{
		records: NewRecordService(repo, guard, func(ctx context.Context, rec *db_models.Appointment) (uuid.UUID, error) {
			return rec.ChildID, nil
		}),
	}
}

func (s *AppointmentService) Create(ctx context.Context, parentID uuid.UUID, req request_models.CreateAppointmentRequest) (*db_models.Appointment, error) {
	rec := &db_models.Appointment{
		ChildID:           req.ChildID,
		Doctor:            req.Doctor,
		Date:              req.Date,
		Venue:             req.Venue,
		Note:              req.Note,
		AppointmentNumber: req.AppointmentNumber,
	}
	return s.records.Create(ctx, parentID, rec, func() error {
		if req.Doctor == "" || req.Venue == "" || req.Date.IsZero() {
			return utils.ErrMissingFields
		}
		return nil
	})
}

func (s *AppointmentService) FindAll(ctx context.Context, parentID, childID uuid.UUID, limit, offset int) ([]db_models.Appointment, error) {
	return s.records.FindAll(ctx, parentID, childID, limit, offset)
}

func (s *AppointmentService) FindBetween(ctx context.Context, parentID, childID uuid.UUID, start, end time.Time) ([]db_models.Appointment, error) {
	return s.records.FindAllBetween(ctx, parentID, childID, start, end)
}

func (s *AppointmentService) FindOne(ctx context.Context, parentID, id uuid.UUID) (*db_models.Appointment, error) {
	return s.records.FindOne(ctx, parentID, id)
}

func (s *AppointmentService) Update(ctx context.Context, parentID, id uuid.UUID, req request_models.UpdateAppointmentRequest) (*db_models.Appointment, error) {
	return s.records.Update(ctx, parentID, id, req.ToPatch())
}

func (s *AppointmentService) Remove(ctx context.Context, parentID, id uuid.UUID) error {
	return s.records.Remove(ctx, parentID, id)
}
