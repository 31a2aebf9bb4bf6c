package services

import (
	"context"

	"github.com/google/uuid"

	"nestling/internal/models/db_models"
	"nestling/internal/models/request_models"
	"nestling/internal/repositories"
	"nestling/pkg/utils"
)

type MedicationSlotServiceInterface interface {
	Create(ctx context.Context, parentID uuid.UUID, req request_models.CreateMedicationSlotRequest) (*db_models.MedicationSlot, error)
	FindAll(ctx context.Context, parentID, childID uuid.UUID) ([]db_models.MedicationSlot, error)
	FindOne(ctx context.Context, parentID, id uuid.UUID) (*db_models.MedicationSlot, error)
	Update(ctx context.Context, parentID, id uuid.UUID, req request_models.UpdateMedicationSlotRequest) (*db_models.MedicationSlot, error)
	Remove(ctx context.Context, parentID, id uuid.UUID) error
}

type MedicationSlotService struct {
	records  *RecordService[db_models.MedicationSlot]
	slotRepo repositories.MedicationSlotRepository
	guard    GuardianServiceInterface
}

func NewMedicationSlotService(
	slotRepo repositories.MedicationSlotRepository,
	medicationRepo repositories.RecordRepository[db_models.Medication],
	guard GuardianServiceInterface,
) MedicationSlotServiceInterface {
	// a slot belongs to a child only through its medication
	resolve := func(ctx context.Context, rec *db_models.MedicationSlot) (uuid.UUID, error) {
		medication, err := medicationRepo.FindByID(ctx, rec.MedicationID)
		if err != nil {
			return uuid.Nil, utils.ErrDatabaseError
		}
		if medication == nil {
			return uuid.Nil, utils.ErrMedicationNotFound
		}
		return medication.ChildID, nil
	}
	return &MedicationSlotService{
		records:  NewRecordService[db_models.MedicationSlot](slotRepo, guard, resolve),
		slotRepo: slotRepo,
		guard:    guard,
	}
}

func validSlotStatus(status string) bool {
	switch db_models.SlotStatus(status) {
	case db_models.SlotTaken, db_models.SlotMissed:
		return true
	}
	return false
}

func (s *MedicationSlotService) Create(ctx context.Context, parentID uuid.UUID, req request_models.CreateMedicationSlotRequest) (*db_models.MedicationSlot, error) {
	rec := &db_models.MedicationSlot{
		MedicationID: req.MedicationID,
		Date:         req.Date,
		TimeOfDay:    req.TimeOfDay,
		Status:       db_models.SlotStatus(req.Status),
		Amount:       req.Amount,
	}
	return s.records.Create(ctx, parentID, rec, func() error {
		if req.Date.IsZero() {
			return utils.ErrMissingFields
		}
		if !validSlotStatus(req.Status) {
			return utils.ErrInvalidSlotStatus
		}
		if req.Amount <= 0 {
			return utils.ErrInvalidInput
		}
		return nil
	})
}

func (s *MedicationSlotService) FindAll(ctx context.Context, parentID, childID uuid.UUID) ([]db_models.MedicationSlot, error) {
	if err := s.guard.VerifyGuardianship(ctx, parentID, childID); err != nil {
		return nil, err
	}
	slots, err := s.slotRepo.ListForChild(ctx, childID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return slots, nil
}

func (s *MedicationSlotService) FindOne(ctx context.Context, parentID, id uuid.UUID) (*db_models.MedicationSlot, error) {
	return s.records.FindOne(ctx, parentID, id)
}

func (s *MedicationSlotService) Update(ctx context.Context, parentID, id uuid.UUID, req request_models.UpdateMedicationSlotRequest) (*db_models.MedicationSlot, error) {
	if req.Status != nil && !validSlotStatus(*req.Status) {
		return nil, utils.ErrInvalidSlotStatus
	}
	return s.records.Update(ctx, parentID, id, req.ToPatch())
}

func (s *MedicationSlotService) Remove(ctx context.Context, parentID, id uuid.UUID) error {
	return s.records.Remove(ctx, parentID, id)
}
