package services

import (
	"context"

	"github.com/google/uuid"

	"nestling/internal/models/db_models"
	"nestling/internal/models/request_models"
	"nestling/internal/models/response_models"
	"nestling/internal/repositories"
	"nestling/pkg/utils"
)

type MedicationServiceInterface interface {
	Create(ctx context.Context, parentID uuid.UUID, req request_models.CreateMedicationRequest) (*db_models.Medication, error)
	// FindAll returns the flattened schedule: one row per live slot of each
	// live medication for the child.
	FindAll(ctx context.Context, parentID, childID uuid.UUID, limit, offset int) ([]response_models.MedicationSlotRow, error)
	FindOne(ctx context.Context, parentID, id uuid.UUID) (*db_models.Medication, error)
	Update(ctx context.Context, parentID, id uuid.UUID, req request_models.UpdateMedicationRequest) (*db_models.Medication, error)
	Remove(ctx context.Context, parentID, id uuid.UUID) error
}

type MedicationService struct {
	records      *RecordService[db_models.Medication]
	medicineRepo repositories.MedicineRepository
}

func NewMedicationService(
	repo repositories.RecordRepository[db_models.Medication],
	medicineRepo repositories.MedicineRepository,
	guard GuardianServiceInterface,
) MedicationServiceInterface {
	return &MedicationService{
		records: NewRecordService(repo, guard, func(ctx context.Context, rec *db_models.Medication) (uuid.UUID, error) {
			return rec.ChildID, nil
		}),
		medicineRepo: medicineRepo,
	}
}

func (s *MedicationService) Create(ctx context.Context, parentID uuid.UUID, req request_models.CreateMedicationRequest) (*db_models.Medication, error) {
	rec := &db_models.Medication{
		ChildID:    req.ChildID,
		MedicineID: req.MedicineID,
		StartDate:  req.StartDate,
		EndDate:    req.EndDate,
		Frequency:  req.Frequency,
		Note:       req.Note,
	}
	return s.records.Create(ctx, parentID, rec, func() error {
		if req.StartDate.IsZero() || req.EndDate.IsZero() || req.Frequency == "" {
			return utils.ErrMissingFields
		}
		if req.EndDate.Before(req.StartDate) {
			return utils.ErrInvalidInput
		}
		// the medicine must be a shared definition or this parent's custom one
		medicine, err := s.medicineRepo.FindAvailable(ctx, req.MedicineID, parentID)
		if err != nil {
			return utils.ErrDatabaseError
		}
		if medicine == nil {
			return utils.ErrMedicineNotFound
		}
		return nil
	})
}

// FindAll flattens the child's medication schedule into one row per slot.
// limit and offset page over medications, not rows: each medication in the
// page contributes all of its slots, so a page can hold more rows than limit.
func (s *MedicationService) FindAll(ctx context.Context, parentID, childID uuid.UUID, limit, offset int) ([]response_models.MedicationSlotRow, error) {
	medications, err := s.records.FindAll(ctx, parentID, childID, limit, offset)
	if err != nil {
		return nil, err
	}

	rows := make([]response_models.MedicationSlotRow, 0)
	for _, med := range medications {
		for _, slot := range med.Slots {
			status := slot.Status
			if status == "" {
				status = db_models.SlotNotTaken
			}
			rows = append(rows, response_models.MedicationSlotRow{
				SlotID:     slot.ID.String(),
				MedicineID: med.MedicineID.String(),
				Frequency:  med.Frequency,
				Note:       med.Note,
				Date:       slot.Date,
				Status:     string(status),
				TimeOfDay:  slot.TimeOfDay,
				Amount:     slot.Amount,
			})
		}
	}
	return rows, nil
}

func (s *MedicationService) FindOne(ctx context.Context, parentID, id uuid.UUID) (*db_models.Medication, error) {
	return s.records.FindOne(ctx, parentID, id)
}

func (s *MedicationService) Update(ctx context.Context, parentID, id uuid.UUID, req request_models.UpdateMedicationRequest) (*db_models.Medication, error) {
	return s.records.Update(ctx, parentID, id, req.ToPatch())
}

func (s *MedicationService) Remove(ctx context.Context, parentID, id uuid.UUID) error {
	return s.records.Remove(ctx, parentID, id)
}
