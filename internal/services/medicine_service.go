package services

import (
	"context"

	"github.com/google/uuid"

	"nestling/internal/models/db_models"
	"nestling/internal/models/request_models"
	"nestling/internal/repositories"
	"nestling/pkg/utils"
)

type MedicineServiceInterface interface {
	Create(ctx context.Context, parentID uuid.UUID, req request_models.CreateMedicineRequest) (*db_models.Medicine, error)
	FindAll(ctx context.Context, parentID uuid.UUID) ([]db_models.Medicine, error)
	FindOne(ctx context.Context, parentID, id uuid.UUID) (*db_models.Medicine, error)
	Update(ctx context.Context, parentID, id uuid.UUID, req request_models.UpdateMedicineRequest) (*db_models.Medicine, error)
	Remove(ctx context.Context, parentID, id uuid.UUID) error
}

type MedicineService struct {
	repo repositories.MedicineRepository
}

func NewMedicineService(repo repositories.MedicineRepository) MedicineServiceInterface {
	return &MedicineService{repo: repo}
}

// owned fetches the medicine and verifies the parent created it. Shared
// catalog entries have no owner and cannot be changed through this path.
func (s *MedicineService) owned(ctx context.Context, parentID, id uuid.UUID) (*db_models.Medicine, error) {
	medicine, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if medicine == nil {
		return nil, utils.ErrMedicineNotFound
	}
	if medicine.OwnerParentID == nil {
		return nil, utils.ErrDefaultCatalogItem
	}
	if *medicine.OwnerParentID != parentID {
		return nil, utils.ErrNotResourceOwner
	}
	return medicine, nil
}

func (s *MedicineService) Create(ctx context.Context, parentID uuid.UUID, req request_models.CreateMedicineRequest) (*db_models.Medicine, error) {
	count, err := s.repo.CountWhere(ctx, "LOWER(name) = LOWER(?) AND (owner_parent_id IS NULL OR owner_parent_id = ?)", req.Name, parentID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if count > 0 {
		return nil, utils.ErrDuplicateName
	}
	rec := &db_models.Medicine{
		Name:          req.Name,
		Description:   req.Description,
		OwnerParentID: &parentID,
	}
	if err := s.repo.Insert(ctx, rec); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return rec, nil
}

func (s *MedicineService) FindAll(ctx context.Context, parentID uuid.UUID) ([]db_models.Medicine, error) {
	medicines, err := s.repo.ListVisible(ctx, parentID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return medicines, nil
}

func (s *MedicineService) FindOne(ctx context.Context, parentID, id uuid.UUID) (*db_models.Medicine, error) {
	medicine, err := s.repo.FindAvailable(ctx, id, parentID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if medicine == nil {
		return nil, utils.ErrMedicineNotFound
	}
	return medicine, nil
}

func (s *MedicineService) Update(ctx context.Context, parentID, id uuid.UUID, req request_models.UpdateMedicineRequest) (*db_models.Medicine, error) {
	medicine, err := s.owned(ctx, parentID, id)
	if err != nil {
		return nil, err
	}
	patch := req.ToPatch()
	if len(patch) == 0 {
		return medicine, nil
	}
	if err := s.repo.ApplyPatch(ctx, id, patch); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return s.repo.FindByID(ctx, id)
}

func (s *MedicineService) Remove(ctx context.Context, parentID, id uuid.UUID) error {
	if _, err := s.owned(ctx, parentID, id); err != nil {
		return err
	}
	if err := s.repo.SoftDelete(ctx, id); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}
