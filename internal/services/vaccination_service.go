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

type VaccinationServiceInterface interface {
	Create(ctx context.Context, parentID uuid.UUID, req request_models.CreateVaccinationRequest) (*db_models.Vaccination, error)
	FindAll(ctx context.Context, parentID, childID uuid.UUID, limit, offset int) ([]db_models.Vaccination, error)
	FindBetween(ctx context.Context, parentID, childID uuid.UUID, start, end time.Time) ([]db_models.Vaccination, error)
	FindOne(ctx context.Context, parentID, id uuid.UUID) (*db_models.Vaccination, error)
	Update(ctx context.Context, parentID, id uuid.UUID, req request_models.UpdateVaccinationRequest) (*db_models.Vaccination, error)
	Remove(ctx context.Context, parentID, id uuid.UUID) error
}

type VaccinationService struct {
	records     *RecordService[db_models.Vaccination]
	vaccineRepo repositories.VaccineRepository
	symptomRepo repositories.CatalogRepository[db_models.Symptom]
	linkRepo    repositories.RecordRepository[db_models.VaccinationSymptom]
}

func NewVaccinationService(
	repo repositories.RecordRepository[db_models.Vaccination],
	vaccineRepo repositories.VaccineRepository,
	symptomRepo repositories.CatalogRepository[db_models.Symptom],
	linkRepo repositories.RecordRepository[db_models.VaccinationSymptom],
	guard GuardianServiceInterface,
) VaccinationServiceInterface {
	return &VaccinationService{
		records: NewRecordService(repo, guard, func(ctx context.Context, rec *db_models.Vaccination) (uuid.UUID, error) {
			return rec.ChildID, nil
		}),
		vaccineRepo: vaccineRepo,
		symptomRepo: symptomRepo,
		linkRepo:    linkRepo,
	}
}

func (s *VaccinationService) checkSymptoms(ctx context.Context, ids []uuid.UUID) error {
	for _, id := range ids {
		symptom, err := s.symptomRepo.FindByID(ctx, id)
		if err != nil {
			return utils.ErrDatabaseError
		}
		if symptom == nil {
			return utils.ErrSymptomNotFound
		}
	}
	return nil
}

func (s *VaccinationService) Create(ctx context.Context, parentID uuid.UUID, req request_models.CreateVaccinationRequest) (*db_models.Vaccination, error) {
	rec := &db_models.Vaccination{
		ChildID:   req.ChildID,
		VaccineID: req.VaccineID,
		Date:      req.Date,
		Venue:     req.Venue,
		Notes:     req.Notes,
	}
	for _, symptomID := range req.SymptomIDs {
		rec.Symptoms = append(rec.Symptoms, db_models.VaccinationSymptom{SymptomID: symptomID})
	}
	for _, path := range req.Images {
		rec.Images = append(rec.Images, db_models.VaccinationImage{Path: path})
	}
	return s.records.Create(ctx, parentID, rec, func() error {
		if req.Date.IsZero() {
			return utils.ErrMissingFields
		}
		vaccine, err := s.vaccineRepo.FindByID(ctx, req.VaccineID)
		if err != nil {
			return utils.ErrDatabaseError
		}
		if vaccine == nil {
			return utils.ErrVaccineNotFound
		}
		return s.checkSymptoms(ctx, req.SymptomIDs)
	})
}

func (s *VaccinationService) FindAll(ctx context.Context, parentID, childID uuid.UUID, limit, offset int) ([]db_models.Vaccination, error) {
	return s.records.FindAll(ctx, parentID, childID, limit, offset)
}

func (s *VaccinationService) FindBetween(ctx context.Context, parentID, childID uuid.UUID, start, end time.Time) ([]db_models.Vaccination, error) {
	return s.records.FindAllBetween(ctx, parentID, childID, start, end)
}

func (s *VaccinationService) FindOne(ctx context.Context, parentID, id uuid.UUID) (*db_models.Vaccination, error) {
	return s.records.FindOne(ctx, parentID, id)
}

func (s *VaccinationService) Update(ctx context.Context, parentID, id uuid.UUID, req request_models.UpdateVaccinationRequest) (*db_models.Vaccination, error) {
	var before *db_models.Vaccination
	if req.SymptomIDs != nil {
		if err := s.checkSymptoms(ctx, *req.SymptomIDs); err != nil {
			return nil, err
		}
		rec, err := s.records.FindOne(ctx, parentID, id)
		if err != nil {
			return nil, err
		}
		before = rec
	}

	updated, err := s.records.Update(ctx, parentID, id, req.ToPatch())
	if err != nil {
		return nil, err
	}

	// replace the symptom links once the owner checks have passed
	if req.SymptomIDs != nil {
		for _, link := range before.Symptoms {
			if err := s.linkRepo.SoftDelete(ctx, link.ID); err != nil {
				return nil, utils.ErrDatabaseError
			}
		}
		for _, symptomID := range *req.SymptomIDs {
			link := &db_models.VaccinationSymptom{VaccinationID: id, SymptomID: symptomID}
			if err := s.linkRepo.Insert(ctx, link); err != nil {
				return nil, utils.ErrDatabaseError
			}
		}
		return s.records.FindOne(ctx, parentID, id)
	}
	return updated, nil
}

func (s *VaccinationService) Remove(ctx context.Context, parentID, id uuid.UUID) error {
	return s.records.Remove(ctx, parentID, id)
}
