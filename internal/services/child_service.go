package services

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"nestling/internal/models/db_models"
	"nestling/internal/models/request_models"
	"nestling/internal/repositories"
	"nestling/pkg/logger"
	"nestling/pkg/utils"
)

type ChildServiceInterface interface {
	// Register creates the child under the calling parent and generates the
	// vaccination schedule for the child's region.
	Register(ctx context.Context, parentID uuid.UUID, req request_models.CreateChildRequest) (*db_models.Child, error)
	FindAll(ctx context.Context, parentID uuid.UUID) ([]db_models.Child, error)
	FindOne(ctx context.Context, parentID, id uuid.UUID) (*db_models.Child, error)
	Update(ctx context.Context, parentID, id uuid.UUID, req request_models.UpdateChildRequest) (*db_models.Child, error)
	// Remove revokes the caller's guardianship. The child row and its
	// records are untouched; co-guardians keep access.
	Remove(ctx context.Context, parentID, id uuid.UUID) error
}

type ChildService struct {
	childRepo   repositories.ChildRepository
	vaccineRepo repositories.VaccineRepository
	guard       GuardianServiceInterface
}

func NewChildService(
	childRepo repositories.ChildRepository,
	vaccineRepo repositories.VaccineRepository,
	guard GuardianServiceInterface,
) ChildServiceInterface {
	return &ChildService{childRepo: childRepo, vaccineRepo: vaccineRepo, guard: guard}
}

func (s *ChildService) Register(ctx context.Context, parentID uuid.UUID, req request_models.CreateChildRequest) (*db_models.Child, error) {
	if req.FirstName == "" || req.LastName == "" || req.Birthday.IsZero() || req.Region == "" {
		return nil, utils.ErrMissingFields
	}

	child := &db_models.Child{
		FirstName:  req.FirstName,
		MiddleName: req.MiddleName,
		LastName:   req.LastName,
		Birthday:   req.Birthday,
		Region:     req.Region,
		Gender:     req.Gender,
		BloodGroup: req.BloodGroup,
		Image:      req.Image,
	}
	relation := &db_models.ParentChild{
		ParentID: parentID,
		Relation: "Parent",
		Status:   db_models.RelationActive,
	}

	vaccines, err := s.vaccineRepo.ListByRegion(ctx, req.Region)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	schedule := make([]db_models.Vaccination, 0, len(vaccines))
	for _, vaccine := range vaccines {
		schedule = append(schedule, db_models.Vaccination{
			VaccineID: vaccine.ID,
			Date:      req.Birthday.AddDate(0, vaccine.AgeInMonths, 0),
		})
	}

	if err := s.childRepo.Register(ctx, child, relation, schedule); err != nil {
		return nil, utils.ErrDatabaseError
	}

	logger.GetLogger().Info("child registered",
		zap.String("child_id", child.ID.String()),
		zap.String("region", child.Region),
		zap.Int("scheduled_vaccinations", len(schedule)))
	return child, nil
}

func (s *ChildService) FindAll(ctx context.Context, parentID uuid.UUID) ([]db_models.Child, error) {
	relations, err := s.guard.ActiveChildren(ctx, parentID)
	if err != nil {
		return nil, err
	}
	children := make([]db_models.Child, 0, len(relations))
	for _, relation := range relations {
		children = append(children, relation.Child)
	}
	return children, nil
}

func (s *ChildService) FindOne(ctx context.Context, parentID, id uuid.UUID) (*db_models.Child, error) {
	child, err := s.childRepo.FindByID(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if child == nil {
		return nil, utils.ErrChildNotFound
	}
	if err := s.guard.VerifyGuardianship(ctx, parentID, id); err != nil {
		return nil, err
	}
	return child, nil
}

func (s *ChildService) Update(ctx context.Context, parentID, id uuid.UUID, req request_models.UpdateChildRequest) (*db_models.Child, error) {
	child, err := s.FindOne(ctx, parentID, id)
	if err != nil {
		return nil, err
	}
	patch := req.ToPatch()
	if len(patch) == 0 {
		return child, nil
	}
	if err := s.childRepo.ApplyPatch(ctx, id, patch); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return s.childRepo.FindByID(ctx, id)
}

func (s *ChildService) Remove(ctx context.Context, parentID, id uuid.UUID) error {
	child, err := s.childRepo.FindByID(ctx, id)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if child == nil {
		return utils.ErrChildNotFound
	}
	return s.guard.RevokeChild(ctx, parentID, id)
}
