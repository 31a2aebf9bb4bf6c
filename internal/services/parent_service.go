package services

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"nestling/internal/models/db_models"
	"nestling/internal/models/request_models"
	"nestling/internal/models/response_models"
	"nestling/internal/repositories"
	"nestling/pkg/logger"
	"nestling/pkg/utils"
)

type ParentServiceInterface interface {
	SignUp(ctx context.Context, req request_models.SignUpRequest) (*response_models.SignUpResponse, error)
	Profile(ctx context.Context, parentID uuid.UUID) (*response_models.ParentProfileResponse, error)
	Update(ctx context.Context, parentID uuid.UUID, req request_models.UpdateParentRequest) (*response_models.ParentProfileResponse, error)
	// Delete removes the account row outright and revokes every active
	// guardianship. Children and their records stay for co-guardians.
	Delete(ctx context.Context, parentID uuid.UUID) error
}

type ParentService struct {
	parentRepo repositories.ParentRepository
	guard      GuardianServiceInterface
	mail       MailServiceInterface
}

func NewParentService(
	parentRepo repositories.ParentRepository,
	guard GuardianServiceInterface,
	mail MailServiceInterface,
) ParentServiceInterface {
	return &ParentService{parentRepo: parentRepo, guard: guard, mail: mail}
}

func toProfile(parent *db_models.Parent) *response_models.ParentProfileResponse {
	return &response_models.ParentProfileResponse{
		ParentID:    parent.ID.String(),
		FirstName:   parent.FirstName,
		LastName:    parent.LastName,
		Email:       parent.Email,
		PhoneNumber: parent.PhoneNumber,
		Image:       parent.Image,
		BloodGroup:  parent.BloodGroup,
		Address:     parent.Address,
	}
}

func (s *ParentService) SignUp(ctx context.Context, req request_models.SignUpRequest) (*response_models.SignUpResponse, error) {
	existing, err := s.parentRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if existing != nil {
		return nil, utils.ErrEmailAlreadyExists
	}

	existing, err = s.parentRepo.FindByPhone(ctx, req.PhoneNumber)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if existing != nil {
		return nil, utils.ErrPhoneAlreadyExists
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	parent := &db_models.Parent{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Email:       req.Email,
		Password:    hashed,
		PhoneNumber: req.PhoneNumber,
		Image:       req.Image,
		BloodGroup:  req.BloodGroup,
		Address:     req.Address,
	}
	if err := s.parentRepo.Insert(ctx, parent); err != nil {
		return nil, utils.ErrDatabaseError
	}

	if err := s.mail.SendWelcome(parent.Email, parent.FirstName); err != nil {
		logger.GetLogger().Warn("welcome mail failed",
			zap.String("email", parent.Email), zap.Error(err))
	}

	return &response_models.SignUpResponse{
		ParentID: parent.ID.String(),
		Email:    parent.Email,
	}, nil
}

func (s *ParentService) Profile(ctx context.Context, parentID uuid.UUID) (*response_models.ParentProfileResponse, error) {
	parent, err := s.parentRepo.FindByID(ctx, parentID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if parent == nil {
		return nil, utils.ErrParentNotFound
	}
	return toProfile(parent), nil
}

func (s *ParentService) Update(ctx context.Context, parentID uuid.UUID, req request_models.UpdateParentRequest) (*response_models.ParentProfileResponse, error) {
	parent, err := s.parentRepo.FindByID(ctx, parentID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if parent == nil {
		return nil, utils.ErrParentNotFound
	}

	if req.PhoneNumber != nil && *req.PhoneNumber != parent.PhoneNumber {
		other, err := s.parentRepo.FindByPhone(ctx, *req.PhoneNumber)
		if err != nil {
			return nil, utils.ErrDatabaseError
		}
		if other != nil {
			return nil, utils.ErrPhoneAlreadyExists
		}
	}

	patch := req.ToPatch()
	if len(patch) == 0 {
		return toProfile(parent), nil
	}
	if err := s.parentRepo.ApplyPatch(ctx, parentID, patch); err != nil {
		return nil, utils.ErrDatabaseError
	}

	parent, err = s.parentRepo.FindByID(ctx, parentID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return toProfile(parent), nil
}

func (s *ParentService) Delete(ctx context.Context, parentID uuid.UUID) error {
	parent, err := s.parentRepo.FindByID(ctx, parentID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if parent == nil {
		return utils.ErrParentNotFound
	}

	relations, err := s.guard.ActiveChildren(ctx, parentID)
	if err != nil {
		return err
	}
	for _, relation := range relations {
		if err := s.guard.RevokeChild(ctx, parentID, relation.ChildID); err != nil {
			return err
		}
	}

	if err := s.parentRepo.Delete(ctx, parentID); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}
