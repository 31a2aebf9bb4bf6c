package services

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"nestling/internal/models/db_models"
	"nestling/internal/repositories"
	"nestling/pkg/logger"
	"nestling/pkg/utils"
)

// GuardianServiceInterface is the ownership verifier every record service
// runs before touching the store. Access is granted by an Active
// ParentChild row and nothing else.
type GuardianServiceInterface interface {
	// VerifyGuardianship returns ErrChildNotOwned unless an Active relation
	// links parentID to childID. Pure read, safe to call repeatedly.
	VerifyGuardianship(ctx context.Context, parentID, childID uuid.UUID) error
	ActiveChildren(ctx context.Context, parentID uuid.UUID) ([]db_models.ParentChild, error)
	// RevokeChild flips the Active relation to Deleted. The relation row and
	// the child's records stay in storage; other guardians keep access.
	RevokeChild(ctx context.Context, parentID, childID uuid.UUID) error
}

type GuardianService struct {
	relationRepo repositories.ParentChildRepository
}

func NewGuardianService(relationRepo repositories.ParentChildRepository) GuardianServiceInterface {
	return &GuardianService{relationRepo: relationRepo}
}

func (g *GuardianService) VerifyGuardianship(ctx context.Context, parentID, childID uuid.UUID) error {
	relation, err := g.relationRepo.FindActive(ctx, parentID, childID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if relation == nil {
		logger.GetLogger().Debug("guardianship check failed",
			zap.String("parent_id", parentID.String()),
			zap.String("child_id", childID.String()))
		return utils.ErrChildNotOwned
	}
	return nil
}

func (g *GuardianService) ActiveChildren(ctx context.Context, parentID uuid.UUID) ([]db_models.ParentChild, error) {
	relations, err := g.relationRepo.ListActiveByParent(ctx, parentID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return relations, nil
}

func (g *GuardianService) RevokeChild(ctx context.Context, parentID, childID uuid.UUID) error {
	relation, err := g.relationRepo.FindActive(ctx, parentID, childID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if relation == nil {
		return utils.ErrChildNotFound
	}

	if err := g.relationRepo.MarkDeleted(ctx, relation.ID); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}
