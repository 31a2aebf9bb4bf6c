package services

import (
	"context"

	"github.com/google/uuid"

	"nestling/internal/models/db_models"
	"nestling/internal/models/request_models"
	"nestling/internal/repositories"
	"nestling/pkg/utils"
)

type CategoryItemServiceInterface interface {
	Create(ctx context.Context, parentID uuid.UUID, req request_models.CreateCategoryItemRequest) (*db_models.CategoryItem, error)
	FindAll(ctx context.Context, parentID uuid.UUID) ([]db_models.CategoryItem, error)
	FindOne(ctx context.Context, parentID, id uuid.UUID) (*db_models.CategoryItem, error)
	Update(ctx context.Context, parentID, id uuid.UUID, req request_models.UpdateCategoryItemRequest) (*db_models.CategoryItem, error)
	Remove(ctx context.Context, parentID, id uuid.UUID) error
}

type CategoryItemService struct {
	repo         repositories.CategoryItemRepository
	categoryRepo repositories.CatalogRepository[db_models.Category]
}

func NewCategoryItemService(
	repo repositories.CategoryItemRepository,
	categoryRepo repositories.CatalogRepository[db_models.Category],
) CategoryItemServiceInterface {
	return &CategoryItemService{repo: repo, categoryRepo: categoryRepo}
}

// mutable fetches the item and rejects anything the parent may not change:
// default items are immutable, custom items belong to their creator.
func (s *CategoryItemService) mutable(ctx context.Context, parentID, id uuid.UUID) (*db_models.CategoryItem, error) {
	item, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if item == nil {
		return nil, utils.ErrCategoryItemNotFound
	}
	if item.IsDefault {
		return nil, utils.ErrDefaultCatalogItem
	}
	if item.OwnerParentID == nil || *item.OwnerParentID != parentID {
		return nil, utils.ErrNotResourceOwner
	}
	return item, nil
}

func (s *CategoryItemService) Create(ctx context.Context, parentID uuid.UUID, req request_models.CreateCategoryItemRequest) (*db_models.CategoryItem, error) {
	category, err := s.categoryRepo.FindByID(ctx, req.CategoryID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if category == nil {
		return nil, utils.ErrCategoryNotFound
	}

	exists, err := s.repo.ExistsInCategory(ctx, req.CategoryID, req.Name)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if exists {
		return nil, utils.ErrDuplicateName
	}

	rec := &db_models.CategoryItem{
		CategoryID:    req.CategoryID,
		Name:          req.Name,
		IsDefault:     false,
		OwnerParentID: &parentID,
	}
	if err := s.repo.Insert(ctx, rec); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return rec, nil
}

func (s *CategoryItemService) FindAll(ctx context.Context, parentID uuid.UUID) ([]db_models.CategoryItem, error) {
	items, err := s.repo.ListVisible(ctx, parentID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return items, nil
}

func (s *CategoryItemService) FindOne(ctx context.Context, parentID, id uuid.UUID) (*db_models.CategoryItem, error) {
	item, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if item == nil {
		return nil, utils.ErrCategoryItemNotFound
	}
	if !item.IsDefault && (item.OwnerParentID == nil || *item.OwnerParentID != parentID) {
		return nil, utils.ErrNotResourceOwner
	}
	return item, nil
}

func (s *CategoryItemService) Update(ctx context.Context, parentID, id uuid.UUID, req request_models.UpdateCategoryItemRequest) (*db_models.CategoryItem, error) {
	item, err := s.mutable(ctx, parentID, id)
	if err != nil {
		return nil, err
	}
	patch := req.ToPatch()
	if len(patch) == 0 {
		return item, nil
	}
	if req.Name != nil {
		exists, err := s.repo.ExistsInCategory(ctx, item.CategoryID, *req.Name)
		if err != nil {
			return nil, utils.ErrDatabaseError
		}
		if exists {
			return nil, utils.ErrDuplicateName
		}
	}
	if err := s.repo.ApplyPatch(ctx, id, patch); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return s.repo.FindByID(ctx, id)
}

func (s *CategoryItemService) Remove(ctx context.Context, parentID, id uuid.UUID) error {
	if _, err := s.mutable(ctx, parentID, id); err != nil {
		return err
	}
	if err := s.repo.SoftDelete(ctx, id); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}
