package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"nestling/internal/models/db_models"
	"nestling/internal/models/request_models"
	"nestling/internal/repositories"
	"nestling/pkg/utils"
)

func newSolidsService(db *gorm.DB) SolidsServiceInterface {
	guard := NewGuardianService(repositories.NewParentChildRepository(db))
	return NewSolidsService(
		repositories.NewSolidsRepository(db),
		repositories.NewCategoryItemRepository(db),
		guard,
	)
}

func seedCategoryItem(t *testing.T, db *gorm.DB, name string) *db_models.CategoryItem {
	t.Helper()

	category := &db_models.Category{Name: name + "-category"}
	require.NoError(t, db.Create(category).Error)
	item := &db_models.CategoryItem{
		CategoryID: category.ID,
		Name:       name,
		IsDefault:  true,
	}
	require.NoError(t, db.Create(item).Error)
	return item
}

func TestSolidsCreateWithLines(t *testing.T) {
	db := newTestDB(t)
	svc := newSolidsService(db)
	ctx := context.Background()

	parent := seedParent(t, db, "solids@test.dev")
	child := seedChild(t, db, parent.ID)
	carrot := seedCategoryItem(t, db, "carrot")
	apple := seedCategoryItem(t, db, "apple")

	rec, err := svc.Create(ctx, parent.ID, request_models.CreateSolidsRequest{
		ChildID: child.ID,
		Date:    time.Date(2025, 5, 10, 12, 0, 0, 0, time.UTC),
		Note:    "first puree",
		Lines: []request_models.SolidLineRequest{
			{CategoryItemID: carrot.ID, Amount: 30},
			{CategoryItemID: apple.ID, Amount: 15},
		},
	})
	require.NoError(t, err)
	require.Len(t, rec.Lines, 2)

	got, err := svc.FindOne(ctx, parent.ID, rec.ID)
	require.NoError(t, err)
	require.Len(t, got.Lines, 2)
	assert.Equal(t, "carrot", got.Lines[0].CategoryItem.Name)
	assert.Equal(t, "carrot-category", got.Lines[0].CategoryItem.Category.Name)
}

func TestSolidsCreateRejectsEmptyLines(t *testing.T) {
	db := newTestDB(t)
	svc := newSolidsService(db)
	ctx := context.Background()

	parent := seedParent(t, db, "solids@test.dev")
	child := seedChild(t, db, parent.ID)

	_, err := svc.Create(ctx, parent.ID, request_models.CreateSolidsRequest{
		ChildID: child.ID,
		Date:    time.Now(),
	})
	assert.ErrorIs(t, err, utils.ErrMissingFields)
}

func TestSolidsCreateUnknownIngredient(t *testing.T) {
	db := newTestDB(t)
	svc := newSolidsService(db)
	ctx := context.Background()

	parent := seedParent(t, db, "solids@test.dev")
	child := seedChild(t, db, parent.ID)
	carrot := seedCategoryItem(t, db, "carrot")

	_, err := svc.Create(ctx, parent.ID, request_models.CreateSolidsRequest{
		ChildID: child.ID,
		Date:    time.Now(),
		Lines: []request_models.SolidLineRequest{
			{CategoryItemID: carrot.ID, Amount: 30},
			{CategoryItemID: uuid.New(), Amount: 10},
		},
	})
	assert.ErrorIs(t, err, utils.ErrCategoryItemNotFound)

	var count int64
	require.NoError(t, db.Model(&db_models.Solids{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestSolidsRemoveCascadesLines(t *testing.T) {
	db := newTestDB(t)
	svc := newSolidsService(db)
	ctx := context.Background()

	parent := seedParent(t, db, "solids@test.dev")
	child := seedChild(t, db, parent.ID)
	carrot := seedCategoryItem(t, db, "carrot")

	rec, err := svc.Create(ctx, parent.ID, request_models.CreateSolidsRequest{
		ChildID: child.ID,
		Date:    time.Now(),
		Lines:   []request_models.SolidLineRequest{{CategoryItemID: carrot.ID, Amount: 30}},
	})
	require.NoError(t, err)

	require.NoError(t, svc.Remove(ctx, parent.ID, rec.ID))

	_, err = svc.FindOne(ctx, parent.ID, rec.ID)
	assert.ErrorIs(t, err, utils.ErrRecordNotFound)

	var lines []db_models.SolidLine
	require.NoError(t, db.Where("solids_id = ?", rec.ID).Find(&lines).Error)
	require.Len(t, lines, 1)
	assert.True(t, lines[0].IsDeleted)

	// the ingredient definition itself is untouched
	var item db_models.CategoryItem
	require.NoError(t, db.First(&item, "id = ?", carrot.ID).Error)
	assert.False(t, item.IsDeleted)
}
