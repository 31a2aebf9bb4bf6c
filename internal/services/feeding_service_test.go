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

func newBottleService(db *gorm.DB) BottleServiceInterface {
	guard := NewGuardianService(repositories.NewParentChildRepository(db))
	return NewBottleService(
		repositories.NewBottleRepository(db),
		repositories.NewCatalogRepository[db_models.MilkType](db),
		guard)
}

func newNursingService(db *gorm.DB) NursingServiceInterface {
	guard := NewGuardianService(repositories.NewParentChildRepository(db))
	return NewNursingService(repositories.NewNursingRepository(db), guard)
}

func seedMilkType(t *testing.T, db *gorm.DB, name string) *db_models.MilkType {
	t.Helper()

	milkType := &db_models.MilkType{Name: name}
	require.NoError(t, db.Create(milkType).Error)
	return milkType
}

func TestBottleCreateAndFetch(t *testing.T) {
	db := newTestDB(t)
	svc := newBottleService(db)
	ctx := context.Background()

	parent := seedParent(t, db, "bottle@test.dev")
	child := seedChild(t, db, parent.ID)
	milkType := seedMilkType(t, db, "formula")

	rec, err := svc.Create(ctx, parent.ID, request_models.CreateBottleRequest{
		ChildID:    child.ID,
		MilkTypeID: milkType.ID,
		Date:       time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC),
		Time:       time.Date(2025, 5, 1, 8, 0, 0, 0, time.UTC),
		Volume:     120,
	})
	require.NoError(t, err)

	got, err := svc.FindOne(ctx, parent.ID, rec.ID)
	require.NoError(t, err)
	assert.Equal(t, 120.0, got.Volume)
	assert.Equal(t, milkType.ID, got.MilkTypeID)
}

func TestBottleCreateRejectsEmptyEntry(t *testing.T) {
	db := newTestDB(t)
	svc := newBottleService(db)
	ctx := context.Background()

	parent := seedParent(t, db, "bottle@test.dev")
	child := seedChild(t, db, parent.ID)
	milkType := seedMilkType(t, db, "formula")

	// no volume, no stash, no notes
	_, err := svc.Create(ctx, parent.ID, request_models.CreateBottleRequest{
		ChildID:    child.ID,
		MilkTypeID: milkType.ID,
		Date:       time.Now(),
		Time:       time.Now(),
	})
	assert.ErrorIs(t, err, utils.ErrMissingFields)

	// stash alone is enough
	_, err = svc.Create(ctx, parent.ID, request_models.CreateBottleRequest{
		ChildID:    child.ID,
		MilkTypeID: milkType.ID,
		Date:       time.Now(),
		Time:       time.Now(),
		Stash:      "fridge",
	})
	assert.NoError(t, err)
}

func TestBottleCreateRequiresKnownMilkType(t *testing.T) {
	db := newTestDB(t)
	svc := newBottleService(db)
	ctx := context.Background()

	parent := seedParent(t, db, "bottle@test.dev")
	child := seedChild(t, db, parent.ID)

	_, err := svc.Create(ctx, parent.ID, request_models.CreateBottleRequest{
		ChildID:    child.ID,
		MilkTypeID: uuid.New(),
		Date:       time.Now(),
		Time:       time.Now(),
		Volume:     120,
	})
	assert.ErrorIs(t, err, utils.ErrMilkTypeNotFound)

	var count int64
	db.Model(&db_models.Bottle{}).Count(&count)
	assert.Zero(t, count)
}

func TestNursingCreateRejectsEmptyEntry(t *testing.T) {
	db := newTestDB(t)
	svc := newNursingService(db)
	ctx := context.Background()

	parent := seedParent(t, db, "nursing@test.dev")
	child := seedChild(t, db, parent.ID)

	_, err := svc.Create(ctx, parent.ID, request_models.CreateNursingRequest{
		ChildID: child.ID,
		Date:    time.Now(),
		Time:    time.Now(),
	})
	assert.ErrorIs(t, err, utils.ErrMissingFields)

	// a single side's duration is enough
	rec, err := svc.Create(ctx, parent.ID, request_models.CreateNursingRequest{
		ChildID:      child.ID,
		Date:         time.Now(),
		Time:         time.Now(),
		LeftDuration: 10,
	})
	require.NoError(t, err)
	assert.Equal(t, 10, rec.LeftDuration)

	// so are notes on their own
	_, err = svc.Create(ctx, parent.ID, request_models.CreateNursingRequest{
		ChildID: child.ID,
		Date:    time.Now(),
		Time:    time.Now(),
		Notes:   "refused to latch",
	})
	assert.NoError(t, err)
}
