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

func newGrowthService(db *gorm.DB) GrowthServiceInterface {
	guard := NewGuardianService(repositories.NewParentChildRepository(db))
	return NewGrowthService(repositories.NewGrowthRepository(db), guard)
}

func growthAt(childID uuid.UUID, date time.Time, weight float64) request_models.CreateGrowthRequest {
	return request_models.CreateGrowthRequest{
		ChildID: childID,
		Date:    date,
		Weight:  weight,
	}
}

func TestGrowthCreateAndFetch(t *testing.T) {
	db := newTestDB(t)
	svc := newGrowthService(db)
	ctx := context.Background()

	parent := seedParent(t, db, "p@example.com")
	child := seedChild(t, db, parent.ID)

	rec, err := svc.Create(ctx, parent.ID, growthAt(child.ID, time.Now(), 6.4))
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, rec.ID)

	got, err := svc.FindOne(ctx, parent.ID, rec.ID)
	require.NoError(t, err)
	assert.Equal(t, 6.4, got.Weight)
	assert.Equal(t, child.ID, got.ChildID)
}

func TestGrowthCreateRequiresGuardianship(t *testing.T) {
	db := newTestDB(t)
	svc := newGrowthService(db)
	ctx := context.Background()

	parent := seedParent(t, db, "p@example.com")
	stranger := seedParent(t, db, "s@example.com")
	child := seedChild(t, db, parent.ID)

	_, err := svc.Create(ctx, stranger.ID, growthAt(child.ID, time.Now(), 6.4))
	assert.ErrorIs(t, err, utils.ErrChildNotOwned)

	// nothing was written
	var count int64
	db.Model(&db_models.Growth{}).Count(&count)
	assert.Zero(t, count)
}

func TestGrowthCreateEmptyEntryRejected(t *testing.T) {
	db := newTestDB(t)
	svc := newGrowthService(db)
	ctx := context.Background()

	parent := seedParent(t, db, "p@example.com")
	child := seedChild(t, db, parent.ID)

	_, err := svc.Create(ctx, parent.ID, request_models.CreateGrowthRequest{
		ChildID: child.ID,
		Date:    time.Now(),
	})
	assert.ErrorIs(t, err, utils.ErrMissingFields)
}

func TestGrowthListNewestFirst(t *testing.T) {
	db := newTestDB(t)
	svc := newGrowthService(db)
	ctx := context.Background()

	parent := seedParent(t, db, "p@example.com")
	child := seedChild(t, db, parent.ID)

	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		_, err := svc.Create(ctx, parent.ID, growthAt(child.ID, base.AddDate(0, 0, i), float64(5+i)))
		require.NoError(t, err)
	}

	recs, err := svc.FindAll(ctx, parent.ID, child.ID, 3, 0)
	require.NoError(t, err)
	require.Len(t, recs, 3)
	assert.Equal(t, 9.0, recs[0].Weight)
	assert.Equal(t, 8.0, recs[1].Weight)

	// offset continues the same ordering
	recs, err = svc.FindAll(ctx, parent.ID, child.ID, 3, 3)
	require.NoError(t, err)
	require.Len(t, recs, 2)
	assert.Equal(t, 6.0, recs[0].Weight)
}

func TestGrowthListPaginationBounds(t *testing.T) {
	db := newTestDB(t)
	svc := newGrowthService(db)
	ctx := context.Background()

	parent := seedParent(t, db, "p@example.com")
	child := seedChild(t, db, parent.ID)

	_, err := svc.FindAll(ctx, parent.ID, child.ID, 0, 0)
	assert.ErrorIs(t, err, utils.ErrInvalidLimit)

	_, err = svc.FindAll(ctx, parent.ID, child.ID, 10, -1)
	assert.ErrorIs(t, err, utils.ErrInvalidOffset)
}

func TestGrowthListEmptyIsNotAnError(t *testing.T) {
	db := newTestDB(t)
	svc := newGrowthService(db)
	ctx := context.Background()

	parent := seedParent(t, db, "p@example.com")
	child := seedChild(t, db, parent.ID)

	recs, err := svc.FindAll(ctx, parent.ID, child.ID, 10, 0)
	require.NoError(t, err)
	assert.Empty(t, recs)
}

func TestGrowthListDoesNotLeakAcrossChildren(t *testing.T) {
	db := newTestDB(t)
	svc := newGrowthService(db)
	ctx := context.Background()

	parent := seedParent(t, db, "p@example.com")
	first := seedChild(t, db, parent.ID)
	second := seedChild(t, db, parent.ID)

	_, err := svc.Create(ctx, parent.ID, growthAt(first.ID, time.Now(), 6.0))
	require.NoError(t, err)

	recs, err := svc.FindAll(ctx, parent.ID, second.ID, 10, 0)
	require.NoError(t, err)
	assert.Empty(t, recs)
}

func TestGrowthFindBetweenInclusive(t *testing.T) {
	db := newTestDB(t)
	svc := newGrowthService(db)
	ctx := context.Background()

	parent := seedParent(t, db, "p@example.com")
	child := seedChild(t, db, parent.ID)

	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 4; i++ {
		_, err := svc.Create(ctx, parent.ID, growthAt(child.ID, base.AddDate(0, 0, i), float64(5+i)))
		require.NoError(t, err)
	}

	recs, err := svc.FindBetween(ctx, parent.ID, child.ID, base, base.AddDate(0, 0, 2))
	require.NoError(t, err)
	assert.Len(t, recs, 3)
}

func TestGrowthFindOneMissingVsForbidden(t *testing.T) {
	db := newTestDB(t)
	svc := newGrowthService(db)
	ctx := context.Background()

	parent := seedParent(t, db, "p@example.com")
	stranger := seedParent(t, db, "s@example.com")
	child := seedChild(t, db, parent.ID)

	rec, err := svc.Create(ctx, parent.ID, growthAt(child.ID, time.Now(), 6.0))
	require.NoError(t, err)

	// an id that never existed is NotFound for everyone
	_, err = svc.FindOne(ctx, parent.ID, uuid.New())
	assert.ErrorIs(t, err, utils.ErrRecordNotFound)

	// an existing record of someone else's child is Forbidden, not NotFound
	_, err = svc.FindOne(ctx, stranger.ID, rec.ID)
	assert.ErrorIs(t, err, utils.ErrChildNotOwned)
}

func TestGrowthUpdateSparseMerge(t *testing.T) {
	db := newTestDB(t)
	svc := newGrowthService(db)
	ctx := context.Background()

	parent := seedParent(t, db, "p@example.com")
	child := seedChild(t, db, parent.ID)

	rec, err := svc.Create(ctx, parent.ID, request_models.CreateGrowthRequest{
		ChildID: child.ID,
		Date:    time.Now(),
		Weight:  6.0,
		Height:  62.5,
		Note:    "checkup",
	})
	require.NoError(t, err)

	weight := 6.8
	updated, err := svc.Update(ctx, parent.ID, rec.ID, request_models.UpdateGrowthRequest{Weight: &weight})
	require.NoError(t, err)
	assert.Equal(t, 6.8, updated.Weight)
	assert.Equal(t, 62.5, updated.Height)
	assert.Equal(t, "checkup", updated.Note)
}

func TestGrowthUpdateProtectsDeleteFlag(t *testing.T) {
	db := newTestDB(t)
	svc := newGrowthService(db)
	ctx := context.Background()

	parent := seedParent(t, db, "p@example.com")
	child := seedChild(t, db, parent.ID)

	rec, err := svc.Create(ctx, parent.ID, growthAt(child.ID, time.Now(), 6.0))
	require.NoError(t, err)

	deleted := true
	_, err = svc.Update(ctx, parent.ID, rec.ID, request_models.UpdateGrowthRequest{IsDeleted: &deleted})
	assert.ErrorIs(t, err, utils.ErrProtectedField)
}

func TestGrowthRemoveIsSoftAndTerminal(t *testing.T) {
	db := newTestDB(t)
	svc := newGrowthService(db)
	ctx := context.Background()

	parent := seedParent(t, db, "p@example.com")
	child := seedChild(t, db, parent.ID)

	rec, err := svc.Create(ctx, parent.ID, growthAt(child.ID, time.Now(), 6.0))
	require.NoError(t, err)

	require.NoError(t, svc.Remove(ctx, parent.ID, rec.ID))

	// gone from every read path
	_, err = svc.FindOne(ctx, parent.ID, rec.ID)
	assert.ErrorIs(t, err, utils.ErrRecordNotFound)

	recs, err := svc.FindAll(ctx, parent.ID, child.ID, 10, 0)
	require.NoError(t, err)
	assert.Empty(t, recs)

	// but the row itself survives with the flag set
	var row db_models.Growth
	require.NoError(t, db.First(&row, "id = ?", rec.ID).Error)
	assert.True(t, row.IsDeleted)

	// removing again is NotFound
	assert.ErrorIs(t, svc.Remove(ctx, parent.ID, rec.ID), utils.ErrRecordNotFound)
}
