package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"nestling/internal/models/db_models"
	"nestling/internal/models/request_models"
	"nestling/internal/repositories"
	"nestling/pkg/utils"
)

func newSleepService(db *gorm.DB) SleepServiceInterface {
	guard := NewGuardianService(repositories.NewParentChildRepository(db))
	return NewSleepService(repositories.NewSleepRepository(db), guard)
}

func TestSleepCreateAndFetch(t *testing.T) {
	db := newTestDB(t)
	svc := newSleepService(db)
	ctx := context.Background()

	parent := seedParent(t, db, "sleep@test.dev")
	child := seedChild(t, db, parent.ID)

	rec, err := svc.Create(ctx, parent.ID, request_models.CreateSleepRequest{
		ChildID:    child.ID,
		Date:       time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC),
		StartTime:  time.Date(2025, 5, 1, 13, 0, 0, 0, time.UTC),
		Duration:   90,
		SleepStyle: "crib",
	})
	require.NoError(t, err)

	got, err := svc.FindOne(ctx, parent.ID, rec.ID)
	require.NoError(t, err)
	assert.Equal(t, 90, got.Duration)
	assert.Equal(t, "crib", got.SleepStyle)
}

func TestSleepCreateRejectsNonPositiveDuration(t *testing.T) {
	db := newTestDB(t)
	svc := newSleepService(db)
	ctx := context.Background()

	parent := seedParent(t, db, "sleep@test.dev")
	child := seedChild(t, db, parent.ID)

	_, err := svc.Create(ctx, parent.ID, request_models.CreateSleepRequest{
		ChildID:   child.ID,
		Date:      time.Now(),
		StartTime: time.Now(),
	})
	assert.ErrorIs(t, err, utils.ErrInvalidInput)

	_, err = svc.Create(ctx, parent.ID, request_models.CreateSleepRequest{
		ChildID:   child.ID,
		Date:      time.Now(),
		StartTime: time.Now(),
		Duration:  -30,
	})
	assert.ErrorIs(t, err, utils.ErrInvalidInput)

	// nothing was written
	var count int64
	db.Model(&db_models.Sleep{}).Count(&count)
	assert.Zero(t, count)
}
