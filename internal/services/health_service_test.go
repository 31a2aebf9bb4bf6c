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

func newHealthServices(db *gorm.DB) (AllergyServiceInterface, AppointmentServiceInterface, HealthRecordServiceInterface) {
	guard := NewGuardianService(repositories.NewParentChildRepository(db))
	allergies := NewAllergyService(repositories.NewAllergyRepository(db), guard)
	appointments := NewAppointmentService(repositories.NewAppointmentRepository(db), guard)
	healthRecords := NewHealthRecordService(repositories.NewHealthRecordRepository(db), guard)
	return allergies, appointments, healthRecords
}

func TestAllergyCreateValidation(t *testing.T) {
	db := newTestDB(t)
	allergies, _, _ := newHealthServices(db)
	ctx := context.Background()

	parent := seedParent(t, db, "health@test.dev")
	child := seedChild(t, db, parent.ID)

	_, err := allergies.Create(ctx, parent.ID, request_models.CreateAllergyRequest{
		ChildID: child.ID,
		Date:    time.Now(),
	})
	assert.ErrorIs(t, err, utils.ErrMissingFields)

	_, err = allergies.Create(ctx, parent.ID, request_models.CreateAllergyRequest{
		ChildID: child.ID,
		Name:    "peanuts",
	})
	assert.ErrorIs(t, err, utils.ErrMissingFields)

	rec, err := allergies.Create(ctx, parent.ID, request_models.CreateAllergyRequest{
		ChildID:  child.ID,
		Name:     "peanuts",
		Severity: "severe",
		Date:     time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	got, err := allergies.FindOne(ctx, parent.ID, rec.ID)
	require.NoError(t, err)
	assert.Equal(t, "peanuts", got.Name)
	assert.Equal(t, "severe", got.Severity)
}

func TestAppointmentCreateValidation(t *testing.T) {
	db := newTestDB(t)
	_, appointments, _ := newHealthServices(db)
	ctx := context.Background()

	parent := seedParent(t, db, "health@test.dev")
	child := seedChild(t, db, parent.ID)

	date := time.Date(2025, 7, 10, 9, 30, 0, 0, time.UTC)

	_, err := appointments.Create(ctx, parent.ID, request_models.CreateAppointmentRequest{
		ChildID: child.ID,
		Venue:   "clinic",
		Date:    date,
	})
	assert.ErrorIs(t, err, utils.ErrMissingFields)

	_, err = appointments.Create(ctx, parent.ID, request_models.CreateAppointmentRequest{
		ChildID: child.ID,
		Doctor:  "Dr. Reyes",
		Date:    date,
	})
	assert.ErrorIs(t, err, utils.ErrMissingFields)

	_, err = appointments.Create(ctx, parent.ID, request_models.CreateAppointmentRequest{
		ChildID: child.ID,
		Doctor:  "Dr. Reyes",
		Venue:   "clinic",
	})
	assert.ErrorIs(t, err, utils.ErrMissingFields)

	var count int64
	db.Model(&db_models.Appointment{}).Count(&count)
	assert.Zero(t, count)

	rec, err := appointments.Create(ctx, parent.ID, request_models.CreateAppointmentRequest{
		ChildID:           child.ID,
		Doctor:            "Dr. Reyes",
		Venue:             "clinic",
		Date:              date,
		AppointmentNumber: 2,
	})
	require.NoError(t, err)
	assert.Equal(t, 2, rec.AppointmentNumber)
}

func TestHealthRecordCreateValidation(t *testing.T) {
	db := newTestDB(t)
	_, _, healthRecords := newHealthServices(db)
	ctx := context.Background()

	parent := seedParent(t, db, "health@test.dev")
	child := seedChild(t, db, parent.ID)

	_, err := healthRecords.Create(ctx, parent.ID, request_models.CreateHealthRecordRequest{
		ChildID: child.ID,
		File:    "scan.pdf",
	})
	assert.ErrorIs(t, err, utils.ErrMissingFields)

	// the date defaults to now when omitted
	rec, err := healthRecords.Create(ctx, parent.ID, request_models.CreateHealthRecordRequest{
		ChildID: child.ID,
		Title:   "six month checkup",
	})
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now(), rec.Date, time.Minute)

	got, err := healthRecords.FindOne(ctx, parent.ID, rec.ID)
	require.NoError(t, err)
	assert.Equal(t, "six month checkup", got.Title)
}
