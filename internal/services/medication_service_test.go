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

func newMedicationServices(db *gorm.DB) (MedicationServiceInterface, MedicationSlotServiceInterface) {
	guard := NewGuardianService(repositories.NewParentChildRepository(db))
	medicationRepo := repositories.NewMedicationRepository(db)
	medications := NewMedicationService(medicationRepo, repositories.NewMedicineRepository(db), guard)
	slots := NewMedicationSlotService(repositories.NewMedicationSlotRepository(db), medicationRepo, guard)
	return medications, slots
}

func seedMedicine(t *testing.T, db *gorm.DB, name string, owner *uuid.UUID) *db_models.Medicine {
	t.Helper()

	medicine := &db_models.Medicine{Name: name, OwnerParentID: owner}
	require.NoError(t, db.Create(medicine).Error)
	return medicine
}

func medicationReq(childID, medicineID uuid.UUID) request_models.CreateMedicationRequest {
	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	return request_models.CreateMedicationRequest{
		ChildID:    childID,
		MedicineID: medicineID,
		StartDate:  start,
		EndDate:    start.AddDate(0, 0, 7),
		Frequency:  "twice daily",
	}
}

func TestMedicationCreate(t *testing.T) {
	db := newTestDB(t)
	medications, _ := newMedicationServices(db)
	ctx := context.Background()

	parent := seedParent(t, db, "meds@test.dev")
	child := seedChild(t, db, parent.ID)
	shared := seedMedicine(t, db, "paracetamol", nil)

	rec, err := medications.Create(ctx, parent.ID, medicationReq(child.ID, shared.ID))
	require.NoError(t, err)

	got, err := medications.FindOne(ctx, parent.ID, rec.ID)
	require.NoError(t, err)
	assert.Equal(t, "paracetamol", got.Medicine.Name)
	assert.Equal(t, "twice daily", got.Frequency)
}

func TestMedicationCreateEndBeforeStart(t *testing.T) {
	db := newTestDB(t)
	medications, _ := newMedicationServices(db)
	ctx := context.Background()

	parent := seedParent(t, db, "meds@test.dev")
	child := seedChild(t, db, parent.ID)
	shared := seedMedicine(t, db, "paracetamol", nil)

	req := medicationReq(child.ID, shared.ID)
	req.EndDate = req.StartDate.AddDate(0, 0, -1)
	_, err := medications.Create(ctx, parent.ID, req)
	assert.ErrorIs(t, err, utils.ErrInvalidInput)
}

func TestMedicationCreateMedicineVisibility(t *testing.T) {
	db := newTestDB(t)
	medications, _ := newMedicationServices(db)
	ctx := context.Background()

	parent := seedParent(t, db, "meds@test.dev")
	other := seedParent(t, db, "other@test.dev")
	child := seedChild(t, db, parent.ID)

	// another parent's custom medicine is invisible here
	private := seedMedicine(t, db, "private-syrup", &other.ID)
	_, err := medications.Create(ctx, parent.ID, medicationReq(child.ID, private.ID))
	assert.ErrorIs(t, err, utils.ErrMedicineNotFound)

	own := seedMedicine(t, db, "own-syrup", &parent.ID)
	_, err = medications.Create(ctx, parent.ID, medicationReq(child.ID, own.ID))
	assert.NoError(t, err)
}

func TestMedicationSlotLifecycle(t *testing.T) {
	db := newTestDB(t)
	medications, slots := newMedicationServices(db)
	ctx := context.Background()

	parent := seedParent(t, db, "meds@test.dev")
	child := seedChild(t, db, parent.ID)
	shared := seedMedicine(t, db, "paracetamol", nil)

	medication, err := medications.Create(ctx, parent.ID, medicationReq(child.ID, shared.ID))
	require.NoError(t, err)

	slot, err := slots.Create(ctx, parent.ID, request_models.CreateMedicationSlotRequest{
		MedicationID: medication.ID,
		Date:         time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC),
		TimeOfDay:    "morning",
		Status:       string(db_models.SlotTaken),
		Amount:       5,
	})
	require.NoError(t, err)

	listed, err := slots.FindAll(ctx, parent.ID, child.ID)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, slot.ID, listed[0].ID)

	missed := string(db_models.SlotMissed)
	updated, err := slots.Update(ctx, parent.ID, slot.ID, request_models.UpdateMedicationSlotRequest{Status: &missed})
	require.NoError(t, err)
	assert.Equal(t, db_models.SlotMissed, updated.Status)
}

func TestMedicationSlotInvalidStatus(t *testing.T) {
	db := newTestDB(t)
	medications, slots := newMedicationServices(db)
	ctx := context.Background()

	parent := seedParent(t, db, "meds@test.dev")
	child := seedChild(t, db, parent.ID)
	shared := seedMedicine(t, db, "paracetamol", nil)

	medication, err := medications.Create(ctx, parent.ID, medicationReq(child.ID, shared.ID))
	require.NoError(t, err)

	_, err = slots.Create(ctx, parent.ID, request_models.CreateMedicationSlotRequest{
		MedicationID: medication.ID,
		Date:         time.Now(),
		Status:       "sort of taken",
		Amount:       5,
	})
	assert.ErrorIs(t, err, utils.ErrInvalidSlotStatus)

	slot, err := slots.Create(ctx, parent.ID, request_models.CreateMedicationSlotRequest{
		MedicationID: medication.ID,
		Date:         time.Now(),
		Status:       string(db_models.SlotTaken),
		Amount:       5,
	})
	require.NoError(t, err)

	bad := "unknown"
	_, err = slots.Update(ctx, parent.ID, slot.ID, request_models.UpdateMedicationSlotRequest{Status: &bad})
	assert.ErrorIs(t, err, utils.ErrInvalidSlotStatus)
}

func TestMedicationSlotAuthorizedThroughMedication(t *testing.T) {
	db := newTestDB(t)
	medications, slots := newMedicationServices(db)
	ctx := context.Background()

	parent := seedParent(t, db, "meds@test.dev")
	stranger := seedParent(t, db, "stranger@test.dev")
	child := seedChild(t, db, parent.ID)
	shared := seedMedicine(t, db, "paracetamol", nil)

	medication, err := medications.Create(ctx, parent.ID, medicationReq(child.ID, shared.ID))
	require.NoError(t, err)

	_, err = slots.Create(ctx, stranger.ID, request_models.CreateMedicationSlotRequest{
		MedicationID: medication.ID,
		Date:         time.Now(),
		Status:       string(db_models.SlotTaken),
		Amount:       5,
	})
	assert.ErrorIs(t, err, utils.ErrChildNotOwned)

	// a slot pointing at no medication cannot resolve a child at all
	_, err = slots.Create(ctx, parent.ID, request_models.CreateMedicationSlotRequest{
		MedicationID: uuid.New(),
		Date:         time.Now(),
		Status:       string(db_models.SlotTaken),
		Amount:       5,
	})
	assert.ErrorIs(t, err, utils.ErrMedicationNotFound)
}

func TestMedicationRemoveCascadesSlots(t *testing.T) {
	db := newTestDB(t)
	medications, slots := newMedicationServices(db)
	ctx := context.Background()

	parent := seedParent(t, db, "meds@test.dev")
	child := seedChild(t, db, parent.ID)
	shared := seedMedicine(t, db, "paracetamol", nil)

	medication, err := medications.Create(ctx, parent.ID, medicationReq(child.ID, shared.ID))
	require.NoError(t, err)
	slot, err := slots.Create(ctx, parent.ID, request_models.CreateMedicationSlotRequest{
		MedicationID: medication.ID,
		Date:         time.Now(),
		Status:       string(db_models.SlotTaken),
		Amount:       5,
	})
	require.NoError(t, err)

	require.NoError(t, medications.Remove(ctx, parent.ID, medication.ID))

	var row db_models.MedicationSlot
	require.NoError(t, db.First(&row, "id = ?", slot.ID).Error)
	assert.True(t, row.IsDeleted)

	listed, err := slots.FindAll(ctx, parent.ID, child.ID)
	require.NoError(t, err)
	assert.Empty(t, listed)
}

func TestMedicationScheduleRows(t *testing.T) {
	db := newTestDB(t)
	medications, slots := newMedicationServices(db)
	ctx := context.Background()

	parent := seedParent(t, db, "meds@test.dev")
	child := seedChild(t, db, parent.ID)
	shared := seedMedicine(t, db, "paracetamol", nil)

	medication, err := medications.Create(ctx, parent.ID, medicationReq(child.ID, shared.ID))
	require.NoError(t, err)
	for _, timeOfDay := range []string{"morning", "evening"} {
		_, err = slots.Create(ctx, parent.ID, request_models.CreateMedicationSlotRequest{
			MedicationID: medication.ID,
			Date:         time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC),
			TimeOfDay:    timeOfDay,
			Status:       string(db_models.SlotTaken),
			Amount:       5,
		})
		require.NoError(t, err)
	}

	rows, err := medications.FindAll(ctx, parent.ID, child.ID, 10, 0)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	for _, row := range rows {
		assert.Equal(t, shared.ID.String(), row.MedicineID)
		assert.Equal(t, "twice daily", row.Frequency)
	}
}

func TestMedicationSchedulePagesOverMedications(t *testing.T) {
	db := newTestDB(t)
	medications, slots := newMedicationServices(db)
	ctx := context.Background()

	parent := seedParent(t, db, "meds@test.dev")
	child := seedChild(t, db, parent.ID)
	shared := seedMedicine(t, db, "paracetamol", nil)

	older, err := medications.Create(ctx, parent.ID, medicationReq(child.ID, shared.ID))
	require.NoError(t, err)

	newerReq := medicationReq(child.ID, shared.ID)
	newerReq.StartDate = newerReq.StartDate.AddDate(0, 1, 0)
	newerReq.EndDate = newerReq.EndDate.AddDate(0, 1, 0)
	newer, err := medications.Create(ctx, parent.ID, newerReq)
	require.NoError(t, err)

	for _, medicationID := range []uuid.UUID{older.ID, newer.ID} {
		for _, timeOfDay := range []string{"morning", "evening"} {
			_, err = slots.Create(ctx, parent.ID, request_models.CreateMedicationSlotRequest{
				MedicationID: medicationID,
				Date:         time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC),
				TimeOfDay:    timeOfDay,
				Status:       string(db_models.SlotTaken),
				Amount:       5,
			})
			require.NoError(t, err)
		}
	}

	// limit counts medications, so one medication yields both of its slots
	rows, err := medications.FindAll(ctx, parent.ID, child.ID, 1, 0)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	rows, err = medications.FindAll(ctx, parent.ID, child.ID, 1, 1)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	rows, err = medications.FindAll(ctx, parent.ID, child.ID, 10, 0)
	require.NoError(t, err)
	assert.Len(t, rows, 4)
}
