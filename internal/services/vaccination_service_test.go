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

func newVaccinationService(db *gorm.DB) VaccinationServiceInterface {
	guard := NewGuardianService(repositories.NewParentChildRepository(db))
	return NewVaccinationService(
		repositories.NewVaccinationRepository(db),
		repositories.NewVaccineRepository(db),
		repositories.NewCatalogRepository[db_models.Symptom](db),
		repositories.NewVaccinationSymptomRepository(db),
		guard,
	)
}

func seedSymptom(t *testing.T, db *gorm.DB, name string) *db_models.Symptom {
	t.Helper()

	symptom := &db_models.Symptom{Name: name}
	require.NoError(t, db.Create(symptom).Error)
	return symptom
}

func TestVaccinationCreate(t *testing.T) {
	db := newTestDB(t)
	svc := newVaccinationService(db)
	ctx := context.Background()

	parent := seedParent(t, db, "vax@test.dev")
	child := seedChild(t, db, parent.ID)
	vaccine := seedVaccine(t, db, "mmr", "EU", 12)
	fever := seedSymptom(t, db, "fever")

	rec, err := svc.Create(ctx, parent.ID, request_models.CreateVaccinationRequest{
		ChildID:    child.ID,
		VaccineID:  vaccine.ID,
		Date:       time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		Venue:      "City Clinic",
		SymptomIDs: []uuid.UUID{fever.ID},
		Images:     []string{"uploads/vax-card.jpg"},
	})
	require.NoError(t, err)

	got, err := svc.FindOne(ctx, parent.ID, rec.ID)
	require.NoError(t, err)
	assert.Equal(t, "mmr", got.Vaccine.Name)
	require.Len(t, got.Symptoms, 1)
	assert.Equal(t, "fever", got.Symptoms[0].Symptom.Name)
	require.Len(t, got.Images, 1)
}

func TestVaccinationCreateUnknownReferences(t *testing.T) {
	db := newTestDB(t)
	svc := newVaccinationService(db)
	ctx := context.Background()

	parent := seedParent(t, db, "vax@test.dev")
	child := seedChild(t, db, parent.ID)
	vaccine := seedVaccine(t, db, "mmr", "EU", 12)

	_, err := svc.Create(ctx, parent.ID, request_models.CreateVaccinationRequest{
		ChildID:   child.ID,
		VaccineID: uuid.New(),
		Date:      time.Now(),
	})
	assert.ErrorIs(t, err, utils.ErrVaccineNotFound)

	_, err = svc.Create(ctx, parent.ID, request_models.CreateVaccinationRequest{
		ChildID:    child.ID,
		VaccineID:  vaccine.ID,
		Date:       time.Now(),
		SymptomIDs: []uuid.UUID{uuid.New()},
	})
	assert.ErrorIs(t, err, utils.ErrSymptomNotFound)
}

func TestVaccinationUpdateReplacesSymptoms(t *testing.T) {
	db := newTestDB(t)
	svc := newVaccinationService(db)
	ctx := context.Background()

	parent := seedParent(t, db, "vax@test.dev")
	child := seedChild(t, db, parent.ID)
	vaccine := seedVaccine(t, db, "mmr", "EU", 12)
	fever := seedSymptom(t, db, "fever")
	rash := seedSymptom(t, db, "rash")

	rec, err := svc.Create(ctx, parent.ID, request_models.CreateVaccinationRequest{
		ChildID:    child.ID,
		VaccineID:  vaccine.ID,
		Date:       time.Now(),
		SymptomIDs: []uuid.UUID{fever.ID},
	})
	require.NoError(t, err)

	venue := "Home Visit"
	symptoms := []uuid.UUID{rash.ID}
	updated, err := svc.Update(ctx, parent.ID, rec.ID, request_models.UpdateVaccinationRequest{
		Venue:      &venue,
		SymptomIDs: &symptoms,
	})
	require.NoError(t, err)
	assert.Equal(t, "Home Visit", updated.Venue)
	require.Len(t, updated.Symptoms, 1)
	assert.Equal(t, "rash", updated.Symptoms[0].Symptom.Name)

	// the old link is soft deleted, not gone
	var links []db_models.VaccinationSymptom
	require.NoError(t, db.Where("vaccination_id = ?", rec.ID).Find(&links).Error)
	assert.Len(t, links, 2)
}

func TestVaccinationUpdateUnknownSymptom(t *testing.T) {
	db := newTestDB(t)
	svc := newVaccinationService(db)
	ctx := context.Background()

	parent := seedParent(t, db, "vax@test.dev")
	child := seedChild(t, db, parent.ID)
	vaccine := seedVaccine(t, db, "mmr", "EU", 12)

	rec, err := svc.Create(ctx, parent.ID, request_models.CreateVaccinationRequest{
		ChildID:   child.ID,
		VaccineID: vaccine.ID,
		Date:      time.Now(),
	})
	require.NoError(t, err)

	bogus := []uuid.UUID{uuid.New()}
	_, err = svc.Update(ctx, parent.ID, rec.ID, request_models.UpdateVaccinationRequest{SymptomIDs: &bogus})
	assert.ErrorIs(t, err, utils.ErrSymptomNotFound)

	// the existing record is untouched
	got, err := svc.FindOne(ctx, parent.ID, rec.ID)
	require.NoError(t, err)
	assert.Empty(t, got.Symptoms)
}

func TestVaccinationRemoveCascades(t *testing.T) {
	db := newTestDB(t)
	svc := newVaccinationService(db)
	ctx := context.Background()

	parent := seedParent(t, db, "vax@test.dev")
	child := seedChild(t, db, parent.ID)
	vaccine := seedVaccine(t, db, "mmr", "EU", 12)
	fever := seedSymptom(t, db, "fever")

	rec, err := svc.Create(ctx, parent.ID, request_models.CreateVaccinationRequest{
		ChildID:    child.ID,
		VaccineID:  vaccine.ID,
		Date:       time.Now(),
		SymptomIDs: []uuid.UUID{fever.ID},
		Images:     []string{"uploads/vax-card.jpg"},
	})
	require.NoError(t, err)

	require.NoError(t, svc.Remove(ctx, parent.ID, rec.ID))

	var link db_models.VaccinationSymptom
	require.NoError(t, db.First(&link, "vaccination_id = ?", rec.ID).Error)
	assert.True(t, link.IsDeleted)

	var image db_models.VaccinationImage
	require.NoError(t, db.First(&image, "vaccination_id = ?", rec.ID).Error)
	assert.True(t, image.IsDeleted)

	// the symptom definition survives
	var symptom db_models.Symptom
	require.NoError(t, db.First(&symptom, "id = ?", fever.ID).Error)
	assert.False(t, symptom.IsDeleted)
}
