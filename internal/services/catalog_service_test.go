package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nestling/internal/models/db_models"
	"nestling/internal/models/request_models"
	"nestling/internal/repositories"
	"nestling/pkg/utils"
)

func TestMedicineOwnership(t *testing.T) {
	db := newTestDB(t)
	svc := NewMedicineService(repositories.NewMedicineRepository(db))
	ctx := context.Background()

	parent := seedParent(t, db, "meds@test.dev")
	other := seedParent(t, db, "other@test.dev")
	shared := seedMedicine(t, db, "paracetamol", nil)

	mine, err := svc.Create(ctx, parent.ID, request_models.CreateMedicineRequest{Name: "own-syrup"})
	require.NoError(t, err)
	require.NotNil(t, mine.OwnerParentID)

	// shared entries are visible but immutable
	got, err := svc.FindOne(ctx, parent.ID, shared.ID)
	require.NoError(t, err)
	assert.Nil(t, got.OwnerParentID)
	assert.ErrorIs(t, svc.Remove(ctx, parent.ID, shared.ID), utils.ErrDefaultCatalogItem)

	name := "renamed"
	_, err = svc.Update(ctx, other.ID, mine.ID, request_models.UpdateMedicineRequest{Name: &name})
	assert.ErrorIs(t, err, utils.ErrNotResourceOwner)

	// another parent's custom medicine is invisible
	theirs, err := svc.Create(ctx, other.ID, request_models.CreateMedicineRequest{Name: "their-drops"})
	require.NoError(t, err)
	_, err = svc.FindOne(ctx, parent.ID, theirs.ID)
	assert.ErrorIs(t, err, utils.ErrMedicineNotFound)

	visible, err := svc.FindAll(ctx, parent.ID)
	require.NoError(t, err)
	assert.Len(t, visible, 2)
}

func TestMedicineDuplicateName(t *testing.T) {
	db := newTestDB(t)
	svc := NewMedicineService(repositories.NewMedicineRepository(db))
	ctx := context.Background()

	parent := seedParent(t, db, "meds@test.dev")
	seedMedicine(t, db, "paracetamol", nil)

	_, err := svc.Create(ctx, parent.ID, request_models.CreateMedicineRequest{Name: "Paracetamol"})
	assert.ErrorIs(t, err, utils.ErrDuplicateName)
}

func TestVaccineCatalog(t *testing.T) {
	db := newTestDB(t)
	svc := NewVaccineService(repositories.NewVaccineRepository(db))
	ctx := context.Background()

	_, err := svc.Create(ctx, request_models.CreateVaccineRequest{Name: "mmr", Region: "EU", AgeInMonths: 12})
	require.NoError(t, err)
	_, err = svc.Create(ctx, request_models.CreateVaccineRequest{Name: "mmr", Region: "US", AgeInMonths: 12})
	require.NoError(t, err)

	// same name, same region is a duplicate
	_, err = svc.Create(ctx, request_models.CreateVaccineRequest{Name: "MMR", Region: "eu", AgeInMonths: 12})
	assert.ErrorIs(t, err, utils.ErrDuplicateName)

	_, err = svc.Create(ctx, request_models.CreateVaccineRequest{Name: "broken", Region: "EU", AgeInMonths: -1})
	assert.ErrorIs(t, err, utils.ErrInvalidInput)

	eu, err := svc.FindByRegion(ctx, "eu")
	require.NoError(t, err)
	require.Len(t, eu, 1)
	assert.Equal(t, "EU", eu[0].Region)

	all, err := svc.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestMilkTypeCatalog(t *testing.T) {
	db := newTestDB(t)
	svc := NewMilkTypeService(repositories.NewCatalogRepository[db_models.MilkType](db))
	ctx := context.Background()

	created, err := svc.Create(ctx, request_models.CreateMilkTypeRequest{Name: "formula"})
	require.NoError(t, err)

	_, err = svc.Create(ctx, request_models.CreateMilkTypeRequest{Name: "Formula"})
	assert.ErrorIs(t, err, utils.ErrDuplicateName)

	got, err := svc.FindOne(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "formula", got.Name)
}

func TestMilkTypeUpdateAndRemove(t *testing.T) {
	db := newTestDB(t)
	svc := NewMilkTypeService(repositories.NewCatalogRepository[db_models.MilkType](db))
	ctx := context.Background()

	formula, err := svc.Create(ctx, request_models.CreateMilkTypeRequest{Name: "formula"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, request_models.CreateMilkTypeRequest{Name: "breast"})
	require.NoError(t, err)

	// renaming onto another entry is a duplicate, recasing itself is not
	name := "Breast"
	_, err = svc.Update(ctx, formula.ID, request_models.UpdateMilkTypeRequest{Name: &name})
	assert.ErrorIs(t, err, utils.ErrDuplicateName)

	name = "Formula"
	updated, err := svc.Update(ctx, formula.ID, request_models.UpdateMilkTypeRequest{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "Formula", updated.Name)

	// an empty patch is a no-op
	same, err := svc.Update(ctx, formula.ID, request_models.UpdateMilkTypeRequest{})
	require.NoError(t, err)
	assert.Equal(t, "Formula", same.Name)

	_, err = svc.Update(ctx, uuid.New(), request_models.UpdateMilkTypeRequest{Name: &name})
	assert.ErrorIs(t, err, utils.ErrMilkTypeNotFound)

	require.NoError(t, svc.Remove(ctx, formula.ID))
	_, err = svc.FindOne(ctx, formula.ID)
	assert.ErrorIs(t, err, utils.ErrMilkTypeNotFound)

	listed, err := svc.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, listed, 1)

	// the row survives with the flag set
	var row db_models.MilkType
	require.NoError(t, db.First(&row, "id = ?", formula.ID).Error)
	assert.True(t, row.IsDeleted)

	assert.ErrorIs(t, svc.Remove(ctx, formula.ID), utils.ErrMilkTypeNotFound)
}

func TestCategoryUpdateAndRemove(t *testing.T) {
	db := newTestDB(t)
	svc := NewCategoryService(repositories.NewCatalogRepository[db_models.Category](db))
	ctx := context.Background()

	fruit, err := svc.Create(ctx, request_models.CreateCategoryRequest{Name: "fruit"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, request_models.CreateCategoryRequest{Name: "dairy"})
	require.NoError(t, err)

	name := "Dairy"
	_, err = svc.Update(ctx, fruit.ID, request_models.UpdateCategoryRequest{Name: &name})
	assert.ErrorIs(t, err, utils.ErrDuplicateName)

	name = "fruits"
	updated, err := svc.Update(ctx, fruit.ID, request_models.UpdateCategoryRequest{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "fruits", updated.Name)

	require.NoError(t, svc.Remove(ctx, fruit.ID))
	_, err = svc.FindOne(ctx, fruit.ID)
	assert.ErrorIs(t, err, utils.ErrCategoryNotFound)

	listed, err := svc.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, listed, 1)
}

func TestVaccineUpdateAndRemove(t *testing.T) {
	db := newTestDB(t)
	svc := NewVaccineService(repositories.NewVaccineRepository(db))
	ctx := context.Background()

	eu, err := svc.Create(ctx, request_models.CreateVaccineRequest{Name: "mmr", Region: "EU", AgeInMonths: 12})
	require.NoError(t, err)
	us, err := svc.Create(ctx, request_models.CreateVaccineRequest{Name: "mmr", Region: "US", AgeInMonths: 12})
	require.NoError(t, err)

	// moving the US entry into the EU region collides on (name, region)
	region := "eu"
	_, err = svc.Update(ctx, us.ID, request_models.UpdateVaccineRequest{Region: &region})
	assert.ErrorIs(t, err, utils.ErrDuplicateName)

	age := -1
	_, err = svc.Update(ctx, us.ID, request_models.UpdateVaccineRequest{AgeInMonths: &age})
	assert.ErrorIs(t, err, utils.ErrInvalidInput)

	age = 15
	updated, err := svc.Update(ctx, us.ID, request_models.UpdateVaccineRequest{AgeInMonths: &age})
	require.NoError(t, err)
	assert.Equal(t, 15, updated.AgeInMonths)
	assert.Equal(t, "US", updated.Region)

	require.NoError(t, svc.Remove(ctx, eu.ID))
	_, err = svc.FindOne(ctx, eu.ID)
	assert.ErrorIs(t, err, utils.ErrVaccineNotFound)

	// removed definitions stop feeding region lookups
	listed, err := svc.FindByRegion(ctx, "eu")
	require.NoError(t, err)
	assert.Empty(t, listed)
}

func TestSymptomUpdateAndRemove(t *testing.T) {
	db := newTestDB(t)
	svc := NewSymptomService(repositories.NewCatalogRepository[db_models.Symptom](db))
	ctx := context.Background()

	fever, err := svc.Create(ctx, request_models.CreateSymptomRequest{Name: "fever"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, request_models.CreateSymptomRequest{Name: "rash"})
	require.NoError(t, err)

	name := "Rash"
	_, err = svc.Update(ctx, fever.ID, request_models.UpdateSymptomRequest{Name: &name})
	assert.ErrorIs(t, err, utils.ErrDuplicateName)

	name = "high fever"
	updated, err := svc.Update(ctx, fever.ID, request_models.UpdateSymptomRequest{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "high fever", updated.Name)

	require.NoError(t, svc.Remove(ctx, fever.ID))
	_, err = svc.FindOne(ctx, fever.ID)
	assert.ErrorIs(t, err, utils.ErrSymptomNotFound)

	listed, err := svc.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, listed, 1)
}

func TestFeedback(t *testing.T) {
	db := newTestDB(t)
	svc := NewFeedbackService(repositories.NewFeedbackRepository(db))
	ctx := context.Background()

	parent := seedParent(t, db, "fb@test.dev")

	_, err := svc.Create(ctx, parent.ID, request_models.CreateFeedbackRequest{Comment: "great", Rating: 6})
	assert.ErrorIs(t, err, utils.ErrInvalidRating)
	_, err = svc.Create(ctx, parent.ID, request_models.CreateFeedbackRequest{Rating: 4})
	assert.ErrorIs(t, err, utils.ErrMissingFields)

	_, err = svc.Create(ctx, parent.ID, request_models.CreateFeedbackRequest{Comment: "great app", Rating: 5})
	require.NoError(t, err)

	listed, err := svc.FindAll(ctx, 0, 0)
	require.NoError(t, err)
	assert.Len(t, listed, 1)
}
