package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"nestling/internal/models/request_models"
	"nestling/internal/services"
	"nestling/pkg/middleware"
	"nestling/pkg/utils"
)

// CatalogController serves the reference data behind the record modules:
// milk types, vaccines, symptoms, medicines and food categories with their
// items.
type CatalogController struct {
	milkTypeService services.MilkTypeServiceInterface
	categoryService services.CategoryServiceInterface
	itemService     services.CategoryItemServiceInterface
	medicineService services.MedicineServiceInterface
	vaccineService  services.VaccineServiceInterface
	symptomService  services.SymptomServiceInterface
}

func NewCatalogController(
	milkTypeService services.MilkTypeServiceInterface,
	categoryService services.CategoryServiceInterface,
	itemService services.CategoryItemServiceInterface,
	medicineService services.MedicineServiceInterface,
	vaccineService services.VaccineServiceInterface,
	symptomService services.SymptomServiceInterface,
) *CatalogController {
	return &CatalogController{
		milkTypeService: milkTypeService,
		categoryService: categoryService,
		itemService:     itemService,
		medicineService: medicineService,
		vaccineService:  vaccineService,
		symptomService:  symptomService,
	}
}

func (ct *CatalogController) CreateMilkType(c *gin.Context) {
	var req request_models.CreateMilkTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	rec, err := ct.milkTypeService.Create(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondCreated(c, rec, "Milk type created")
}

func (ct *CatalogController) ListMilkTypes(c *gin.Context) {
	types, err := ct.milkTypeService.FindAll(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, types, "Milk types fetched")
}

func (ct *CatalogController) UpdateMilkType(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid milk type id")
		return
	}

	var req request_models.UpdateMilkTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	rec, err := ct.milkTypeService.Update(c.Request.Context(), id, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, rec, "Milk type updated")
}

func (ct *CatalogController) RemoveMilkType(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid milk type id")
		return
	}

	if err := ct.milkTypeService.Remove(c.Request.Context(), id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Milk type deleted")
}

func (ct *CatalogController) CreateCategory(c *gin.Context) {
	var req request_models.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	rec, err := ct.categoryService.Create(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondCreated(c, rec, "Category created")
}

func (ct *CatalogController) ListCategories(c *gin.Context) {
	categories, err := ct.categoryService.FindAll(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, categories, "Categories fetched")
}

func (ct *CatalogController) UpdateCategory(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid category id")
		return
	}

	var req request_models.UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	rec, err := ct.categoryService.Update(c.Request.Context(), id, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, rec, "Category updated")
}

func (ct *CatalogController) RemoveCategory(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid category id")
		return
	}

	if err := ct.categoryService.Remove(c.Request.Context(), id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Category deleted")
}

func (ct *CatalogController) CreateCategoryItem(c *gin.Context) {
	var req request_models.CreateCategoryItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	rec, err := ct.itemService.Create(c.Request.Context(), middleware.ParentID(c), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondCreated(c, rec, "Category item created")
}

// ListCategoryItems returns the default items plus the caller's custom ones.
func (ct *CatalogController) ListCategoryItems(c *gin.Context) {
	items, err := ct.itemService.FindAll(c.Request.Context(), middleware.ParentID(c))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, items, "Category items fetched")
}

func (ct *CatalogController) UpdateCategoryItem(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid item id")
		return
	}

	var req request_models.UpdateCategoryItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	rec, err := ct.itemService.Update(c.Request.Context(), middleware.ParentID(c), id, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, rec, "Category item updated")
}

func (ct *CatalogController) RemoveCategoryItem(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid item id")
		return
	}

	if err := ct.itemService.Remove(c.Request.Context(), middleware.ParentID(c), id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Category item deleted")
}

func (ct *CatalogController) CreateMedicine(c *gin.Context) {
	var req request_models.CreateMedicineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	rec, err := ct.medicineService.Create(c.Request.Context(), middleware.ParentID(c), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondCreated(c, rec, "Medicine created")
}

// ListMedicines returns the shared catalog plus the caller's custom entries.
func (ct *CatalogController) ListMedicines(c *gin.Context) {
	medicines, err := ct.medicineService.FindAll(c.Request.Context(), middleware.ParentID(c))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, medicines, "Medicines fetched")
}

func (ct *CatalogController) GetMedicine(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid medicine id")
		return
	}

	rec, err := ct.medicineService.FindOne(c.Request.Context(), middleware.ParentID(c), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, rec, "Medicine fetched")
}

func (ct *CatalogController) UpdateMedicine(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid medicine id")
		return
	}

	var req request_models.UpdateMedicineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	rec, err := ct.medicineService.Update(c.Request.Context(), middleware.ParentID(c), id, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, rec, "Medicine updated")
}

func (ct *CatalogController) RemoveMedicine(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid medicine id")
		return
	}

	if err := ct.medicineService.Remove(c.Request.Context(), middleware.ParentID(c), id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Medicine deleted")
}

func (ct *CatalogController) CreateVaccine(c *gin.Context) {
	var req request_models.CreateVaccineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	rec, err := ct.vaccineService.Create(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondCreated(c, rec, "Vaccine created")
}

// ListVaccines optionally filters by ?region=.
func (ct *CatalogController) ListVaccines(c *gin.Context) {
	if region := c.Query("region"); region != "" {
		vaccines, err := ct.vaccineService.FindByRegion(c.Request.Context(), region)
		if err != nil {
			utils.HandleServiceError(c, err)
			return
		}
		utils.RespondSuccess(c, vaccines, "Vaccines fetched")
		return
	}

	vaccines, err := ct.vaccineService.FindAll(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, vaccines, "Vaccines fetched")
}

func (ct *CatalogController) GetVaccine(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid vaccine id")
		return
	}

	rec, err := ct.vaccineService.FindOne(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, rec, "Vaccine fetched")
}

func (ct *CatalogController) UpdateVaccine(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid vaccine id")
		return
	}

	var req request_models.UpdateVaccineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	rec, err := ct.vaccineService.Update(c.Request.Context(), id, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, rec, "Vaccine updated")
}

func (ct *CatalogController) RemoveVaccine(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid vaccine id")
		return
	}

	if err := ct.vaccineService.Remove(c.Request.Context(), id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Vaccine deleted")
}

func (ct *CatalogController) CreateSymptom(c *gin.Context) {
	var req request_models.CreateSymptomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	rec, err := ct.symptomService.Create(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondCreated(c, rec, "Symptom created")
}

func (ct *CatalogController) ListSymptoms(c *gin.Context) {
	symptoms, err := ct.symptomService.FindAll(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, symptoms, "Symptoms fetched")
}

func (ct *CatalogController) UpdateSymptom(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid symptom id")
		return
	}

	var req request_models.UpdateSymptomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	rec, err := ct.symptomService.Update(c.Request.Context(), id, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, rec, "Symptom updated")
}

func (ct *CatalogController) RemoveSymptom(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid symptom id")
		return
	}

	if err := ct.symptomService.Remove(c.Request.Context(), id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Symptom deleted")
}
