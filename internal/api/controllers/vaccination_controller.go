package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"nestling/internal/models/request_models"
	"nestling/internal/services"
	"nestling/pkg/middleware"
	"nestling/pkg/utils"
)

type VaccinationController struct {
	vaccinationService services.VaccinationServiceInterface
}

func NewVaccinationController(vaccinationService services.VaccinationServiceInterface) *VaccinationController {
	return &VaccinationController{vaccinationService: vaccinationService}
}

// Create godoc
// @Summary Record a vaccination, optionally with observed symptoms and images
// @Tags Vaccinations
// @Accept json
// @Produce json
// @Param request body request_models.CreateVaccinationRequest true "Vaccination payload"
// @Success 201 {object} utils.APIResponse
// @Security BearerAuth
// @Router /vaccinations [post]
func (v *VaccinationController) Create(c *gin.Context) {
	var req request_models.CreateVaccinationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	rec, err := v.vaccinationService.Create(c.Request.Context(), middleware.ParentID(c), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondCreated(c, rec, "Vaccination created")
}

func (v *VaccinationController) List(c *gin.Context) {
	childID, err := childQuery(c)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid child id")
		return
	}

	from, to, ranged, err := rangeQuery(c)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid date range")
		return
	}
	if ranged {
		recs, err := v.vaccinationService.FindBetween(c.Request.Context(), middleware.ParentID(c), childID, from, to)
		if err != nil {
			utils.HandleServiceError(c, err)
			return
		}
		utils.RespondSuccess(c, recs, "Vaccinations fetched")
		return
	}

	limit, offset, err := pageQuery(c)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid pagination")
		return
	}
	recs, err := v.vaccinationService.FindAll(c.Request.Context(), middleware.ParentID(c), childID, limit, offset)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, recs, "Vaccinations fetched")
}

func (v *VaccinationController) Get(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid record id")
		return
	}

	rec, err := v.vaccinationService.FindOne(c.Request.Context(), middleware.ParentID(c), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, rec, "Vaccination fetched")
}

func (v *VaccinationController) Update(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid record id")
		return
	}

	var req request_models.UpdateVaccinationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	rec, err := v.vaccinationService.Update(c.Request.Context(), middleware.ParentID(c), id, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, rec, "Vaccination updated")
}

func (v *VaccinationController) Remove(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid record id")
		return
	}

	if err := v.vaccinationService.Remove(c.Request.Context(), middleware.ParentID(c), id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Vaccination deleted")
}
