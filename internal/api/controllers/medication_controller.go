package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"nestling/internal/models/request_models"
	"nestling/internal/services"
	"nestling/pkg/middleware"
	"nestling/pkg/utils"
)

type MedicationController struct {
	medicationService services.MedicationServiceInterface
	slotService       services.MedicationSlotServiceInterface
}

func NewMedicationController(
	medicationService services.MedicationServiceInterface,
	slotService services.MedicationSlotServiceInterface,
) *MedicationController {
	return &MedicationController{
		medicationService: medicationService,
		slotService:       slotService,
	}
}

// Create godoc
// @Summary Start a medication course for a child
// @Tags Medications
// @Accept json
// @Produce json
// @Param request body request_models.CreateMedicationRequest true "Medication payload"
// @Success 201 {object} utils.APIResponse
// @Security BearerAuth
// @Router /medications [post]
func (m *MedicationController) Create(c *gin.Context) {
	var req request_models.CreateMedicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	rec, err := m.medicationService.Create(c.Request.Context(), middleware.ParentID(c), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondCreated(c, rec, "Medication created")
}

// List godoc
// @Summary List a child's medication schedule as flattened slot rows
// @Tags Medications
// @Produce json
// @Param childId query string true "Child ID"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /medications [get]
func (m *MedicationController) List(c *gin.Context) {
	childID, err := childQuery(c)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid child id")
		return
	}
	limit, offset, err := pageQuery(c)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid pagination")
		return
	}

	rows, err := m.medicationService.FindAll(c.Request.Context(), middleware.ParentID(c), childID, limit, offset)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, rows, "Medication schedule fetched")
}

func (m *MedicationController) Get(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid record id")
		return
	}

	rec, err := m.medicationService.FindOne(c.Request.Context(), middleware.ParentID(c), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, rec, "Medication fetched")
}

func (m *MedicationController) Update(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid record id")
		return
	}

	var req request_models.UpdateMedicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	rec, err := m.medicationService.Update(c.Request.Context(), middleware.ParentID(c), id, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, rec, "Medication updated")
}

// Remove godoc
// @Summary Soft delete a medication and its slots
// @Tags Medications
// @Produce json
// @Param id path string true "Record ID"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /medications/{id} [delete]
func (m *MedicationController) Remove(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid record id")
		return
	}

	if err := m.medicationService.Remove(c.Request.Context(), middleware.ParentID(c), id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Medication deleted")
}

func (m *MedicationController) CreateSlot(c *gin.Context) {
	var req request_models.CreateMedicationSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	rec, err := m.slotService.Create(c.Request.Context(), middleware.ParentID(c), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondCreated(c, rec, "Medication slot created")
}

func (m *MedicationController) ListSlots(c *gin.Context) {
	childID, err := childQuery(c)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid child id")
		return
	}

	slots, err := m.slotService.FindAll(c.Request.Context(), middleware.ParentID(c), childID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, slots, "Medication slots fetched")
}

func (m *MedicationController) GetSlot(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid record id")
		return
	}

	rec, err := m.slotService.FindOne(c.Request.Context(), middleware.ParentID(c), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, rec, "Medication slot fetched")
}

func (m *MedicationController) UpdateSlot(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid record id")
		return
	}

	var req request_models.UpdateMedicationSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	rec, err := m.slotService.Update(c.Request.Context(), middleware.ParentID(c), id, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, rec, "Medication slot updated")
}

func (m *MedicationController) RemoveSlot(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid record id")
		return
	}

	if err := m.slotService.Remove(c.Request.Context(), middleware.ParentID(c), id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Medication slot deleted")
}
