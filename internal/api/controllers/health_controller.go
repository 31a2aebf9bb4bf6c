package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"nestling/internal/models/request_models"
	"nestling/internal/services"
	"nestling/pkg/middleware"
	"nestling/pkg/utils"
)

// HealthController serves allergies, doctor appointments and uploaded
// health record documents.
type HealthController struct {
	allergyService      services.AllergyServiceInterface
	appointmentService  services.AppointmentServiceInterface
	healthRecordService services.HealthRecordServiceInterface
}

func NewHealthController(
	allergyService services.AllergyServiceInterface,
	appointmentService services.AppointmentServiceInterface,
	healthRecordService services.HealthRecordServiceInterface,
) *HealthController {
	return &HealthController{
		allergyService:      allergyService,
		appointmentService:  appointmentService,
		healthRecordService: healthRecordService,
	}
}

func (h *HealthController) CreateAllergy(c *gin.Context) {
	var req request_models.CreateAllergyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	rec, err := h.allergyService.Create(c.Request.Context(), middleware.ParentID(c), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondCreated(c, rec, "Allergy created")
}

func (h *HealthController) ListAllergies(c *gin.Context) {
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

	recs, err := h.allergyService.FindAll(c.Request.Context(), middleware.ParentID(c), childID, limit, offset)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, recs, "Allergies fetched")
}

func (h *HealthController) GetAllergy(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid record id")
		return
	}

	rec, err := h.allergyService.FindOne(c.Request.Context(), middleware.ParentID(c), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, rec, "Allergy fetched")
}

func (h *HealthController) UpdateAllergy(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid record id")
		return
	}

	var req request_models.UpdateAllergyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	rec, err := h.allergyService.Update(c.Request.Context(), middleware.ParentID(c), id, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, rec, "Allergy updated")
}

func (h *HealthController) RemoveAllergy(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid record id")
		return
	}

	if err := h.allergyService.Remove(c.Request.Context(), middleware.ParentID(c), id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Allergy deleted")
}

func (h *HealthController) CreateAppointment(c *gin.Context) {
	var req request_models.CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	rec, err := h.appointmentService.Create(c.Request.Context(), middleware.ParentID(c), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondCreated(c, rec, "Appointment created")
}

func (h *HealthController) ListAppointments(c *gin.Context) {
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
		recs, err := h.appointmentService.FindBetween(c.Request.Context(), middleware.ParentID(c), childID, from, to)
		if err != nil {
			utils.HandleServiceError(c, err)
			return
		}
		utils.RespondSuccess(c, recs, "Appointments fetched")
		return
	}

	limit, offset, err := pageQuery(c)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid pagination")
		return
	}
	recs, err := h.appointmentService.FindAll(c.Request.Context(), middleware.ParentID(c), childID, limit, offset)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, recs, "Appointments fetched")
}

func (h *HealthController) GetAppointment(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid record id")
		return
	}

	rec, err := h.appointmentService.FindOne(c.Request.Context(), middleware.ParentID(c), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, rec, "Appointment fetched")
}

func (h *HealthController) UpdateAppointment(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid record id")
		return
	}

	var req request_models.UpdateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	rec, err := h.appointmentService.Update(c.Request.Context(), middleware.ParentID(c), id, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, rec, "Appointment updated")
}

func (h *HealthController) RemoveAppointment(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid record id")
		return
	}

	if err := h.appointmentService.Remove(c.Request.Context(), middleware.ParentID(c), id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Appointment deleted")
}

func (h *HealthController) CreateHealthRecord(c *gin.Context) {
	var req request_models.CreateHealthRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	rec, err := h.healthRecordService.Create(c.Request.Context(), middleware.ParentID(c), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondCreated(c, rec, "Health record created")
}

func (h *HealthController) ListHealthRecords(c *gin.Context) {
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

	recs, err := h.healthRecordService.FindAll(c.Request.Context(), middleware.ParentID(c), childID, limit, offset)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, recs, "Health records fetched")
}

func (h *HealthController) GetHealthRecord(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid record id")
		return
	}

	rec, err := h.healthRecordService.FindOne(c.Request.Context(), middleware.ParentID(c), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, rec, "Health record fetched")
}

func (h *HealthController) UpdateHealthRecord(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid record id")
		return
	}

	var req request_models.UpdateHealthRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	rec, err := h.healthRecordService.Update(c.Request.Context(), middleware.ParentID(c), id, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, rec, "Health record updated")
}

func (h *HealthController) RemoveHealthRecord(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid record id")
		return
	}

	if err := h.healthRecordService.Remove(c.Request.Context(), middleware.ParentID(c), id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Health record deleted")
}
