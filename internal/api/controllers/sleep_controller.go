package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"nestling/internal/models/request_models"
	"nestling/internal/services"
	"nestling/pkg/middleware"
	"nestling/pkg/utils"
)

type SleepController struct {
	sleepService services.SleepServiceInterface
}

func NewSleepController(sleepService services.SleepServiceInterface) *SleepController {
	return &SleepController{sleepService: sleepService}
}

func (s *SleepController) Create(c *gin.Context) {
	var req request_models.CreateSleepRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	rec, err := s.sleepService.Create(c.Request.Context(), middleware.ParentID(c), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondCreated(c, rec, "Sleep record created")
}

func (s *SleepController) List(c *gin.Context) {
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
		recs, err := s.sleepService.FindBetween(c.Request.Context(), middleware.ParentID(c), childID, from, to)
		if err != nil {
			utils.HandleServiceError(c, err)
			return
		}
		utils.RespondSuccess(c, recs, "Sleep records fetched")
		return
	}

	limit, offset, err := pageQuery(c)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid pagination")
		return
	}
	recs, err := s.sleepService.FindAll(c.Request.Context(), middleware.ParentID(c), childID, limit, offset)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, recs, "Sleep records fetched")
}

func (s *SleepController) Get(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid record id")
		return
	}

	rec, err := s.sleepService.FindOne(c.Request.Context(), middleware.ParentID(c), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, rec, "Sleep record fetched")
}

func (s *SleepController) Update(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid record id")
		return
	}

	var req request_models.UpdateSleepRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	rec, err := s.sleepService.Update(c.Request.Context(), middleware.ParentID(c), id, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, rec, "Sleep record updated")
}

func (s *SleepController) Remove(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid record id")
		return
	}

	if err := s.sleepService.Remove(c.Request.Context(), middleware.ParentID(c), id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Sleep record deleted")
}
