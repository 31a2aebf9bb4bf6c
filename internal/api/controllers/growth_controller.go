package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"nestling/internal/models/request_models"
	"nestling/internal/services"
	"nestling/pkg/middleware"
	"nestling/pkg/utils"
)

type GrowthController struct {
	growthService services.GrowthServiceInterface
}

func NewGrowthController(growthService services.GrowthServiceInterface) *GrowthController {
	return &GrowthController{growthService: growthService}
}

// Create godoc
// @Summary Record a growth measurement
// @Tags Growth
// @Accept json
// @Produce json
// @Param request body request_models.CreateGrowthRequest true "Growth payload"
// @Success 201 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Security BearerAuth
// @Router /growth [post]
func (g *GrowthController) Create(c *gin.Context) {
	var req request_models.CreateGrowthRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	rec, err := g.growthService.Create(c.Request.Context(), middleware.ParentID(c), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondCreated(c, rec, "Growth record created")
}

// List godoc
// @Summary List growth records for a child
// @Description Newest first. Pass from/to (RFC 3339) for a date range instead of limit/offset.
// @Tags Growth
// @Produce json
// @Param childId query string true "Child ID"
// @Param limit query int false "Page size" default(10)
// @Param offset query int false "Offset" default(0)
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /growth [get]
func (g *GrowthController) List(c *gin.Context) {
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
		recs, err := g.growthService.FindBetween(c.Request.Context(), middleware.ParentID(c), childID, from, to)
		if err != nil {
			utils.HandleServiceError(c, err)
			return
		}
		utils.RespondSuccess(c, recs, "Growth records fetched")
		return
	}

	limit, offset, err := pageQuery(c)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid pagination")
		return
	}
	recs, err := g.growthService.FindAll(c.Request.Context(), middleware.ParentID(c), childID, limit, offset)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, recs, "Growth records fetched")
}

// Get godoc
// @Summary Get one growth record
// @Tags Growth
// @Produce json
// @Param id path string true "Record ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /growth/{id} [get]
func (g *GrowthController) Get(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid record id")
		return
	}

	rec, err := g.growthService.FindOne(c.Request.Context(), middleware.ParentID(c), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, rec, "Growth record fetched")
}

// Update godoc
// @Summary Update a growth record
// @Tags Growth
// @Accept json
// @Produce json
// @Param id path string true "Record ID"
// @Param request body request_models.UpdateGrowthRequest true "Fields to change"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /growth/{id} [patch]
func (g *GrowthController) Update(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid record id")
		return
	}

	var req request_models.UpdateGrowthRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	rec, err := g.growthService.Update(c.Request.Context(), middleware.ParentID(c), id, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, rec, "Growth record updated")
}

// Remove godoc
// @Summary Soft delete a growth record
// @Tags Growth
// @Produce json
// @Param id path string true "Record ID"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /growth/{id} [delete]
func (g *GrowthController) Remove(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid record id")
		return
	}

	if err := g.growthService.Remove(c.Request.Context(), middleware.ParentID(c), id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Growth record deleted")
}
