package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"nestling/internal/models/request_models"
	"nestling/internal/services"
	"nestling/pkg/middleware"
	"nestling/pkg/utils"
)

type ChildController struct {
	childService services.ChildServiceInterface
}

func NewChildController(childService services.ChildServiceInterface) *ChildController {
	return &ChildController{childService: childService}
}

// Register godoc
// @Summary Register a child under the authenticated parent
// @Description Creates the child, the guardianship relation and the regional vaccination schedule
// @Tags Children
// @Accept json
// @Produce json
// @Param request body request_models.CreateChildRequest true "Child payload"
// @Success 201 {object} utils.APIResponse
// @Security BearerAuth
// @Router /children [post]
func (ch *ChildController) Register(c *gin.Context) {
	var req request_models.CreateChildRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	child, err := ch.childService.Register(c.Request.Context(), middleware.ParentID(c), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondCreated(c, child, "Child registered successfully")
}

// List godoc
// @Summary List the authenticated parent's children
// @Tags Children
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /children [get]
func (ch *ChildController) List(c *gin.Context) {
	children, err := ch.childService.FindAll(c.Request.Context(), middleware.ParentID(c))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, children, "Children fetched successfully")
}

// Get godoc
// @Summary Get one child by id
// @Tags Children
// @Produce json
// @Param id path string true "Child ID"
// @Success 200 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /children/{id} [get]
func (ch *ChildController) Get(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid child id")
		return
	}

	child, err := ch.childService.FindOne(c.Request.Context(), middleware.ParentID(c), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, child, "Child fetched successfully")
}

// Update godoc
// @Summary Update a child's profile
// @Tags Children
// @Accept json
// @Produce json
// @Param id path string true "Child ID"
// @Param request body request_models.UpdateChildRequest true "Fields to change"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /children/{id} [patch]
func (ch *ChildController) Update(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid child id")
		return
	}

	var req request_models.UpdateChildRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	child, err := ch.childService.Update(c.Request.Context(), middleware.ParentID(c), id, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, child, "Child updated successfully")
}

// Remove godoc
// @Summary Revoke the caller's guardianship of a child
// @Tags Children
// @Produce json
// @Param id path string true "Child ID"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /children/{id} [delete]
func (ch *ChildController) Remove(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid child id")
		return
	}

	if err := ch.childService.Remove(c.Request.Context(), middleware.ParentID(c), id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Guardianship revoked")
}
