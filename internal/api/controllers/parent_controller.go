package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"nestling/internal/models/request_models"
	"nestling/internal/services"
	"nestling/pkg/middleware"
	"nestling/pkg/utils"
)

type ParentController struct {
	parentService services.ParentServiceInterface
}

func NewParentController(parentService services.ParentServiceInterface) *ParentController {
	return &ParentController{parentService: parentService}
}

// Profile godoc
// @Summary Get the authenticated parent's profile
// @Tags Parents
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /parents/me [get]
func (p *ParentController) Profile(c *gin.Context) {
	profile, err := p.parentService.Profile(c.Request.Context(), middleware.ParentID(c))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, profile, "Profile fetched successfully")
}

// Update godoc
// @Summary Update the authenticated parent's profile
// @Tags Parents
// @Accept json
// @Produce json
// @Param request body request_models.UpdateParentRequest true "Profile fields to change"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /parents/me [patch]
func (p *ParentController) Update(c *gin.Context) {
	var req request_models.UpdateParentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	profile, err := p.parentService.Update(c.Request.Context(), middleware.ParentID(c), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, profile, "Profile updated successfully")
}

// Delete godoc
// @Summary Delete the authenticated parent's account
// @Tags Parents
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /parents/me [delete]
func (p *ParentController) Delete(c *gin.Context) {
	if err := p.parentService.Delete(c.Request.Context(), middleware.ParentID(c)); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Account deleted")
}
