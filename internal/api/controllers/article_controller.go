package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"nestling/internal/models/request_models"
	"nestling/internal/services"
	"nestling/pkg/utils"
)

// ArticleController serves editorial content. Articles are shared reading
// material, not parent-owned records, so no ownership checks apply.
type ArticleController struct {
	articleService services.ArticleServiceInterface
}

func NewArticleController(articleService services.ArticleServiceInterface) *ArticleController {
	return &ArticleController{articleService: articleService}
}

// Create godoc
// @Summary Publish an article
// @Tags Articles
// @Accept json
// @Produce json
// @Param request body request_models.CreateArticleRequest true "Article payload"
// @Success 201 {object} utils.APIResponse
// @Security BearerAuth
// @Router /articles [post]
func (a *ArticleController) Create(c *gin.Context) {
	var req request_models.CreateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	rec, err := a.articleService.Create(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondCreated(c, rec, "Article created")
}

// List godoc
// @Summary List articles, optionally filtered by author
// @Tags Articles
// @Produce json
// @Param author query string false "Author name"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /articles [get]
func (a *ArticleController) List(c *gin.Context) {
	if author := c.Query("author"); author != "" {
		articles, err := a.articleService.FindByAuthor(c.Request.Context(), author)
		if err != nil {
			utils.HandleServiceError(c, err)
			return
		}
		utils.RespondSuccess(c, articles, "Articles fetched")
		return
	}

	articles, err := a.articleService.FindAll(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, articles, "Articles fetched")
}

// Get godoc
// @Summary Fetch a single article
// @Tags Articles
// @Produce json
// @Param id path string true "Article id"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /articles/{id} [get]
func (a *ArticleController) Get(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid article id")
		return
	}

	rec, err := a.articleService.FindOne(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, rec, "Article fetched")
}

// Update godoc
// @Summary Update an article
// @Tags Articles
// @Accept json
// @Produce json
// @Param id path string true "Article id"
// @Param request body request_models.UpdateArticleRequest true "Fields to change"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /articles/{id} [patch]
func (a *ArticleController) Update(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid article id")
		return
	}

	var req request_models.UpdateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	rec, err := a.articleService.Update(c.Request.Context(), id, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, rec, "Article updated")
}

// Remove godoc
// @Summary Delete an article
// @Tags Articles
// @Param id path string true "Article id"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /articles/{id} [delete]
func (a *ArticleController) Remove(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid article id")
		return
	}

	if err := a.articleService.Remove(c.Request.Context(), id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Article deleted")
}
