package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"nestling/internal/models/request_models"
	"nestling/internal/services"
	"nestling/pkg/middleware"
	"nestling/pkg/utils"
)

// FeedingController serves the three feeding record kinds: bottle feeds,
// nursing sessions and solid-food entries.
type FeedingController struct {
	bottleService  services.BottleServiceInterface
	nursingService services.NursingServiceInterface
	solidsService  services.SolidsServiceInterface
}

func NewFeedingController(
	bottleService services.BottleServiceInterface,
	nursingService services.NursingServiceInterface,
	solidsService services.SolidsServiceInterface,
) *FeedingController {
	return &FeedingController{
		bottleService:  bottleService,
		nursingService: nursingService,
		solidsService:  solidsService,
	}
}

func (f *FeedingController) CreateBottle(c *gin.Context) {
	var req request_models.CreateBottleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	rec, err := f.bottleService.Create(c.Request.Context(), middleware.ParentID(c), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondCreated(c, rec, "Bottle feed created")
}

func (f *FeedingController) ListBottles(c *gin.Context) {
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
		recs, err := f.bottleService.FindBetween(c.Request.Context(), middleware.ParentID(c), childID, from, to)
		if err != nil {
			utils.HandleServiceError(c, err)
			return
		}
		utils.RespondSuccess(c, recs, "Bottle feeds fetched")
		return
	}

	limit, offset, err := pageQuery(c)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid pagination")
		return
	}
	recs, err := f.bottleService.FindAll(c.Request.Context(), middleware.ParentID(c), childID, limit, offset)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, recs, "Bottle feeds fetched")
}

func (f *FeedingController) GetBottle(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid record id")
		return
	}

	rec, err := f.bottleService.FindOne(c.Request.Context(), middleware.ParentID(c), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, rec, "Bottle feed fetched")
}

func (f *FeedingController) UpdateBottle(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid record id")
		return
	}

	var req request_models.UpdateBottleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	rec, err := f.bottleService.Update(c.Request.Context(), middleware.ParentID(c), id, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, rec, "Bottle feed updated")
}

func (f *FeedingController) RemoveBottle(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid record id")
		return
	}

	if err := f.bottleService.Remove(c.Request.Context(), middleware.ParentID(c), id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Bottle feed deleted")
}

func (f *FeedingController) CreateNursing(c *gin.Context) {
	var req request_models.CreateNursingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	rec, err := f.nursingService.Create(c.Request.Context(), middleware.ParentID(c), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondCreated(c, rec, "Nursing session created")
}

func (f *FeedingController) ListNursing(c *gin.Context) {
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
		recs, err := f.nursingService.FindBetween(c.Request.Context(), middleware.ParentID(c), childID, from, to)
		if err != nil {
			utils.HandleServiceError(c, err)
			return
		}
		utils.RespondSuccess(c, recs, "Nursing sessions fetched")
		return
	}

	limit, offset, err := pageQuery(c)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid pagination")
		return
	}
	recs, err := f.nursingService.FindAll(c.Request.Context(), middleware.ParentID(c), childID, limit, offset)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, recs, "Nursing sessions fetched")
}

func (f *FeedingController) GetNursing(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid record id")
		return
	}

	rec, err := f.nursingService.FindOne(c.Request.Context(), middleware.ParentID(c), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, rec, "Nursing session fetched")
}

func (f *FeedingController) UpdateNursing(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid record id")
		return
	}

	var req request_models.UpdateNursingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	rec, err := f.nursingService.Update(c.Request.Context(), middleware.ParentID(c), id, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, rec, "Nursing session updated")
}

func (f *FeedingController) RemoveNursing(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid record id")
		return
	}

	if err := f.nursingService.Remove(c.Request.Context(), middleware.ParentID(c), id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Nursing session deleted")
}

func (f *FeedingController) CreateSolids(c *gin.Context) {
	var req request_models.CreateSolidsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	rec, err := f.solidsService.Create(c.Request.Context(), middleware.ParentID(c), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondCreated(c, rec, "Solids entry created")
}

func (f *FeedingController) ListSolids(c *gin.Context) {
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
		recs, err := f.solidsService.FindBetween(c.Request.Context(), middleware.ParentID(c), childID, from, to)
		if err != nil {
			utils.HandleServiceError(c, err)
			return
		}
		utils.RespondSuccess(c, recs, "Solids entries fetched")
		return
	}

	limit, offset, err := pageQuery(c)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid pagination")
		return
	}
	recs, err := f.solidsService.FindAll(c.Request.Context(), middleware.ParentID(c), childID, limit, offset)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, recs, "Solids entries fetched")
}

func (f *FeedingController) GetSolids(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid record id")
		return
	}

	rec, err := f.solidsService.FindOne(c.Request.Context(), middleware.ParentID(c), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, rec, "Solids entry fetched")
}

func (f *FeedingController) UpdateSolids(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid record id")
		return
	}

	var req request_models.UpdateSolidsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	rec, err := f.solidsService.Update(c.Request.Context(), middleware.ParentID(c), id, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, rec, "Solids entry updated")
}

func (f *FeedingController) RemoveSolids(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid record id")
		return
	}

	if err := f.solidsService.Remove(c.Request.Context(), middleware.ParentID(c), id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Solids entry deleted")
}
