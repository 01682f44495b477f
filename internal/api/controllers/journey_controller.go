package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"shinkai/internal/models/request_models"
	"shinkai/internal/services"
	"shinkai/pkg/middleware"
	"shinkai/pkg/utils"
)

type JourneyController struct {
	journeyService services.JourneyServiceInterface
}

func NewJourneyController(journeyService services.JourneyServiceInterface) *JourneyController {
	return &JourneyController{
		journeyService: journeyService,
	}
}

func currentAccount(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.GetString(middleware.ContextUserID))
	if err != nil {
		utils.HandleServiceError(c, utils.ErrUnauthorized)
		return uuid.Nil, false
	}
	return id, true
}

func journeyIDParam(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid journey id")
		return uuid.Nil, false
	}
	return id, true
}

// SaveJourney godoc
// @Summary Save a generated itinerary
// @Description The itinerary is regenerated server side from the given parameters.
// @Tags Journey
// @Accept json
// @Produce json
// @Param request body request_models.SaveJourneyRequest true "Title and itinerary parameters"
// @Success 201 {object} utils.APIResponse
// @Security BearerAuth
// @Router /journeys [post]
func (j *JourneyController) SaveJourney(c *gin.Context) {
	accountID, ok := currentAccount(c)
	if !ok {
		return
	}

	var req request_models.SaveJourneyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	journey, err := j.journeyService.SaveJourney(c.Request.Context(), accountID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondCreated(c, journey, "Journey saved successfully")
}

// ListJourneys godoc
// @Summary Saved journeys of the authenticated account
// @Tags Journey
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Page size" default(5) minimum(1) maximum(100)
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /journeys [get]
func (j *JourneyController) ListJourneys(c *gin.Context) {
	accountID, ok := currentAccount(c)
	if !ok {
		return
	}

	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid page number")
		return
	}
	pageSize, err := strconv.Atoi(c.DefaultQuery("pageSize", "5"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid page size (must be 1-100)")
		return
	}

	journeys, err := j.journeyService.ListJourneys(c.Request.Context(), accountID, page, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, journeys, "Journey fetched successfully")
}

func (j *JourneyController) GetJourney(c *gin.Context) {
	accountID, ok := currentAccount(c)
	if !ok {
		return
	}
	journeyID, ok := journeyIDParam(c)
	if !ok {
		return
	}

	journey, err := j.journeyService.GetJourney(c.Request.Context(), accountID, journeyID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, journey, "Journey fetched successfully")
}

func (j *JourneyController) DeleteJourney(c *gin.Context) {
	accountID, ok := currentAccount(c)
	if !ok {
		return
	}
	journeyID, ok := journeyIDParam(c)
	if !ok {
		return
	}

	if err := j.journeyService.DeleteJourney(c.Request.Context(), accountID, journeyID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Journey deleted successfully")
}
