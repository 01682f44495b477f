package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"shinkai/internal/models/request_models"
	"shinkai/internal/services"
	"shinkai/pkg/utils"
)

type ItineraryController struct {
	itineraryService services.ItineraryServiceInterface
}

func NewItineraryController(itineraryService services.ItineraryServiceInterface) *ItineraryController {
	return &ItineraryController{
		itineraryService: itineraryService,
	}
}

// Generate godoc
// @Summary Build a day-by-day itinerary
// @Description Spots that do not fit the requested days come back as overflow, never as an error.
// @Tags Itineraries
// @Accept json
// @Produce json
// @Param request body request_models.GenerateItineraryRequest true "Region, days, theme park flag and spot names"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /itineraries [post]
func (ic *ItineraryController) Generate(c *gin.Context) {
	var req request_models.GenerateItineraryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	resp, err := ic.itineraryService.Generate(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, resp, "Itinerary generated successfully")
}

// Summary godoc
// @Summary Itinerary from planner URL parameters
// @Tags Itineraries
// @Produce json
// @Param region path string true "Region key"
// @Param days query string false "Trip length, clamped to 1-10"
// @Param theme query string false "1 reserves a theme park day"
// @Param spots query string false "Comma separated spot names"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /itineraries/{region}/summary [get]
func (ic *ItineraryController) Summary(c *gin.Context) {
	var query request_models.SummaryQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid query parameters")
		return
	}

	resp, err := ic.itineraryService.Summary(c.Request.Context(), c.Param("region"), query)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, resp, "Itinerary generated successfully")
}
