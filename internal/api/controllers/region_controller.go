package controllers

import (
	"github.com/gin-gonic/gin"

	"shinkai/internal/services"
	"shinkai/pkg/utils"
)

type RegionController struct {
	regionService services.RegionServiceInterface
	spotService   services.SpotServiceInterface
}

func NewRegionController(regionService services.RegionServiceInterface, spotService services.SpotServiceInterface) *RegionController {
	return &RegionController{
		regionService: regionService,
		spotService:   spotService,
	}
}

// ListRegions godoc
// @Summary List planner regions
// @Tags Regions
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /regions [get]
func (rc *RegionController) ListRegions(c *gin.Context) {
	regions, err := rc.regionService.ListRegions(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, regions, "Fetched regions successfully")
}

// GetRegion godoc
// @Summary Region detail with its full spot catalog
// @Tags Regions
// @Produce json
// @Param region path string true "Region key, e.g. kanto"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /regions/{region} [get]
func (rc *RegionController) GetRegion(c *gin.Context) {
	region, err := rc.regionService.GetRegion(c.Request.Context(), c.Param("region"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, region, "Fetched region successfully")
}

// ListSpots godoc
// @Summary Selectable spots of a region
// @Tags Regions
// @Produce json
// @Param region path string true "Region key"
// @Param include_theme_park query string false "1 or true to list theme parks"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /regions/{region}/spots [get]
func (rc *RegionController) ListSpots(c *gin.Context) {
	includeThemePark := isTruthy(c.Query("include_theme_park"))

	spots, err := rc.spotService.ListSpots(c.Request.Context(), c.Param("region"), includeThemePark)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, spots, "Fetched spots successfully")
}

// RecommendForSeason godoc
// @Summary Regions recommended for a season
// @Tags Regions
// @Produce json
// @Param season path string true "spring, summer, autumn or winter"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /seasons/{season} [get]
func (rc *RegionController) RecommendForSeason(c *gin.Context) {
	rec, err := rc.regionService.RecommendForSeason(c.Request.Context(), c.Param("season"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, rec, "Fetched season picks successfully")
}

func isTruthy(v string) bool {
	switch v {
	case "1", "true", "TRUE", "True", "yes":
		return true
	}
	return false
}
