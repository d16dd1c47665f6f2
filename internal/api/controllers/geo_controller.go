package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"smarttrip/internal/models/request_models"
	"smarttrip/internal/services"
	"smarttrip/pkg/utils"
)

type GeoController struct {
	geoService services.GeoServiceInterface
}

func NewGeoController(geoService services.GeoServiceInterface) *GeoController {
	return &GeoController{
		geoService: geoService,
	}
}

// LookupPlaces godoc
// @Summary Geocode itinerary places
// @Description Extract place names from the markdown and resolve them to coordinates
// @Tags Geo
// @Accept json
// @Produce json
// @Param request body request_models.GeoLookupRequest true "Lookup request"
// @Success 200 {object} utils.APIResponse{data=response_models.GeoLookupResult}
// @Failure 400 {object} utils.APIResponse
// @Router /geo/lookup [post]
func (g *GeoController) LookupPlaces(c *gin.Context) {
	var req request_models.GeoLookupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "장소명이 필요합니다.")
		return
	}

	result, err := g.geoService.LookupPlaces(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Places resolved successfully")
}
