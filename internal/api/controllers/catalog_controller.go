package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"smarttrip/internal/services"
	"smarttrip/pkg/utils"
)

type CatalogController struct {
	catalogService services.CatalogServiceInterface
}

func NewCatalogController(catalogService services.CatalogServiceInterface) *CatalogController {
	return &CatalogController{
		catalogService: catalogService,
	}
}

// ListCountries godoc
// @Summary List destination countries
// @Tags Catalog
// @Produce json
// @Success 200 {object} utils.APIResponse{data=[]response_models.CatalogCountry}
// @Router /countries [get]
func (cc *CatalogController) ListCountries(c *gin.Context) {
	countries, err := cc.catalogService.ListCountries()
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, countries, "Countries fetched successfully")
}

// ListCities godoc
// @Summary List cities for a country
// @Tags Catalog
// @Produce json
// @Param country query string true "ISO 3166-1 alpha-2 country code"
// @Success 200 {object} utils.APIResponse{data=[]response_models.CatalogCity}
// @Failure 400 {object} utils.APIResponse
// @Router /cities [get]
func (cc *CatalogController) ListCities(c *gin.Context) {
	country := c.Query("country")
	if country == "" {
		utils.RespondError(c, http.StatusBadRequest, "country required")
		return
	}

	cities, err := cc.catalogService.ListCities(country)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, cities, "Cities fetched successfully")
}
