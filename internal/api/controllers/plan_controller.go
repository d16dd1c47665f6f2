package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"smarttrip/internal/models/request_models"
	"smarttrip/internal/services"
	"smarttrip/pkg/utils"
)

type PlanController struct {
	plannerService services.PlannerServiceInterface
}

func NewPlanController(plannerService services.PlannerServiceInterface) *PlanController {
	return &PlanController{
		plannerService: plannerService,
	}
}

// GenerateItinerary godoc
// @Summary Generate a markdown itinerary
// @Description Build a day-by-day Korean markdown itinerary for the given trip parameters
// @Tags Plan
// @Accept json
// @Produce json
// @Param request body request_models.TripParameters true "Trip parameters"
// @Success 200 {object} utils.APIResponse{data=response_models.GeneratedItinerary}
// @Failure 400 {object} utils.APIResponse
// @Failure 502 {object} utils.APIResponse
// @Router /generate [post]
func (p *PlanController) GenerateItinerary(c *gin.Context) {
	var req request_models.TripParameters
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "국가, 도시, 숙박 일수를 입력해 주세요.")
		return
	}

	result, err := p.plannerService.GenerateItinerary(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Itinerary generated successfully")
}

// GenerateStructured godoc
// @Summary Generate a structured itinerary
// @Description Generate a typed day/activity plan plus its markdown projection
// @Tags Plan
// @Accept json
// @Produce json
// @Param request body request_models.TripParameters true "Trip parameters"
// @Success 200 {object} utils.APIResponse{data=response_models.StructuredItinerary}
// @Failure 400 {object} utils.APIResponse
// @Failure 502 {object} utils.APIResponse
// @Router /generate-structured [post]
func (p *PlanController) GenerateStructured(c *gin.Context) {
	var req request_models.TripParameters
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "국가, 도시, 숙박 일수를 입력해 주세요.")
		return
	}

	result, err := p.plannerService.GenerateStructured(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Structured itinerary generated successfully")
}

// RegenerateDay godoc
// @Summary Regenerate one day
// @Description Rewrite a single day of an existing itinerary and splice it back in place
// @Tags Plan
// @Accept json
// @Produce json
// @Param request body request_models.RegenerateDayRequest true "Day regeneration request"
// @Success 200 {object} utils.APIResponse{data=response_models.RegeneratedDay}
// @Failure 400 {object} utils.APIResponse
// @Failure 502 {object} utils.APIResponse
// @Router /regenerate-day [post]
func (p *PlanController) RegenerateDay(c *gin.Context) {
	var req request_models.RegenerateDayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "유효한 날짜와 일정을 입력해 주세요.")
		return
	}

	result, err := p.plannerService.RegenerateDay(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Day regenerated successfully")
}

// RegenerateSection godoc
// @Summary Regenerate one section
// @Description Rewrite a single section (오전/점심/오후/저녁/밤) of one day
// @Tags Plan
// @Accept json
// @Produce json
// @Param request body request_models.RegenerateSectionRequest true "Section regeneration request"
// @Success 200 {object} utils.APIResponse{data=response_models.RegeneratedDay}
// @Failure 400 {object} utils.APIResponse
// @Failure 502 {object} utils.APIResponse
// @Router /regenerate-section [post]
func (p *PlanController) RegenerateSection(c *gin.Context) {
	var req request_models.RegenerateSectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "유효한 섹션명을 입력해 주세요.")
		return
	}

	result, err := p.plannerService.RegenerateSection(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Section regenerated successfully")
}
