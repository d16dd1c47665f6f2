package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"smarttrip/internal/models/request_models"
	"smarttrip/internal/services"
	"smarttrip/pkg/utils"
)

type ShareController struct {
	shareService services.ShareServiceInterface
}

func NewShareController(shareService services.ShareServiceInterface) *ShareController {
	return &ShareController{
		shareService: shareService,
	}
}

// CreateShare godoc
// @Summary Share an itinerary
// @Description Store the itinerary and return a share id plus a one-time delete token
// @Tags Share
// @Accept json
// @Produce json
// @Param request body request_models.CreateShareRequest true "Itinerary to share"
// @Success 200 {object} utils.APIResponse{data=response_models.ShareCreated}
// @Failure 400 {object} utils.APIResponse
// @Router /share [post]
func (s *ShareController) CreateShare(c *gin.Context) {
	var req request_models.CreateShareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "공유할 데이터가 없습니다.")
		return
	}

	result, err := s.shareService.CreateShare(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Share link created successfully")
}

// GetShare godoc
// @Summary Fetch a shared itinerary
// @Tags Share
// @Produce json
// @Param id path string true "Share id"
// @Success 200 {object} utils.APIResponse{data=response_models.SharedItinerary}
// @Failure 404 {object} utils.APIResponse
// @Router /share/{id} [get]
func (s *ShareController) GetShare(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		utils.RespondError(c, http.StatusBadRequest, "id required")
		return
	}

	result, err := s.shareService.GetShare(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Share fetched successfully")
}

// DeleteShare godoc
// @Summary Delete a shared itinerary
// @Description Soft-delete a share; requires the delete token from creation in X-Delete-Token
// @Tags Share
// @Produce json
// @Param id path string true "Share id"
// @Param X-Delete-Token header string true "Delete token"
// @Success 200 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /share/{id} [delete]
func (s *ShareController) DeleteShare(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		utils.RespondError(c, http.StatusBadRequest, "id required")
		return
	}
	token := c.GetHeader("X-Delete-Token")
	if token == "" {
		utils.RespondError(c, http.StatusUnauthorized, "delete token required")
		return
	}

	if err := s.shareService.DeleteShare(c.Request.Context(), id, token); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"ok": true}, "Share deleted successfully")
}
