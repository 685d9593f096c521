package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yukti-cloud/gpu-advisor/dto"
	"github.com/yukti-cloud/gpu-advisor/llm"
	"github.com/yukti-cloud/gpu-advisor/models"
	"github.com/yukti-cloud/gpu-advisor/pricing"
	"github.com/yukti-cloud/gpu-advisor/response"
	"github.com/yukti-cloud/gpu-advisor/services"
)

type RecommendHandler struct {
	svc *services.RecommendService
}

func NewRecommendHandler(svc *services.RecommendService) *RecommendHandler {
	return &RecommendHandler{svc: svc}
}

// Recommend godoc
// @Summary Recommend a GPU instance for the given requirements
// @Tags recommendations
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param input body dto.RecommendInput true "Requirements"
// @Success 200 {object} response.RecommendationResponse
// @Failure 400 {object} response.ErrorResponse "Missing fields"
// @Failure 401 {object} response.ErrorResponse "Unauthorized"
// @Failure 500 {object} response.ErrorResponse "Pricing API failure"
// @Failure 503 {object} response.ErrorResponse "LLM unavailable"
// @Router /recommendations [post]
func (h *RecommendHandler) Recommend(c *gin.Context) {
	var input dto.RecommendInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "All fields are required"})
		return
	}

	criteria := models.Criteria{
		OS:          input.OS,
		Region:      input.Region,
		CPUs:        input.CPUs,
		RAM:         input.RAM,
		Budget:      input.Budget,
		DatasetSize: input.DatasetSize,
	}

	rec, trace, err := h.svc.Recommend(c.Request.Context(), criteria)
	switch {
	case errors.Is(err, services.ErrNoMatch):
		// A dry funnel is a valid outcome, not a failure.
		c.JSON(http.StatusOK, response.NoMatchResponse{
			Error: "No GPUs found matching your criteria",
			Debug: trace,
		})
	case errors.Is(err, pricing.ErrUpstream):
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "Failed to fetch GPU options"})
	case errors.Is(err, llm.ErrUpstream):
		c.JSON(http.StatusServiceUnavailable, response.ErrorResponse{Error: "Service temporarily unavailable"})
	case errors.Is(err, services.ErrMalformedReply):
		c.JSON(http.StatusBadGateway, response.ErrorResponse{Error: "Service temporarily unavailable"})
	case err != nil:
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "Service temporarily unavailable"})
	default:
		c.JSON(http.StatusOK, response.RecommendationResponse{Recommendation: rec})
	}
}
