package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yukti-cloud/gpu-advisor/dto"
	"github.com/yukti-cloud/gpu-advisor/response"
	"github.com/yukti-cloud/gpu-advisor/services"
	"github.com/yukti-cloud/gpu-advisor/utils"
)

type RequestHandler struct {
	svc *services.RequestService
}

func NewRequestHandler(svc *services.RequestService) *RequestHandler {
	return &RequestHandler{svc: svc}
}

// CreateRequest godoc
// @Summary Raise a request for an unmet GPU requirement
// @Tags requests
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param input body dto.CreateRequestInput true "Criteria"
// @Success 201 {object} response.RequestResponse
// @Failure 400 {object} response.ErrorResponse "Missing required fields"
// @Failure 401 {object} response.ErrorResponse "Unauthorized"
// @Failure 500 {object} response.ErrorResponse
// @Router /requests [post]
func (h *RequestHandler) CreateRequest(c *gin.Context) {
	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	var input dto.CreateRequestInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Missing required fields"})
		return
	}

	req, err := h.svc.CreateRequest(userID, input)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "Internal Server Error"})
		return
	}

	c.JSON(http.StatusCreated, response.RequestResponse{Success: true, Request: req})
}

// ListRequests godoc
// @Summary List the caller's raised requests, newest first
// @Tags requests
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.RequestListResponse
// @Failure 401 {object} response.ErrorResponse "Unauthorized"
// @Failure 500 {object} response.ErrorResponse
// @Router /requests [get]
func (h *RequestHandler) ListRequests(c *gin.Context) {
	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	reqs, err := h.svc.ListRequests(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "Internal Server Error"})
		return
	}

	c.JSON(http.StatusOK, response.RequestListResponse{Success: true, Requests: reqs})
}
