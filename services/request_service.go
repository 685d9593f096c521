package services

import (
	"github.com/yukti-cloud/gpu-advisor/dto"
	"github.com/yukti-cloud/gpu-advisor/models"
	"github.com/yukti-cloud/gpu-advisor/repositories"
	"gorm.io/datatypes"
)

type RequestService struct {
	Repos *repositories.Repos
}

func NewRequestService(repos *repositories.Repos) *RequestService {
	return &RequestService{Repos: repos}
}

// CreateRequest persists the caller's unmet criteria. Requests are
// append-only; a duplicate submission creates a duplicate row.
func (s *RequestService) CreateRequest(userID uint, input dto.CreateRequestInput) (models.GPURequest, error) {
	req := models.GPURequest{
		UserID: userID,
		Criteria: datatypes.NewJSONType(models.RequestCriteria{
			OS:      input.OS,
			Budget:  input.Budget,
			Country: input.Country,
			Region:  input.Region,
			CPUs:    input.CPUs,
			RAM:     input.RAM,
			VRAM:    input.VRAM,
		}),
	}
	if err := s.Repos.Request.Create(&req); err != nil {
		return models.GPURequest{}, err
	}
	return req, nil
}

// ListRequests returns the caller's own requests, newest first.
func (s *RequestService) ListRequests(userID uint) ([]models.GPURequest, error) {
	return s.Repos.Request.ListByUserID(userID)
}
