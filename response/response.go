package response

import "github.com/yukti-cloud/gpu-advisor/models"

type ErrorResponse struct {
	Error string `json:"error"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type TokenResponse struct {
	Token    string `json:"token"`
	UID      uint   `json:"user_id"`
	Email    string `json:"email"`
	FullName string `json:"full_name"`
}

type RecommendationResponse struct {
	Recommendation models.Recommendation `json:"recommendation"`
}

// NoMatchResponse is deliberately served with HTTP 200: an empty funnel
// is a valid outcome, and the trace tells the user which constraint
// emptied it.
type NoMatchResponse struct {
	Error string             `json:"error"`
	Debug models.FilterTrace `json:"debug"`
}

type RequestResponse struct {
	Success bool              `json:"success"`
	Request models.GPURequest `json:"request"`
}

type RequestListResponse struct {
	Success  bool                `json:"success"`
	Requests []models.GPURequest `json:"requests"`
}
