package dto

// CreateRequestInput is the raise-request body: the full criteria
// snapshot, including country and the unenforced vram requirement.
type CreateRequestInput struct {
	OS      string  `json:"os" binding:"required" example:"linux"`
	Budget  float64 `json:"budget" binding:"required" example:"1500"`
	Country string  `json:"country" binding:"required" example:"India"`
	Region  string  `json:"region" binding:"required" example:"ap-south-mum-1"`
	CPUs    int     `json:"cpus" binding:"required" example:"8"`
	RAM     float64 `json:"ram" binding:"required" example:"40"`
	VRAM    float64 `json:"vram" binding:"required" example:"24"`
}
