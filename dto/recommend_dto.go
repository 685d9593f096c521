package dto

// RecommendInput is the recommendation request body. Zero values are
// rejected the same as missing fields; there is no valid request with a
// zero budget or zero minimum specs.
type RecommendInput struct {
	OS          string  `json:"os" binding:"required,oneof=windows linux" example:"linux"`
	Region      string  `json:"region" binding:"required" example:"ap-south-mum-1"`
	CPUs        int     `json:"cpus" binding:"required" example:"8"`
	RAM         float64 `json:"ram" binding:"required" example:"40"`
	Budget      float64 `json:"budget" binding:"required" example:"1500"`
	DatasetSize float64 `json:"datasetSize" binding:"required" example:"200"`
}
