package models

import (
	"time"

	"gorm.io/datatypes"
)

// RequestCriteria is the snapshot stored with a raised request. It keeps
// every field the user submitted, including vram, which the filter
// funnel does not enforce.
type RequestCriteria struct {
	OS      string  `json:"os"`
	Budget  float64 `json:"budget"`
	Country string  `json:"country"`
	Region  string  `json:"region"`
	CPUs    int     `json:"cpus"`
	RAM     float64 `json:"ram"`
	VRAM    float64 `json:"vram"`
}

// GPURequest is a persisted record of an unmet requirement, raised
// explicitly by the user when the funnel comes up empty. Rows are never
// mutated and are read strictly scoped by UserID.
type GPURequest struct {
	ID        uint                                   `gorm:"primaryKey" json:"id"`
	UserID    uint                                   `gorm:"index;not null" json:"user_id"`
	Criteria  datatypes.JSONType[RequestCriteria]    `gorm:"not null" json:"criteria"`
	CreatedAt time.Time                              `gorm:"autoCreateTime" json:"created_at"`
}
