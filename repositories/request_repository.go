package repositories

import (
	"github.com/yukti-cloud/gpu-advisor/db"
	"github.com/yukti-cloud/gpu-advisor/models"
)

type RequestRepo interface {
	Create(req *models.GPURequest) error
	ListByUserID(userID uint) ([]models.GPURequest, error)
}

type DBRequestRepo struct{}

func (r *DBRequestRepo) Create(req *models.GPURequest) error {
	return db.DB.Create(req).Error
}

// ListByUserID returns only the owning user's requests, newest first.
func (r *DBRequestRepo) ListByUserID(userID uint) ([]models.GPURequest, error) {
	var reqs []models.GPURequest
	err := db.DB.Where("user_id = ?", userID).Order("created_at DESC").Find(&reqs).Error
	return reqs, err
}
