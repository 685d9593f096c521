package repositories

import (
	"github.com/yukti-cloud/gpu-advisor/db"
	"github.com/yukti-cloud/gpu-advisor/models"
)

type UserRepo interface {
	GetUserByEmail(email string) (models.User, error)
	GetUserByID(id uint) (models.User, error)
	SaveUser(user *models.User) error
}

type DBUserRepo struct{}

func (r *DBUserRepo) GetUserByEmail(email string) (models.User, error) {
	var user models.User
	err := db.DB.Where("email = ?", email).First(&user).Error
	return user, err
}

func (r *DBUserRepo) GetUserByID(id uint) (models.User, error) {
	var user models.User
	err := db.DB.First(&user, id).Error
	return user, err
}

func (r *DBUserRepo) SaveUser(user *models.User) error {
	return db.DB.Save(user).Error
}
