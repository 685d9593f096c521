package services

import (
	"errors"
	"time"

	"github.com/yukti-cloud/gpu-advisor/dto"
	"github.com/yukti-cloud/gpu-advisor/middleware"
	"github.com/yukti-cloud/gpu-advisor/models"
	"github.com/yukti-cloud/gpu-advisor/repositories"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrEmailTaken          = errors.New("email already registered")
	ErrInvalidCredentials  = errors.New("invalid email or password")
	ErrPasswordHashFailure = errors.New("failed to hash password")
)

type UserService struct {
	Repos *repositories.Repos
}

func NewUserService(repos *repositories.Repos) *UserService {
	return &UserService{Repos: repos}
}

func (s *UserService) RegisterUser(input dto.RegisterInput) (models.User, error) {
	_, err := s.Repos.User.GetUserByEmail(input.Email)
	if err == nil {
		return models.User{}, ErrEmailTaken
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return models.User{}, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, ErrPasswordHashFailure
	}

	user := models.User{
		Email:    input.Email,
		Password: string(hashed),
		FullName: input.FullName,
	}
	if err := s.Repos.User.SaveUser(&user); err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (s *UserService) LoginUser(email, password string) (models.User, string, error) {
	user, err := s.Repos.User.GetUserByEmail(email)
	if err != nil {
		return models.User{}, "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return models.User{}, "", ErrInvalidCredentials
	}

	token, err := middleware.GenerateToken(user.UID, user.Email, 24*time.Hour)
	if err != nil {
		return models.User{}, "", err
	}

	return user, token, nil
}
