package services

import (
	"errors"
	"time"

	"github.com/linskybing/crf-go/dto"
	"github.com/linskybing/crf-go/middleware"
	"github.com/linskybing/crf-go/models"
	"github.com/linskybing/crf-go/repositories"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserService struct {
	Repos *repositories.Repos
}

func NewUserService(repos *repositories.Repos) *UserService {
	return &UserService{Repos: repos}
}

func (s *UserService) Register(input dto.RegisterDTO) (*models.User, error) {
	if _, err := s.Repos.User.FindByEmail(input.Email); err == nil {
		return nil, validationf("email %s already registered", input.Email)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Name:         input.Name,
		NRIC:         input.NRIC,
		Email:        input.Email,
		Password:     string(hashed),
		DepartmentID: input.DepartmentID,
	}
	if err := s.Repos.User.Create(user); err != nil {
		return nil, err
	}
	if err := s.Repos.User.AssignRole(user.ID, models.RoleUser); err != nil {
		return nil, err
	}
	return s.Repos.User.FindByID(user.ID)
}

func (s *UserService) Login(input dto.LoginDTO) (string, *models.User, error) {
	user, err := s.Repos.User.FindByEmail(input.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, forbiddenf("invalid credentials")
		}
		return "", nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
		return "", nil, forbiddenf("invalid credentials")
	}

	token, err := middleware.GenerateToken(user.ID, user.Name, 24*time.Hour)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}
