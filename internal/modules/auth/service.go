package auth

import (
	"errors"
	"time"

	"github.com/findelmundo/core/internal/models"
	"github.com/findelmundo/core/internal/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type Service struct{ db *gorm.DB }

func NewService(db *gorm.DB) *Service { return &Service{db: db} }

func (s *Service) GetByID(id string) (*models.AdminModel, error) {
	var a models.AdminModel
	if err := s.db.First(&a, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &a, nil
}

// Register creates the admin account and signs a token for it.
func (s *Service) Register(dto *RegisterDTO) (string, *models.AdminModel, error) {
	var count int64
	s.db.Model(&models.AdminModel{}).Where("email = ?", dto.Email).Count(&count)
	if count > 0 {
		return "", nil, errEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(dto.Password), bcrypt.DefaultCost)
	if err != nil {
		return "", nil, err
	}

	a := models.AdminModel{Email: dto.Email, Password: string(hash)}
	if err := s.db.Create(&a).Error; err != nil {
		return "", nil, err
	}

	token, err := jwt.Sign(a.ID, jwt.DefaultTTL)
	return token, &a, err
}

// Login verifies credentials, records the login, and signs a token.
func (s *Service) Login(email, password, ip string) (string, *models.AdminModel, error) {
	var a models.AdminModel
	if err := s.db.Where("email = ?", email).First(&a).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, errInvalidCredentials
		}
		return "", nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(a.Password), []byte(password)); err != nil {
		return "", nil, errInvalidCredentials
	}

	now := time.Now()
	s.db.Model(&a).Updates(map[string]interface{}{
		"last_login_time": now,
		"last_login_ip":   ip,
	})
	a.LastLoginTime = &now
	a.LastLoginIP = ip

	token, err := jwt.Sign(a.ID, jwt.DefaultTTL)
	return token, &a, err
}
