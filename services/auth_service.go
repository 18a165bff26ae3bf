package services

import (
	"errors"

	"github.com/BakhatBug/Keto-Slim/models"
	"github.com/BakhatBug/Keto-Slim/utils"

	"gorm.io/gorm"
)

type AuthService struct {
	db *gorm.DB
}

func NewAuthService(db *gorm.DB) *AuthService {
	return &AuthService{db: db}
}

// Register creates a user with the default role and returns it along with a
// signed token, so the client is logged in immediately.
func (s *AuthService) Register(email, password, name string) (*models.User, string, error) {
	var existing models.User
	err := s.db.Where("email = ?", email).First(&existing).Error
	if err == nil {
		return nil, "", &ValidationError{Message: "email already registered"}
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, "", err
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return nil, "", err
	}

	user := models.User{
		Email:        email,
		PasswordHash: hash,
		Name:         name,
		Roles:        []string{models.RoleUser},
	}
	if err := s.db.Create(&user).Error; err != nil {
		// The unique index on email may still fire if two registrations race.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, "", &ValidationError{Message: "email already registered"}
		}
		return nil, "", err
	}

	token, err := utils.GenerateJWT(user.ID, user.Roles)
	if err != nil {
		return nil, "", err
	}
	return &user, token, nil
}

// Login verifies credentials and returns the user plus a signed token. The
// same error is returned for unknown email and wrong password.
func (s *AuthService) Login(email, password string) (*models.User, string, error) {
	var user models.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", &UnauthorizedError{Message: "invalid email or password"}
		}
		return nil, "", err
	}

	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		return nil, "", &UnauthorizedError{Message: "invalid email or password"}
	}

	token, err := utils.GenerateJWT(user.ID, user.Roles)
	if err != nil {
		return nil, "", err
	}
	return &user, token, nil
}

func (s *AuthService) GetUserByID(userID uint) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Resource: "user"}
		}
		return nil, err
	}
	return &user, nil
}
