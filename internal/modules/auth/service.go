package auth

import (
	"errors"
	"time"

	"github.com/pagelift/core/internal/models"
	"github.com/pagelift/core/internal/modules/tenant"
	"github.com/pagelift/core/internal/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	errEmailTaken         = errors.New("email already exists")
	errInvalidCredentials = errors.New("invalid email or password")
	errInvalidRefresh     = errors.New("invalid refresh token")
	errUserNotFound       = errors.New("user not found")
)

type Service struct {
	db        *gorm.DB
	tenantSvc *tenant.Service
}

func NewService(db *gorm.DB, tenantSvc *tenant.Service) *Service {
	return &Service{db: db, tenantSvc: tenantSvc}
}

// Signup creates the tenant and its OWNER user atomically: a failed user
// insert rolls back the tenant registration.
func (s *Service) Signup(dto *SignupDTO) (*AuthResponse, error) {
	var count int64
	if err := s.db.Model(&models.UserModel{}).Where("email = ?", dto.Email).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, errEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(dto.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	var user models.UserModel
	err = s.db.Transaction(func(tx *gorm.DB) error {
		t, err := tenant.NewService(tx).Create(&models.TenantModel{
			Subdomain: dto.Subdomain,
			Name:      dto.TenantName,
			Email:     dto.Email,
			Status:    models.TenantActive,
			Settings:  models.DefaultTenantSettings(),
		})
		if err != nil {
			return err
		}

		user = models.UserModel{
			TenantID:  t.ID,
			Email:     dto.Email,
			Password:  string(hash),
			FirstName: dto.FirstName,
			LastName:  dto.LastName,
			Role:      models.RoleOwner,
			Status:    models.UserActive,
		}
		return tx.Create(&user).Error
	})
	if err != nil {
		return nil, err
	}

	return s.issueTokens(&user)
}

// Login verifies credentials and issues a fresh token pair.
func (s *Service) Login(dto *LoginDTO) (*AuthResponse, error) {
	var u models.UserModel
	if err := s.db.Where("email = ?", dto.Email).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errInvalidCredentials
		}
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(dto.Password)); err != nil {
		return nil, errInvalidCredentials
	}

	now := time.Now()
	u.LastLoginAt = &now
	if err := s.db.Model(&u).Update("last_login_at", now).Error; err != nil {
		return nil, err
	}

	return s.issueTokens(&u)
}

// Refresh exchanges a valid refresh token for a new token pair.
func (s *Service) Refresh(refreshToken string) (*AuthResponse, error) {
	claims, err := jwt.Parse(refreshToken)
	if err != nil || claims.TokenType != jwt.TypeRefresh {
		return nil, errInvalidRefresh
	}

	u, err := s.GetUser(claims.UserID)
	if err != nil {
		return nil, err
	}
	return s.issueTokens(u)
}

// GetUser fetches a user by id.
func (s *Service) GetUser(id string) (*models.UserModel, error) {
	var u models.UserModel
	if err := s.db.First(&u, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (s *Service) issueTokens(u *models.UserModel) (*AuthResponse, error) {
	access, err := jwt.Sign(u.ID, u.TenantID, u.Role)
	if err != nil {
		return nil, err
	}
	refresh, err := jwt.SignRefresh(u.ID, u.TenantID, u.Role)
	if err != nil {
		return nil, err
	}
	return &AuthResponse{
		AccessToken:  access,
		RefreshToken: refresh,
		TokenType:    "Bearer",
		ExpiresIn:    jwt.AccessTTL.Milliseconds(),
		User:         toUserInfo(u),
	}, nil
}
