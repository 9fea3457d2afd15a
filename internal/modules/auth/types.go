package auth

import (
	"time"

	"github.com/pagelift/core/internal/models"
)

// SignupDTO registers a new tenant and its OWNER user in one step.
type SignupDTO struct {
	FirstName  string `json:"firstName"  binding:"required"`
	LastName   string `json:"lastName"   binding:"required"`
	Email      string `json:"email"      binding:"required,email"`
	Password   string `json:"password"   binding:"required,min=8"`
	Subdomain  string `json:"subdomain"  binding:"required"`
	TenantName string `json:"tenantName" binding:"required"`
}

type LoginDTO struct {
	Email    string `json:"email"    binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type RefreshDTO struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// AuthResponse carries the token pair and the authenticated user.
type AuthResponse struct {
	AccessToken  string   `json:"accessToken"`
	RefreshToken string   `json:"refreshToken"`
	TokenType    string   `json:"tokenType"`
	ExpiresIn    int64    `json:"expiresIn"` // milliseconds
	User         UserInfo `json:"user"`
}

type UserInfo struct {
	ID        string     `json:"id"`
	Email     string     `json:"email"`
	FirstName string     `json:"firstName"`
	LastName  string     `json:"lastName"`
	FullName  string     `json:"fullName"`
	TenantID  string     `json:"tenantId"`
	Role      string     `json:"role"`
	Status    string     `json:"status"`
	LastLogin *time.Time `json:"lastLoginAt,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
}

func toUserInfo(u *models.UserModel) UserInfo {
	return UserInfo{
		ID:        u.ID,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		FullName:  u.FullName(),
		TenantID:  u.TenantID,
		Role:      u.Role,
		Status:    u.Status,
		LastLogin: u.LastLoginAt,
		CreatedAt: u.CreatedAt,
	}
}
