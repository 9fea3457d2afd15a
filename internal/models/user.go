package models

import "time"

// User roles, in decreasing privilege order.
const (
	RoleOwner  = "OWNER"
	RoleAdmin  = "ADMIN"
	RoleEditor = "EDITOR"
	RoleViewer = "VIEWER"
)

// User statuses.
const (
	UserActive   = "ACTIVE"
	UserInactive = "INACTIVE"
)

// UserModel is a member of a tenant's team.
type UserModel struct {
	Base
	TenantID    string     `json:"tenantId"   gorm:"index;not null"`
	Email       string     `json:"email"      gorm:"uniqueIndex;not null"`
	Password    string     `json:"-"          gorm:"not null"`
	FirstName   string     `json:"firstName"`
	LastName    string     `json:"lastName"`
	Role        string     `json:"role"       gorm:"default:EDITOR"`
	Status      string     `json:"status"     gorm:"default:ACTIVE"`
	LastLoginAt *time.Time `json:"lastLoginAt,omitempty"`
}

func (UserModel) TableName() string { return "users" }

// FullName joins first and last name for display.
func (u *UserModel) FullName() string {
	if u.FirstName == "" {
		return u.LastName
	}
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}

// CanEdit reports whether the role may create or modify pages.
func CanEdit(role string) bool {
	return role == RoleOwner || role == RoleAdmin || role == RoleEditor
}

// CanDelete reports whether the role may delete pages.
func CanDelete(role string) bool {
	return role == RoleOwner || role == RoleAdmin
}
