package models

// Tenant statuses.
const (
	TenantActive            = "ACTIVE"
	TenantInactive          = "INACTIVE"
	TenantSuspended         = "SUSPENDED"
	TenantPendingActivation = "PENDING_ACTIVATION"
)

// TenantModel is an organization with its own subdomain and set of pages.
type TenantModel struct {
	Base
	Subdomain string         `json:"subdomain" gorm:"uniqueIndex;not null"`
	Name      string         `json:"name"      gorm:"not null"`
	Email     string         `json:"email"     gorm:"not null"`
	Status    string         `json:"status"    gorm:"index;default:ACTIVE"`
	Settings  TenantSettings `json:"settings"  gorm:"type:longtext;serializer:json"`
}

func (TenantModel) TableName() string { return "tenants" }

// TenantSettings is the per-tenant configuration document.
type TenantSettings struct {
	CustomDomain       string `json:"customDomain,omitempty"`
	LogoURL            string `json:"logoUrl,omitempty"`
	PrimaryColor       string `json:"primaryColor,omitempty"`
	SecondaryColor     string `json:"secondaryColor,omitempty"`
	AllowCustomStyling bool   `json:"allowCustomStyling"`
	MaxPages           int    `json:"maxPages"`
}

// DefaultTenantSettings are applied when a tenant registers.
func DefaultTenantSettings() TenantSettings {
	return TenantSettings{
		PrimaryColor:       DefaultPrimaryColor,
		SecondaryColor:     DefaultSecondaryColor,
		AllowCustomStyling: true,
		MaxPages:           10,
	}
}
