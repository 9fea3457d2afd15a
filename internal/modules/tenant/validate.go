package tenant

import (
	"regexp"
	"strings"

	"github.com/pagelift/core/internal/models"
)

var (
	// Subdomains are DNS labels: lowercase alphanumeric with interior hyphens,
	// 3-63 characters.
	subdomainPattern = regexp.MustCompile(`^[a-z0-9]([a-z0-9-]{1,61}[a-z0-9])?$`)
	emailPattern     = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
	domainPattern    = regexp.MustCompile(`^([a-z0-9]([a-z0-9-]*[a-z0-9])?\.)+[a-z]{2,}$`)
)

// reservedSubdomains cannot be claimed by tenants; they collide with
// platform hosts.
var reservedSubdomains = map[string]bool{
	"www":   true,
	"api":   true,
	"admin": true,
	"app":   true,
}

func validateTenant(t *models.TenantModel) error {
	if !ValidSubdomain(t.Subdomain) {
		return &ValidationError{Reason: "invalid subdomain format: " + t.Subdomain}
	}
	if !emailPattern.MatchString(t.Email) {
		return &ValidationError{Reason: "invalid email format: " + t.Email}
	}
	if strings.TrimSpace(t.Name) == "" {
		return &ValidationError{Reason: "tenant name cannot be empty"}
	}
	if cd := t.Settings.CustomDomain; cd != "" && !domainPattern.MatchString(cd) {
		return &ValidationError{Reason: "invalid custom domain format: " + cd}
	}
	return nil
}

// ValidSubdomain reports whether a subdomain is well-formed and unreserved.
func ValidSubdomain(subdomain string) bool {
	if len(subdomain) < 3 || len(subdomain) > 63 {
		return false
	}
	if reservedSubdomains[subdomain] {
		return false
	}
	return subdomainPattern.MatchString(subdomain)
}
