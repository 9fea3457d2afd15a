package tenant

import (
	"errors"

	"github.com/pagelift/core/internal/models"
	"gorm.io/gorm"
)

var (
	ErrNotFound       = errors.New("tenant not found")
	ErrSubdomainTaken = errors.New("subdomain is already taken")
	ErrNotAllowed     = errors.New("operation not allowed")
)

// ValidationError marks tenant input that fails format validation.
type ValidationError struct{ Reason string }

func (e *ValidationError) Error() string { return e.Reason }

type Service struct{ db *gorm.DB }

func NewService(db *gorm.DB) *Service { return &Service{db: db} }

func (s *Service) GetByID(id string) (*models.TenantModel, error) {
	var t models.TenantModel
	err := s.db.First(&t, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// GetBySubdomain is the lookup backing every public site request.
func (s *Service) GetBySubdomain(subdomain string) (*models.TenantModel, error) {
	var t models.TenantModel
	err := s.db.First(&t, "subdomain = ?", subdomain).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// IsSubdomainAvailable reports whether no tenant has claimed the subdomain.
// Like page slugs, the unique index is the real guarantee under races.
func (s *Service) IsSubdomainAvailable(subdomain string) (bool, error) {
	var count int64
	err := s.db.Model(&models.TenantModel{}).Where("subdomain = ?", subdomain).Count(&count).Error
	return count == 0, err
}

// Create registers a new tenant after validating its fields.
func (s *Service) Create(t *models.TenantModel) (*models.TenantModel, error) {
	if err := validateTenant(t); err != nil {
		return nil, err
	}
	if available, err := s.IsSubdomainAvailable(t.Subdomain); err != nil {
		return nil, err
	} else if !available {
		return nil, ErrSubdomainTaken
	}

	t.ID = ""
	if t.Status == "" {
		t.Status = models.TenantActive
	}
	if err := s.db.Create(t).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrSubdomainTaken
		}
		return nil, err
	}
	return t, nil
}

// Update overwrites the tenant's name, email and settings. A subdomain
// change re-checks availability.
func (s *Service) Update(id string, updates *models.TenantModel) (*models.TenantModel, error) {
	existing, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	if updates.Subdomain != "" && updates.Subdomain != existing.Subdomain {
		if available, err := s.IsSubdomainAvailable(updates.Subdomain); err != nil {
			return nil, err
		} else if !available {
			return nil, ErrSubdomainTaken
		}
		existing.Subdomain = updates.Subdomain
	}
	if updates.Name != "" {
		existing.Name = updates.Name
	}
	if updates.Email != "" {
		existing.Email = updates.Email
	}
	existing.Settings = updates.Settings

	if err := validateTenant(existing); err != nil {
		return nil, err
	}
	if err := s.db.Save(existing).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrSubdomainTaken
		}
		return nil, err
	}
	return existing, nil
}

// UpdateStatus transitions the tenant between lifecycle states, rejecting
// no-op suspend/deactivate transitions.
func (s *Service) UpdateStatus(id, newStatus string) (*models.TenantModel, error) {
	t, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	switch newStatus {
	case models.TenantActive, models.TenantInactive, models.TenantSuspended, models.TenantPendingActivation:
	default:
		return nil, &ValidationError{Reason: "unknown tenant status: " + newStatus}
	}

	if t.Status == newStatus &&
		(newStatus == models.TenantSuspended || newStatus == models.TenantInactive) {
		return nil, ErrNotAllowed
	}

	t.Status = newStatus
	return t, s.db.Save(t).Error
}
