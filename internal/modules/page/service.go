package page

import (
	"errors"
	"time"

	"github.com/pagelift/core/internal/models"
	"github.com/pagelift/core/internal/pkg/pagination"
	"github.com/pagelift/core/internal/pkg/response"
	"github.com/pagelift/core/internal/pkg/slug"
	"gorm.io/gorm"
)

var (
	ErrNotFound  = errors.New("page not found")
	ErrSlugTaken = errors.New("slug already exists for this tenant")
)

// Service owns the page lifecycle and public resolution. Every query is
// scoped by tenant id; callers pass the principal's tenant explicitly.
type Service struct{ db *gorm.DB }

func NewService(db *gorm.DB) *Service { return &Service{db: db} }

// GetByID fetches a page within a tenant.
func (s *Service) GetByID(tenantID, id string) (*models.PageModel, error) {
	var p models.PageModel
	err := s.db.Where("id = ? AND tenant_id = ?", id, tenantID).First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// List returns one page of a tenant's pages, newest first, optionally
// filtered by status.
func (s *Service) List(tenantID, status string, q pagination.Query) ([]models.PageModel, response.Pagination, error) {
	tx := s.db.Model(&models.PageModel{}).Where("tenant_id = ?", tenantID).Order("created_at DESC")
	if status != "" {
		tx = tx.Where("status = ?", status)
	}
	var pages []models.PageModel
	meta, err := pagination.Paginate(tx, q, &pages)
	return pages, meta, err
}

// IsSlugAvailable reports whether no page in the tenant uses the normalized
// slug. This is a UX convenience; the unique index on (tenant_id, slug) is
// what actually guarantees uniqueness under races.
func (s *Service) IsSlugAvailable(tenantID, rawSlug string) (bool, error) {
	var count int64
	err := s.db.Model(&models.PageModel{}).
		Where("tenant_id = ? AND slug = ?", tenantID, slug.Normalize(rawSlug)).
		Count(&count).Error
	return count == 0, err
}

// Create persists a new page after normalizing its slug. Status defaults to
// DRAFT; a page created directly in PUBLISHED gets its publish timestamp.
func (s *Service) Create(tenantID string, p *models.PageModel) (*models.PageModel, error) {
	p.ID = ""
	p.TenantID = tenantID
	p.Slug = slug.Normalize(p.Slug)
	if p.Status == "" {
		p.Status = models.PageDraft
	}
	if p.Status == models.PagePublished && p.PublishedAt == nil {
		now := time.Now()
		p.PublishedAt = &now
	}

	if available, err := s.IsSlugAvailable(tenantID, p.Slug); err != nil {
		return nil, err
	} else if !available {
		return nil, ErrSlugTaken
	}

	if err := s.db.Create(p).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrSlugTaken
		}
		return nil, err
	}
	return p, nil
}

// Update replaces the page document wholesale: identity, tenant and creation
// time are preserved; everything else, including the full content tree,
// is overwritten with the caller's version. Clients must resend the complete
// section/block tree on every save; there is no field-level merge.
func (s *Service) Update(tenantID, id string, updates *models.PageModel) (*models.PageModel, error) {
	existing, err := s.GetByID(tenantID, id)
	if err != nil {
		return nil, err
	}

	newSlug := slug.Normalize(updates.Slug)
	if newSlug != existing.Slug {
		if available, err := s.IsSlugAvailable(tenantID, newSlug); err != nil {
			return nil, err
		} else if !available {
			return nil, ErrSlugTaken
		}
	}

	existing.Slug = newSlug
	existing.Title = updates.Title
	existing.MetaDescription = updates.MetaDescription
	existing.MetaKeywords = updates.MetaKeywords
	existing.Status = updates.Status
	existing.Content = updates.Content
	existing.SeoSettings = updates.SeoSettings

	if err := s.db.Save(existing).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrSlugTaken
		}
		return nil, err
	}
	return existing, nil
}

// Publish marks a page publicly servable and stamps publishedAt.
func (s *Service) Publish(tenantID, id string) (*models.PageModel, error) {
	p, err := s.GetByID(tenantID, id)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	p.Status = models.PagePublished
	p.PublishedAt = &now
	return p, s.db.Save(p).Error
}

// Unpublish reverts a page to draft and clears publishedAt.
func (s *Service) Unpublish(tenantID, id string) (*models.PageModel, error) {
	p, err := s.GetByID(tenantID, id)
	if err != nil {
		return nil, err
	}
	p.Status = models.PageDraft
	p.PublishedAt = nil
	if err := s.db.Save(p).Error; err != nil {
		return nil, err
	}
	// Save skips nil pointer columns, so clear publishedAt explicitly.
	if err := s.db.Model(p).Update("published_at", nil).Error; err != nil {
		return nil, err
	}
	return p, nil
}

// Delete hard-removes a page. There is no tombstone.
func (s *Service) Delete(tenantID, id string) error {
	res := s.db.Where("id = ? AND tenant_id = ?", id, tenantID).Delete(&models.PageModel{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// ResolvePublished finds the PUBLISHED page serving a public request: exact
// normalized-slug match first, then the homepage fallback when the request
// addresses a homepage alias ("", "home", "index").
func (s *Service) ResolvePublished(tenantID, requestedSlug string) (*models.PageModel, error) {
	normalized := slug.Normalize(requestedSlug)

	var p models.PageModel
	err := s.db.Where("tenant_id = ? AND slug = ? AND status = ?",
		tenantID, normalized, models.PagePublished).First(&p).Error
	if err == nil {
		return &p, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	if slug.IsHomepageAlias(normalized) {
		return s.ResolveHomepage(tenantID)
	}
	return nil, ErrNotFound
}

// ResolveHomepage picks the page serving the tenant's site root. Aliases win
// in fixed priority order (home > index > empty); when none of the aliases
// exist there is no canonical homepage and the earliest-created candidate is
// returned so the choice stays deterministic.
func (s *Service) ResolveHomepage(tenantID string) (*models.PageModel, error) {
	var candidates []models.PageModel
	err := s.db.Where("tenant_id = ? AND status = ? AND slug IN ?",
		tenantID, models.PagePublished, slug.HomepageAliases()).
		Order("created_at ASC").
		Find(&candidates).Error
	if err != nil {
		return nil, err
	}
	if len(candidates) == 0 {
		return nil, ErrNotFound
	}

	for _, alias := range slug.HomepageAliases() {
		for i := range candidates {
			if candidates[i].Slug == alias {
				return &candidates[i], nil
			}
		}
	}
	return &candidates[0], nil
}

// ListPublished returns all of a tenant's PUBLISHED pages for sitemap
// generation. No pagination: the sitemap always covers the whole site.
func (s *Service) ListPublished(tenantID string) ([]models.PageModel, error) {
	var pages []models.PageModel
	err := s.db.Where("tenant_id = ? AND status = ?", tenantID, models.PagePublished).
		Order("created_at DESC").Find(&pages).Error
	return pages, err
}
