package models

import "time"

// Page statuses.
const (
	PageDraft     = "DRAFT"
	PagePublished = "PUBLISHED"
	PageArchived  = "ARCHIVED"
)

// PageModel is one landing page belonging to exactly one tenant. The content
// tree and SEO settings are stored as JSON documents; the composite unique
// index on (tenant_id, slug) is the actual enforcement of per-tenant slug
// uniqueness; application-level availability checks are advisory.
type PageModel struct {
	Base
	TenantID        string      `json:"tenantId"                  gorm:"uniqueIndex:idx_pages_tenant_slug;index;not null"`
	Slug            string      `json:"slug"                      gorm:"uniqueIndex:idx_pages_tenant_slug;not null"`
	Title           string      `json:"title"                     gorm:"not null"`
	MetaDescription string      `json:"metaDescription,omitempty"`
	MetaKeywords    string      `json:"metaKeywords,omitempty"`
	Status          string      `json:"status"                    gorm:"index;default:DRAFT"`
	Content         PageContent `json:"content"                   gorm:"type:longtext;serializer:json"`
	SeoSettings     SeoSettings `json:"seoSettings"               gorm:"type:longtext;serializer:json"`
	PublishedAt     *time.Time  `json:"publishedAt,omitempty"`
}

func (PageModel) TableName() string { return "pages" }

// IsPublished reports whether the page is publicly servable.
func (p *PageModel) IsPublished() bool { return p.Status == PagePublished }
