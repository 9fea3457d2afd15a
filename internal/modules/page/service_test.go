package page

import (
	"testing"

	"github.com/pagelift/core/internal/database"
	"github.com/pagelift/core/internal/models"
	"github.com/pagelift/core/internal/pkg/pagination"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

func seedPage(t *testing.T, svc *Service, tenantID, rawSlug, status string) *models.PageModel {
	t.Helper()
	p, err := svc.Create(tenantID, &models.PageModel{
		Slug:   rawSlug,
		Title:  "Test " + rawSlug,
		Status: status,
	})
	require.NoError(t, err)
	return p
}

func TestCreateNormalizesSlug(t *testing.T) {
	svc := NewService(newTestDB(t))

	p := seedPage(t, svc, "t1", "  About Us!  ", "")

	assert.Equal(t, "about-us", p.Slug)
	assert.Equal(t, models.PageDraft, p.Status)
	assert.NotEmpty(t, p.ID)
	assert.Nil(t, p.PublishedAt)
}

func TestCreateSlugConflictPerTenant(t *testing.T) {
	svc := NewService(newTestDB(t))

	seedPage(t, svc, "t1", "pricing", "")

	// A differently-written slug normalizing to the same value conflicts.
	_, err := svc.Create("t1", &models.PageModel{Slug: "Pricing!", Title: "Dup"})
	assert.ErrorIs(t, err, ErrSlugTaken)

	// The same slug under another tenant is fine.
	_, err = svc.Create("t2", &models.PageModel{Slug: "pricing", Title: "Other tenant"})
	assert.NoError(t, err)
}

func TestListPagination(t *testing.T) {
	svc := NewService(newTestDB(t))
	for _, s := range []string{"one", "two", "three", "four", "five"} {
		seedPage(t, svc, "t1", s, models.PagePublished)
	}
	seedPage(t, svc, "t1", "draft-only", "")
	seedPage(t, svc, "t2", "other-tenant", models.PagePublished)

	pages, meta, err := svc.List("t1", models.PagePublished, pagination.Query{Page: 1, Size: 2})
	require.NoError(t, err)
	assert.Len(t, pages, 2)
	assert.EqualValues(t, 5, meta.Total)
	assert.Equal(t, 3, meta.TotalPage)
	assert.Equal(t, 1, meta.CurrentPage)
	assert.True(t, meta.HasNextPage)

	pages, meta, err = svc.List("t1", models.PagePublished, pagination.Query{Page: 3, Size: 2})
	require.NoError(t, err)
	assert.Len(t, pages, 1)
	assert.False(t, meta.HasNextPage)

	// Unfiltered listing sees the draft too, never the other tenant.
	pages, meta, err = svc.List("t1", "", pagination.Query{Page: 1, Size: 10})
	require.NoError(t, err)
	assert.Len(t, pages, 6)
	assert.EqualValues(t, 6, meta.Total)
	for _, p := range pages {
		assert.Equal(t, "t1", p.TenantID)
	}
}

func TestIsSlugAvailable(t *testing.T) {
	svc := NewService(newTestDB(t))
	seedPage(t, svc, "t1", "home", "")

	available, err := svc.IsSlugAvailable("t1", "HOME")
	require.NoError(t, err)
	assert.False(t, available)

	available, err = svc.IsSlugAvailable("t1", "contact")
	require.NoError(t, err)
	assert.True(t, available)
}

func TestUpdateReplacesDocumentWholesale(t *testing.T) {
	svc := NewService(newTestDB(t))
	created := seedPage(t, svc, "t1", "landing", "")
	created.MetaDescription = "old description"
	require.NoError(t, svc.db.Save(created).Error)

	updated, err := svc.Update("t1", created.ID, &models.PageModel{
		Slug:  "landing-v2",
		Title: "New Title",
		Content: models.PageContent{
			Sections: []models.ContentSection{
				{ID: "s1", Type: models.SectionHero},
			},
		},
	})
	require.NoError(t, err)

	// Identity, owner and creation time survive; everything else is the
	// caller's document, including fields the caller left empty.
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "t1", updated.TenantID)
	assert.Equal(t, created.CreatedAt.Unix(), updated.CreatedAt.Unix())
	assert.Equal(t, "landing-v2", updated.Slug)
	assert.Equal(t, "New Title", updated.Title)
	assert.Empty(t, updated.MetaDescription)
	require.Len(t, updated.Content.Sections, 1)
	assert.Equal(t, models.SectionHero, updated.Content.Sections[0].Type)
}

func TestUpdateSlugConflict(t *testing.T) {
	svc := NewService(newTestDB(t))
	seedPage(t, svc, "t1", "first", "")
	second := seedPage(t, svc, "t1", "second", "")

	_, err := svc.Update("t1", second.ID, &models.PageModel{Slug: "first", Title: "x"})
	assert.ErrorIs(t, err, ErrSlugTaken)

	// Keeping the same slug is not a conflict with itself.
	_, err = svc.Update("t1", second.ID, &models.PageModel{Slug: "second", Title: "x"})
	assert.NoError(t, err)
}

func TestUpdateScopedToTenant(t *testing.T) {
	svc := NewService(newTestDB(t))
	p := seedPage(t, svc, "t1", "page", "")

	_, err := svc.Update("t2", p.ID, &models.PageModel{Slug: "page", Title: "hijack"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPublishUnpublishLifecycle(t *testing.T) {
	svc := NewService(newTestDB(t))
	p := seedPage(t, svc, "t1", "launch", "")

	published, err := svc.Publish("t1", p.ID)
	require.NoError(t, err)
	assert.Equal(t, models.PagePublished, published.Status)
	require.NotNil(t, published.PublishedAt)

	unpublished, err := svc.Unpublish("t1", p.ID)
	require.NoError(t, err)
	assert.Equal(t, models.PageDraft, unpublished.Status)
	assert.Nil(t, unpublished.PublishedAt)

	// The cleared timestamp persists.
	reloaded, err := svc.GetByID("t1", p.ID)
	require.NoError(t, err)
	assert.Equal(t, models.PageDraft, reloaded.Status)
	assert.Nil(t, reloaded.PublishedAt)
}

func TestDelete(t *testing.T) {
	svc := NewService(newTestDB(t))
	p := seedPage(t, svc, "t1", "gone", "")

	require.NoError(t, svc.Delete("t1", p.ID))

	_, err := svc.GetByID("t1", p.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, svc.Delete("t1", p.ID), ErrNotFound)
}

func TestResolvePublishedExactMatch(t *testing.T) {
	svc := NewService(newTestDB(t))
	seedPage(t, svc, "t1", "about", models.PagePublished)
	seedPage(t, svc, "t1", "draft-page", "")

	p, err := svc.ResolvePublished("t1", "About")
	require.NoError(t, err)
	assert.Equal(t, "about", p.Slug)

	// Drafts are invisible publicly.
	_, err = svc.ResolvePublished("t1", "draft-page")
	assert.ErrorIs(t, err, ErrNotFound)

	// Non-homepage misses do not fall back.
	_, err = svc.ResolvePublished("t1", "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestResolvePublishedHomepageFallback(t *testing.T) {
	svc := NewService(newTestDB(t))
	seedPage(t, svc, "t1", "home", models.PagePublished)

	// Any homepage alias reaches the same page.
	for _, alias := range []string{"", "home", "index"} {
		p, err := svc.ResolvePublished("t1", alias)
		require.NoError(t, err, "alias %q", alias)
		assert.Equal(t, "home", p.Slug)
	}
}

func TestResolveHomepagePriority(t *testing.T) {
	svc := NewService(newTestDB(t))

	// Only "index" and "" exist: index wins over the empty slug.
	seedPage(t, svc, "t1", "index", models.PagePublished)
	empty := &models.PageModel{Slug: "", Title: "Root", Status: models.PagePublished}
	_, err := svc.Create("t1", empty)
	require.NoError(t, err)

	p, err := svc.ResolveHomepage("t1")
	require.NoError(t, err)
	assert.Equal(t, "index", p.Slug)

	// Adding "home" takes over the top priority.
	seedPage(t, svc, "t1", "home", models.PagePublished)
	p, err = svc.ResolveHomepage("t1")
	require.NoError(t, err)
	assert.Equal(t, "home", p.Slug)
}

func TestResolveHomepageNoCandidates(t *testing.T) {
	svc := NewService(newTestDB(t))
	seedPage(t, svc, "t1", "about", models.PagePublished)

	_, err := svc.ResolveHomepage("t1")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestResolveHomepageIgnoresDrafts(t *testing.T) {
	svc := NewService(newTestDB(t))
	seedPage(t, svc, "t1", "home", "")

	_, err := svc.ResolveHomepage("t1")
	assert.ErrorIs(t, err, ErrNotFound)
}
