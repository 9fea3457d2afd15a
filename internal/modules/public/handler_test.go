package public

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/pagelift/core/internal/database"
	"github.com/pagelift/core/internal/models"
	"github.com/pagelift/core/internal/modules/page"
	"github.com/pagelift/core/internal/modules/tenant"
	"github.com/pagelift/core/internal/pkg/renderer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type fixture struct {
	router    *gin.Engine
	pageSvc   *page.Service
	tenantSvc *tenant.Service
	tenant    *models.TenantModel
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	pageSvc := page.NewService(db)
	tenantSvc := tenant.NewService(db)

	tn, err := tenantSvc.Create(&models.TenantModel{
		Subdomain: "acme",
		Name:      "Acme Inc",
		Email:     "owner@acme.test",
	})
	require.NoError(t, err)

	router := gin.New()
	h := NewHandler(pageSvc, tenantSvc, renderer.New("pagelift.site"), zap.NewNop())
	h.RegisterRoutes(router.Group("/"))

	return &fixture{router: router, pageSvc: pageSvc, tenantSvc: tenantSvc, tenant: tn}
}

func (f *fixture) get(t *testing.T, path string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	f.router.ServeHTTP(w, req)
	return w
}

func (f *fixture) publish(t *testing.T, rawSlug, title string) *models.PageModel {
	t.Helper()
	p, err := f.pageSvc.Create(f.tenant.ID, &models.PageModel{
		Slug:   rawSlug,
		Title:  title,
		Status: models.PagePublished,
	})
	require.NoError(t, err)
	return p
}

func TestServePublishedPage(t *testing.T) {
	f := newFixture(t)
	p := f.publish(t, "about", "About Acme")

	w := f.get(t, "/public/sites/acme/about")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/html; charset=utf-8", w.Header().Get("Content-Type"))
	assert.Equal(t, "max-age=900", w.Header().Get("Cache-Control"))
	assert.Equal(t, "Accept-Encoding", w.Header().Get("Vary"))
	assert.Equal(t, p.ID, w.Header().Get("X-Page-ID"))
	assert.Equal(t, f.tenant.ID, w.Header().Get("X-Tenant-ID"))
	assert.Contains(t, w.Body.String(), "<title>About Acme</title>")
}

func TestServeHomepage(t *testing.T) {
	f := newFixture(t)
	f.publish(t, "home", "Welcome")

	w := f.get(t, "/public/sites/acme")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "<title>Welcome</title>")

	// Alias slugs land on the same page.
	w = f.get(t, "/public/sites/acme/index")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "<title>Welcome</title>")
}

func TestServeNestedPath(t *testing.T) {
	f := newFixture(t)
	f.publish(t, "products-widget", "Widget")

	w := f.get(t, "/public/sites/acme/products/widget")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "<title>Widget</title>")
}

func TestNotFoundIsStyledHTML(t *testing.T) {
	f := newFixture(t)

	w := f.get(t, "/public/sites/acme/missing")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "text/html; charset=utf-8", w.Header().Get("Content-Type"))
	assert.Equal(t, "max-age=300", w.Header().Get("Cache-Control"))
	body := w.Body.String()
	assert.Contains(t, body, "<h1>404</h1>")
	assert.Contains(t, body, "Page not found: missing")
}

func TestNotFoundEscapesMessage(t *testing.T) {
	f := newFixture(t)

	w := f.get(t, "/public/sites/acme/%3Cscript%3E")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.NotContains(t, w.Body.String(), "<script>")
	assert.Contains(t, w.Body.String(), "&lt;script&gt;")
}

func TestUnknownSiteNotFound(t *testing.T) {
	f := newFixture(t)

	w := f.get(t, "/public/sites/nowhere/about")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Site not found: nowhere")
}

func TestDraftPageNotServed(t *testing.T) {
	f := newFixture(t)
	_, err := f.pageSvc.Create(f.tenant.ID, &models.PageModel{Slug: "secret", Title: "Draft"})
	require.NoError(t, err)

	w := f.get(t, "/public/sites/acme/secret")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSitemap(t *testing.T) {
	f := newFixture(t)
	f.publish(t, "home", "Home")
	f.publish(t, "about", "About")
	_, err := f.pageSvc.Create(f.tenant.ID, &models.PageModel{Slug: "draft", Title: "Draft"})
	require.NoError(t, err)

	w := f.get(t, "/public/sites/acme/sitemap.xml")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/xml; charset=utf-8", w.Header().Get("Content-Type"))
	assert.Equal(t, "max-age=86400", w.Header().Get("Cache-Control"))
	body := w.Body.String()
	assert.Contains(t, body, `<?xml version="1.0" encoding="UTF-8"?>`)
	assert.Contains(t, body, `<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">`)
	assert.Contains(t, body, "<loc>https://acme.pagelift.site/home</loc>")
	assert.Contains(t, body, "<loc>https://acme.pagelift.site/about</loc>")
	assert.Contains(t, body, "<changefreq>weekly</changefreq>")
	assert.Contains(t, body, "<priority>0.8</priority>")
	assert.NotContains(t, body, "draft")
}

func TestRobots(t *testing.T) {
	f := newFixture(t)

	w := f.get(t, "/public/sites/acme/robots.txt")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/plain")
	body := w.Body.String()
	assert.Contains(t, body, "User-agent: *")
	assert.Contains(t, body, "Allow: /")
	assert.Contains(t, body, "Sitemap: https://acme.pagelift.site/sitemap.xml")
}
