// Package public serves rendered tenant sites: pages, sitemap and robots.
// Every failure path still answers with valid HTML; a public visitor never
// sees a bare status code or a stack trace.
package public

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pagelift/core/internal/models"
	"github.com/pagelift/core/internal/modules/page"
	"github.com/pagelift/core/internal/modules/tenant"
	"github.com/pagelift/core/internal/pkg/renderer"
	"go.uber.org/zap"
)

const (
	pageCacheControl    = "max-age=900"  // 15 min
	sitemapCacheControl = "max-age=86400"
	errorCacheControl   = "max-age=300"
)

type Handler struct {
	pageSvc   *page.Service
	tenantSvc *tenant.Service
	renderer  *renderer.Renderer
	logger    *zap.Logger
}

func NewHandler(pageSvc *page.Service, tenantSvc *tenant.Service, r *renderer.Renderer, logger *zap.Logger) *Handler {
	return &Handler{pageSvc: pageSvc, tenantSvc: tenantSvc, renderer: r, logger: logger}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	g := rg.Group("/public/sites")
	g.GET("/:subdomain", h.homepage)
	g.GET("/:subdomain/sitemap.xml", h.sitemap)
	g.GET("/:subdomain/robots.txt", h.robots)
	g.GET("/:subdomain/:slug", h.page)
	g.GET("/:subdomain/:slug/:nested", h.nestedPage)
}

// GET /public/sites/:subdomain resolves and renders the homepage.
func (h *Handler) homepage(c *gin.Context) {
	t, err := h.tenantSvc.GetBySubdomain(c.Param("subdomain"))
	if err != nil {
		h.notFoundPage(c, "Site not found: "+c.Param("subdomain"))
		return
	}

	p, err := h.pageSvc.ResolveHomepage(t.ID)
	if err != nil {
		h.notFoundPage(c, "Homepage not found for site: "+t.Subdomain)
		return
	}

	h.servePage(c, p, t)
}

// GET /public/sites/:subdomain/:slug resolves an exact slug and renders it.
func (h *Handler) page(c *gin.Context) {
	h.serveSlug(c, c.Param("slug"))
}

// GET /public/sites/:subdomain/:slug/:nested serves nested paths via the
// combined slug, e.g. /products/widget -> "products-widget".
func (h *Handler) nestedPage(c *gin.Context) {
	h.serveSlug(c, c.Param("slug")+"-"+c.Param("nested"))
}

func (h *Handler) serveSlug(c *gin.Context, requestedSlug string) {
	t, err := h.tenantSvc.GetBySubdomain(c.Param("subdomain"))
	if err != nil {
		h.notFoundPage(c, "Site not found: "+c.Param("subdomain"))
		return
	}

	p, err := h.pageSvc.ResolvePublished(t.ID, requestedSlug)
	if err != nil {
		if !errors.Is(err, page.ErrNotFound) {
			h.logger.Error("public page resolution failed",
				zap.String("subdomain", t.Subdomain),
				zap.String("slug", requestedSlug),
				zap.Error(err))
		}
		h.notFoundPage(c, "Page not found: "+requestedSlug)
		return
	}

	h.servePage(c, p, t)
}

func (h *Handler) servePage(c *gin.Context, p *models.PageModel, t *models.TenantModel) {
	c.Header("Cache-Control", pageCacheControl)
	c.Header("Vary", "Accept-Encoding")
	c.Header("X-Page-ID", p.ID)
	c.Header("X-Tenant-ID", t.ID)
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(h.renderer.Render(p, t)))
}

// notFoundPage answers with a styled, human-readable 404 document.
func (h *Handler) notFoundPage(c *gin.Context, message string) {
	html := `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>Page Not Found</title>
    <style>
        body {
            font-family: Arial, sans-serif;
            text-align: center;
            padding: 50px;
            background-color: #f8f9fa;
        }
        .error-container {
            max-width: 600px;
            margin: 0 auto;
            background: white;
            padding: 40px;
            border-radius: 8px;
            box-shadow: 0 2px 4px rgba(0,0,0,0.1);
        }
        h1 {
            color: #dc3545;
            font-size: 3em;
            margin-bottom: 0.5em;
        }
        p {
            color: #6c757d;
            font-size: 1.1em;
            line-height: 1.6;
        }
    </style>
</head>
<body>
    <div class="error-container">
        <h1>404</h1>
        <p>` + escapeHTML(message) + `</p>
        <p>The page you're looking for might have been moved, deleted, or doesn't exist.</p>
    </div>
</body>
</html>`

	c.Header("Cache-Control", errorCacheControl)
	c.Data(http.StatusNotFound, "text/html; charset=utf-8", []byte(html))
}
