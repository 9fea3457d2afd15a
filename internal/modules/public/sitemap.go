package public

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/pagelift/core/internal/models"
	"github.com/pagelift/core/internal/pkg/response"
)

// GET /public/sites/:subdomain/sitemap.xml emits one <url> entry per PUBLISHED
// page. The homepage (empty slug) maps to the bare base URL.
func (h *Handler) sitemap(c *gin.Context) {
	t, err := h.tenantSvc.GetBySubdomain(c.Param("subdomain"))
	if err != nil {
		response.NotFound(c)
		return
	}

	pages, err := h.pageSvc.ListPublished(t.ID)
	if err != nil {
		c.String(http.StatusInternalServerError, "error generating sitemap")
		return
	}

	c.Header("Cache-Control", sitemapCacheControl)
	c.Data(http.StatusOK, "application/xml; charset=utf-8",
		[]byte(buildSitemap(pages, h.renderer.BaseURL(t))))
}

// GET /public/sites/:subdomain/robots.txt
func (h *Handler) robots(c *gin.Context) {
	t, err := h.tenantSvc.GetBySubdomain(c.Param("subdomain"))
	if err != nil {
		response.NotFound(c)
		return
	}

	var b strings.Builder
	b.WriteString("User-agent: *\n")
	b.WriteString("Allow: /\n")
	b.WriteString("\n")
	b.WriteString("Sitemap: " + h.renderer.BaseURL(t) + "/sitemap.xml\n")

	c.Header("Cache-Control", sitemapCacheControl)
	c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(b.String()))
}

func buildSitemap(pages []models.PageModel, baseURL string) string {
	var b strings.Builder
	b.WriteString("<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n")
	b.WriteString("<urlset xmlns=\"http://www.sitemaps.org/schemas/sitemap/0.9\">\n")

	for _, p := range pages {
		loc := baseURL
		if p.Slug != "" {
			loc = baseURL + "/" + p.Slug
		}
		b.WriteString("    <url>\n")
		b.WriteString("        <loc>" + escapeXML(loc) + "</loc>\n")
		if p.PublishedAt != nil {
			b.WriteString("        <lastmod>" + p.PublishedAt.Format("2006-01-02") + "</lastmod>\n")
		}
		b.WriteString("        <changefreq>weekly</changefreq>\n")
		b.WriteString("        <priority>0.8</priority>\n")
		b.WriteString("    </url>\n")
	}

	b.WriteString("</urlset>\n")
	return b.String()
}

var xmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
)

func escapeXML(s string) string { return xmlEscaper.Replace(s) }

var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	"\"", "&quot;",
	"'", "&#39;",
)

func escapeHTML(s string) string { return htmlEscaper.Replace(s) }
