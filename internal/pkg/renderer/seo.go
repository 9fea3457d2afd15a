package renderer

import (
	"strings"

	"github.com/pagelift/core/internal/models"
)

// writeSeoMetaTags emits the Open Graph, Twitter Card, canonical and robots
// tags. Precedence: ogTitle falls back to the page title, ogDescription to
// the meta description; og:image only appears when set; the canonical link
// falls back to the page's own URL; robots only appears when a flag is on.
func writeSeoMetaTags(b *strings.Builder, page *models.PageModel, baseURL string) {
	seo := page.SeoSettings

	ogTitle := seo.OGTitle
	if ogTitle == "" {
		ogTitle = page.Title
	}
	b.WriteString("    <meta property=\"og:title\" content=\"" + escapeHTML(ogTitle) + "\">\n")

	ogDescription := seo.OGDescription
	if ogDescription == "" {
		ogDescription = page.MetaDescription
	}
	if ogDescription != "" {
		b.WriteString("    <meta property=\"og:description\" content=\"" + escapeHTML(ogDescription) + "\">\n")
	}

	if seo.OGImage != "" {
		b.WriteString("    <meta property=\"og:image\" content=\"" + escapeHTML(seo.OGImage) + "\">\n")
	}

	b.WriteString("    <meta property=\"og:url\" content=\"" + baseURL + "/" + page.Slug + "\">\n")
	b.WriteString("    <meta property=\"og:type\" content=\"website\">\n")

	twitterCard := seo.TwitterCard
	if twitterCard == "" {
		twitterCard = "summary"
	}
	b.WriteString("    <meta name=\"twitter:card\" content=\"" + twitterCard + "\">\n")
	if seo.OGTitle != "" {
		b.WriteString("    <meta name=\"twitter:title\" content=\"" + escapeHTML(seo.OGTitle) + "\">\n")
	}
	if seo.OGDescription != "" {
		b.WriteString("    <meta name=\"twitter:description\" content=\"" + escapeHTML(seo.OGDescription) + "\">\n")
	}
	if seo.OGImage != "" {
		b.WriteString("    <meta name=\"twitter:image\" content=\"" + escapeHTML(seo.OGImage) + "\">\n")
	}

	canonical := seo.CanonicalURL
	if canonical == "" {
		canonical = baseURL + "/" + page.Slug
	}
	b.WriteString("    <link rel=\"canonical\" href=\"" + escapeHTML(canonical) + "\">\n")

	if seo.NoIndex || seo.NoFollow {
		var flags []string
		if seo.NoIndex {
			flags = append(flags, "noindex")
		}
		if seo.NoFollow {
			flags = append(flags, "nofollow")
		}
		b.WriteString("    <meta name=\"robots\" content=\"" + strings.Join(flags, ", ") + "\">\n")
	}
}
