// Package renderer compiles a page's content tree into a self-contained
// HTML document. Rendering is a pure function of (page, tenant): no I/O, no
// mutation, byte-identical output for identical inputs.
package renderer

import (
	"strings"

	"github.com/pagelift/core/internal/models"
)

// Renderer turns stored page documents into publishable HTML.
type Renderer struct {
	// PlatformDomain is the apex domain tenant subdomains hang off of,
	// e.g. "pagelift.site" -> https://acme.pagelift.site.
	PlatformDomain string
}

func New(platformDomain string) *Renderer {
	return &Renderer{PlatformDomain: platformDomain}
}

// BaseURL computes the canonical origin for a tenant's site: the custom
// domain when one is configured, otherwise the platform subdomain.
func (r *Renderer) BaseURL(tenant *models.TenantModel) string {
	if tenant.Settings.CustomDomain != "" {
		return "https://" + tenant.Settings.CustomDomain
	}
	return "https://" + tenant.Subdomain + "." + r.PlatformDomain
}

// Render produces the complete HTML document for a page. Optional fields
// default rather than error: a page with an empty content tree renders a
// valid, empty document.
func (r *Renderer) Render(page *models.PageModel, tenant *models.TenantModel) string {
	design := page.Content.DesignSettings
	baseURL := r.BaseURL(tenant)

	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n")
	b.WriteString("<html lang=\"en\">\n")
	b.WriteString("<head>\n")
	b.WriteString("    <meta charset=\"UTF-8\">\n")
	b.WriteString("    <meta name=\"viewport\" content=\"width=device-width, initial-scale=1.0\">\n")
	b.WriteString("    <title>" + escapeHTML(page.Title) + "</title>\n")

	if page.MetaDescription != "" {
		b.WriteString("    <meta name=\"description\" content=\"" + escapeHTML(page.MetaDescription) + "\">\n")
	}
	if page.MetaKeywords != "" {
		b.WriteString("    <meta name=\"keywords\" content=\"" + escapeHTML(page.MetaKeywords) + "\">\n")
	}

	writeSeoMetaTags(&b, page, baseURL)

	b.WriteString("    <style>\n")
	b.WriteString(generateCSS(design))
	b.WriteString("    </style>\n")

	b.WriteString("</head>\n")
	b.WriteString("<body>\n")

	for _, section := range page.Content.Sections {
		writeSection(&b, section)
	}

	b.WriteString("</body>\n")
	b.WriteString("</html>\n")
	return b.String()
}

// writeSection emits one <section> band. Full-width sections hold their
// blocks directly; everything else nests them inside the global container.
func writeSection(b *strings.Builder, section models.ContentSection) {
	class := sectionClass(section.Type)
	style := sectionStyle(section.Settings)

	b.WriteString("    <section class=\"section " + class + "\"" + style + ">\n")

	if section.Settings.FullWidth {
		for _, block := range section.Blocks {
			b.WriteString("        " + renderBlock(block) + "\n")
		}
	} else {
		b.WriteString("        <div class=\"container\">\n")
		b.WriteString("            <div class=\"section-content\">\n")
		for _, block := range section.Blocks {
			b.WriteString("                " + renderBlock(block) + "\n")
		}
		b.WriteString("            </div>\n")
		b.WriteString("        </div>\n")
	}

	b.WriteString("    </section>\n")
}

// sectionClass maps a section type label to its CSS class.
func sectionClass(sectionType string) string {
	return strings.ReplaceAll(strings.ToLower(sectionType), "_", "-")
}

// sectionStyle assembles the inline style attribute for a section, or ""
// when nothing applies. Order: background-color, padding, margin.
func sectionStyle(settings models.SectionSettings) string {
	var styles []string
	if settings.BackgroundColor != "" {
		styles = append(styles, "background-color: "+settings.BackgroundColor)
	}
	if p := settings.Padding.CSS(); p != "" {
		styles = append(styles, "padding: "+p)
	}
	if m := settings.Margin.CSS(); m != "" {
		styles = append(styles, "margin: "+m)
	}
	return styleAttr(styles)
}

// blockStyle assembles the inline style attribute for a block, or "" when
// nothing applies. text-align is omitted for LEFT, the default.
func blockStyle(styling models.BlockStyling) string {
	var styles []string
	if styling.Color != "" {
		styles = append(styles, "color: "+styling.Color)
	}
	if styling.BackgroundColor != "" {
		styles = append(styles, "background-color: "+styling.BackgroundColor)
	}
	if styling.FontSize != "" {
		styles = append(styles, "font-size: "+styling.FontSize)
	}
	if styling.FontWeight != "" {
		styles = append(styles, "font-weight: "+styling.FontWeight)
	}
	if styling.TextAlign != "" && styling.TextAlign != models.AlignLeft {
		styles = append(styles, "text-align: "+strings.ToLower(styling.TextAlign))
	}
	if p := styling.Padding.CSS(); p != "" {
		styles = append(styles, "padding: "+p)
	}
	if m := styling.Margin.CSS(); m != "" {
		styles = append(styles, "margin: "+m)
	}
	if styling.BorderRadius != "" {
		styles = append(styles, "border-radius: "+styling.BorderRadius)
	}
	return styleAttr(styles)
}

func styleAttr(styles []string) string {
	if len(styles) == 0 {
		return ""
	}
	return " style=\"" + strings.Join(styles, "; ") + "\""
}

var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	"\"", "&quot;",
	"'", "&#39;",
)

// escapeHTML escapes every user-supplied string rendered into markup. This
// is the only defense against stored-content injection: content originates
// in the tenant's editor and is served publicly.
func escapeHTML(text string) string {
	return htmlEscaper.Replace(text)
}
