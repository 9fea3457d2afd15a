package renderer

import (
	"strings"

	"github.com/pagelift/core/internal/models"
)

// generateCSS builds the page stylesheet: a box-sizing reset, body defaults
// from the design settings, the container cap, structural section/block
// spacing, one mobile breakpoint, and finally the tenant's custom CSS
// appended verbatim. Custom CSS is trusted because pages are served on the
// tenant's own origin.
func generateCSS(design models.DesignSettings) string {
	var b strings.Builder

	b.WriteString("        * { box-sizing: border-box; }\n")
	b.WriteString("        body {\n")
	b.WriteString("            margin: 0;\n")
	b.WriteString("            padding: 0;\n")
	b.WriteString("            font-family: " + design.FontFamilyOrDefault() + ";\n")
	b.WriteString("            line-height: 1.6;\n")
	b.WriteString("            color: #333;\n")
	b.WriteString("        }\n")

	b.WriteString("        .container {\n")
	b.WriteString("            max-width: " + design.ContainerWidthOrDefault() + ";\n")
	b.WriteString("            margin: 0 auto;\n")
	b.WriteString("            padding: 0 20px;\n")
	b.WriteString("        }\n")

	b.WriteString("        .section {\n")
	b.WriteString("            width: 100%;\n")
	b.WriteString("        }\n")
	b.WriteString("        .section-content {\n")
	b.WriteString("            padding: 40px 0;\n")
	b.WriteString("        }\n")

	b.WriteString("        .block {\n")
	b.WriteString("            margin-bottom: 20px;\n")
	b.WriteString("        }\n")
	b.WriteString("        .block:last-child {\n")
	b.WriteString("            margin-bottom: 0;\n")
	b.WriteString("        }\n")

	b.WriteString("        @media (max-width: 768px) {\n")
	b.WriteString("            .container {\n")
	b.WriteString("                padding: 0 15px;\n")
	b.WriteString("            }\n")
	b.WriteString("            .section-content {\n")
	b.WriteString("                padding: 20px 0;\n")
	b.WriteString("            }\n")
	b.WriteString("        }\n")

	if design.CustomCSS != "" {
		b.WriteString("        /* Custom CSS */\n")
		b.WriteString("        " + design.CustomCSS + "\n")
	}

	return b.String()
}
