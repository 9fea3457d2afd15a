package renderer

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pagelift/core/internal/models"
)

// renderBlock emits the markup for a single block. The content map is open
// schema, so every key is read with a type-appropriate default; missing or
// malformed entries never fail a render. Unknown block types emit nothing;
// the model's enumeration constrains them upstream.
func renderBlock(block models.ContentBlock) string {
	style := blockStyle(block.Styling)
	baseClass := "block " + strings.ToLower(block.Type) + "-block"

	switch block.Type {
	case models.BlockHeading:
		text := stringValue(block.Content, "text", "Heading")
		level := intValue(block.Content, "level", 1)
		if level < 1 || level > 6 {
			level = 1
		}
		tag := "h" + strconv.Itoa(level)
		return "<" + tag + " class=\"" + baseClass + "\"" + style + ">" + escapeHTML(text) + "</" + tag + ">"

	case models.BlockParagraph:
		text := stringValue(block.Content, "text", "")
		return "<p class=\"" + baseClass + "\"" + style + ">" + escapeHTML(text) + "</p>"

	case models.BlockImage:
		src := stringValue(block.Content, "src", "")
		alt := stringValue(block.Content, "alt", "")
		var b strings.Builder
		b.WriteString("<div class=\"" + baseClass + "\"" + style + ">")
		b.WriteString("<img src=\"" + escapeHTML(src) + "\" alt=\"" + escapeHTML(alt) + "\" style=\"max-width: 100%; height: auto;\">")
		if caption := stringValue(block.Content, "caption", ""); caption != "" {
			b.WriteString("<p class=\"image-caption\" style=\"margin-top: 8px; font-size: 0.9em; color: #666;\">" + escapeHTML(caption) + "</p>")
		}
		b.WriteString("</div>")
		return b.String()

	case models.BlockButton:
		text := stringValue(block.Content, "text", "Button")
		href := stringValue(block.Content, "href", "#")
		target := ""
		if boolValue(block.Content, "newTab", false) {
			target = " target=\"_blank\""
		}
		return "<a href=\"" + escapeHTML(href) + "\" class=\"" + baseClass + " btn\"" + target + style + ">" + escapeHTML(text) + "</a>"

	case models.BlockList:
		tag := "ul"
		if boolValue(block.Content, "ordered", false) {
			tag = "ol"
		}
		var b strings.Builder
		b.WriteString("<" + tag + " class=\"" + baseClass + "\"" + style + ">")
		for _, item := range listValue(block.Content, "items") {
			b.WriteString("<li>" + escapeHTML(item) + "</li>")
		}
		b.WriteString("</" + tag + ">")
		return b.String()

	case models.BlockSpacer:
		height := stringValue(block.Content, "height", "20px")
		return "<div class=\"" + baseClass + "\" style=\"height: " + height + ";\"></div>"

	case models.BlockDivider:
		color := stringValue(block.Content, "color", "#e0e0e0")
		thickness := stringValue(block.Content, "thickness", "1px")
		return "<hr class=\"" + baseClass + "\" style=\"border: none; border-top: " + thickness + " solid " + color + "; margin: 20px 0;\"" + style + ">"
	}

	return ""
}

// stringValue reads a string key from the content map.
func stringValue(content map[string]interface{}, key, def string) string {
	if v, ok := content[key].(string); ok {
		return v
	}
	return def
}

// intValue reads an integer key. JSON decoding yields float64, so both
// numeric shapes are accepted.
func intValue(content map[string]interface{}, key string, def int) int {
	switch v := content[key].(type) {
	case int:
		return v
	case float64:
		return int(v)
	}
	return def
}

// boolValue reads a boolean key.
func boolValue(content map[string]interface{}, key string, def bool) bool {
	if v, ok := content[key].(bool); ok {
		return v
	}
	return def
}

// listValue reads a string-list key, stringifying non-string members.
func listValue(content map[string]interface{}, key string) []string {
	raw, ok := content[key].([]interface{})
	if !ok {
		if typed, ok := content[key].([]string); ok {
			return typed
		}
		return nil
	}
	items := make([]string, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok {
			items = append(items, s)
			continue
		}
		items = append(items, fmt.Sprint(v))
	}
	return items
}
