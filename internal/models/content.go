package models

// Section and block type labels. A section type only affects the CSS class
// and default styling of the rendered band; it is not enforced structurally.
const (
	SectionHeader       = "HEADER"
	SectionHero         = "HERO"
	SectionContent      = "CONTENT"
	SectionFeatures     = "FEATURES"
	SectionTestimonials = "TESTIMONIALS"
	SectionCTA          = "CTA"
	SectionFooter       = "FOOTER"
)

const (
	BlockHeading   = "HEADING"
	BlockParagraph = "PARAGRAPH"
	BlockImage     = "IMAGE"
	BlockButton    = "BUTTON"
	BlockList      = "LIST"
	BlockSpacer    = "SPACER"
	BlockDivider   = "DIVIDER"
)

// Text alignment values for block styling.
const (
	AlignLeft    = "LEFT"
	AlignCenter  = "CENTER"
	AlignRight   = "RIGHT"
	AlignJustify = "JUSTIFY"
)

// PageContent is the page's document tree: ordered sections plus page-wide
// design settings. It is replaced wholesale on every page update, never
// patched field by field.
type PageContent struct {
	Sections       []ContentSection `json:"sections"`
	DesignSettings DesignSettings   `json:"designSettings"`
}

// ContentSection is one horizontal band of the page.
type ContentSection struct {
	ID       string          `json:"id"`
	Type     string          `json:"type"`
	Blocks   []ContentBlock  `json:"blocks"`
	Settings SectionSettings `json:"settings"`
}

// ContentBlock is an individual content unit inside a section. Content is an
// open key->value map whose expected keys depend on Type; the renderer
// defaults every key it reads, so absent or oddly-typed values never error.
type ContentBlock struct {
	ID      string                 `json:"id"`
	Type    string                 `json:"type"`
	Content map[string]interface{} `json:"content"`
	Styling BlockStyling           `json:"styling"`
}

type SectionSettings struct {
	BackgroundColor string  `json:"backgroundColor,omitempty"`
	Padding         Spacing `json:"padding"`
	Margin          Spacing `json:"margin"`
	FullWidth       bool    `json:"fullWidth"`
	CustomCSS       string  `json:"customCss,omitempty"`
}

type BlockStyling struct {
	TextAlign       string  `json:"textAlign,omitempty"`
	FontSize        string  `json:"fontSize,omitempty"`
	FontWeight      string  `json:"fontWeight,omitempty"`
	Color           string  `json:"color,omitempty"`
	BackgroundColor string  `json:"backgroundColor,omitempty"`
	Padding         Spacing `json:"padding"`
	Margin          Spacing `json:"margin"`
	BorderRadius    string  `json:"borderRadius,omitempty"`
	CustomCSS       string  `json:"customCss,omitempty"`
}

// Spacing holds four independent CSS lengths. An unset side is equivalent to
// the literal "0".
type Spacing struct {
	Top    string `json:"top"`
	Right  string `json:"right"`
	Bottom string `json:"bottom"`
	Left   string `json:"left"`
}

// Side returns a side value with "" normalized to "0".
func side(v string) string {
	if v == "" {
		return "0"
	}
	return v
}

// IsZero reports whether all four sides are zero (or unset).
func (s Spacing) IsZero() bool {
	return side(s.Top) == "0" && side(s.Right) == "0" && side(s.Bottom) == "0" && side(s.Left) == "0"
}

// CSS formats the spacing as a CSS shorthand value: "" when all sides are
// zero, one value when all equal, two when vertical and horizontal pairs
// match, otherwise the four-value top/right/bottom/left form.
func (s Spacing) CSS() string {
	if s.IsZero() {
		return ""
	}
	top, right, bottom, left := side(s.Top), side(s.Right), side(s.Bottom), side(s.Left)
	switch {
	case top == right && right == bottom && bottom == left:
		return top
	case top == bottom && left == right:
		return top + " " + right
	default:
		return top + " " + right + " " + bottom + " " + left
	}
}

// DesignSettings are the page-wide visual defaults.
type DesignSettings struct {
	Theme          string `json:"theme,omitempty"`
	PrimaryColor   string `json:"primaryColor,omitempty"`
	SecondaryColor string `json:"secondaryColor,omitempty"`
	FontFamily     string `json:"fontFamily,omitempty"`
	ContainerWidth string `json:"containerWidth,omitempty"`
	CustomCSS      string `json:"customCss,omitempty"`
}

// Design setting fallbacks applied at render time.
const (
	DefaultTheme          = "default"
	DefaultPrimaryColor   = "#007bff"
	DefaultSecondaryColor = "#6c757d"
	DefaultFontFamily     = "Arial, sans-serif"
	DefaultContainerWidth = "1200px"
)

// FontFamilyOrDefault returns the configured font family or the platform default.
func (d DesignSettings) FontFamilyOrDefault() string {
	if d.FontFamily == "" {
		return DefaultFontFamily
	}
	return d.FontFamily
}

// ContainerWidthOrDefault returns the configured container width or the platform default.
func (d DesignSettings) ContainerWidthOrDefault() string {
	if d.ContainerWidth == "" {
		return DefaultContainerWidth
	}
	return d.ContainerWidth
}

// SeoSettings hold social and robots metadata for a page.
type SeoSettings struct {
	OGTitle       string `json:"ogTitle,omitempty"`
	OGDescription string `json:"ogDescription,omitempty"`
	OGImage       string `json:"ogImage,omitempty"`
	TwitterCard   string `json:"twitterCard,omitempty"`
	CanonicalURL  string `json:"canonicalUrl,omitempty"`
	NoIndex       bool   `json:"noIndex"`
	NoFollow      bool   `json:"noFollow"`
}
