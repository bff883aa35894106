package pagemeta

import "context"

// Meta tag attribute keys. Search-engine metadata uses "name"; Open Graph
// metadata uses "property".
const (
	AttrName     = "name"
	AttrProperty = "property"
)

// MetaTag represents one <meta> element to be appended to a page head.
type MetaTag struct {
	// Attr is the selector attribute key: AttrName or AttrProperty.
	Attr string

	// Value is the selector attribute value, e.g. "description" or
	// "og:title".
	Value string

	// Content is the value of the content attribute.
	Content string
}

// NameTag returns a MetaTag keyed by the name attribute.
func NameTag(value, content string) MetaTag {
	return MetaTag{Attr: AttrName, Value: value, Content: content}
}

// PropertyTag returns a MetaTag keyed by the property attribute.
func PropertyTag(value, content string) MetaTag {
	return MetaTag{Attr: AttrProperty, Value: value, Content: content}
}

// TagResult holds the outcome of tagging a single page.
type TagResult struct {
	// HTML is the serialized document. When Tags is empty it is the input
	// markup, unchanged.
	HTML string

	// Tags lists the meta tags that were injected, in insertion order.
	Tags []MetaTag
}

// PageTagger performs the per-page transformation: extract an excerpt,
// derive a description, and inject metadata into the document head.
type PageTagger interface {
	// Tag processes one rendered page. A page with nothing to inject is
	// not an error; the result simply carries no tags.
	Tag(html string, typ DocumentType) (*TagResult, error)
}

// PageStore loads and persists rendered pages.
type PageStore interface {
	Load(ctx context.Context, path string) (string, error)
	Save(ctx context.Context, path string, html string) error
}

// SiteMeta carries the fixed per-batch metadata values and tagging knobs.
// Zero values mean "not configured"; the corresponding tags are not emitted.
type SiteMeta struct {
	// SiteName is emitted as og:site_name.
	SiteName string `yaml:"site_name"`

	// ImageURL is emitted as og:image.
	ImageURL string `yaml:"image_url"`

	// ThemeColor is emitted as theme-color.
	ThemeColor string `yaml:"theme_color"`

	// DescriptionLength bounds the derived description, in characters.
	// Zero means DefaultDescriptionLength.
	DescriptionLength int `yaml:"description_length"`

	// Selectors names the structural selector set to use ("modern" or
	// "legacy"). Empty means the default set.
	Selectors string `yaml:"selectors"`

	// Concurrency limits parallel file processing. Zero means the batch
	// default.
	Concurrency int `yaml:"concurrency"`
}

// Validate returns an error if the site metadata contains invalid fields.
func (m *SiteMeta) Validate() error {
	if m.DescriptionLength < 0 {
		return Errorf(EINVALID, "description length must not be negative")
	}
	if m.Concurrency < 0 {
		return Errorf(EINVALID, "concurrency must not be negative")
	}
	return nil
}
