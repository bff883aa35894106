package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/pagemeta"
)

// Ensure Tagger implements pagemeta.PageTagger at compile time.
var _ pagemeta.PageTagger = (*Tagger)(nil)

// Tagger performs the full per-page transformation: parse the markup once,
// extract an excerpt, derive a description, assemble the meta tags, inject
// them into the head, and serialize the mutated document once.
type Tagger struct {
	extractor *Extractor
	site      pagemeta.SiteMeta
	bound     int
}

// NewTagger creates a Tagger for the given selector set and site metadata.
// A zero description length falls back to pagemeta.DefaultDescriptionLength.
func NewTagger(selectors SelectorSet, site pagemeta.SiteMeta) *Tagger {
	bound := site.DescriptionLength
	if bound == 0 {
		bound = pagemeta.DefaultDescriptionLength
	}
	return &Tagger{
		extractor: NewExtractor(selectors),
		site:      site,
		bound:     bound,
	}
}

// Tag processes one rendered page. An absent excerpt only suppresses the
// description tags; title and configured site tags are still injected.
// When nothing applies, the input markup is returned unchanged.
func (t *Tagger) Tag(markup string, typ pagemeta.DocumentType) (*pagemeta.TagResult, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return nil, pagemeta.Errorf(pagemeta.EINVALID, "failed to parse HTML: %v", err)
	}

	var tags []pagemeta.MetaTag
	if excerpt := t.extractor.Excerpt(doc, typ); excerpt != "" {
		desc := pagemeta.Describe(excerpt, t.bound)
		tags = append(tags,
			pagemeta.NameTag("description", desc),
			pagemeta.PropertyTag("og:description", desc),
		)
	}
	if title := PageTitle(doc); title != "" {
		tags = append(tags, pagemeta.PropertyTag("og:title", title))
	}
	if t.site.SiteName != "" {
		tags = append(tags, pagemeta.PropertyTag("og:site_name", t.site.SiteName))
	}
	if t.site.ImageURL != "" {
		tags = append(tags, pagemeta.PropertyTag("og:image", t.site.ImageURL))
	}
	if t.site.ThemeColor != "" {
		tags = append(tags, pagemeta.NameTag("theme-color", t.site.ThemeColor))
	}

	if len(tags) == 0 {
		return &pagemeta.TagResult{HTML: markup}, nil
	}

	if err := InjectMeta(doc, tags); err != nil {
		return nil, err
	}

	out, err := doc.Html()
	if err != nil {
		return nil, pagemeta.Errorf(pagemeta.EINTERNAL, "failed to serialize HTML: %v", err)
	}
	return &pagemeta.TagResult{HTML: out, Tags: tags}, nil
}
