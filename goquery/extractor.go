// Package goquery implements HTML excerpt extraction and metadata injection
// using CSS selectors.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/pagemeta"
)

// Extractor locates excerpt text in parsed pages using a SelectorSet.
// Extraction is a read-only query; a page without a matching node, or with
// only blank text, yields an empty excerpt rather than an error.
type Extractor struct {
	selectors SelectorSet
}

// NewExtractor creates an Extractor using the given selector set.
func NewExtractor(selectors SelectorSet) *Extractor {
	return &Extractor{selectors: selectors}
}

// Excerpt returns the representative text for a page of the given type:
// the lead paragraph of a conceptual article, or the summary paragraph of a
// reference page. Returns the empty string for unknown types or when no
// text is found.
func (e *Extractor) Excerpt(doc *goquery.Document, typ pagemeta.DocumentType) string {
	switch typ {
	case pagemeta.TypeConceptual:
		return firstText(doc, e.selectors.ConceptualExcerpt)
	case pagemeta.TypeReference:
		return firstText(doc, e.selectors.ReferenceSummary)
	default:
		return ""
	}
}

// firstText returns the collapsed text of the first node matching the
// selector, or "" when the node is absent or blank.
func firstText(doc *goquery.Document, selector string) string {
	text := doc.Find(selector).First().Text()
	return strings.Join(strings.Fields(text), " ")
}

// PageTitle returns the trimmed text of the document's <title> element.
func PageTitle(doc *goquery.Document) string {
	return strings.TrimSpace(doc.Find("head title").First().Text())
}
