package goquery

import "github.com/fwojciec/pagemeta"

// SelectorSet defines the structural selectors used to locate excerpt text
// in a rendered page. The selectors track the upstream page template and
// have changed across template versions, so they are versioned configuration
// rather than constants scattered through the extraction code.
type SelectorSet struct {
	// Name identifies the set (e.g., "modern").
	Name string

	// ConceptualExcerpt locates the lead paragraph of a conceptual
	// article.
	ConceptualExcerpt string

	// ReferenceSummary locates the summary paragraph of an API reference
	// page.
	ReferenceSummary string
}

// ModernSelectors targets current page templates: the lead paragraph is the
// first paragraph anywhere inside the primary article element, and the
// reference summary is the first paragraph inside any element carrying a
// "summary" class token (tolerates class lists like "markdown summary").
func ModernSelectors() SelectorSet {
	return SelectorSet{
		Name:              "modern",
		ConceptualExcerpt: "article p",
		ReferenceSummary:  ".summary p",
	}
}

// LegacySelectors targets older page templates that rendered conceptual
// content under a #_content container and reference summaries under a
// "level0 summary" class list.
func LegacySelectors() SelectorSet {
	return SelectorSet{
		Name:              "legacy",
		ConceptualExcerpt: "#_content > p",
		ReferenceSummary:  ".level0.summary p",
	}
}

// Selectors resolves a selector set by name. The empty name resolves to the
// modern set.
func Selectors(name string) (SelectorSet, error) {
	switch name {
	case "", "modern":
		return ModernSelectors(), nil
	case "legacy":
		return LegacySelectors(), nil
	default:
		return SelectorSet{}, pagemeta.Errorf(pagemeta.EINVALID, "unknown selector set %q", name)
	}
}
