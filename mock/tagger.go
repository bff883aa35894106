// Package mock provides function-field mocks for domain interfaces.
package mock

import "github.com/fwojciec/pagemeta"

var _ pagemeta.PageTagger = (*Tagger)(nil)

// Tagger is a mock implementation of pagemeta.PageTagger.
type Tagger struct {
	TagFn func(html string, typ pagemeta.DocumentType) (*pagemeta.TagResult, error)
}

func (t *Tagger) Tag(html string, typ pagemeta.DocumentType) (*pagemeta.TagResult, error) {
	return t.TagFn(html, typ)
}
