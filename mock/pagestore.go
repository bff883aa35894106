package mock

import (
	"context"

	"github.com/fwojciec/pagemeta"
)

var _ pagemeta.PageStore = (*PageStore)(nil)

// PageStore is a mock implementation of pagemeta.PageStore.
type PageStore struct {
	LoadFn func(ctx context.Context, path string) (string, error)
	SaveFn func(ctx context.Context, path string, html string) error
}

func (s *PageStore) Load(ctx context.Context, path string) (string, error) {
	return s.LoadFn(ctx, path)
}

func (s *PageStore) Save(ctx context.Context, path string, html string) error {
	return s.SaveFn(ctx, path, html)
}
