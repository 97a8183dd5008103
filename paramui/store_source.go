package paramui

import (
	"context"

	"paramtree.dev/paramtree/paramstore"
)

// StoreSource serves the archived projections out of a paramstore.Store.
// The stored bytes are passed through untouched; no tree is reconstructed.
func StoreSource(s *paramstore.Store) Source {
	return storeSource{s: s}
}

type storeSource struct {
	s *paramstore.Store
}

func (ss storeSource) Names(ctx context.Context) ([]string, error) {
	return ss.s.Names(ctx)
}

func (ss storeSource) JSON(ctx context.Context, name string) ([]byte, error) {
	return ss.s.GetJSON(ctx, name)
}

func (ss storeSource) Dump(ctx context.Context, name string) ([]byte, error) {
	return ss.s.GetDump(ctx, name)
}
