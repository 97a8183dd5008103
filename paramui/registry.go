package paramui

import (
	"context"
	"slices"
	"sync"

	"golang.org/x/exp/maps"

	"paramtree.dev/paramtree/params"
)

// A Source exposes named parameter trees as serialized projections.
// Both the live Registry and the sqlite archive satisfy it.
type Source interface {
	Names(ctx context.Context) ([]string, error)
	JSON(ctx context.Context, name string) ([]byte, error)
	Dump(ctx context.Context, name string) ([]byte, error)
}

// A Watcher notifies subscribers with the name of every tree that changes.
type Watcher interface {
	Subscribe(ch chan string)
	Unsubscribe(ch chan string)
}

// Registry holds live parameter trees for serving. The registry guards its
// own map; the trees themselves carry no synchronization, so every Put takes
// a deep copy and every read serves from that copy.
type Registry struct {
	mu    sync.Mutex
	trees map[string]params.Block
	subs  map[chan string]struct{}
}

func NewRegistry() *Registry {
	return &Registry{
		trees: make(map[string]params.Block),
		subs:  make(map[chan string]struct{}),
	}
}

// Put registers a deep copy of b under name, replacing any previous tree.
func (r *Registry) Put(name string, b *params.Block) {
	r.mu.Lock()
	r.trees[name] = b.Clone()
	subs := maps.Keys(r.subs)
	r.mu.Unlock()
	for _, ch := range subs {
		select {
		case ch <- name:
		default:
		}
	}
}

// Get returns a deep copy of the named tree.
func (r *Registry) Get(name string) (params.Block, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.trees[name]
	if !ok {
		return params.Block{}, false
	}
	return b.Clone(), true
}

func (r *Registry) Names(ctx context.Context) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	names := maps.Keys(r.trees)
	slices.Sort(names)
	return names, nil
}

func (r *Registry) JSON(ctx context.Context, name string) ([]byte, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.trees[name]
	if !ok {
		return nil, ErrNoTree{Name: name}
	}
	return b.DumpJSON(), nil
}

func (r *Registry) Dump(ctx context.Context, name string) ([]byte, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.trees[name]
	if !ok {
		return nil, ErrNoTree{Name: name}
	}
	return []byte(b.DumpString()), nil
}

func (r *Registry) Subscribe(ch chan string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.subs[ch] = struct{}{}
}

func (r *Registry) Unsubscribe(ch chan string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.subs, ch)
}

type ErrNoTree struct {
	Name string
}

func (e ErrNoTree) Error() string {
	return "no tree registered under " + e.Name
}
