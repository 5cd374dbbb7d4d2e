package division

import (
	"fmt"

	"china-division/core/dataset"
)

// Resolver answers code lookups against an immutable Store. It holds no
// mutable state and is safe for concurrent use.
type Resolver struct {
	store   *dataset.Store
	current string
}

// NewResolver creates a Resolver over store. current is the revision used by
// Get and must exist in store.
func NewResolver(store *dataset.Store, current string) (*Resolver, error) {
	if store == nil {
		return nil, fmt.Errorf("dataset store is nil")
	}
	if _, ok := store.Table(current); !ok {
		return nil, fmt.Errorf("current revision %q is not in the dataset", current)
	}
	return &Resolver{store: store, current: current}, nil
}

// Current returns the default revision.
func (r *Resolver) Current() string {
	return r.current
}

// Store returns the underlying dataset.
func (r *Resolver) Store() *dataset.Store {
	return r.store
}

// Revisions returns every known revision identifier.
func (r *Resolver) Revisions() []string {
	return r.store.Revisions()
}

// Get looks code up in the current revision.
func (r *Resolver) Get(code string) (Division, bool) {
	return r.GetByRevision(code, r.current)
}

// GetByRevision looks code up in revision. Unknown revisions and unknown
// codes are both reported as absent.
func (r *Resolver) GetByRevision(code, revision string) (Division, bool) {
	t, ok := r.store.Table(revision)
	if !ok {
		return Division{}, false
	}
	return bind(t, code)
}

// Search returns code from the most recent revision that contains it.
func (r *Resolver) Search(code string) (Division, bool) {
	for _, revision := range r.store.Newest() {
		if d, ok := r.GetByRevision(code, revision); ok {
			return d, true
		}
	}
	return Division{}, false
}

// All returns every division of revision ordered by code.
func (r *Resolver) All(revision string) ([]Division, bool) {
	t, ok := r.store.Table(revision)
	if !ok {
		return nil, false
	}
	codes := t.Codes()
	out := make([]Division, 0, len(codes))
	for _, code := range codes {
		d, _ := bind(t, code)
		out = append(out, d)
	}
	return out, true
}
