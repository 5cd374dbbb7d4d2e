package dataset

import (
	"fmt"
	"sort"
)

// Store is the revision -> Table mapping. It is built once by New and is never
// modified afterwards.
type Store struct {
	tables    map[string]*Table
	revisions []string
	newest    []string
	keys      map[string]int64
}

type options struct {
	recency RecencyFunc
}

// Option configures New.
type Option func(*options)

// WithRecencyKey overrides how revision identifiers are ordered by recency.
func WithRecencyKey(fn RecencyFunc) Option {
	return func(o *options) {
		if fn != nil {
			o.recency = fn
		}
	}
}

// New builds a Store from tables. Every revision must be unique and must
// produce a recency key; otherwise New returns an error and no Store.
func New(tables []*Table, opts ...Option) (*Store, error) {
	o := options{recency: RecencyKey}
	for _, opt := range opts {
		opt(&o)
	}

	s := &Store{
		tables: make(map[string]*Table, len(tables)),
		keys:   make(map[string]int64, len(tables)),
	}

	for _, t := range tables {
		if t == nil {
			return nil, fmt.Errorf("nil table in dataset")
		}
		if _, dup := s.tables[t.revision]; dup {
			return nil, fmt.Errorf("duplicate revision %q", t.revision)
		}
		key, err := o.recency(t.revision)
		if err != nil {
			return nil, err
		}
		s.tables[t.revision] = t
		s.keys[t.revision] = key
		s.revisions = append(s.revisions, t.revision)
	}

	sort.Strings(s.revisions)

	s.newest = make([]string, len(s.revisions))
	copy(s.newest, s.revisions)
	sort.SliceStable(s.newest, func(i, j int) bool {
		return s.keys[s.newest[i]] > s.keys[s.newest[j]]
	})

	return s, nil
}

// Revisions returns all known revision identifiers in lexical order. The order
// says nothing about recency; use Newest for that.
func (s *Store) Revisions() []string {
	out := make([]string, len(s.revisions))
	copy(out, s.revisions)
	return out
}

// Newest returns all revision identifiers ordered most recent first. Revisions
// with equal recency keys keep their lexical order.
func (s *Store) Newest() []string {
	out := make([]string, len(s.newest))
	copy(out, s.newest)
	return out
}

// Table returns the table of revision.
func (s *Store) Table(revision string) (*Table, bool) {
	t, ok := s.tables[revision]
	return t, ok
}

// RecencyKey returns the key computed for revision when the store was built.
func (s *Store) RecencyKey(revision string) (int64, bool) {
	key, ok := s.keys[revision]
	return key, ok
}

// Len returns the number of revisions.
func (s *Store) Len() int {
	return len(s.tables)
}
