package lookup

import (
	"errors"

	"china-division/core/division"
	"china-division/core/metrics"

	"go.uber.org/zap"
)

// ErrNotFound is returned when no division matches the query.
var ErrNotFound = errors.New("division not found")

// Query selects how a code is resolved. Search wins over Revision; with
// neither set the current revision is used.
type Query struct {
	Code     string
	Revision string
	Search   bool
}

// Service resolves queries against the dataset.
type Service struct {
	resolver *division.Resolver
	logger   *zap.Logger
}

// NewService creates a new lookup service.
func NewService(resolver *division.Resolver, logger *zap.Logger) *Service {
	return &Service{resolver: resolver, logger: logger}
}

// Find resolves the division selected by q.
func (s *Service) Find(q Query) (division.Division, error) {
	var (
		d    division.Division
		ok   bool
		kind string
	)
	switch {
	case q.Search:
		kind = metrics.KindSearch
		d, ok = s.resolver.Search(q.Code)
	case q.Revision != "":
		kind = metrics.KindRevision
		d, ok = s.resolver.GetByRevision(q.Code, q.Revision)
	default:
		kind = metrics.KindGet
		d, ok = s.resolver.Get(q.Code)
	}
	metrics.ObserveLookup(kind, ok)

	if !ok {
		return division.Division{}, ErrNotFound
	}
	return d, nil
}

// Resolve finds the division selected by q and derives its ancestry.
func (s *Service) Resolve(q Query) (*Report, error) {
	d, err := s.Find(q)
	if err != nil {
		return nil, err
	}

	stack, err := s.Stack(d)
	if err != nil {
		return nil, err
	}

	return &Report{DivisionView: viewOf(d), Stack: stack}, nil
}

// Stack returns the ancestry chain of d as views.
func (s *Service) Stack(d division.Division) ([]DivisionView, error) {
	stack, err := d.Stack()
	if err != nil {
		if errors.Is(err, division.ErrMissingParent) {
			metrics.MissingParentsTotal.Inc()
			s.logger.Error("Dataset is missing a parent division",
				zap.String("code", d.Code),
				zap.String("revision", d.Revision),
				zap.Error(err))
		}
		return nil, err
	}

	views := make([]DivisionView, 0, len(stack))
	for _, item := range stack {
		views = append(views, viewOf(item))
	}
	return views, nil
}

// Revisions lists the dataset revisions newest first.
func (s *Service) Revisions() RevisionsReport {
	return RevisionsReport{
		Current:   s.resolver.Current(),
		Revisions: s.resolver.Store().Newest(),
	}
}
