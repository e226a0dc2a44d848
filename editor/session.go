package editor

import (
	"context"
	"maps"
	"slices"
	"sync"

	"list-authors/authorlist"
	"list-authors/renderer"
)

// Session is the live preview state of one block instance. It keeps the
// preloaded counts and the last author query result, so toggling display
// options never re-queries authors.
type Session struct {
	clientID string
	authors  authorlist.AuthorQuerier

	mu         sync.Mutex
	counts     authorlist.StaticCounts
	lastQuery  *authorlist.AuthorQuery
	lastResult []authorlist.AuthorRecord
	generation uint64
	cancel     context.CancelFunc
}

func NewSession(clientID string, authors authorlist.AuthorQuerier, counts authorlist.AuthorCountMap) *Session {
	return &Session{
		clientID: clientID,
		authors:  authors,
		counts:   authorlist.StaticCounts(counts),
	}
}

func (s *Session) ClientID() string { return s.clientID }

// SetCounts replaces the preloaded counts. When they differ the cached
// author list is dropped, since the hide-empty allow-list may change.
func (s *Session) SetCounts(counts authorlist.AuthorCountMap) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if maps.Equal(s.counts, authorlist.StaticCounts(counts)) {
		return
	}
	s.counts = authorlist.StaticCounts(counts)
	s.lastQuery, s.lastResult = nil, nil
}

// Update resolves the preview for cfg. A later Update abandons this one,
// which then returns context.Canceled.
func (s *Session) Update(ctx context.Context, cfg authorlist.ListConfiguration, block renderer.BlockContext) ([]renderer.Element, error) {
	s.mu.Lock()
	if s.cancel != nil {
		s.cancel()
	}
	ctx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.generation++
	gen := s.generation
	counts := s.counts
	s.mu.Unlock()
	defer cancel()

	cfg = cfg.Normalize()
	rows, err := authorlist.ResolveDisplayRows(ctx, cfg, sessionQuerier{s}, counts)

	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.generation {
		return nil, context.Canceled
	}
	s.cancel = nil
	if err != nil {
		return nil, err
	}
	return renderer.BuildPreview(rows, cfg, block), nil
}

// sessionQuerier serves repeated author queries from the session cache.
type sessionQuerier struct{ s *Session }

func (q sessionQuerier) QueryAuthors(ctx context.Context, query authorlist.AuthorQuery) ([]authorlist.AuthorRecord, error) {
	s := q.s
	s.mu.Lock()
	if s.lastQuery != nil && sameAuthorQuery(*s.lastQuery, query) {
		cached := s.lastResult
		s.mu.Unlock()
		return cached, nil
	}
	s.mu.Unlock()

	records, err := s.authors.QueryAuthors(ctx, query)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.lastQuery, s.lastResult = &query, records
	s.mu.Unlock()
	return records, nil
}

func sameAuthorQuery(a, b authorlist.AuthorQuery) bool {
	if a.Number != b.Number || a.Order != b.Order || a.OrderBy != b.OrderBy {
		return false
	}
	if (a.Include == nil) != (b.Include == nil) {
		return false
	}
	return slices.Equal(a.Include, b.Include)
}
