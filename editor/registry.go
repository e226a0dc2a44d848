package editor

import (
	"context"
	"errors"

	lru "github.com/hashicorp/golang-lru/v2"

	"list-authors/authorlist"
	"list-authors/internal/logger"
)

const DefaultMaxSessions = 256

var ErrMissingClientID = errors.New("client id is required")

// CountLoader computes the preloaded counts for a new session.
type CountLoader func(ctx context.Context) (authorlist.AuthorCountMap, error)

// Key identifies a session: one block instance as seen by one viewer.
// Counts loaded for a session are filtered by that viewer's visibility, so
// viewers never share a session.
type Key struct {
	ClientID    string
	ViewerID    int64
	ReadPrivate bool
}

// Registry holds the most recently used editor sessions.
type Registry struct {
	authors  authorlist.AuthorQuerier
	sessions *lru.Cache[Key, *Session]
}

func NewRegistry(size int, authors authorlist.AuthorQuerier) (*Registry, error) {
	if size <= 0 {
		size = DefaultMaxSessions
	}
	cache, err := lru.NewWithEvict(size, func(key Key, s *Session) {
		logger.DebugWithFields("editor session evicted", logger.Fields{"client_id": s.ClientID(), "viewer_id": key.ViewerID})
	})
	if err != nil {
		return nil, err
	}
	return &Registry{authors: authors, sessions: cache}, nil
}

// Session returns the session of key, creating it with counts from load
// when it does not exist yet.
func (r *Registry) Session(ctx context.Context, key Key, load CountLoader) (*Session, error) {
	if key.ClientID == "" {
		return nil, ErrMissingClientID
	}
	if s, ok := r.sessions.Get(key); ok {
		return s, nil
	}

	counts, err := load(ctx)
	if err != nil {
		return nil, err
	}
	s := NewSession(key.ClientID, r.authors, counts)
	// 동시에 같은 키로 생성된 경우 먼저 들어간 세션을 쓴다
	if prev, ok, _ := r.sessions.PeekOrAdd(key, s); ok {
		return prev, nil
	}
	return s, nil
}

// Remove drops every session of clientID, whatever the viewer.
func (r *Registry) Remove(clientID string) {
	for _, key := range r.sessions.Keys() {
		if key.ClientID == clientID {
			r.sessions.Remove(key)
		}
	}
}

func (r *Registry) Len() int {
	return r.sessions.Len()
}
