package services

import (
	"context"

	"list-authors/authorlist"
	"list-authors/editor"
	"list-authors/metrics"
	"list-authors/models"
	"list-authors/renderer"
)

// EditorService drives live previews through per-block editor sessions.
type EditorService struct {
	list     *AuthorListService
	sessions *editor.Registry
	metrics  *metrics.Recorder
}

func NewEditorService(list *AuthorListService, maxSessions int, m *metrics.Recorder) (*EditorService, error) {
	sessions, err := editor.NewRegistry(maxSessions, list.Directory())
	if err != nil {
		return nil, err
	}
	return &EditorService{list: list, sessions: sessions, metrics: m}, nil
}

type PreviewInput struct {
	ClientID   string
	Attributes authorlist.Attributes
	// Counts is the preloaded count map; nil when the editor sent none.
	Counts map[string]int
	Block  renderer.BlockContext
	Viewer models.Viewer
}

// Preview resolves the element tree for one block instance. A preview
// superseded by a newer one for the same block returns context.Canceled.
func (s *EditorService) Preview(ctx context.Context, in PreviewInput) ([]renderer.Element, error) {
	key := editor.Key{ClientID: in.ClientID, ViewerID: in.Viewer.ID, ReadPrivate: in.Viewer.CanReadPrivate}
	session, err := s.sessions.Session(ctx, key, func(ctx context.Context) (authorlist.AuthorCountMap, error) {
		if in.Counts != nil {
			return authorlist.ParseCountMap(in.Counts), nil
		}
		return s.list.Counts(ctx, in.Viewer)
	})
	if err != nil {
		return nil, err
	}
	if in.Counts != nil {
		session.SetCounts(authorlist.ParseCountMap(in.Counts))
	}

	elements, err := session.Update(ctx, in.Attributes.Configuration(), in.Block)
	rows := 0
	if len(elements) > 0 {
		rows = len(elements[0].Children[0].Children)
	}
	s.metrics.ObserveRender(metrics.EnvEditor, rows, err)
	return elements, err
}

// Forget drops the sessions of a removed block, for every viewer.
func (s *EditorService) Forget(clientID string) {
	s.sessions.Remove(clientID)
}

// Sessions is the number of block instances with a live preview session.
func (s *EditorService) Sessions() int {
	return s.sessions.Len()
}
