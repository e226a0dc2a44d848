package editor

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"list-authors/authorlist"
	"list-authors/renderer"
)

type fakeDirectory struct {
	calls   atomic.Int32
	records []authorlist.AuthorRecord

	// block, when set, makes the first call wait for cancellation.
	block   bool
	started chan struct{}
}

func newFakeDirectory() *fakeDirectory {
	return &fakeDirectory{
		records: []authorlist.AuthorRecord{
			{ID: 1, DisplayName: "A", ProfileURL: "/author/a/", FeedURL: "/author/a/feed/"},
			{ID: 2, DisplayName: "B", ProfileURL: "/author/b/", FeedURL: "/author/b/feed/"},
			{ID: 3, DisplayName: "C", ProfileURL: "/author/c/", FeedURL: "/author/c/feed/"},
		},
		started: make(chan struct{}),
	}
}

func (d *fakeDirectory) QueryAuthors(ctx context.Context, q authorlist.AuthorQuery) ([]authorlist.AuthorRecord, error) {
	n := d.calls.Add(1)
	if d.block && n == 1 {
		close(d.started)
		<-ctx.Done()
		return nil, ctx.Err()
	}
	out := make([]authorlist.AuthorRecord, 0, len(d.records))
	for _, r := range d.records {
		if q.Include != nil && !contains(q.Include, r.ID) {
			continue
		}
		out = append(out, r)
	}
	if q.Order == authorlist.OrderDesc {
		for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
			out[i], out[j] = out[j], out[i]
		}
	}
	if q.Number > 0 && len(out) > q.Number {
		out = out[:q.Number]
	}
	return out, nil
}

func contains(ids []int64, id int64) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

func itemNames(t *testing.T, elements []renderer.Element) []string {
	t.Helper()
	require.Len(t, elements, 1)
	var names []string
	list := elements[0].Children[0]
	for _, li := range list.Children {
		link := li.Children[0].Children[0]
		names = append(names, link.Text)
	}
	return names
}

func TestSessionDisplayTogglesReuseAuthorQuery(t *testing.T) {
	dir := newFakeDirectory()
	s := NewSession("block-1", dir, authorlist.AuthorCountMap{1: 5, 3: 2})
	ctx := context.Background()

	cfg := authorlist.DefaultConfiguration()
	_, err := s.Update(ctx, cfg, renderer.BlockContext{})
	require.NoError(t, err)

	cfg.ShowFeedLink = true
	cfg.ShowPostCount = false
	_, err = s.Update(ctx, cfg, renderer.BlockContext{})
	require.NoError(t, err)
	assert.EqualValues(t, 1, dir.calls.Load())

	cfg.SortDirection = authorlist.OrderDesc
	elements, err := s.Update(ctx, cfg, renderer.BlockContext{})
	require.NoError(t, err)
	assert.EqualValues(t, 2, dir.calls.Load())
	assert.Equal(t, []string{"C", "B", "A"}, itemNames(t, elements))
}

func TestSessionHideEmptyUsesPreloadedCounts(t *testing.T) {
	dir := newFakeDirectory()
	s := NewSession("block-1", dir, authorlist.AuthorCountMap{1: 5, 3: 2})

	cfg := authorlist.DefaultConfiguration()
	cfg.HideAuthorsWithoutPosts = true
	elements, err := s.Update(context.Background(), cfg, renderer.BlockContext{})
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "C"}, itemNames(t, elements))

	s.SetCounts(authorlist.AuthorCountMap{})
	elements, err = s.Update(context.Background(), cfg, renderer.BlockContext{})
	require.NoError(t, err)
	assert.NotNil(t, elements)
	assert.Empty(t, elements)
}

func TestSessionStaleUpdateIsCanceled(t *testing.T) {
	dir := newFakeDirectory()
	dir.block = true
	s := NewSession("block-1", dir, nil)

	var wg sync.WaitGroup
	var staleErr error
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, staleErr = s.Update(context.Background(), authorlist.DefaultConfiguration(), renderer.BlockContext{})
	}()
	<-dir.started

	cfg := authorlist.DefaultConfiguration()
	cfg.Count = 2
	elements, err := s.Update(context.Background(), cfg, renderer.BlockContext{})
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, itemNames(t, elements))

	wg.Wait()
	assert.True(t, errors.Is(staleErr, context.Canceled), "got %v", staleErr)
}

type failingDirectory struct{}

func (failingDirectory) QueryAuthors(context.Context, authorlist.AuthorQuery) ([]authorlist.AuthorRecord, error) {
	return nil, errors.New("store down")
}

func TestSessionPropagatesQueryErrors(t *testing.T) {
	s := NewSession("block-1", failingDirectory{}, nil)
	_, err := s.Update(context.Background(), authorlist.DefaultConfiguration(), renderer.BlockContext{})
	assert.ErrorContains(t, err, "store down")
}
