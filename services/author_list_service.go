package services

import (
	"context"
	"fmt"

	"list-authors/authorlist"
	"list-authors/config"
	"list-authors/metrics"
	"list-authors/models"
	"list-authors/renderer"
	"list-authors/repositories"
)

// FeedItemLimit caps the number of items in an author feed.
const FeedItemLimit = 20

// AuthorListService renders author lists and serves the editor data layer.
type AuthorListService struct {
	authors   repositories.AuthorRepository
	posts     repositories.PostRepository
	directory *AuthorDirectory
	links     LinkBuilder
	site      config.SiteConfig
	metrics   *metrics.Recorder
}

func NewAuthorListService(store *repositories.Store, site config.SiteConfig, m *metrics.Recorder) *AuthorListService {
	links := NewLinkBuilder(site)
	return &AuthorListService{
		authors:   store.Authors,
		posts:     store.Posts,
		directory: NewAuthorDirectory(store.Authors, links, m),
		links:     links,
		site:      site,
		metrics:   m,
	}
}

type RenderInput struct {
	Attributes authorlist.Attributes
	Block      renderer.BlockContext
	Viewer     models.Viewer
}

// Render produces the server-side HTML fragment. An empty list renders as
// the empty string.
func (s *AuthorListService) Render(ctx context.Context, in RenderInput) (string, error) {
	cfg := in.Attributes.Configuration()
	rows, err := s.Rows(ctx, cfg, in.Viewer)
	if err != nil {
		s.metrics.ObserveRender(metrics.EnvServer, 0, err)
		return "", err
	}
	out, err := renderer.RenderHTML(rows, cfg, in.Block)
	s.metrics.ObserveRender(metrics.EnvServer, len(rows), err)
	return out, err
}

// Rows resolves display rows with a fresh count aggregator, so counts are
// computed at most once for this call.
func (s *AuthorListService) Rows(ctx context.Context, cfg authorlist.ListConfiguration, viewer models.Viewer) ([]authorlist.DisplayRow, error) {
	counts := authorlist.NewPostCountAggregator(s.counter(viewer))
	return authorlist.ResolveDisplayRows(ctx, cfg, s.directory, counts)
}

// Counts runs the grouped count query for viewer, as the editor receives
// it with its bootstrap payload.
func (s *AuthorListService) Counts(ctx context.Context, viewer models.Viewer) (authorlist.AuthorCountMap, error) {
	counts, err := authorlist.NewPostCountAggregator(s.counter(viewer)).Counts(ctx)
	if err != nil {
		return nil, fmt.Errorf("count posts: %w", err)
	}
	return counts, nil
}

// Directory is the author collaborator used by editor sessions.
func (s *AuthorListService) Directory() authorlist.AuthorQuerier {
	return s.directory
}

// ListAuthors backs the editor's author endpoint.
func (s *AuthorListService) ListAuthors(ctx context.Context, q authorlist.AuthorQuery) ([]authorlist.AuthorRecord, error) {
	records, err := s.directory.QueryAuthors(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("query authors: %w", err)
	}
	return records, nil
}

// EditorBootstrap is the payload the editor script is mounted with.
type EditorBootstrap struct {
	Block  authorlist.BlockMetadata
	Counts authorlist.AuthorCountMap
}

func (s *AuthorListService) Bootstrap(ctx context.Context, viewer models.Viewer) (EditorBootstrap, error) {
	counts, err := s.Counts(ctx, viewer)
	if err != nil {
		return EditorBootstrap{}, err
	}
	return EditorBootstrap{Block: authorlist.Metadata(), Counts: counts}, nil
}

// AuthorFeed renders the RSS feed of the author's public posts.
func (s *AuthorListService) AuthorFeed(ctx context.Context, slug string) ([]byte, error) {
	author, err := s.authors.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	posts, err := s.posts.ListVisibleByAuthor(ctx, author.ID, models.Viewer{}, FeedItemLimit)
	if err != nil {
		return nil, fmt.Errorf("list posts of %s: %w", slug, err)
	}
	return renderer.RenderAuthorFeed(renderer.AuthorFeed{
		SiteTitle:  s.site.Title,
		Author:     *author,
		ProfileURL: s.links.ProfileURL(author.Slug),
		Posts:      posts,
	})
}

func (s *AuthorListService) counter(viewer models.Viewer) authorlist.PostCounter {
	return viewerCounter{repo: s.posts, viewer: viewer, metrics: s.metrics}
}
