package services

import (
	"context"
	"time"

	"list-authors/authorlist"
	"list-authors/metrics"
	"list-authors/models"
	"list-authors/repositories"
)

// AuthorDirectory answers author queries from the author repository and
// attaches public links.
type AuthorDirectory struct {
	repo    repositories.AuthorRepository
	links   LinkBuilder
	metrics *metrics.Recorder
}

func NewAuthorDirectory(repo repositories.AuthorRepository, links LinkBuilder, m *metrics.Recorder) *AuthorDirectory {
	return &AuthorDirectory{repo: repo, links: links, metrics: m}
}

func (d *AuthorDirectory) QueryAuthors(ctx context.Context, q authorlist.AuthorQuery) ([]authorlist.AuthorRecord, error) {
	start := time.Now()
	authors, err := d.repo.List(ctx, repositories.ListAuthorsOptions{
		Number:  q.Number,
		Order:   q.Order,
		OrderBy: q.OrderBy,
		Include: q.Include,
	})
	d.metrics.ObserveAuthorQuery(start, err)
	if err != nil {
		return nil, err
	}
	out := make([]authorlist.AuthorRecord, 0, len(authors))
	for _, a := range authors {
		out = append(out, d.record(a))
	}
	return out, nil
}

func (d *AuthorDirectory) record(a models.Author) authorlist.AuthorRecord {
	return authorlist.AuthorRecord{
		ID:          a.ID,
		DisplayName: a.DisplayName,
		Slug:        a.Slug,
		ProfileURL:  d.links.ProfileURL(a.Slug),
		FeedURL:     d.links.FeedURL(a.Slug),
	}
}

// viewerCounter binds the post count query to one viewer.
type viewerCounter struct {
	repo    repositories.PostRepository
	viewer  models.Viewer
	metrics *metrics.Recorder
}

func (c viewerCounter) CountPostsByAuthor(ctx context.Context) (authorlist.AuthorCountMap, error) {
	raw, err := c.repo.CountByAuthor(ctx, c.viewer)
	c.metrics.ObserveCountQuery(err)
	if err != nil {
		return nil, err
	}
	return authorlist.AuthorCountMap(raw), nil
}
