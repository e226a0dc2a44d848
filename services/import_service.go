package services

import (
	"context"
	"fmt"

	"list-authors/feeder"
	"list-authors/internal/logger"
	"list-authors/models"
	"list-authors/repositories"
)

// ImportService copies an external feed into an author's published posts.
type ImportService struct {
	authors repositories.AuthorRepository
	posts   repositories.PostRepository
	fetcher *feeder.Fetcher
}

func NewImportService(store *repositories.Store, fetcher *feeder.Fetcher) *ImportService {
	return &ImportService{authors: store.Authors, posts: store.Posts, fetcher: fetcher}
}

type ImportFeedInput struct {
	AuthorSlug string
	FeedURL    string
	Limit      int
}

// ImportFeed upserts every feed item as a published post of the author,
// keyed by link. It returns the number of items written.
func (s *ImportService) ImportFeed(ctx context.Context, in ImportFeedInput) (int, error) {
	author, err := s.authors.FindBySlug(ctx, in.AuthorSlug)
	if err != nil {
		return 0, err
	}
	items, err := s.fetcher.FetchRssFeeds(ctx, in.FeedURL, in.Limit)
	if err != nil {
		return 0, fmt.Errorf("fetch %s: %w", in.FeedURL, err)
	}

	imported := 0
	for _, item := range items {
		p := &models.Post{
			AuthorID:    author.ID,
			Type:        models.PostTypePost,
			Status:      models.PostStatusPublish,
			Title:       item.Title,
			Link:        item.Link,
			Summary:     item.Summary,
			PublishedAt: item.PublishedAt,
		}
		if err := s.posts.UpsertByAuthorAndLink(ctx, p); err != nil {
			return imported, fmt.Errorf("save %s: %w", item.Link, err)
		}
		imported++
	}
	logger.InfoWithFields("feed imported", logger.Fields{
		"author": author.Slug,
		"url":    in.FeedURL,
		"items":  imported,
	})
	return imported, nil
}
