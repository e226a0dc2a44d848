package feeder

import (
	"context"
	"net/http"
	"sort"
	"time"

	"github.com/mmcdole/gofeed"
)

type RssFeedItem struct {
	Title       string
	Link        string
	Summary     string
	PublishedAt time.Time
}

// Fetcher downloads and parses RSS/Atom feeds.
type Fetcher struct {
	parser *gofeed.Parser
}

// NewFetcher uses client for downloads; nil means a client with a 30s
// timeout.
func NewFetcher(client *http.Client) *Fetcher {
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}
	fp := gofeed.NewParser()
	fp.Client = client
	return &Fetcher{parser: fp}
}

// FetchRssFeeds fetches the feed at rssUrl, newest items first.
// If limit is greater than 0, it returns only the first limit items.
func (f *Fetcher) FetchRssFeeds(ctx context.Context, rssUrl string, limit int) ([]RssFeedItem, error) {
	feed, err := f.parser.ParseURLWithContext(rssUrl, ctx)
	if err != nil {
		return nil, err
	}

	items := make([]RssFeedItem, 0, len(feed.Items))
	for _, item := range feed.Items {
		if item.Link == "" {
			continue
		}
		var published time.Time
		if item.PublishedParsed != nil {
			published = *item.PublishedParsed
		} else if item.UpdatedParsed != nil {
			published = *item.UpdatedParsed
		}

		items = append(items, RssFeedItem{
			Title:       item.Title,
			Link:        item.Link,
			Summary:     item.Description,
			PublishedAt: published,
		})
	}
	// 피드마다 정렬 순서가 달라서 발행일 기준으로 다시 정렬한다
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].PublishedAt.After(items[j].PublishedAt)
	})

	if limit > 0 && len(items) > limit {
		items = items[:limit]
	}

	return items, nil
}
