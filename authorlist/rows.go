package authorlist

import (
	"context"
	"fmt"
)

// AuthorRecord is one author as returned by the author collaborator.
type AuthorRecord struct {
	ID          int64  `json:"id"`
	DisplayName string `json:"name"`
	Slug        string `json:"slug,omitempty"`
	ProfileURL  string `json:"link"`
	FeedURL     string `json:"feed_link"`
}

// AuthorQuery mirrors the user query arguments. A nil Include means no
// restriction; a non-nil Include restricts results to exactly those ids.
type AuthorQuery struct {
	Number  int
	Order   string
	OrderBy string
	Include []int64
}

// AuthorQuerier returns authors in the order the query asks for. Unknown
// Order/OrderBy values are the implementation's to reject or ignore.
type AuthorQuerier interface {
	QueryAuthors(ctx context.Context, q AuthorQuery) ([]AuthorRecord, error)
}

// DisplayRow is what both render environments consume.
type DisplayRow struct {
	AuthorID    int64  `json:"id"`
	DisplayName string `json:"name"`
	ProfileURL  string `json:"link"`
	FeedURL     string `json:"feed_link,omitempty"`
	PostCount   *int   `json:"count,omitempty"`
}

// ResolveDisplayRows runs the author query for cfg and merges post counts
// into the result. Counts are fetched at most once and only when hiding
// empty authors or showing counts. An empty result is returned as nil.
func ResolveDisplayRows(ctx context.Context, cfg ListConfiguration, authors AuthorQuerier, counts CountSource) ([]DisplayRow, error) {
	cfg = cfg.Normalize()

	var (
		countMap AuthorCountMap
		fetched  bool
	)
	loadCounts := func() error {
		if fetched {
			return nil
		}
		m, err := counts.Counts(ctx)
		if err != nil {
			return fmt.Errorf("load post counts: %w", err)
		}
		countMap, fetched = m, true
		return nil
	}

	q := AuthorQuery{
		Number:  cfg.Count,
		Order:   cfg.SortDirection,
		OrderBy: cfg.SortField,
	}
	if cfg.HideAuthorsWithoutPosts {
		if err := loadCounts(); err != nil {
			return nil, err
		}
		q.Include = countMap.IDs()
		// An empty include list would read as "everyone" downstream.
		if len(q.Include) == 0 {
			return nil, nil
		}
	}

	records, err := authors.QueryAuthors(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("query authors: %w", err)
	}
	if len(records) == 0 {
		return nil, nil
	}

	if cfg.ShowPostCount {
		if err := loadCounts(); err != nil {
			return nil, err
		}
	}

	rows := make([]DisplayRow, 0, len(records))
	for _, a := range records {
		if cfg.HideAuthorsWithoutPosts && countMap.Get(a.ID) == 0 {
			continue
		}
		row := DisplayRow{
			AuthorID:    a.ID,
			DisplayName: a.DisplayName,
			ProfileURL:  a.ProfileURL,
		}
		if cfg.ShowFeedLink {
			row.FeedURL = a.FeedURL
		}
		if cfg.ShowPostCount {
			n := countMap.Get(a.ID)
			row.PostCount = &n
		}
		rows = append(rows, row)
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return rows, nil
}
