package authorlist

import (
	"context"
	"sort"
	"strconv"
)

// AuthorCountMap maps an author id to the number of posts the current
// viewer can see. Authors without visible posts are absent.
type AuthorCountMap map[int64]int

// IDs returns the authors present in the map in ascending order.
func (m AuthorCountMap) IDs() []int64 {
	ids := make([]int64, 0, len(m))
	for id, n := range m {
		if n > 0 {
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Get returns the count for id, 0 when the author has no visible posts.
func (m AuthorCountMap) Get(id int64) int {
	if n, ok := m[id]; ok && n > 0 {
		return n
	}
	return 0
}

// StringKeys converts the map to the string-keyed shape JSON clients see.
func (m AuthorCountMap) StringKeys() map[string]int {
	out := make(map[string]int, len(m))
	for id, n := range m {
		if n > 0 {
			out[strconv.FormatInt(id, 10)] = n
		}
	}
	return out
}

// ParseCountMap is the inverse of StringKeys. Non-numeric keys and
// non-positive counts are dropped.
func ParseCountMap(in map[string]int) AuthorCountMap {
	out := make(AuthorCountMap, len(in))
	for k, n := range in {
		id, err := strconv.ParseInt(k, 10, 64)
		if err != nil || n <= 0 {
			continue
		}
		out[id] = n
	}
	return out
}

// PostCounter runs the grouped, visibility-filtered count query against
// the post store. The viewer is bound by the implementation.
type PostCounter interface {
	CountPostsByAuthor(ctx context.Context) (AuthorCountMap, error)
}

// CountSource hands out the count map for one render.
type CountSource interface {
	Counts(ctx context.Context) (AuthorCountMap, error)
}

// PostCountAggregator memoizes one PostCounter result for the lifetime of
// the aggregator. Create one per render; it is not safe for concurrent
// use and is never invalidated.
type PostCountAggregator struct {
	counter PostCounter
	counts  AuthorCountMap
	fetched bool
}

func NewPostCountAggregator(counter PostCounter) *PostCountAggregator {
	return &PostCountAggregator{counter: counter}
}

// Counts runs the aggregate query on first use and returns the cached map
// afterwards. Failed queries are not cached.
func (a *PostCountAggregator) Counts(ctx context.Context) (AuthorCountMap, error) {
	if a.fetched {
		return a.counts, nil
	}
	raw, err := a.counter.CountPostsByAuthor(ctx)
	if err != nil {
		return nil, err
	}
	counts := make(AuthorCountMap, len(raw))
	for id, n := range raw {
		if n > 0 {
			counts[id] = n
		}
	}
	a.counts = counts
	a.fetched = true
	return a.counts, nil
}

// StaticCounts is a count map supplied up front, as the editor receives it
// with its bootstrap payload.
type StaticCounts AuthorCountMap

func (s StaticCounts) Counts(context.Context) (AuthorCountMap, error) {
	return AuthorCountMap(s), nil
}
