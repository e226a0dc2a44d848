package authorlist

// Sort fields accepted by the author query. Anything else is handed to the
// author collaborator untouched.
const (
	OrderByName           = "name"
	OrderBySlug           = "slug"
	OrderByEmail          = "email"
	OrderByID             = "id"
	OrderByRegisteredDate = "registered_date"
)

const (
	OrderAsc  = "asc"
	OrderDesc = "desc"
)

const (
	DefaultNumber = 10
	MinNumber     = 1
	MaxNumber     = 100
)

// Attributes is the raw block attribute object as stored with the block.
// Nil fields fall back to their defaults; unknown keys are ignored by the
// JSON decoder.
type Attributes struct {
	Number        *int    `json:"number,omitempty" yaml:"number,omitempty"`
	Order         *string `json:"order,omitempty" yaml:"order,omitempty"`
	OrderBy       *string `json:"orderby,omitempty" yaml:"orderby,omitempty"`
	HideEmpty     *bool   `json:"hideEmpty,omitempty" yaml:"hideEmpty,omitempty"`
	ShowFeed      *bool   `json:"showFeed,omitempty" yaml:"showFeed,omitempty"`
	ShowPostCount *bool   `json:"showPostCount,omitempty" yaml:"showPostCount,omitempty"`
}

// ListConfiguration is the normalized option set both render environments
// work from.
type ListConfiguration struct {
	Count                   int    `json:"number"`
	SortField               string `json:"orderby"`
	SortDirection           string `json:"order"`
	HideAuthorsWithoutPosts bool   `json:"hideEmpty"`
	ShowFeedLink            bool   `json:"showFeed"`
	ShowPostCount           bool   `json:"showPostCount"`
}

func DefaultConfiguration() ListConfiguration {
	return ListConfiguration{
		Count:         DefaultNumber,
		SortField:     OrderByName,
		SortDirection: OrderAsc,
		ShowPostCount: true,
	}
}

// Configuration merges a over the defaults and normalizes the result.
func (a Attributes) Configuration() ListConfiguration {
	c := DefaultConfiguration()
	if a.Number != nil {
		c.Count = *a.Number
	}
	if a.Order != nil {
		c.SortDirection = *a.Order
	}
	if a.OrderBy != nil {
		c.SortField = *a.OrderBy
	}
	if a.HideEmpty != nil {
		c.HideAuthorsWithoutPosts = *a.HideEmpty
	}
	if a.ShowFeed != nil {
		c.ShowFeedLink = *a.ShowFeed
	}
	if a.ShowPostCount != nil {
		c.ShowPostCount = *a.ShowPostCount
	}
	return c.Normalize()
}

// Normalize clamps Count into [MinNumber, MaxNumber]. Sort values are left
// as given.
func (c ListConfiguration) Normalize() ListConfiguration {
	c.Count = ClampNumber(c.Count)
	return c
}

func ClampNumber(n int) int {
	if n < MinNumber {
		return MinNumber
	}
	if n > MaxNumber {
		return MaxNumber
	}
	return n
}

// queryKey is the subset of options the author query depends on.
type queryKey struct {
	count     int
	sortField string
	direction string
	hideEmpty bool
}

func (c ListConfiguration) queryKey() queryKey {
	return queryKey{c.Count, c.SortField, c.SortDirection, c.HideAuthorsWithoutPosts}
}

// SameQuery reports whether c and other resolve to the same author query.
// Display toggles (feed link, post count) do not take part.
func (c ListConfiguration) SameQuery(other ListConfiguration) bool {
	return c.Normalize().queryKey() == other.Normalize().queryKey()
}
