package repositories

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/gosimple/slug"

	"list-authors/models"
)

var ErrAuthorNotFound = errors.New("author not found")

// ListAuthorsOptions are the user query arguments. A nil Include means no
// restriction; an empty non-nil Include matches nobody.
type ListAuthorsOptions struct {
	Number  int
	Order   string
	OrderBy string
	Include []int64
}

type AuthorRepository interface {
	List(ctx context.Context, opt ListAuthorsOptions) ([]models.Author, error)
	FindBySlug(ctx context.Context, slug string) (*models.Author, error)
	// Upsert replaces the author with a.ID. When a.ID is 0 the author is
	// matched by login, and inserted with a new id if none exists.
	Upsert(ctx context.Context, a *models.Author) error
}

type PostRepository interface {
	// CountByAuthor groups the posts v can see by author.
	CountByAuthor(ctx context.Context, v models.Viewer) (map[int64]int, error)
	// ListVisibleByAuthor returns the newest posts of authorID that v can
	// see. limit <= 0 means no limit.
	ListVisibleByAuthor(ctx context.Context, authorID int64, v models.Viewer, limit int) ([]models.Post, error)
	Upsert(ctx context.Context, p *models.Post) error
	// UpsertByAuthorAndLink upserts a post uniquely identified by
	// (author_id, link), or by (author_id, title) when it has no link.
	UpsertByAuthorAndLink(ctx context.Context, p *models.Post) error
}

// Store bundles the repositories of one backend.
type Store struct {
	Authors AuthorRepository
	Posts   PostRepository
	// Ping reports backend health.
	Ping  func(ctx context.Context) error
	Close func(ctx context.Context) error
}

// sortField maps the orderby argument to a logical author field. Unknown
// values fall back to login ordering, the user query's own default.
func sortField(orderBy string) string {
	switch orderBy {
	case "name", "display_name":
		return "display_name"
	case "slug", "nicename":
		return "slug"
	case "email":
		return "email"
	case "id", "ID":
		return "id"
	case "registered_date", "registered":
		return "registered_at"
	default:
		return "login"
	}
}

// descending reports whether order asks for DESC; anything else is ASC.
func descending(order string) bool {
	return strings.EqualFold(strings.TrimSpace(order), "desc")
}

// prepareAuthor fills the slug and login when a fixture leaves them out.
func prepareAuthor(a *models.Author) {
	if a.Slug == "" {
		base := a.Login
		if base == "" {
			base = a.DisplayName
		}
		a.Slug = slug.Make(base)
	}
	if a.Login == "" {
		a.Login = a.Slug
	}
	if a.DisplayName == "" {
		a.DisplayName = a.Login
	}
	if a.RegisteredAt.IsZero() {
		a.RegisteredAt = time.Now()
	}
	a.RegisteredAt = a.RegisteredAt.UTC()
}

func preparePost(p *models.Post) {
	if p.Type == "" {
		p.Type = models.PostTypePost
	}
	if p.Status == "" {
		p.Status = models.PostStatusDraft
	}
}
