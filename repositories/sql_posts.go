package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"list-authors/models"
)

var postColumns = []string{"id", "author_id", "post_type", "status", "title", "link", "summary", "published_at"}

// SQLPostRepository implements PostRepository on database/sql.
type SQLPostRepository struct {
	db     *sql.DB
	driver string
	sb     sq.StatementBuilderType
}

func NewSQLPostRepository(conn *sql.DB, driver string) *SQLPostRepository {
	return &SQLPostRepository{db: conn, driver: driver, sb: statementBuilder(driver)}
}

// visibleTo is the SQL form of models.Viewer.CanSee.
func visibleTo(v models.Viewer) sq.Sqlizer {
	status := sq.Or{sq.Eq{"status": models.PostStatusPublish}}
	switch {
	case v.CanReadPrivate:
		status = append(status, sq.Eq{"status": models.PostStatusPrivate})
	case v.ID > 0:
		status = append(status, sq.And{
			sq.Eq{"status": models.PostStatusPrivate},
			sq.Eq{"author_id": v.ID},
		})
	}
	return sq.And{sq.Eq{"post_type": models.PostTypePost}, status}
}

// CountByAuthor runs one grouped aggregate over the visible posts.
func (r *SQLPostRepository) CountByAuthor(ctx context.Context, v models.Viewer) (map[int64]int, error) {
	query, args, err := r.sb.Select("author_id", "COUNT(id)").
		From("posts").
		Where(visibleTo(v)).
		GroupBy("author_id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("sql: build count query: %w", err)
	}
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("sql: count posts by author: %w", err)
	}
	defer rows.Close()

	counts := map[int64]int{}
	for rows.Next() {
		var (
			authorID int64
			n        int
		)
		if err := rows.Scan(&authorID, &n); err != nil {
			return nil, fmt.Errorf("sql: scan post count: %w", err)
		}
		counts[authorID] = n
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sql: iter post counts: %w", err)
	}
	return counts, nil
}

func (r *SQLPostRepository) ListVisibleByAuthor(ctx context.Context, authorID int64, v models.Viewer, limit int) ([]models.Post, error) {
	qb := r.sb.Select(postColumns...).
		From("posts").
		Where(sq.Eq{"author_id": authorID}).
		Where(visibleTo(v)).
		OrderBy("published_at DESC", "id DESC")
	if limit > 0 {
		qb = qb.Limit(uint64(limit))
	}
	query, args, err := qb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("sql: build post list: %w", err)
	}
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("sql: list posts: %w", err)
	}
	defer rows.Close()

	var out []models.Post
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sql: iter posts: %w", err)
	}
	return out, nil
}

func (r *SQLPostRepository) Upsert(ctx context.Context, p *models.Post) error {
	preparePost(p)

	explicit := p.ID != 0
	ib := r.sb.Insert("posts")
	if explicit {
		ib = ib.Columns(postColumns...).
			Values(p.ID, p.AuthorID, p.Type, p.Status, p.Title, p.Link, p.Summary, nullTime(p)).
			Suffix(`ON CONFLICT (id) DO UPDATE SET author_id = excluded.author_id, post_type = excluded.post_type, ` +
				`status = excluded.status, title = excluded.title, link = excluded.link, summary = excluded.summary, ` +
				`published_at = excluded.published_at RETURNING id`)
	} else {
		ib = ib.Columns(postColumns[1:]...).
			Values(p.AuthorID, p.Type, p.Status, p.Title, p.Link, p.Summary, nullTime(p)).
			Suffix("RETURNING id")
	}
	query, args, err := ib.ToSql()
	if err != nil {
		return fmt.Errorf("sql: build post upsert: %w", err)
	}
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&p.ID); err != nil {
		return fmt.Errorf("sql: upsert post: %w", err)
	}
	if explicit {
		return syncSerial(ctx, r.db, r.driver, "posts")
	}
	return nil
}

func (r *SQLPostRepository) UpsertByAuthorAndLink(ctx context.Context, p *models.Post) error {
	key := sq.Eq{"author_id": p.AuthorID, "link": p.Link}
	if p.Link == "" {
		key["title"] = p.Title
	}
	query, args, err := r.sb.Select("id").
		From("posts").
		Where(key).
		OrderBy("id").
		Limit(1).
		ToSql()
	if err != nil {
		return fmt.Errorf("sql: build post lookup: %w", err)
	}
	var id int64
	switch err := r.db.QueryRowContext(ctx, query, args...).Scan(&id); {
	case errors.Is(err, sql.ErrNoRows):
		p.ID = 0
	case err != nil:
		return fmt.Errorf("sql: find post by link: %w", err)
	default:
		p.ID = id
	}
	return r.Upsert(ctx, p)
}

func nullTime(p *models.Post) sql.NullTime {
	if p.PublishedAt.IsZero() {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: p.PublishedAt.UTC(), Valid: true}
}

func scanPost(s rowScanner) (models.Post, error) {
	var (
		p         models.Post
		published sql.NullTime
	)
	if err := s.Scan(&p.ID, &p.AuthorID, &p.Type, &p.Status, &p.Title, &p.Link, &p.Summary, &published); err != nil {
		return p, fmt.Errorf("sql: scan post: %w", err)
	}
	if published.Valid {
		p.PublishedAt = published.Time
	}
	return p, nil
}
