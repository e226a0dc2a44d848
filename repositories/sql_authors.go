package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"list-authors/db"
	"list-authors/models"
)

var authorColumns = []string{"id", "login", "slug", "display_name", "email", "registered_at"}

// statementBuilder picks the placeholder style of the SQL driver.
func statementBuilder(driver string) sq.StatementBuilderType {
	if driver == db.DriverPostgres {
		return sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	}
	return sq.StatementBuilder.PlaceholderFormat(sq.Question)
}

// serialSyncSQL moves the BIGSERIAL sequence of table past its largest id.
func serialSyncSQL(table string) string {
	return fmt.Sprintf("SELECT setval(pg_get_serial_sequence('%[1]s', 'id'), GREATEST((SELECT MAX(id) FROM %[1]s), 1))", table)
}

// syncSerial keeps Postgres sequences ahead of explicitly written ids.
// SQLite picks max(id)+1 on its own.
func syncSerial(ctx context.Context, conn *sql.DB, driver, table string) error {
	if driver != db.DriverPostgres {
		return nil
	}
	if _, err := conn.ExecContext(ctx, serialSyncSQL(table)); err != nil {
		return fmt.Errorf("sql: sync %s id sequence: %w", table, err)
	}
	return nil
}

// SQLAuthorRepository implements AuthorRepository on database/sql.
type SQLAuthorRepository struct {
	db     *sql.DB
	driver string
	sb     sq.StatementBuilderType
}

func NewSQLAuthorRepository(conn *sql.DB, driver string) *SQLAuthorRepository {
	return &SQLAuthorRepository{db: conn, driver: driver, sb: statementBuilder(driver)}
}

// List returns authors sorted by the requested field, ties broken by id.
func (r *SQLAuthorRepository) List(ctx context.Context, opt ListAuthorsOptions) ([]models.Author, error) {
	dir := "ASC"
	if descending(opt.Order) {
		dir = "DESC"
	}
	qb := r.sb.Select(authorColumns...).From("authors")
	if opt.Include != nil {
		// squirrel renders an empty IN list as (1=0)
		qb = qb.Where(sq.Eq{"id": opt.Include})
	}
	col := sortField(opt.OrderBy)
	if col == "id" {
		qb = qb.OrderBy("id " + dir)
	} else {
		qb = qb.OrderBy(col+" "+dir, "id ASC")
	}
	if opt.Number > 0 {
		qb = qb.Limit(uint64(opt.Number))
	}

	query, args, err := qb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("sql: build author query: %w", err)
	}
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("sql: list authors: %w", err)
	}
	defer rows.Close()

	var out []models.Author
	for rows.Next() {
		a, err := scanAuthor(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sql: iter authors: %w", err)
	}
	return out, nil
}

func (r *SQLAuthorRepository) FindBySlug(ctx context.Context, slug string) (*models.Author, error) {
	query, args, err := r.sb.Select(authorColumns...).From("authors").Where(sq.Eq{"slug": slug}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("sql: build author lookup: %w", err)
	}
	a, err := scanAuthor(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrAuthorNotFound
		}
		return nil, err
	}
	return &a, nil
}

func (r *SQLAuthorRepository) Upsert(ctx context.Context, a *models.Author) error {
	prepareAuthor(a)

	explicit := a.ID != 0
	ib := r.sb.Insert("authors")
	if explicit {
		ib = ib.Columns(authorColumns...).
			Values(a.ID, a.Login, a.Slug, a.DisplayName, a.Email, a.RegisteredAt).
			Suffix(`ON CONFLICT (id) DO UPDATE SET login = excluded.login, slug = excluded.slug, ` +
				`display_name = excluded.display_name, email = excluded.email, registered_at = excluded.registered_at RETURNING id`)
	} else {
		// 새 작성자는 login 으로 식별한다
		ib = ib.Columns(authorColumns[1:]...).
			Values(a.Login, a.Slug, a.DisplayName, a.Email, a.RegisteredAt).
			Suffix(`ON CONFLICT (login) DO UPDATE SET slug = excluded.slug, display_name = excluded.display_name, ` +
				`email = excluded.email, registered_at = excluded.registered_at RETURNING id`)
	}
	query, args, err := ib.ToSql()
	if err != nil {
		return fmt.Errorf("sql: build author upsert: %w", err)
	}
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&a.ID); err != nil {
		return fmt.Errorf("sql: upsert author %s: %w", a.Login, err)
	}
	if explicit {
		return syncSerial(ctx, r.db, r.driver, "authors")
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAuthor(s rowScanner) (models.Author, error) {
	var a models.Author
	if err := s.Scan(&a.ID, &a.Login, &a.Slug, &a.DisplayName, &a.Email, &a.RegisteredAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return a, err
		}
		return a, fmt.Errorf("sql: scan author: %w", err)
	}
	return a, nil
}
