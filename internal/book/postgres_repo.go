package book

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres" // dialect registration
	"github.com/doug-martin/goqu/v9/exp"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	tableBooks = "books"

	colID         = "id"
	colName       = "name"
	colYear       = "year"
	colAuthor     = "author"
	colSummary    = "summary"
	colPublisher  = "publisher"
	colPageCount  = "page_count"
	colReadPage   = "read_page"
	colFinished   = "finished"
	colReading    = "reading"
	colInsertedAt = "inserted_at"
	colUpdatedAt  = "updated_at"
)

var dialect = goqu.Dialect("postgres")

type PostgresRepo struct {
	db      *pgxpool.Pool
	timeout time.Duration
}

func NewPostgresRepo(db *pgxpool.Pool, timeout time.Duration) *PostgresRepo {
	return &PostgresRepo{db: db, timeout: timeout}
}

func (r *PostgresRepo) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, r.timeout)
}

// listQuery builds the List statement. Present hints are OR-ed together.
func listQuery(f Filter) (string, []any, error) {
	ds := dialect.From(tableBooks).
		Prepared(true).
		Select(colID, colName, colPublisher).
		Order(goqu.I(colInsertedAt).Asc(), goqu.I(colID).Asc())

	if !f.MatchAll() {
		var hints []exp.Expression
		if f.Name != nil {
			hints = append(hints, goqu.C(colName).Like("%"+escapeLike(*f.Name)+"%"))
		}
		if f.Reading != nil {
			hints = append(hints, goqu.C(colReading).Eq(*f.Reading))
		}
		if f.Finished != nil {
			hints = append(hints, goqu.C(colFinished).Eq(*f.Finished))
		}
		ds = ds.Where(goqu.Or(hints...))
	}

	return ds.ToSQL()
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

func (r *PostgresRepo) List(ctx context.Context, f Filter) ([]Summary, error) {
	query, args, err := listQuery(f)
	if err != nil {
		return nil, fmt.Errorf("build list query: %w", err)
	}

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	rows, err := r.db.Query(timeoutCtx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Summary{}
	for rows.Next() {
		var s Summary
		if err := rows.Scan(&s.ID, &s.Name, &s.Publisher); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *PostgresRepo) Get(ctx context.Context, id string) (Book, error) {
	if _, err := uuid.Parse(id); err != nil {
		return Book{}, ErrNotFound
	}

	const query = `
		SELECT id, name, year, author, summary, publisher,
		       page_count, read_page, finished, reading, inserted_at, updated_at
		FROM books
		WHERE id = $1
	`
	var b Book
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	err := r.db.QueryRow(timeoutCtx, query, id).Scan(
		&b.ID, &b.Name, &b.Year, &b.Author, &b.Summary, &b.Publisher,
		&b.PageCount, &b.ReadPage, &b.Finished, &b.Reading, &b.InsertedAt, &b.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Book{}, ErrNotFound
		}
		return Book{}, err
	}
	return b, nil
}

func record(b Book) goqu.Record {
	var year any
	if b.Year != nil {
		year = *b.Year
	}
	return goqu.Record{
		colName:      b.Name,
		colYear:      year,
		colAuthor:    b.Author,
		colSummary:   b.Summary,
		colPublisher: b.Publisher,
		colPageCount: b.PageCount,
		colReadPage:  b.ReadPage,
		colFinished:  b.Finished,
		colReading:   b.Reading,
		colUpdatedAt: goqu.L("NOW()"),
	}
}

func (r *PostgresRepo) Create(ctx context.Context, b Book) (string, error) {
	id := uuid.NewString()
	rec := record(b)
	rec[colID] = id
	rec[colInsertedAt] = goqu.L("NOW()")

	query, args, err := dialect.Insert(tableBooks).Prepared(true).Rows(rec).ToSQL()
	if err != nil {
		return "", fmt.Errorf("build insert: %w", err)
	}

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	if _, err := r.db.Exec(timeoutCtx, query, args...); err != nil {
		return "", err
	}
	return id, nil
}

func (r *PostgresRepo) Update(ctx context.Context, id string, b Book) error {
	if _, err := uuid.Parse(id); err != nil {
		return ErrNotFound
	}

	query, args, err := dialect.Update(tableBooks).
		Prepared(true).
		Set(record(b)).
		Where(goqu.C(colID).Eq(id)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build update: %w", err)
	}

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	tag, err := r.db.Exec(timeoutCtx, query, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresRepo) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return ErrNotFound
	}

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	tag, err := r.db.Exec(timeoutCtx, `DELETE FROM books WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
