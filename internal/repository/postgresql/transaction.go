package postgresql

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/cmlabs-hris/hris-admin-go/internal/pkg/database"
	"github.com/cmlabs-hris/hris-admin-go/internal/repository"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type txKey struct{}

// psql builds statements with $n placeholders.
var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// WithTransaction executes fn inside a database transaction
func WithTransaction(ctx context.Context, db *database.DB, fn func(tx pgx.Tx) error) error {
	tx, err := db.BeginTx(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		if p := recover(); p != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil {
				slog.Error("rollback error during panic recovery", "error", rbErr)
			}
			panic(p)
		}
	}()

	// Execute function
	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil {
			return fmt.Errorf("rollback error: %v (original error: %w)", rbErr, err)
		}
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}

	return nil
}

// GetQuerier returns either transaction or pool
// Used in repositories to support both transactional and non-transactional operations
func GetQuerier(ctx context.Context, db *database.DB) database.Querier {
	if tx, ok := ctx.Value(txKey{}).(pgx.Tx); ok {
		return tx
	}
	return db.Pool
}

type transactor struct {
	db *database.DB
}

// NewTransactor returns a repository.Transactor backed by db. Calls nested
// inside a running transaction join it.
func NewTransactor(db *database.DB) repository.Transactor {
	return &transactor{db: db}
}

func (t *transactor) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := ctx.Value(txKey{}).(pgx.Tx); ok {
		return fn(ctx)
	}
	return WithTransaction(ctx, t.db, func(tx pgx.Tx) error {
		return fn(context.WithValue(ctx, txKey{}, tx))
	})
}

var now = func() time.Time { return time.Now().UTC() }

func newID() string {
	return uuid.Must(uuid.NewV7()).String()
}

const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
)

// constraintViolation reports the violated constraint name when err is a
// postgres error with the given SQLSTATE code.
func constraintViolation(err error, code string) (string, bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == code {
		return pgErr.ConstraintName, true
	}
	return "", false
}

type scanner interface {
	Scan(dest ...any) error
}

// queryAll runs query and scans every row with scan.
func queryAll[T any](ctx context.Context, q database.Querier, query string, scan func(scanner) (T, error), args ...any) ([]T, error) {
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []T
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	return out, rows.Err()
}

// updateReturning applies set to the row with id and scans the updated row.
// An empty set only reads the row back.
func updateReturning[T any](ctx context.Context, q database.Querier, table, columns, id string, set map[string]any, scan func(scanner) (T, error)) (T, error) {
	var builder squirrel.Sqlizer
	if len(set) == 0 {
		builder = psql.Select(columns).From(table).Where(squirrel.Eq{"id": id})
	} else {
		builder = psql.Update(table).SetMap(set).Where(squirrel.Eq{"id": id}).Suffix("RETURNING " + columns)
	}
	query, args, err := builder.ToSql()
	if err != nil {
		var zero T
		return zero, fmt.Errorf("error building query: %w", err)
	}
	return scan(q.QueryRow(ctx, query, args...))
}

// deleteByID removes the row with id, returning notFound when none matched.
func deleteByID(ctx context.Context, q database.Querier, table, id string, notFound error) error {
	query, args, err := psql.Delete(table).Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("error building query: %w", err)
	}
	commandTag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return notFound
	}
	return nil
}

// noRows maps pgx.ErrNoRows to notFound and passes other errors through.
func noRows(err error, notFound error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return notFound
	}
	return err
}
