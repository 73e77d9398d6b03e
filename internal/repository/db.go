package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	errorvalues "github.com/limbo/taskflow/internal/error_values"
	"github.com/limbo/taskflow/pkg/cleanup"
)

const (
	pgUniqueViolation = "23505"
	pgFKViolation     = "23503"
)

// Connect opens a pool shared by every repository and registers its closing
// as a cleanup job.
func Connect(ctx context.Context, cfg DBConfig) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, cfg.ConnString())
	if err != nil {
		return nil, fmt.Errorf("creating pgxpool: %w", err)
	}
	if err = pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging pgxpool: %w", err)
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return pool, nil
}

// querier is satisfied by both a connection and a transaction.
type querier interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func withTx(ctx context.Context, conn PgConnection, fn func(tx pgx.Tx) error) error {
	tx, err := conn.Begin(ctx)
	if err != nil {
		return errorvalues.Storage("beginning transaction", err)
	}
	if err = fn(tx); err != nil {
		_ = tx.Rollback(ctx)
		return err
	}
	if err = tx.Commit(ctx); err != nil {
		return errorvalues.Storage("committing transaction", err)
	}
	return nil
}

func pgErrorCode(err error) (code, constraint string) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code, pgErr.ConstraintName
	}
	return "", ""
}

// updateBuilder assembles "UPDATE ... SET a = $1, b = $2 WHERE id = $3" for
// partial updates. Columns appear in the order they were set.
type updateBuilder struct {
	table string
	sets  []string
	args  []any
}

func newUpdate(table string) *updateBuilder {
	return &updateBuilder{table: table}
}

func (b *updateBuilder) set(column string, value any) {
	b.args = append(b.args, value)
	b.sets = append(b.sets, fmt.Sprintf("%s = $%d", column, len(b.args)))
}

// setText stores NULL for an empty string.
func (b *updateBuilder) setText(column string, value *string) {
	if value == nil {
		return
	}
	if *value == "" {
		b.set(column, nil)
		return
	}
	b.set(column, *value)
}

// setRef stores NULL for a zero id.
func (b *updateBuilder) setRef(column string, value *int64) {
	if value == nil {
		return
	}
	if *value == 0 {
		b.set(column, nil)
		return
	}
	b.set(column, *value)
}

func (b *updateBuilder) setExpr(column, expr string) {
	b.sets = append(b.sets, column+" = "+expr)
}

func (b *updateBuilder) empty() bool {
	return len(b.sets) == 0
}

func (b *updateBuilder) build(id int64, returning string) (string, []any) {
	args := append(b.args, id)
	query := fmt.Sprintf("UPDATE %s SET %s WHERE id = $%d RETURNING %s;",
		b.table, strings.Join(b.sets, ", "), len(args), returning)
	return query, args
}
