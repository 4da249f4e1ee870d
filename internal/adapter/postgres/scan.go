package postgres

import (
	"context"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5"
)

// SelectOne scans the first row of query into a T.
// Returns pgx.ErrNoRows when the query yields nothing.
func SelectOne[T any](ctx context.Context, q Querier, query string, args ...any) (T, error) {
	var rows []T
	if err := pgxscan.Select(ctx, q, &rows, query, args...); err != nil {
		var zero T
		return zero, err
	}
	if len(rows) == 0 {
		var zero T
		return zero, pgx.ErrNoRows
	}
	return rows[0], nil
}

// SelectAll scans every row of query into a slice of T.
func SelectAll[T any](ctx context.Context, q Querier, query string, args ...any) ([]T, error) {
	rows := []T{}
	if err := pgxscan.Select(ctx, q, &rows, query, args...); err != nil {
		return nil, err
	}
	return rows, nil
}
