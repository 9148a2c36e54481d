// Package history implements the per-user search history repository using
// PostgreSQL.
package history

import (
	"context"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/heartmarshall/dictlookup/internal/adapter/postgres"
	"github.com/heartmarshall/dictlookup/internal/domain"
)

const table = "search_history"

var columns = []string{"id", "user_id", "query", "direction", "searched_at"}

// Repo provides search history persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new history repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Upsert records a search. An existing row for the same user and query is
// moved to the front: its direction and timestamp are replaced and its id is
// kept.
func (r *Repo) Upsert(ctx context.Context, item *domain.HistoryItem) (*domain.HistoryItem, error) {
	query := postgres.Builder().
		Insert(table).
		Columns(columns...).
		Values(item.ID, item.UserID, item.Query, string(item.Direction), item.SearchedAt).
		Suffix("ON CONFLICT (user_id, query) DO UPDATE SET direction = EXCLUDED.direction, searched_at = EXCLUDED.searched_at").
		Suffix("RETURNING " + strings.Join(columns, ", "))

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "search_history", item.UserID.String())
	}

	saved, err := scanItem(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "search_history", item.UserID.String())
	}
	return saved, nil
}

// TrimToNewest deletes all but the keep most recent items of a user and
// returns the number of deleted rows.
func (r *Repo) TrimToNewest(ctx context.Context, userID uuid.UUID, keep int) (int64, error) {
	query := postgres.Builder().
		Delete(table).
		Where(squirrel.Eq{"user_id": userID}).
		Where(squirrel.Expr(
			"id NOT IN (SELECT id FROM "+table+" WHERE user_id = ? ORDER BY searched_at DESC, id DESC LIMIT ?)",
			userID, keep,
		))

	sql, args, err := query.ToSql()
	if err != nil {
		return 0, postgres.MapError(err, "search_history", userID.String())
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...)
	if err != nil {
		return 0, postgres.MapError(err, "search_history", userID.String())
	}
	return tag.RowsAffected(), nil
}

// ListByUser returns up to limit items of a user, newest first.
func (r *Repo) ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]domain.HistoryItem, error) {
	query := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("searched_at DESC", "id DESC").
		Limit(uint64(limit))

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "search_history", userID.String())
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, sql, args...)
	if err != nil {
		return nil, postgres.MapError(err, "search_history", userID.String())
	}
	defer rows.Close()

	items := make([]domain.HistoryItem, 0)
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, postgres.MapError(err, "search_history", userID.String())
		}
		items = append(items, *item)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "search_history", userID.String())
	}
	return items, nil
}

// DeleteByUser removes every item of a user and returns the number of
// deleted rows.
func (r *Repo) DeleteByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	sql, args, err := postgres.Builder().
		Delete(table).
		Where(squirrel.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return 0, postgres.MapError(err, "search_history", userID.String())
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...)
	if err != nil {
		return 0, postgres.MapError(err, "search_history", userID.String())
	}
	return tag.RowsAffected(), nil
}

func scanItem(row pgx.Row) (*domain.HistoryItem, error) {
	var (
		item      domain.HistoryItem
		direction string
	)
	if err := row.Scan(&item.ID, &item.UserID, &item.Query, &direction, &item.SearchedAt); err != nil {
		return nil, err
	}
	item.Direction = domain.Direction(direction)
	return &item, nil
}
