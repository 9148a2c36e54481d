// Package user implements the User repository using PostgreSQL.
package user

import (
	"context"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/heartmarshall/dictlookup/internal/adapter/postgres"
	"github.com/heartmarshall/dictlookup/internal/domain"
)

const table = "users"

var columns = []string{"id", "email", "password_hash", "created_at", "updated_at"}

// Repo provides user persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new user repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// GetByID returns a user by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	query := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id})

	u, err := r.getOne(ctx, query)
	if err != nil {
		return nil, postgres.MapError(err, "user", id.String())
	}
	return u, nil
}

// GetByEmail returns a user by email address. Emails are stored lowercased.
func (r *Repo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"email": email})

	u, err := r.getOne(ctx, query)
	if err != nil {
		return nil, postgres.MapError(err, "user", email)
	}
	return u, nil
}

// Create inserts a new user and returns the persisted domain.User.
// A taken email is reported as domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	query := postgres.Builder().
		Insert(table).
		Columns(columns...).
		Values(u.ID, u.Email, u.PasswordHash, u.CreatedAt, u.UpdatedAt).
		Suffix("RETURNING " + strings.Join(columns, ", "))

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "user", u.ID.String())
	}

	created, err := scanUser(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "user", u.ID.String())
	}
	return created, nil
}

func (r *Repo) getOne(ctx context.Context, query squirrel.SelectBuilder) (*domain.User, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}
	return scanUser(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, sql, args...))
}

func scanUser(row pgx.Row) (*domain.User, error) {
	var u domain.User
	if err := row.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.CreatedAt, &u.UpdatedAt); err != nil {
		return nil, err
	}
	return &u, nil
}
