// Package profile implements the profiles repository using PostgreSQL.
package profile

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"github.com/plantify/plantify-backend/internal/adapter/postgres"
)

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Repo provides profile lookups backed by PostgreSQL.
type Repo struct {
	q postgres.Querier
}

// New creates a new profiles repository.
func New(q postgres.Querier) *Repo {
	return &Repo{q: q}
}

// GetUsername returns the display name for a user.
// Returns domain.ErrNotFound if the user has no profile.
func (r *Repo) GetUsername(ctx context.Context, userID string) (string, error) {
	query, args, err := qb.
		Select("username").
		From("profiles").
		Where(sq.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return "", postgres.MapError(err, "profile", userID)
	}

	var username string
	if err := pgxscan.Get(ctx, r.q, &username, query, args...); err != nil {
		return "", postgres.MapError(err, "profile", userID)
	}

	return username, nil
}

// ListUserIDsExcept returns the user ids of every profile except the given
// one. An empty result is valid (single-user install).
func (r *Repo) ListUserIDsExcept(ctx context.Context, userID string) ([]string, error) {
	query, args, err := qb.
		Select("user_id").
		From("profiles").
		Where(sq.NotEq{"user_id": userID}).
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "profile", userID)
	}

	var userIDs []string
	if err := pgxscan.Select(ctx, r.q, &userIDs, query, args...); err != nil {
		return nil, postgres.MapError(err, "profile", userID)
	}

	return userIDs, nil
}
