// Package post implements the posts repository using PostgreSQL.
package post

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"github.com/plantify/plantify-backend/internal/adapter/postgres"
	"github.com/plantify/plantify-backend/internal/domain"
)

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Repo provides post persistence backed by PostgreSQL.
type Repo struct {
	q postgres.Querier
}

// New creates a new posts repository.
func New(q postgres.Querier) *Repo {
	return &Repo{q: q}
}

// GetByID returns a post by primary key.
// Returns domain.ErrNotFound if the post does not exist.
func (r *Repo) GetByID(ctx context.Context, postID string) (*domain.Post, error) {
	query, args, err := qb.
		Select("id", "user_id", "image_url", "description", "created_at").
		From("posts").
		Where(sq.Eq{"id": postID}).
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "post", postID)
	}

	var post domain.Post
	if err := pgxscan.Get(ctx, r.q, &post, query, args...); err != nil {
		return nil, postgres.MapError(err, "post", postID)
	}

	return &post, nil
}

// SetDescriptionIfEmpty writes description into the post if and only if the
// stored description is NULL or empty. The condition lives in the UPDATE
// itself, so concurrent invocations for the same post cannot both win.
// Returns true if the row was updated, false if the post already had a
// description (or does not exist).
func (r *Repo) SetDescriptionIfEmpty(ctx context.Context, postID, description string) (bool, error) {
	query, args, err := qb.
		Update("posts").
		Set("description", description).
		Where(sq.Eq{"id": postID}).
		Where(sq.Expr("(description IS NULL OR description = '')")).
		ToSql()
	if err != nil {
		return false, postgres.MapError(err, "post", postID)
	}

	tag, err := r.q.Exec(ctx, query, args...)
	if err != nil {
		return false, postgres.MapError(err, "post", postID)
	}

	return tag.RowsAffected() > 0, nil
}
