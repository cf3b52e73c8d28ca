// Package notification implements the notifications repository using PostgreSQL.
// Records are created in bulk by the enrichment fan-out and read back by the
// client's notification bell; the pipeline never mutates them afterwards.
package notification

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"github.com/plantify/plantify-backend/internal/adapter/postgres"
	"github.com/plantify/plantify-backend/internal/domain"
)

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Repo provides notification persistence backed by PostgreSQL.
type Repo struct {
	q postgres.Querier
}

// New creates a new notifications repository.
func New(q postgres.Querier) *Repo {
	return &Repo{q: q}
}

// BulkInsert submits all records as a single multi-row INSERT. The store
// assigns id and created_at. Returns the number of inserted rows.
// An empty batch is a no-op.
func (r *Repo) BulkInsert(ctx context.Context, notifications []domain.Notification) (int, error) {
	if len(notifications) == 0 {
		return 0, nil
	}

	builder := qb.
		Insert("notifications").
		Columns("user_id", "type", "message", "post_id")
	for _, n := range notifications {
		builder = builder.Values(n.UserID, n.Type, n.Message, n.PostID)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return 0, postgres.MapError(err, "notification", notifications[0].PostID)
	}

	tag, err := r.q.Exec(ctx, query, args...)
	if err != nil {
		return 0, postgres.MapError(err, "notification", notifications[0].PostID)
	}

	return int(tag.RowsAffected()), nil
}

// ListByUser returns a user's notifications, newest first.
func (r *Repo) ListByUser(ctx context.Context, userID string) ([]domain.Notification, error) {
	query, args, err := qb.
		Select("id", "user_id", "type", "message", "post_id", "is_read", "created_at").
		From("notifications").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "notification", userID)
	}

	var notifications []domain.Notification
	if err := pgxscan.Select(ctx, r.q, &notifications, query, args...); err != nil {
		return nil, postgres.MapError(err, "notification", userID)
	}

	return notifications, nil
}
