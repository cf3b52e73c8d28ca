// Package notification exposes read access to a user's notification feed.
package notification

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/plantify/plantify-backend/internal/domain"
)

type notificationRepo interface {
	ListByUser(ctx context.Context, userID string) ([]domain.Notification, error)
}

// Service serves notification queries.
type Service struct {
	notifications notificationRepo
	log           *slog.Logger
}

// NewService creates the notification service.
func NewService(log *slog.Logger, notifications notificationRepo) *Service {
	return &Service{
		notifications: notifications,
		log:           log.With("service", "notification"),
	}
}

// List returns the user's notifications, newest first. A user with no
// notifications gets an empty list, not an error.
func (s *Service) List(ctx context.Context, userID string) ([]domain.Notification, error) {
	if userID == "" {
		return nil, domain.NewValidationError("userId", "is required")
	}

	items, err := s.notifications.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}

	if items == nil {
		items = []domain.Notification{}
	}

	return items, nil
}
