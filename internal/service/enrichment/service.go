// Package enrichment implements the post-enrichment pipeline: generate an AI
// caption for a new post's image, persist it when the author left the
// description empty, and fan out new_post notifications to every other
// profile.
//
// The flow is strictly linear. Captioning failures abort before any write;
// everything after the caption is best-effort, matching the product decision
// that a new post must never be blocked by notification plumbing.
package enrichment

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/plantify/plantify-backend/internal/domain"
)

// fallbackUsername labels the actor when their profile is missing.
const fallbackUsername = "Un usuario"

type captionClient interface {
	Describe(ctx context.Context, imageURL string) (string, error)
}

type postRepo interface {
	SetDescriptionIfEmpty(ctx context.Context, postID, description string) (bool, error)
}

type profileRepo interface {
	GetUsername(ctx context.Context, userID string) (string, error)
	ListUserIDsExcept(ctx context.Context, userID string) ([]string, error)
}

type notificationRepo interface {
	BulkInsert(ctx context.Context, notifications []domain.Notification) (int, error)
}

// Service runs the pipeline once per new post. It is stateless; concurrent
// invocations for different posts are independent.
type Service struct {
	captioner     captionClient
	posts         postRepo
	profiles      profileRepo
	notifications notificationRepo
	log           *slog.Logger
}

// NewService creates the enrichment service.
func NewService(
	log *slog.Logger,
	captioner captionClient,
	posts postRepo,
	profiles profileRepo,
	notifications notificationRepo,
) *Service {
	return &Service{
		captioner:     captioner,
		posts:         posts,
		profiles:      profiles,
		notifications: notifications,
		log:           log.With("service", "enrichment"),
	}
}

// ProcessNewPost runs the pipeline for one post. The returned error is
// non-nil only for validation failures and captioning failures; store
// failures past the caption step degrade the Result instead of aborting.
func (s *Service) ProcessNewPost(ctx context.Context, input Input) (*Result, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "processing new post",
		slog.String("post_id", input.PostID),
		slog.String("user_id", input.UserID),
	)

	caption, err := s.captioner.Describe(ctx, input.ImageURL)
	if err != nil {
		return nil, fmt.Errorf("generate caption: %w", err)
	}

	updated, err := s.posts.SetDescriptionIfEmpty(ctx, input.PostID, caption)
	switch {
	case err != nil:
		// The caption is still reported to the caller even when it could
		// not be stored.
		s.log.WarnContext(ctx, "caption persistence failed",
			slog.String("post_id", input.PostID),
			slog.String("error", err.Error()),
		)
	case updated:
		s.log.InfoContext(ctx, "caption stored", slog.String("post_id", input.PostID))
	}

	username := s.actorName(ctx, input.UserID)

	recipients, err := s.profiles.ListUserIDsExcept(ctx, input.UserID)
	if err != nil {
		s.log.ErrorContext(ctx, "recipient enumeration failed",
			slog.String("post_id", input.PostID),
			slog.String("error", err.Error()),
		)
		return &Result{
			Success:              true,
			GeneratedDescription: caption,
		}, nil
	}

	result := &Result{
		Success:                true,
		GeneratedDescription:   caption,
		NotificationsCreated:   len(recipients),
		NotificationsConfirmed: true,
	}

	if len(recipients) == 0 {
		return result, nil
	}

	notifications := make([]domain.Notification, 0, len(recipients))
	for _, recipientID := range recipients {
		notifications = append(notifications, domain.Notification{
			UserID:  recipientID,
			Type:    domain.NotificationTypeNewPost,
			Message: fmt.Sprintf("%s ha publicado una nueva planta", username),
			PostID:  input.PostID,
		})
	}

	if _, err := s.notifications.BulkInsert(ctx, notifications); err != nil {
		// The count stays at the attempted batch size; Confirmed flags the
		// uncertainty for the caller.
		s.log.ErrorContext(ctx, "notification fan-out failed",
			slog.String("post_id", input.PostID),
			slog.Int("attempted", len(notifications)),
			slog.String("error", err.Error()),
		)
		result.NotificationsConfirmed = false
		return result, nil
	}

	s.log.InfoContext(ctx, "new post processed",
		slog.String("post_id", input.PostID),
		slog.Int("notifications", len(notifications)),
	)

	return result, nil
}

// actorName resolves the acting user's display name, falling back to a
// generic label when the profile is missing or the lookup fails.
func (s *Service) actorName(ctx context.Context, userID string) string {
	username, err := s.profiles.GetUsername(ctx, userID)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			s.log.WarnContext(ctx, "actor lookup failed",
				slog.String("user_id", userID),
				slog.String("error", err.Error()),
			)
		}
		return fallbackUsername
	}
	if username == "" {
		return fallbackUsername
	}
	return username
}
