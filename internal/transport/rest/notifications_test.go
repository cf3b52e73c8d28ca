package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plantify/plantify-backend/internal/domain"
)

type notificationServiceMock struct {
	ListFunc func(ctx context.Context, userID string) ([]domain.Notification, error)
}

func (m *notificationServiceMock) List(ctx context.Context, userID string) ([]domain.Notification, error) {
	return m.ListFunc(ctx, userID)
}

func TestNotificationsList_OK(t *testing.T) {
	t.Parallel()

	created := time.Date(2026, 1, 15, 10, 0, 0, 0, time.UTC)
	svc := &notificationServiceMock{
		ListFunc: func(ctx context.Context, userID string) ([]domain.Notification, error) {
			require.Equal(t, "u2", userID)
			return []domain.Notification{{
				ID:        "n1",
				UserID:    "u2",
				Type:      domain.NotificationTypeNewPost,
				Message:   "maria ha publicado una nueva planta",
				PostID:    "p1",
				IsRead:    false,
				CreatedAt: created,
			}}, nil
		},
	}
	h := NewNotificationHandler(svc, slog.Default())

	req := httptest.NewRequest(http.MethodGet, "/notifications?userId=u2", nil)
	rec := httptest.NewRecorder()

	h.List(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp []notificationResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "n1", resp[0].ID)
	assert.Equal(t, "new_post", resp[0].Type)
	assert.Equal(t, "maria ha publicado una nueva planta", resp[0].Message)
	assert.Equal(t, created, resp[0].CreatedAt)
}

func TestNotificationsList_EmptyFeed(t *testing.T) {
	t.Parallel()

	svc := &notificationServiceMock{
		ListFunc: func(ctx context.Context, userID string) ([]domain.Notification, error) {
			return []domain.Notification{}, nil
		},
	}
	h := NewNotificationHandler(svc, slog.Default())

	req := httptest.NewRequest(http.MethodGet, "/notifications?userId=u9", nil)
	rec := httptest.NewRecorder()

	h.List(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	// An empty feed serializes as [], not null.
	assert.JSONEq(t, "[]", rec.Body.String())
}

func TestNotificationsList_MissingUserID(t *testing.T) {
	t.Parallel()

	svc := &notificationServiceMock{
		ListFunc: func(ctx context.Context, userID string) ([]domain.Notification, error) {
			return nil, domain.NewValidationError("userId", "is required")
		},
	}
	h := NewNotificationHandler(svc, slog.Default())

	req := httptest.NewRequest(http.MethodGet, "/notifications", nil)
	rec := httptest.NewRecorder()

	h.List(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestNotificationsList_StoreFailure(t *testing.T) {
	t.Parallel()

	svc := &notificationServiceMock{
		ListFunc: func(ctx context.Context, userID string) ([]domain.Notification, error) {
			return nil, errors.New("connection reset")
		},
	}
	h := NewNotificationHandler(svc, slog.Default())

	req := httptest.NewRequest(http.MethodGet, "/notifications?userId=u2", nil)
	rec := httptest.NewRecorder()

	h.List(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)

	var resp map[string]string
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "internal server error", resp["error"])
}
