package rest

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/plantify/plantify-backend/internal/domain"
)

// notificationService defines the minimal interface needed by NotificationHandler.
type notificationService interface {
	List(ctx context.Context, userID string) ([]domain.Notification, error)
}

// NotificationHandler serves the notification feed endpoint.
type NotificationHandler struct {
	svc notificationService
	log *slog.Logger
}

// NewNotificationHandler creates a NotificationHandler.
func NewNotificationHandler(svc notificationService, logger *slog.Logger) *NotificationHandler {
	return &NotificationHandler{svc: svc, log: logger.With("handler", "notifications")}
}

type notificationResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Type      string    `json:"type"`
	Message   string    `json:"message"`
	PostID    string    `json:"postId"`
	IsRead    bool      `json:"isRead"`
	CreatedAt time.Time `json:"createdAt"`
}

// List handles GET /notifications?userId=...
func (h *NotificationHandler) List(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("userId")

	items, err := h.svc.List(r.Context(), userID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	resp := make([]notificationResponse, 0, len(items))
	for _, n := range items {
		resp = append(resp, notificationResponse{
			ID:        n.ID,
			UserID:    n.UserID,
			Type:      n.Type,
			Message:   n.Message,
			PostID:    n.PostID,
			IsRead:    n.IsRead,
			CreatedAt: n.CreatedAt,
		})
	}

	writeJSON(w, http.StatusOK, resp)
}

func (h *NotificationHandler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "not found")
	default:
		h.log.ErrorContext(r.Context(), "internal error", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}
