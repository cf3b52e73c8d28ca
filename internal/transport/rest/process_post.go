package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/plantify/plantify-backend/internal/domain"
	"github.com/plantify/plantify-backend/internal/service/enrichment"
)

// enrichmentService defines the minimal interface needed by ProcessPostHandler.
type enrichmentService interface {
	ProcessNewPost(ctx context.Context, input enrichment.Input) (*enrichment.Result, error)
}

// ProcessPostHandler serves the post-enrichment trigger endpoint.
type ProcessPostHandler struct {
	svc enrichmentService
	log *slog.Logger
}

// NewProcessPostHandler creates a ProcessPostHandler.
func NewProcessPostHandler(svc enrichmentService, logger *slog.Logger) *ProcessPostHandler {
	return &ProcessPostHandler{svc: svc, log: logger.With("handler", "process_post")}
}

type processPostRequest struct {
	ImageURL string `json:"imageUrl"`
	PostID   string `json:"postId"`
	UserID   string `json:"userId"`
}

type processPostResponse struct {
	Success                bool   `json:"success"`
	GeneratedDescription   string `json:"generatedDescription"`
	NotificationsCreated   int    `json:"notificationsCreated"`
	NotificationsConfirmed bool   `json:"notificationsConfirmed"`
}

// ProcessNewPost handles POST /functions/v1/process-new-post.
func (h *ProcessPostHandler) ProcessNewPost(w http.ResponseWriter, r *http.Request) {
	var req processPostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.svc.ProcessNewPost(r.Context(), enrichment.Input{
		ImageURL: req.ImageURL,
		PostID:   req.PostID,
		UserID:   req.UserID,
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, processPostResponse{
		Success:                result.Success,
		GeneratedDescription:   result.GeneratedDescription,
		NotificationsCreated:   result.NotificationsCreated,
		NotificationsConfirmed: result.NotificationsConfirmed,
	})
}

func (h *ProcessPostHandler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrRateLimited):
		writeError(w, http.StatusTooManyRequests, "rate limit exceeded, please try again later")
	case errors.Is(err, domain.ErrQuotaExceeded):
		writeError(w, http.StatusPaymentRequired, "payment required")
	default:
		h.log.ErrorContext(r.Context(), "internal error", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
