// Package captioner talks to a chat-completions-style vision gateway to
// produce short social captions for plant images.
package captioner

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/plantify/plantify-backend/internal/config"
	"github.com/plantify/plantify-backend/internal/domain"
)

// Captions are generated in Spanish for the Plantify feed; the prompt pins
// the model to caption-only output so the text can be stored verbatim.
const (
	systemPrompt = "Eres un experto en plantas y jardinería. Genera una descripción breve y atractiva " +
		"(máximo 2 oraciones) para una publicación de redes sociales sobre la planta en la imagen. " +
		"Responde solo con la descripción, sin comillas ni explicaciones adicionales. Usa español."
	userPrompt = "Describe esta planta para una publicación en redes sociales:"
)

// Client requests image captions from the configured gateway.
type Client struct {
	baseURL    string
	apiKey     string
	model      string
	httpClient *http.Client
	log        *slog.Logger
}

// New creates a Client from CaptionConfig.
func New(cfg config.CaptionConfig, logger *slog.Logger) *Client {
	return &Client{
		baseURL:    cfg.BaseURL,
		apiKey:     cfg.APIKey,
		model:      cfg.Model,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		log:        logger.With("adapter", "captioner"),
	}
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content any    `json:"content"`
}

type contentPart struct {
	Type     string    `json:"type"`
	Text     string    `json:"text,omitempty"`
	ImageURL *imageRef `json:"image_url,omitempty"`
}

type imageRef struct {
	URL string `json:"url"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Describe sends one captioning request for the image and returns the first
// choice's message content verbatim. A response without choices or content
// yields an empty caption, not an error — downstream logic tolerates it.
//
// Status mapping: 429 → domain.ErrRateLimited, 402 → domain.ErrQuotaExceeded,
// any other non-2xx or transport failure → domain.ErrUpstream.
func (c *Client) Describe(ctx context.Context, imageURL string) (string, error) {
	payload, err := json.Marshal(chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: []contentPart{
				{Type: "text", Text: userPrompt},
				{Type: "image_url", ImageURL: &imageRef{URL: imageURL}},
			}},
		},
	})
	if err != nil {
		return "", fmt.Errorf("captioner: marshal request: %w", err)
	}

	resp, err := c.doWithRetry(ctx, payload)
	if err != nil {
		c.log.ErrorContext(ctx, "caption request failed", slog.String("error", err.Error()))
		return "", fmt.Errorf("captioner: request failed: %v: %w", err, domain.ErrUpstream)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		return "", fmt.Errorf("captioner: %w", domain.ErrRateLimited)
	case resp.StatusCode == http.StatusPaymentRequired:
		return "", fmt.Errorf("captioner: %w", domain.ErrQuotaExceeded)
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		c.log.ErrorContext(ctx, "caption gateway error",
			slog.Int("status", resp.StatusCode),
			slog.String("body", string(snippet)),
		)
		return "", fmt.Errorf("captioner: status %d: %w", resp.StatusCode, domain.ErrUpstream)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("captioner: read body: %v: %w", err, domain.ErrUpstream)
	}

	var parsed chatResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", fmt.Errorf("captioner: decode json: %v: %w", err, domain.ErrUpstream)
	}

	if len(parsed.Choices) == 0 {
		return "", nil
	}

	caption := parsed.Choices[0].Message.Content

	c.log.DebugContext(ctx, "caption generated", slog.Int("length", len(caption)))

	return caption, nil
}

// doWithRetry executes the request with a single retry on 5xx or network
// errors. Rate-limit and quota responses are never retried: the caller owns
// that decision.
func (c *Client) doWithRetry(ctx context.Context, payload []byte) (*http.Response, error) {
	resp, err := c.do(ctx, payload)

	shouldRetry := err != nil || (resp != nil && resp.StatusCode >= 500)
	if !shouldRetry {
		return resp, err
	}

	// Don't retry if context is already cancelled.
	if ctx.Err() != nil {
		return resp, err
	}

	reason := "network error"
	if err == nil && resp != nil {
		reason = fmt.Sprintf("status %d", resp.StatusCode)
	}
	c.log.WarnContext(ctx, "caption retry", slog.String("reason", reason))

	// Close body from the failed attempt before retrying.
	if resp != nil && resp.Body != nil {
		resp.Body.Close()
	}

	time.Sleep(500 * time.Millisecond)

	return c.do(ctx, payload)
}

func (c *Client) do(ctx context.Context, payload []byte) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	return c.httpClient.Do(req)
}
