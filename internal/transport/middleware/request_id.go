package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/plantify/plantify-backend/pkg/ctxutil"
)

// RequestID propagates the incoming X-Request-Id header, generating a new
// UUID when the caller did not send one. The id ends up in the context and
// in the response header.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-Id")
		if id == "" {
			id = uuid.New().String()
		}
		ctx := ctxutil.WithRequestID(r.Context(), id)
		w.Header().Set("X-Request-Id", id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
