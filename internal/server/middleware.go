package server

import (
	"context"
	"net/http"
	"time"

	appErrors "github.com/aleator1o/anunciosloc/pkg/errors"
	"github.com/aleator1o/anunciosloc/pkg/logger"

	"github.com/google/uuid"
)

type contextKey string

const userIDKey contextKey = "userID"

// Authenticator resolves the verified caller identity from a request.
// Session issuance and credential checking live outside this engine; the
// server only consumes the result.
type Authenticator interface {
	Authenticate(r *http.Request) (uuid.UUID, error)
}

// HeaderAuthenticator trusts an upstream-verified X-User-ID header, the
// shape an auth proxy or gateway hands down.
type HeaderAuthenticator struct{}

func (HeaderAuthenticator) Authenticate(r *http.Request) (uuid.UUID, error) {
	raw := r.Header.Get("X-User-ID")
	if raw == "" {
		return uuid.Nil, appErrors.Unauthorized("missing user identity")
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, appErrors.Unauthorized("malformed user identity")
	}
	return id, nil
}

func (s *Server) withAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, err := s.auth.Authenticate(r)
		if err != nil {
			respondError(w, err)
			return
		}
		ctx := context.WithValue(r.Context(), userIDKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func userIDFrom(ctx context.Context) uuid.UUID {
	id, _ := ctx.Value(userIDKey).(uuid.UUID)
	return id
}

func requestLogger(log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			next.ServeHTTP(w, r)
			log.Debug("request handled", "method", r.Method, "path", r.URL.Path, "took", time.Since(start))
		})
	}
}
