// internal/auth/middleware.go
// Authentication middleware protecting all feature routes

package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/campusmatch/campusmatch-backend/internal/common/utils"
)

type contextKey string

// userIDKey is the request-context key holding the authenticated user's UUID
const userIDKey contextKey = "userID"

// Middleware provides authentication middleware
type Middleware struct {
	verifier TokenVerifier
}

// NewMiddleware creates a new auth middleware around the given verifier
func NewMiddleware(verifier TokenVerifier) *Middleware {
	return &Middleware{verifier: verifier}
}

// Authenticate verifies the bearer token and adds the user ID to the
// request context.
func (m *Middleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := m.extractToken(r)
		if token == "" {
			utils.ErrorResponse(w, "Missing or invalid authorization header", http.StatusUnauthorized)
			return
		}

		claims, err := m.verifier.Verify(r.Context(), token)
		if err != nil {
			utils.ErrorResponse(w, "Invalid or expired token", http.StatusUnauthorized)
			return
		}

		// Refresh tokens are not accepted on API routes
		if claims.Type != "access" {
			utils.ErrorResponse(w, "Invalid token type", http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey, claims.UserID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// extractToken pulls the bearer token from the Authorization header
func (m *Middleware) extractToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if header == "" {
		return ""
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}

	return parts[1]
}

// UserIDFromContext returns the authenticated user's ID set by Authenticate
func UserIDFromContext(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(userIDKey).(string)
	return userID, ok
}

// ContextWithUserID returns a context carrying userID. Used by tests and by
// internal calls made on behalf of a user.
func ContextWithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}
