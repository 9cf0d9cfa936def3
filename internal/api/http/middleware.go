package http

import (
	"context"
	"net/http"
	"strings"

	"docshare-backend/internal/domain"
	"docshare-backend/internal/security"
)

type contextKey string

const callerContextKey contextKey = "caller"

// AuthMiddleware validates the bearer token and injects the caller identity
// into the request context. Requests without a token pass through with no
// caller; handlers that need one use CallerFromContext.
type AuthMiddleware struct {
	tokenManager security.TokenManager
}

func NewAuthMiddleware(tm security.TokenManager) *AuthMiddleware {
	return &AuthMiddleware{tokenManager: tm}
}

func (m *AuthMiddleware) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := extractBearerToken(r)
		if token == "" {
			next.ServeHTTP(w, r)
			return
		}

		claims, err := m.tokenManager.ValidateToken(token)
		if err != nil {
			writeJSON(w, http.StatusUnauthorized, errorBody{Type: "ForbiddenError", Message: "Invalid token"})
			return
		}

		caller := &domain.User{
			ID:       claims.UserID,
			Username: claims.Username,
			RoleID:   claims.RoleID,
		}
		ctx := context.WithValue(r.Context(), callerContextKey, caller)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// CallerFromContext returns the authenticated caller, or nil for an
// anonymous request.
func CallerFromContext(ctx context.Context) *domain.User {
	caller, _ := ctx.Value(callerContextKey).(*domain.User)
	return caller
}

func extractBearerToken(r *http.Request) string {
	auth := r.Header.Get("Authorization")
	if auth == "" {
		return ""
	}
	if len(auth) > 7 && strings.EqualFold(auth[:7], "Bearer ") {
		return auth[7:]
	}
	return auth
}
