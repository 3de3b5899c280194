package middleware

import (
	"context"
	"net/http"

	"interviewai/server/internal/utils"
)

const userIDKey contextKey = "user_id"

// Authenticate verifies the caller's bearer token and stores the resolved
// user id in the request context. Unverified calls never reach a handler.
func Authenticate(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, err := utils.VerifyToken(r, secret)
			if err != nil {
				utils.JSONError(w, http.StatusUnauthorized, "unauthorized", "Authentication required")
				return
			}
			userID, err := utils.GetUserIDFromClaims(claims)
			if err != nil {
				utils.JSONError(w, http.StatusUnauthorized, "unauthorized", "Authentication required")
				return
			}
			next.ServeHTTP(w, r.WithContext(WithUserID(r.Context(), userID)))
		})
	}
}

// WithUserID returns a context carrying the resolved caller id.
func WithUserID(ctx context.Context, userID uint) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// UserID returns the authenticated caller's id stored by Authenticate.
func UserID(r *http.Request) uint {
	id, _ := r.Context().Value(userIDKey).(uint)
	return id
}
