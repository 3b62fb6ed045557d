package handlers

import (
	"context"
	"net/http"
	"strings"

	"github.com/tropicaldog17/folio/internal/auth"
)

type contextKey string

const userIDKey contextKey = "user_id"

// UserIDFrom returns the authenticated user id placed in the request context
// by RequireAuth.
func UserIDFrom(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(userIDKey).(string)
	return id, ok
}

// RequireAuth resolves the bearer token before handler dispatch and passes
// the user identity down via the request context. A missing token and an
// invalid or expired one get distinct messages; nothing further is revealed
// about why verification failed.
func RequireAuth(tokens *auth.TokenIssuer, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var tokenString string
		if header := r.Header.Get("Authorization"); header != "" {
			parts := strings.SplitN(header, " ", 2)
			if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
				tokenString = parts[1]
			}
		}
		if tokenString == "" {
			writeMessage(w, http.StatusUnauthorized, "Token is missing")
			return
		}

		userID, err := tokens.Verify(tokenString)
		if err != nil {
			writeMessage(w, http.StatusUnauthorized, "Token is invalid or expired")
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
