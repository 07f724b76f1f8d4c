package handlers

import (
	"context"
	"net/http"
	"strings"

	"github.com/globalhorizons/backend/auth"
)

type contextKey string

const claimsContextKey contextKey = "claims"

// ClaimsFromContext returns the verified claims attached by AuthenticateAdmin,
// or nil when the request did not pass through the guard.
func ClaimsFromContext(ctx context.Context) *auth.Claims {
	claims, _ := ctx.Value(claimsContextKey).(*auth.Claims)
	return claims
}

// AuthenticateAdmin gates a handler behind a valid admin bearer token:
// 401 when the token is missing, 400 when it fails verification, 403 when
// the claims do not mark the caller as admin.
func AuthenticateAdmin(tokens *auth.TokenManager, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || parts[1] == "" {
			writeError(w, http.StatusUnauthorized, "Access denied")
			return
		}

		claims, err := tokens.Verify(parts[1])
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid token")
			return
		}
		if !claims.IsAdmin {
			writeError(w, http.StatusForbidden, "Admin access required")
			return
		}

		ctx := context.WithValue(r.Context(), claimsContextKey, claims)
		next(w, r.WithContext(ctx))
	}
}
