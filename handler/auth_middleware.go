package handler

import (
	"context"
	"net/http"
	"strings"

	"go-finance-api/common"
	"go-finance-api/model"
)

type contextKey string

const ClaimsKey contextKey = "claims"

// TokenParser verifies a bearer token.
type TokenParser interface {
	ParseToken(tokenString string) (*model.AppClaims, error)
}

// AuthMiddleware rejects requests without a valid bearer token and stores
// the token claims in the request context.
func AuthMiddleware(auth TokenParser) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				common.NewAppError(http.StatusUnauthorized, "Authorization header is required", nil).Send(w)
				return
			}

			headerParts := strings.Split(authHeader, " ")
			if len(headerParts) != 2 || strings.ToLower(headerParts[0]) != "bearer" {
				common.NewAppError(http.StatusUnauthorized, "Invalid authorization header format", nil).Send(w)
				return
			}

			claims, err := auth.ParseToken(headerParts[1])
			if err != nil {
				common.NewAppError(http.StatusUnauthorized, "Invalid or expired token", err).Send(w)
				return
			}

			ctx := context.WithValue(r.Context(), ClaimsKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func ClaimsFromContext(ctx context.Context) (*model.AppClaims, bool) {
	claims, ok := ctx.Value(ClaimsKey).(*model.AppClaims)
	return claims, ok && claims != nil
}

// subject is the authenticated identity, or "" for anonymous requests.
func subject(r *http.Request) string {
	if claims, ok := ClaimsFromContext(r.Context()); ok {
		return claims.Subject
	}
	return ""
}
