package middlewares

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"vasavimart-service/internal/pkg/constvars"
	"vasavimart-service/internal/pkg/exceptions"
	"vasavimart-service/internal/pkg/utils"
)

// Authentication verifies the Bearer login token and stashes the caller's
// identity in the request context.
func (m *Middlewares) Authentication(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get(constvars.HeaderAuthorization)
		if authHeader == "" {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenMissing(errors.New("authorization header not provided")))
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := m.JWTManager.VerifyLoginToken(tokenString)
		if err != nil {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenInvalidOrExpired(err))
			return
		}

		ctx := context.WithValue(r.Context(), constvars.CONTEXT_USER_ID_KEY, claims.UserID)
		ctx = context.WithValue(ctx, constvars.CONTEXT_PHONE_NUMBER_KEY, claims.PhoneNumber)
		ctx = context.WithValue(ctx, constvars.CONTEXT_USERNAME_KEY, claims.Username)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
