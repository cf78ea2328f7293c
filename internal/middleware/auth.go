package middleware

import (
	"context"
	"net/http"
	"promo_backend/internal/config"
	"promo_backend/pkg/token"
	"strconv"
	"strings"
)

type ctxKey string

const adminIDKey ctxKey = "admin_id"

// Auth проверяет Bearer access токен и кладет id администратора в контекст
func Auth(jwtCfg config.JWTConfig) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if !strings.HasPrefix(header, "Bearer ") {
				http.Error(w, "missing bearer token", http.StatusUnauthorized)
				return
			}

			claims, err := token.VerifyToken(
				strings.TrimPrefix(header, "Bearer "),
				jwtCfg.AccessTokenSecretKey(),
			)
			if err != nil {
				http.Error(w, "invalid token", http.StatusUnauthorized)
				return
			}

			id, err := strconv.Atoi(claims.ID)
			if err != nil {
				http.Error(w, "invalid token claims", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), adminIDKey, id)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// AdminIDFromContext id администратора положенный middleware Auth
func AdminIDFromContext(ctx context.Context) (int, bool) {
	id, ok := ctx.Value(adminIDKey).(int)
	return id, ok
}
