package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/CoorayNTL/ead-backend/pkg/utils"

	"github.com/dgrijalva/jwt-go"
)

type customerIDKey struct{}

// Auth проверяет bearer-токен и кладёт идентификатор покупателя в контекст.
// Дальше токена никто не видит: сервисы работают только с готовым customer id.
func Auth(secret string) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || token == "" {
				utils.WriteError(w, "missing bearer token", http.StatusUnauthorized)
				return
			}

			claims := &jwt.StandardClaims{}
			_, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
				}
				return []byte(secret), nil
			})
			if err != nil {
				utils.WriteError(w, "invalid token", http.StatusUnauthorized)
				return
			}
			if claims.Subject == "" {
				utils.WriteError(w, "token has no subject", http.StatusUnauthorized)
				return
			}

			ctx := WithCustomerID(r.Context(), claims.Subject)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func WithCustomerID(ctx context.Context, customerID string) context.Context {
	return context.WithValue(ctx, customerIDKey{}, customerID)
}

func CustomerID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(customerIDKey{}).(string)
	return id, ok
}
