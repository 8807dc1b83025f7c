package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"github.com/comcode/blog-engine/internal/api/types"
)

type userKeyType string

const (
	UserIDKey userKeyType = "user_id"
	RoleKey   userKeyType = "role"
)

// Auth validates a Bearer JWT using the provided HMAC secret and adds the
// user id and role to context. Verification-purpose tokens are rejected: only
// access tokens open protected routes.
func Auth(hmacSecret []byte) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ah := r.Header.Get("Authorization")
			if !strings.HasPrefix(strings.ToLower(ah), "bearer ") {
				unauthorized(w, r, "missing bearer token")
				return
			}
			tokenStr := strings.TrimSpace(ah[len("Bearer "):])
			token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (any, error) {
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, jwt.ErrSignatureInvalid
				}
				return hmacSecret, nil
			})
			if err != nil || !token.Valid {
				unauthorized(w, r, "invalid or expired token")
				return
			}
			claims, ok := token.Claims.(jwt.MapClaims)
			if !ok {
				unauthorized(w, r, "invalid token claims")
				return
			}
			if purpose, _ := claims["purpose"].(string); purpose != "access" {
				unauthorized(w, r, "token cannot be used for authentication")
				return
			}
			uid, _ := claims["uid"].(float64)
			role, _ := claims["role"].(string)
			ctx := context.WithValue(r.Context(), UserIDKey, uint(uid))
			ctx = context.WithValue(ctx, RoleKey, role)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireRole guards a route group behind an exact role match. Runs after
// Auth, which put the role in context.
func RequireRole(role string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if GetRole(r.Context()) != role {
				types.WriteProblem(w, types.NewProblem(r, http.StatusForbidden,
					"Access Denied", "this operation requires the "+role+" role"))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func unauthorized(w http.ResponseWriter, r *http.Request, detail string) {
	types.WriteProblem(w, types.NewProblem(r, http.StatusUnauthorized, "Authentication Failed", detail))
}

// GetUserID returns the authenticated user id, zero when unauthenticated.
func GetUserID(ctx context.Context) uint {
	if v := ctx.Value(UserIDKey); v != nil {
		if id, ok := v.(uint); ok {
			return id
		}
	}
	return 0
}

// GetRole returns the authenticated user's role, empty when unauthenticated.
func GetRole(ctx context.Context) string {
	if v := ctx.Value(RoleKey); v != nil {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}
