package middleware

import (
	"context"
	"net/http"
	"strings"

	"docrech/pkg/jwt"
	"docrech/pkg/response"
)

type contextKey string

const (
	ClientRoleKey contextKey = "client_role"
)

// APIKeyHeader is the header the hosted data service clients send their key in
const APIKeyHeader = "apikey"

type AuthMiddleware struct {
	jwtService *jwt.JWTService
}

func NewAuthMiddleware(jwtService *jwt.JWTService) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
	}
}

// extractAPIKey reads the key from the apikey header, then from a Bearer authorization
func extractAPIKey(r *http.Request) (string, bool) {
	if key := strings.TrimSpace(r.Header.Get(APIKeyHeader)); key != "" {
		return key, true
	}

	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", false
	}

	// Extract token from "Bearer <token>"
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return "", false
	}
	return parts[1], true
}

func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodOptions {
			next.ServeHTTP(w, r)
			return
		}

		key, ok := extractAPIKey(r)
		if !ok {
			response.Unauthorized(w, "API key is required")
			return
		}

		claims, err := m.jwtService.ValidateAPIKey(key)
		if err != nil {
			response.Unauthorized(w, "Invalid or expired API key")
			return
		}

		ctx := context.WithValue(r.Context(), ClientRoleKey, claims.Role)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetClientRoleFromContext extracts the API key role from context
func GetClientRoleFromContext(ctx context.Context) (string, bool) {
	role, ok := ctx.Value(ClientRoleKey).(string)
	return role, ok
}
