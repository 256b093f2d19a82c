package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"medical-escrow-ledger/pkg/jwt"
	"medical-escrow-ledger/pkg/response"

	"github.com/redis/go-redis/v9"
)

type contextKey string

const (
	CallerAddressKey contextKey = "caller_address"
	TokenIDKey       contextKey = "token_id"
)

type AuthMiddleware struct {
	jwtService  *jwt.JWTService
	redisClient *redis.Client
}

func NewAuthMiddleware(jwtService *jwt.JWTService, redisClient *redis.Client) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService:  jwtService,
		redisClient: redisClient,
	}
}

// Authenticate resolves the caller's ledger address from the bearer token and
// places it in the request context. This is the host-supplied identity that
// every core operation trusts.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			response.Unauthorized(w, "Authorization header is required")
			return
		}

		// Extract token from "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Unauthorized(w, "Invalid authorization header format")
			return
		}

		claims, err := m.jwtService.ValidateToken(parts[1])
		if err != nil {
			response.Unauthorized(w, "Invalid or expired token")
			return
		}

		// Check if token exists in Redis (not revoked)
		tokenKey := fmt.Sprintf("access_token:%s:%s", claims.Address, claims.TokenID)
		exists, err := m.redisClient.Exists(r.Context(), tokenKey).Result()
		if err != nil {
			response.InternalServerError(w, "Failed to validate token")
			return
		}
		if exists == 0 {
			response.Unauthorized(w, "Token has been revoked")
			return
		}

		ctx := WithCallerAddress(r.Context(), claims.Address)
		ctx = context.WithValue(ctx, TokenIDKey, claims.TokenID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// WithCallerAddress stamps the caller identity onto the context.
func WithCallerAddress(ctx context.Context, address string) context.Context {
	return context.WithValue(ctx, CallerAddressKey, address)
}

// GetCallerAddressFromContext extracts the caller's ledger address.
func GetCallerAddressFromContext(ctx context.Context) (string, bool) {
	address, ok := ctx.Value(CallerAddressKey).(string)
	return address, ok
}

// GetTokenIDFromContext extracts the token ID.
func GetTokenIDFromContext(ctx context.Context) (string, bool) {
	tokenID, ok := ctx.Value(TokenIDKey).(string)
	return tokenID, ok
}
