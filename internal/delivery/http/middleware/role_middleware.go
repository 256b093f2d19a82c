package middleware

import (
	"net/http"

	"medical-escrow-ledger/internal/domain/entity"
	"medical-escrow-ledger/internal/domain/repository"
	"medical-escrow-ledger/pkg/response"
)

// RequireRole pre-filters a route group against the role registry. The
// registry check inside the usecase remains authoritative; this only turns
// obvious misuse away at the door.
func RequireRole(registry repository.RoleRegistry, roles ...entity.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			caller, ok := GetCallerAddressFromContext(r.Context())
			if !ok {
				response.Unauthorized(w, "Caller identity not found")
				return
			}

			allowed := false
			for _, role := range roles {
				if registry.IsAuthorized(caller, role) {
					allowed = true
					break
				}
			}

			if !allowed {
				response.Forbidden(w, "You don't have permission to access this resource")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RequireAdmin is a convenience middleware for admin-only endpoints.
func RequireAdmin(registry repository.RoleRegistry) func(http.Handler) http.Handler {
	return RequireRole(registry, entity.RoleAdmin)
}
