package auth

import (
	"log/slog"
	"net/http"

	"github.com/adelicia-js/milestone-monitor-sub001/internal/faculty"
)

// RoleAuthorization provides route-level role guards. Services re-check
// authorization with the explicit caller; this is the coarse first gate.
type RoleAuthorization struct {
	logger *slog.Logger
}

func NewRoleAuthorization(logger *slog.Logger) *RoleAuthorization {
	return &RoleAuthorization{logger: logger}
}

func (ra *RoleAuthorization) RequireRole(roles ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			caller, ok := faculty.FromContext(r.Context())
			if !ok {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			for _, role := range roles {
				if caller.Role == role {
					next.ServeHTTP(w, r)
					return
				}
			}

			ra.logger.Warn("access denied: insufficient role",
				"faculty_id", caller.ID,
				"role", caller.Role,
				"required_roles", roles)
			http.Error(w, "Forbidden: insufficient role", http.StatusForbidden)
		})
	}
}

// RequireHOD guards approval and staff-management routes.
func (ra *RoleAuthorization) RequireHOD() func(http.Handler) http.Handler {
	return ra.RequireRole(faculty.RoleHOD)
}

// RequireReportAccess guards report generation routes.
func (ra *RoleAuthorization) RequireReportAccess() func(http.Handler) http.Handler {
	return ra.RequireRole(faculty.RoleHOD, faculty.RoleEditor)
}
