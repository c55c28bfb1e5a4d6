package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"

	"github.com/guardtrack/guardtrack-backend-go/internal/domain/guard"
	"github.com/guardtrack/guardtrack-backend-go/internal/handler/http/response"
)

// RequireSupervisor requires supervisor role
func RequireSupervisor(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.HandleError(w, guard.ErrSupervisorAccessRequired)
			return
		}

		role, ok := claims["role"].(string)
		if !ok {
			response.HandleError(w, guard.ErrSupervisorAccessRequired)
			return
		}

		if role != string(guard.RoleSupervisor) {
			response.HandleError(w, guard.ErrSupervisorAccessRequired)
			return
		}

		next.ServeHTTP(w, r)
	})
}
