package middleware

import (
	"net/http"

	"github.com/cmlabs-hris/roster-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/jwtauth/v5"
)

// RequireProject rejects requests whose token is not scoped to the project
// in the URL. Rosters from different projects never share a token.
func RequireProject(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.Unauthorized(w, err.Error())
			return
		}

		projectID, ok := claims["project_id"].(string)
		if !ok || projectID == "" {
			response.Forbidden(w, "Token is not scoped to a project")
			return
		}

		if urlProjectID := chi.URLParam(r, "projectID"); urlProjectID != "" && urlProjectID != projectID {
			response.Forbidden(w, "Token does not grant access to this project")
			return
		}

		next.ServeHTTP(w, r)
	})
}
