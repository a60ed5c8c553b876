package middleware

import (
	"net/http"

	"github.com/staffline/staffline-backend-go/internal/handler/http/response"
	"github.com/staffline/staffline-backend-go/internal/pkg/jwt"
)

func requireActor(actorType jwt.ActorType) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			actor, err := jwt.ActorFromContext(r.Context())
			if err != nil {
				response.Unauthorized(w, err.Error())
				return
			}

			if actor.Type != actorType {
				response.Forbidden(w, "insufficient permissions for this resource")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// CompanyOnly limits a route group to company actors.
func CompanyOnly(next http.Handler) http.Handler {
	return requireActor(jwt.ActorCompany)(next)
}

// EmployeeOnly limits a route group to employee actors.
func EmployeeOnly(next http.Handler) http.Handler {
	return requireActor(jwt.ActorEmployee)(next)
}

// AdminOnly limits a route group to platform admins.
func AdminOnly(next http.Handler) http.Handler {
	return requireActor(jwt.ActorAdmin)(next)
}
