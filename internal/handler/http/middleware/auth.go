package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/workpulse/workpulse-backend-go/internal/domain/auth"
	"github.com/workpulse/workpulse-backend-go/internal/handler/http/response"
)

// AuthRequired rejects requests without a verified access token. Refresh
// tokens are signed with the same key, so the type claim is checked too.
func AuthRequired(ja *jwtauth.JWTAuth) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		hfn := func(w http.ResponseWriter, r *http.Request) {
			token, _, err := jwtauth.FromContext(r.Context())

			if err != nil {
				response.Unauthorized(w, err.Error())
				return
			}

			if token == nil {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			claims, err := token.AsMap(r.Context())
			if err != nil {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}
			tokenType, ok := claims["type"].(string)
			if !ok || tokenType != "access" {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			next.ServeHTTP(w, r)
		}
		return http.HandlerFunc(hfn)
	}
}
