package http

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/shiftly-hq/shiftly-backend-go/internal/domain/auth"
)

// requestClaims extracts the verified actor and tenant from the access
// token. The auth middleware guarantees the token is present and valid by
// the time a handler runs.
func requestClaims(r *http.Request) (actorID, companyID string, err error) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return "", "", auth.ErrInvalidToken
	}
	actorID, _ = claims["user_id"].(string)
	companyID, _ = claims["company_id"].(string)
	if actorID == "" || companyID == "" {
		return "", "", auth.ErrInvalidToken
	}
	return actorID, companyID, nil
}
