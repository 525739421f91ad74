package http

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/horaria-hr/horaria-backend-go/internal/domain/auth"
)

// identityFromRequest pulls the authenticated identity out of the verified
// token. Handlers never trust identity fields from the request body.
func identityFromRequest(r *http.Request) (userID string, tenantID string, err error) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return "", "", auth.ErrInvalidToken
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", "", auth.ErrInvalidToken
	}

	tenantID, ok = claims["tenant_id"].(string)
	if !ok || tenantID == "" {
		return "", "", auth.ErrInvalidToken
	}

	return userID, tenantID, nil
}
