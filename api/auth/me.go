package auth

import (
	"net/http"
	"storefront/api/middleware"

	"github.com/MonkyMars/gecho"
)

// HandleMe returns who the current session belongs to. Tokens never leave the
// server.
func (ar *AuthRoutesManager) HandleMe(w http.ResponseWriter, r *http.Request) {
	session, ok := middleware.GetSessionFromContext(r.Context())
	if !ok {
		gecho.Unauthorized(w, gecho.WithMessage("No active session"), gecho.Send())
		return
	}

	gecho.Success(w,
		gecho.WithData(map[string]any{
			"username":   session.Username,
			"login_id":   session.LoginID,
			"expires_at": session.ExpiresAt,
		}),
		gecho.Send(),
	)
}
