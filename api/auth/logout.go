package auth

import (
	"net/http"
	"storefront/api/middleware"
	"storefront/lib"

	"github.com/MonkyMars/gecho"
)

func (ar *AuthRoutesManager) HandleLogout(w http.ResponseWriter, r *http.Request) {
	sessionID := middleware.SessionIDFromRequest(r)
	if sessionID != "" {
		if err := ar.sessionService.SignOut(r.Context(), sessionID); err != nil {
			ar.logger.Error("Failed to delete session during logout", gecho.Field("error", err))
		}
	}

	lib.ClearCookie(lib.SessionCookieName, w)
	http.Redirect(w, r, middleware.LoginPath, http.StatusSeeOther)
}
