package auth

import (
	"net/http"
	"storefront/api/middleware"
	"storefront/lib"

	"github.com/MonkyMars/gecho"
)

// HandleCSRF hands scripted clients the token they must echo in the
// X-CSRF-Token header. An existing cookie is reused, not rotated.
func (ar *AuthRoutesManager) HandleCSRF(w http.ResponseWriter, r *http.Request) {
	token, err := lib.EnsureCSRFToken(w, r)
	if err != nil {
		ar.logger.Error("Failed to issue CSRF token", gecho.Field("error", err))
		gecho.InternalServerError(w,
			gecho.WithMessage("error.csrf.failedToIssue"),
			gecho.Send(),
		)
		return
	}

	w.Header().Set(middleware.CSRFHeaderName, token)
	gecho.Success(w,
		gecho.WithData(map[string]string{
			"csrf_token": token,
			"header":     middleware.CSRFHeaderName,
		}),
		gecho.Send(),
	)
}
