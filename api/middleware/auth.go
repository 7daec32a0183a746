package middleware

import (
	"context"
	"net/http"
	"storefront/lib"
	"storefront/structs"

	"github.com/MonkyMars/gecho"
)

type contextKey string

const SessionContextKey contextKey = "session"

const LoginPath = "/login"

// SessionIDFromRequest returns the session cookie value, or "" when the
// visitor has none.
func SessionIDFromRequest(r *http.Request) string {
	id, err := lib.GetCookieValue(lib.SessionCookieName, r)
	if err != nil {
		return ""
	}
	return id
}

// PageAuthMiddleware sends visitors without an active session to the login
// page and stores the session in the request context otherwise.
func (mw *Middleware) PageAuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session, err := mw.sessionService.CurrentUser(r.Context(), SessionIDFromRequest(r))
		if err != nil {
			mw.logger.Debug("No active session, redirecting to login", gecho.Field("error", err))
			lib.ClearCookie(lib.SessionCookieName, w)
			http.Redirect(w, r, LoginPath, http.StatusSeeOther)
			return
		}

		ctx := context.WithValue(r.Context(), SessionContextKey, session)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// APIAuthMiddleware is the JSON counterpart of PageAuthMiddleware.
func (mw *Middleware) APIAuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session, err := mw.sessionService.CurrentUser(r.Context(), SessionIDFromRequest(r))
		if err != nil {
			mw.logger.Warn("Rejected request without session", gecho.Field("path", r.URL.Path))
			gecho.Unauthorized(w, gecho.WithMessage("No active session"), gecho.Send())
			return
		}

		ctx := context.WithValue(r.Context(), SessionContextKey, session)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func GetSessionFromContext(ctx context.Context) (*structs.Session, bool) {
	session, ok := ctx.Value(SessionContextKey).(*structs.Session)
	return session, ok
}
