package auth

import (
	"errors"
	"net/http"
	"storefront/api/middleware"
	"storefront/api/views"
	"storefront/handling"
	"storefront/lib"
	"storefront/structs"
	"strings"
	"time"

	"github.com/MonkyMars/gecho"
)

const (
	loginInvalidMessage     = "Please check your login information and try again"
	loginRejectedMessage    = "Invalid credentials"
	loginUnavailableMessage = "Unable to complete login. Please try again"
	loginActionMessage      = "Your account is not ready to sign in. Confirm your email address or reset your password first"
)

func (ar *AuthRoutesManager) ShowLogin(w http.ResponseWriter, r *http.Request) {
	if _, err := ar.sessionService.CurrentUser(r.Context(), middleware.SessionIDFromRequest(r)); err == nil {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	ar.renderLogin(w, r, http.StatusOK, "", "")
}

func (ar *AuthRoutesManager) HandleLogin(w http.ResponseWriter, r *http.Request) {
	body := &structs.AuthRequest{
		Email:    strings.TrimSpace(r.PostFormValue("email")),
		Password: r.PostFormValue("password"),
	}

	if err := lib.Validate(body); err != nil {
		ar.logger.Warn("Invalid login form", gecho.Field("error", err))
		ar.renderLogin(w, r, http.StatusBadRequest, body.Email, loginInvalidMessage)
		return
	}

	session, err := ar.sessionService.SignIn(r.Context(), body)
	if err != nil {
		if errors.Is(err, lib.ErrAccountActionRequired) {
			ar.logger.Warn("Login blocked until the account is confirmed or reset", gecho.Field("error", err))
			ar.renderLogin(w, r, http.StatusForbidden, body.Email, loginActionMessage)
			return
		}
		if errors.Is(err, lib.ErrInvalidCredentials) {
			ar.logger.Warn("Login failed", gecho.Field("error", err))
			ar.renderLogin(w, r, http.StatusUnauthorized, body.Email, loginRejectedMessage)
			return
		}
		ar.logger.Error("Identity provider unavailable", gecho.Field("error", err))
		ar.renderLogin(w, r, http.StatusServiceUnavailable, body.Email, loginUnavailableMessage)
		return
	}

	lib.SetCookie(lib.SessionCookieName, session.ID, time.Now().Add(ar.cfg.Session.TTL), w)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (ar *AuthRoutesManager) renderLogin(w http.ResponseWriter, r *http.Request, status int, email, message string) {
	csrfToken, err := lib.EnsureCSRFToken(w, r)
	if err != nil {
		handling.HandlePageError(ar.logger, w, err, "failed to issue csrf token")
		return
	}

	page := views.LoginPage{
		AppName:   ar.cfg.Server.AppName,
		CSRFToken: csrfToken,
		Email:     email,
		Error:     message,
	}
	if err := views.Render(w, status, views.LoginTemplate, page); err != nil {
		handling.HandlePageError(ar.logger, w, err, "failed to render login page")
	}
}
