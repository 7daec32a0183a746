package lib

import (
	"net/http"
	"storefront/config"
	"time"
)

const (
	SessionCookieName = "storefront_session"
	CSRFCookieName    = "csrf"
)

func cookieAttributes() (http.SameSite, bool, string) {
	if config.IsProduction() {
		return http.SameSiteStrictMode, true, config.GetConfig().Server.CookieDomain
	}
	return http.SameSiteLaxMode, false, ""
}

// SetCookie sets a secure, HttpOnly cookie for session usage
func SetCookie(key, val string, expiry time.Time, w http.ResponseWriter) {
	sameSite, secure, domain := cookieAttributes()

	cookie := &http.Cookie{
		Name:     key,
		Value:    val,
		Expires:  expiry,
		Path:     "/",
		Domain:   domain,
		Secure:   secure,
		SameSite: sameSite,
		HttpOnly: true,
	}

	http.SetCookie(w, cookie)
}

func GetCookieValue(key string, r *http.Request) (string, error) {
	cookie, err := r.Cookie(key)
	if err != nil {
		return "", err
	}
	return cookie.Value, nil
}

// ClearCookie removes the cookie from the browser
func ClearCookie(key string, w http.ResponseWriter) {
	sameSite, secure, domain := cookieAttributes()

	cookie := &http.Cookie{
		Name:     key,
		Value:    "",
		Path:     "/",
		Domain:   domain,
		Expires:  time.Now().Add(-time.Hour),
		MaxAge:   -1,
		Secure:   secure,
		SameSite: sameSite,
		HttpOnly: true,
	}

	http.SetCookie(w, cookie)
}

// SetCSRFCookie sets the CSRF token cookie. Forms echo it back in a hidden
// field, scripted clients in the X-CSRF-Token header.
func SetCSRFCookie(val string, expiry time.Time, w http.ResponseWriter) {
	sameSite, secure, domain := cookieAttributes()

	cookie := &http.Cookie{
		Name:     CSRFCookieName,
		Value:    val,
		Expires:  expiry,
		MaxAge:   int(time.Until(expiry).Seconds()),
		Path:     "/",
		Domain:   domain,
		Secure:   secure,
		SameSite: sameSite,
		HttpOnly: false,
	}

	http.SetCookie(w, cookie)
}
