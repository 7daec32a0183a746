package handling

import (
	"net/http"

	"github.com/MonkyMars/gecho"
)

// HandlePageError logs err against the calling handler and answers an HTML
// request with a plain 500. Nothing of err reaches the browser.
func HandlePageError(logger *gecho.Logger, w http.ResponseWriter, err error, msg string) {
	logger.Error(msg, gecho.Field("error", err), gecho.WithCallerSkip(3))

	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}
