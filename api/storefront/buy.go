package storefront

import (
	"net/http"
	"storefront/api/middleware"
	"storefront/api/views"
	"storefront/structs"

	"github.com/go-chi/chi/v5"
)

// HandleBuy runs one order submission for the product and re-renders the
// storefront with the outcome notice.
func (srm *StorefrontRoutesManager) HandleBuy(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "productId")
	sessionID := middleware.SessionIDFromRequest(r)

	outcome := srm.orderService.PlaceOrder(r.Context(), srm.sessionService.ForSession(sessionID), productID)

	notice := &views.Notice{Kind: views.NoticeSuccess, Text: outcome.Notice()}
	if !outcome.Succeeded() {
		notice.Kind = views.NoticeError
	}

	var session *structs.Session
	if current, err := srm.sessionService.CurrentUser(r.Context(), sessionID); err == nil {
		session = current
	}

	srm.render(w, r, session, notice)
}
