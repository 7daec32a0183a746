package storefront

import (
	"context"
	"net/http"
	"storefront/api/middleware"
	"storefront/api/views"
	"storefront/handling"
	"storefront/lib"
	"storefront/structs"

	"github.com/MonkyMars/gecho"
)

const anonymousUserName = "User"

func (srm *StorefrontRoutesManager) ShowStorefront(w http.ResponseWriter, r *http.Request) {
	session, _ := middleware.GetSessionFromContext(r.Context())
	srm.render(w, r, session, nil)
}

func (srm *StorefrontRoutesManager) render(w http.ResponseWriter, r *http.Request, session *structs.Session, notice *views.Notice) {
	csrfToken, err := lib.EnsureCSRFToken(w, r)
	if err != nil {
		handling.HandlePageError(srm.logger, w, err, "failed to issue csrf token")
		return
	}

	page := views.StorefrontPage{
		AppName:   srm.cfg.Server.AppName,
		UserName:  anonymousUserName,
		CSRFToken: csrfToken,
		Products:  srm.loadProducts(r.Context()),
		Notice:    notice,
	}
	if session != nil && session.LoginID != "" {
		page.UserName = session.LoginID
	}

	if err := views.Render(w, http.StatusOK, views.StorefrontTemplate, page); err != nil {
		handling.HandlePageError(srm.logger, w, err, "failed to render storefront")
	}
}

// loadProducts fetches the catalog for one page render. A failed fetch is
// only logged, the page then shows the loading placeholder.
func (srm *StorefrontRoutesManager) loadProducts(ctx context.Context) []structs.Product {
	products, err := srm.catalogService.ListProducts(ctx)
	if err != nil {
		srm.logger.Error("Error fetching products", gecho.Field("error", err))
		return nil
	}
	return products
}
