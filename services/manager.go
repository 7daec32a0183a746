package services

import (
	"net/http"
	"storefront/structs"

	"github.com/MonkyMars/gecho"
)

type ServiceManager struct {
	SessionService *SessionService
	CatalogService *CatalogService
	OrderService   *OrderService
	HealthService  *HealthService
}

// NewServiceManager wires the services around an identity provider and a
// session store. httpClient may be nil, a client with the upstream timeout is
// then created.
func NewServiceManager(
	logger *gecho.Logger,
	cfg *structs.Config,
	identity IdentityProvider,
	store SessionStore,
	httpClient *http.Client,
) *ServiceManager {
	api := NewAPIClient(cfg, httpClient)

	return &ServiceManager{
		SessionService: NewSessionService(logger, cfg, identity, store),
		CatalogService: NewCatalogService(logger, api),
		OrderService:   NewOrderService(logger, api),
		HealthService:  NewHealthService(logger, store, cfg.Session.Store),
	}
}
