package middleware

import (
	"storefront/services"
	"storefront/structs"

	"github.com/MonkyMars/gecho"
)

type Middleware struct {
	logger         *gecho.Logger
	cfg            *structs.Config
	sessionService *services.SessionService
}

func NewMiddleware(cfg *structs.Config, logger *gecho.Logger, sessionService *services.SessionService) *Middleware {
	return &Middleware{
		logger:         logger,
		cfg:            cfg,
		sessionService: sessionService,
	}
}
