package config

import (
	"storefront/structs"

	"github.com/MonkyMars/gecho"
)

// NewLogger builds a gecho logger at the level matching the environment.
// Request logging runs without caller info, handler logs with it.
func NewLogger(cfg *structs.Config, showCaller bool) *gecho.Logger {
	return gecho.NewLogger(gecho.NewConfig(
		gecho.WithShowCaller(showCaller),
		gecho.WithLogLevel(gecho.ParseLogLevel(LogLevel(cfg))),
	))
}

// InitializeLogger creates the process wide logger from the loaded config
func InitializeLogger() *gecho.Logger {
	return NewLogger(GetConfig(), true)
}
