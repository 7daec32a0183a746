package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"storefront/api"
	"storefront/config"
	"storefront/services"
	"storefront/structs"
	"syscall"
	"time"

	"github.com/MonkyMars/gecho"
	"github.com/joho/godotenv"
)

const shutdownTimeout = 10 * time.Second

var logger *gecho.Logger
var cfg *structs.Config

// init function to load environment variables and initialize the logger
func init() {
	envErr := godotenv.Load()

	cfg = config.GetConfig()
	logger = config.InitializeLogger()

	if envErr != nil {
		logger.Warn("No .env file found or error loading .env file, proceeding with system environment variables")
	}

	if err := config.Validate(cfg); err != nil {
		logger.Fatal("Invalid configuration", gecho.Field("error", err))
	}
}

func main() {
	ctx := context.Background()

	identity, err := services.NewCognitoIdentity(ctx, cfg)
	if err != nil {
		logger.Fatal("Failed to initialize identity provider", gecho.Field("error", err))
	}

	store, err := services.NewSessionStore(logger, cfg)
	if err != nil {
		logger.Fatal("Failed to initialize session store", gecho.Field("error", err))
	}

	sm := services.NewServiceManager(logger, cfg, identity, store, nil)

	srv := &http.Server{
		Addr:           cfg.Server.Port,
		Handler:        api.App(cfg, sm),
		ReadTimeout:    cfg.Server.ReadTimeout,
		WriteTimeout:   cfg.Server.WriteTimeout,
		IdleTimeout:    cfg.Server.IdleTimeout,
		MaxHeaderBytes: cfg.Server.MaxHeaderBytes,
	}

	// Setup graceful shutdown BEFORE starting the server
	done := setupGracefulShutdown(logger, srv, store)

	logger.Info(fmt.Sprintf("Starting server (%s) on %s", cfg.Server.AppName, cfg.Server.Port))

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal("Failed to start server", gecho.Field("error", err))
	}

	<-done
}

// setupGracefulShutdown drains in-flight requests on SIGINT/SIGTERM and closes
// the session store afterwards.
func setupGracefulShutdown(logger *gecho.Logger, srv *http.Server, store services.SessionStore) <-chan struct{} {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	done := make(chan struct{})

	logger.Info("Graceful shutdown handler initialized")

	go func() {
		defer close(done)

		sig := <-c
		logger.Info("Received shutdown signal", gecho.Field("signal", sig.String()))

		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			logger.Error("Server shutdown failed", gecho.Field("error", err))
		}

		if closer, ok := store.(io.Closer); ok {
			if err := closer.Close(); err != nil {
				logger.Error("Failed to close session store", gecho.Field("error", err))
			}
		}
	}()

	return done
}
