package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"quickbite/internal/catalog"
	"quickbite/internal/checkout"
	"quickbite/internal/config"
	"quickbite/internal/database"
	"quickbite/internal/handler"
	"quickbite/internal/router"
	"quickbite/internal/session"
	"quickbite/internal/store"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Initialize logger
	logger := config.NewLogger(cfg.Logger)
	logger.Info().Msg("starting quickbite storefront API")

	// Create context for application lifecycle
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize database connection pool
	pool, err := database.NewPool(ctx, cfg.Database, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer pool.Close()

	// Initialize stores
	restaurantStore := store.NewRestaurantStore(pool, logger)
	menuStore := store.NewMenuStore(pool, logger)
	orderStore := store.NewOrderStore(pool, logger)

	// Initialize services
	catalogService := catalog.NewService(restaurantStore, logger)
	checkoutService := checkout.NewService(orderStore, cfg.Checkout.ConfirmDelay, logger)

	// The catalogue is fetched once at startup. A failed fetch degrades
	// to an empty browsing screen; there is no retry.
	catalogService.Refresh(ctx)

	// Initialize session manager
	sessions := session.NewManager(session.Config{
		TTL:           cfg.Session.TTL,
		SweepInterval: cfg.Session.SweepInterval,
	}, logger)
	defer sessions.Close()

	// Initialize HTTP handlers
	restaurantHandler := handler.NewRestaurantHandler(catalogService, restaurantStore, menuStore, logger)
	cartHandler := handler.NewCartHandler(logger)
	checkoutHandler := handler.NewCheckoutHandler(checkoutService, logger)
	sessionHandler := handler.NewSessionHandler(logger)

	// Initialize router
	mux := router.New(restaurantHandler, cartHandler, checkoutHandler, sessionHandler, sessions, cfg.Server.AllowedOrigins, logger)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Channel to listen for errors from the server
	serverErrors := make(chan error, 1)

	// Start HTTP server in a goroutine
	go func() {
		logger.Info().
			Str("address", cfg.Server.Address()).
			Msg("HTTP server started")
		serverErrors <- server.ListenAndServe()
	}()

	// Channel to listen for interrupt signals
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Block until we receive a signal or an error
	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		logger.Info().
			Str("signal", sig.String()).
			Msg("shutdown signal received, starting graceful shutdown")

		// Create a context with timeout for shutdown
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		// Attempt graceful shutdown
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("failed to shutdown server gracefully")
			// Force close
			if closeErr := server.Close(); closeErr != nil {
				logger.Error().Err(closeErr).Msg("failed to close server")
			}
			return fmt.Errorf("server shutdown failed: %w", err)
		}

		logger.Info().Msg("server shutdown completed")
	}

	return nil
}
