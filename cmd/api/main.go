package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"aesthetic-cakes/internal/cart"
	"aesthetic-cakes/internal/catalog"
	"aesthetic-cakes/internal/config"
	"aesthetic-cakes/internal/database"
	"aesthetic-cakes/internal/handler"
	"aesthetic-cakes/internal/mail"
	"aesthetic-cakes/internal/repository"
	"aesthetic-cakes/internal/router"
	"aesthetic-cakes/internal/service"

	"github.com/rs/zerolog"
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
	logger.Info().Msg("starting aesthetic-cakes API server")

	// Create context for application lifecycle
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Select the catalogue source
	loader, cleanup, err := newCatalogLoader(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer cleanup()

	// Load the catalogue once; it is read-only from here on
	products, err := catalog.Load(ctx, loader, logger)
	if err != nil {
		return fmt.Errorf("failed to load catalogue: %w", err)
	}

	// Initialize the session cart store
	cartStore := cart.NewStore(&cart.StoreConfig{TTL: cfg.Cart.SessionTTL()}, logger)
	defer cartStore.Close()

	// Initialize mail relay
	var relay mail.Relay
	if cfg.Mail.Enabled() {
		relay = mail.NewEmailJSRelay(mail.EmailJSConfig{
			Endpoint:   cfg.Mail.Endpoint,
			ServiceID:  cfg.Mail.ServiceID,
			TemplateID: cfg.Mail.TemplateID,
			PublicKey:  cfg.Mail.PublicKey,
			PrivateKey: cfg.Mail.PrivateKey,
			Timeout:    cfg.Mail.Timeout(),
		}, nil, logger)
	} else {
		logger.Warn().Msg("mail relay not configured, contact messages will only be logged")
		relay = mail.NewLogRelay(logger)
	}

	// Initialize services
	catalogService := service.NewCatalogService(products, logger)
	cartService := service.NewCartService(cartStore, products, logger)
	contactService := service.NewContactService(relay, logger)

	// Initialize HTTP handlers
	catalogHandler := handler.NewCatalogHandler(catalogService, logger)
	cartHandler := handler.NewCartHandler(cartService, logger)
	contactHandler := handler.NewContactHandler(contactService, logger)

	// Initialize router
	mux := router.New(catalogHandler, cartHandler, contactHandler, router.Config{
		AllowedOrigin:     cfg.Server.AllowedOrigin,
		SessionCookieName: cfg.Cart.CookieName,
		SessionTTL:        cfg.Cart.SessionTTL(),
	}, logger)

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
			Int("products", products.Size()).
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

// newCatalogLoader builds the loader for the configured source. The returned
// cleanup releases any connections the loader holds.
func newCatalogLoader(ctx context.Context, cfg *config.Config, logger zerolog.Logger) (catalog.Loader, func(), error) {
	noop := func() {}

	switch cfg.Catalog.Source {
	case config.CatalogSourceFile:
		logger.Info().Str("dir", cfg.Catalog.Dir).Msg("loading catalogue from local files")
		return catalog.NewFileLoader(cfg.Catalog.Dir, logger), noop, nil

	case config.CatalogSourceS3:
		fileLoader := catalog.NewFileLoader(cfg.Catalog.Dir, logger)
		s3Loader, err := catalog.NewS3Loader(ctx, cfg.S3.Bucket, cfg.S3.Region, cfg.S3.Prefix, logger)
		if err != nil {
			logger.Warn().
				Err(err).
				Msg("failed to initialise S3 loader, falling back to local file system only")
			return fileLoader, noop, nil
		}
		return catalog.NewFallbackLoader(s3Loader, fileLoader, logger), noop, nil

	case config.CatalogSourcePostgres:
		pool, err := database.NewPool(ctx, cfg.Database, logger)
		if err != nil {
			return nil, noop, fmt.Errorf("failed to initialize database: %w", err)
		}
		if err := database.EnsureSchema(ctx, pool, logger); err != nil {
			pool.Close()
			return nil, noop, fmt.Errorf("failed to prepare catalogue schema: %w", err)
		}
		repo := repository.NewProductRepository(pool, logger)
		return repository.NewCatalogLoader(repo), pool.Close, nil

	default:
		logger.Info().Msg("using embedded catalogue")
		return catalog.NewEmbeddedLoader(logger), noop, nil
	}
}
