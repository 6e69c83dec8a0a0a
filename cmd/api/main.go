package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"rulebook/internal/config"
	"rulebook/internal/coupon"
	"rulebook/internal/database"
	"rulebook/internal/handler"
	"rulebook/internal/repository"
	"rulebook/internal/router"
	"rulebook/internal/rules"
	"rulebook/internal/service"
	"rulebook/internal/stack"

	"github.com/rs/zerolog"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logger := config.NewLogger(cfg.Logger)
	logger.Info().Msg("starting rulebook API server")

	// Resources are released in reverse order of acquisition.
	cleanups := stack.New[func()]()
	defer func() {
		for !cleanups.IsEmpty() {
			release, _ := cleanups.Pop()
			release()
		}
	}()

	ctx, cancel := context.WithCancel(context.Background())
	cleanups.Push(cancel)

	catalog, err := coupon.BuildCatalog(ctx, rules.DefaultCatalog(), &coupon.CatalogConfig{
		FilePaths: cfg.Catalog.CouponFiles,
	}, newCouponLoader(ctx, cfg, logger), logger)
	if err != nil {
		return fmt.Errorf("failed to build coupon catalog: %w", err)
	}

	drivingAges, err := rules.DefaultDrivingTable().With(cfg.Catalog.DrivingAges)
	if err != nil {
		return fmt.Errorf("failed to build driving age table: %w", err)
	}

	if cfg.Database.Enabled {
		pool, err := database.NewPool(ctx, cfg.Database, logger)
		if err != nil {
			return fmt.Errorf("failed to initialize database: %w", err)
		}
		cleanups.Push(func() {
			pool.Close()
			logger.Info().Msg("database connection pool closed")
		})

		if err := database.Migrate(ctx, pool, logger); err != nil {
			return fmt.Errorf("failed to migrate database: %w", err)
		}

		catalog, err = service.MergeStoredCoupons(ctx, catalog, repository.NewCouponRepository(pool, logger), logger)
		if err != nil {
			return err
		}

		drivingAges, err = service.MergeStoredDrivingAges(ctx, drivingAges, repository.NewDrivingAgeRepository(pool, logger), logger)
		if err != nil {
			return err
		}
	} else {
		logger.Info().Msg("database disabled, using static and file reference data only")
	}

	logger.Info().
		Int("coupons", catalog.Len()).
		Strs("countries", drivingAges.Countries()).
		Msg("reference data loaded")

	rulesService := service.NewRulesService(catalog, drivingAges, logger)
	rulesHandler := handler.NewRulesHandler(rulesService, logger)
	mux := router.New(rulesHandler, cfg.Auth.APIKey, logger)

	server := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErrors := make(chan error, 1)

	go func() {
		logger.Info().
			Str("address", cfg.Server.Address()).
			Msg("HTTP server started")
		serverErrors <- server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)
	cleanups.Push(func() { signal.Stop(shutdown) })

	select {
	case err := <-serverErrors:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		logger.Info().
			Str("signal", sig.String()).
			Msg("shutdown signal received, starting graceful shutdown")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("failed to shutdown server gracefully")
			if closeErr := server.Close(); closeErr != nil {
				logger.Error().Err(closeErr).Msg("failed to close server")
			}
			return fmt.Errorf("server shutdown failed: %w", err)
		}

		logger.Info().Msg("server shutdown completed")
	}

	return nil
}

// newCouponLoader returns the loader for catalog files: S3 with local
// fallback when S3 is enabled and reachable, local files otherwise.
func newCouponLoader(ctx context.Context, cfg *config.Config, logger zerolog.Logger) coupon.Loader {
	fileLoader := coupon.NewFileLoader(logger)

	if !cfg.S3.Enabled {
		logger.Info().Msg("using local file system for coupon files (S3 disabled)")
		return fileLoader
	}

	s3Loader, err := coupon.NewS3Loader(ctx, cfg.S3.Bucket, cfg.S3.Region, logger)
	if err != nil {
		logger.Warn().
			Err(err).
			Msg("failed to initialise S3 loader, falling back to local file system only")
		return fileLoader
	}

	return coupon.NewFallbackLoader(s3Loader, fileLoader, cfg.S3.Prefix, logger)
}
