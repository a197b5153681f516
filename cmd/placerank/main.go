// main is the entry point of the placerank application.
// It initializes the configuration, logger, cache, upstream client, and starts the HTTP server.
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/placerank/placerank/internal/cache"
	"github.com/placerank/placerank/internal/config"
	"github.com/placerank/placerank/internal/listing"
	"github.com/placerank/placerank/internal/logger"
	"github.com/placerank/placerank/internal/roblox"
	"github.com/placerank/placerank/internal/server"
	"github.com/rs/zerolog/log"
)

func main() {
	// Optional .env for local development, real environment wins
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Warn().Err(err).Msg("Failed to load .env file")
	}

	cfg := config.Parse()

	logger.Setup(cfg.Logger)
	log.Info().Msg("Starting placerank service...")

	// Freshness cache
	store := cache.New(cfg.Cache.TTL, cfg.Cache.Cleanup)

	// Upstream client and listing pipeline
	fetcher := roblox.NewClient(cfg.Upstream)
	svc := listing.New(fetcher, store, cfg.Listing)

	// Init server
	srvHandler := server.New(svc, cfg)

	// Write timeout leaves room for a cold aggregation: up to three
	// upstream calls plus the pauses between them
	httpServer := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      srvHandler.Run(),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 35 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Str("address", cfg.Server.Address).Msg("Server listening")
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server failed")
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}
