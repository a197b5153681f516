// Package server implements the HTTP server, middleware, and request handlers for the application.
package server

import (
	"net/http"

	"github.com/cespare/xxhash/v2"
	"github.com/placerank/placerank/internal/config"
	"github.com/placerank/placerank/internal/listing"
	"github.com/placerank/placerank/internal/metrics"
)

// New creates a new Server instance around the listing service and the
// provided configuration.
func New(svc *listing.Service, cfg *config.Config) *Server {
	gameSet := make(map[uint64]struct{})
	for _, id := range cfg.Server.AllowedGames {
		hash := xxhash.Sum64String(id)
		gameSet[hash] = struct{}{}
	}

	return &Server{
		listing:        svc,
		allowedGames:   gameSet,
		corsOrigin:     cfg.Server.CORSOrigin,
		defaultLimit:   cfg.Listing.DefaultLimit,
		rateLimitCount: cfg.RateLimit.Count,
		rateLimitWin:   cfg.RateLimit.Window,
		trustProxy:     cfg.Server.TrustProxy,
	}
}

// Run configures the HTTP routes and returns the main handler.
func (s *Server) Run() http.Handler {
	mux := http.NewServeMux()

	mux.Handle("GET /servers", s.RateLimitMiddleware(http.HandlerFunc(s.handleServers)))
	mux.Handle("GET /", http.HandlerFunc(s.handleRoot))

	metrics.Register(mux)

	return s.LoggingMiddleware(s.CORSMiddleware(mux))
}

// gameAllowed reports whether this instance serves the given gameId.
func (s *Server) gameAllowed(gameID string) bool {
	if len(s.allowedGames) == 0 {
		return true
	}

	hash := xxhash.Sum64String(gameID)
	_, allowed := s.allowedGames[hash]

	return allowed
}
