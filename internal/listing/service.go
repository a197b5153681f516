// Package listing computes ranked public-server listings for a game.
// It drives the upstream fetcher across pages, normalizes and ranks the
// collected records and keeps finished listings in a short-lived cache.
package listing

import (
	"context"
	"time"

	"github.com/placerank/placerank/internal/apierr"
	"github.com/placerank/placerank/internal/cache"
	"github.com/placerank/placerank/internal/config"
	"github.com/placerank/placerank/internal/metrics"
	"github.com/placerank/placerank/internal/models"
	"github.com/placerank/placerank/internal/roblox"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/singleflight"
)

// MinLimit is the smallest listing size a caller can request.
// Non-positive limits are raised to it instead of passing through.
const MinLimit = 1

// Fetcher retrieves one raw page of public servers for a game.
// *roblox.Client is the production implementation.
type Fetcher interface {
	FetchPage(ctx context.Context, gameID, cursor string) (*roblox.Page, error)
}

// Service owns the full listing pipeline for inbound queries.
type Service struct {
	fetcher Fetcher
	cache   *cache.Cache
	group   singleflight.Group
	options config.Listing
}

// New creates a Service around the given fetcher and cache.
func New(fetcher Fetcher, store *cache.Cache, options config.Listing) *Service {
	return &Service{
		fetcher: fetcher,
		cache:   store,
		options: options,
	}
}

// List returns the ranked server listing for gameID, at most limit entries.
// A fresh cached listing is returned verbatim, without re-ranking, so within
// the TTL the first computation's limit wins. Concurrent misses for the same
// gameID share a single upstream aggregation. Callers get either a complete
// listing or an error, never a partial result.
func (s *Service) List(ctx context.Context, gameID string, limit int) (*models.ServerList, error) {
	if !ValidGameID(gameID) {
		return nil, apierr.NewValidationError("gameId", "must be a numeric identifier")
	}

	limit = clampLimit(limit, s.options.MaxLimit)

	if list, ok := s.cache.Get(gameID); ok {
		metrics.CacheLookups.WithLabelValues("hit").Inc()
		return list, nil
	}
	metrics.CacheLookups.WithLabelValues("miss").Inc()

	value, err, _ := s.group.Do(gameID, func() (any, error) {
		// Detached from the inbound request: the aggregation runs to
		// completion or failure even if the caller that started it is
		// gone, coalesced callers still need the result.
		return s.compute(context.WithoutCancel(ctx), gameID, limit)
	})
	if err != nil {
		return nil, err
	}

	return value.(*models.ServerList), nil
}

// compute runs the full pipeline for one cache miss and stores the result.
func (s *Service) compute(ctx context.Context, gameID string, limit int) (*models.ServerList, error) {
	start := time.Now()

	records, err := s.aggregate(ctx, gameID, limit)
	if err != nil {
		return nil, err
	}

	servers := make([]models.ServerInfo, 0, len(records))
	for _, rec := range records {
		servers = append(servers, canonicalize(rec))
	}

	rankServers(servers)

	total := len(servers)
	servers = truncateServers(servers, limit)

	list := &models.ServerList{
		GameID:  gameID,
		Total:   total,
		Count:   len(servers),
		Servers: servers,
	}

	s.cache.Set(gameID, list)
	metrics.CacheEntries.Set(float64(s.cache.ItemCount()))
	metrics.ListDuration.Observe(time.Since(start).Seconds())

	log.Debug().
		Str("game_id", gameID).
		Int("total", total).
		Int("count", list.Count).
		Dur("duration", time.Since(start)).
		Msg("Listing computed")

	return list, nil
}

// ValidGameID reports whether id looks like a numeric upstream identifier.
func ValidGameID(id string) bool {
	if id == "" {
		return false
	}

	for _, r := range id {
		if r < '0' || r > '9' {
			return false
		}
	}

	return true
}

// clampLimit bounds limit to [MinLimit, maxLimit].
func clampLimit(limit, maxLimit int) int {
	if limit < MinLimit {
		return MinLimit
	}
	if limit > maxLimit {
		return maxLimit
	}

	return limit
}
