package server

import (
	"time"

	"github.com/placerank/placerank/internal/listing"
)

// Server holds the dependencies, configuration, and runtime state required
// to handle HTTP requests.
type Server struct {
	// listing computes ranked server listings for inbound queries, backed
	// by the upstream fetcher and the freshness cache.
	listing *listing.Service

	// allowedGames is a set of hashed gameIds (using xxhash) this instance
	// agrees to serve. An empty set means any gameId is served.
	allowedGames map[uint64]struct{}

	// corsOrigin is the value served in the Access-Control-Allow-Origin
	// response header.
	corsOrigin string

	// defaultLimit replaces an absent or non-numeric limit parameter
	// before the listing service applies its clamp.
	defaultLimit int

	// rateLimitCount is the maximum number of requests allowed per IP
	// address within the rateLimitWin duration. Zero disables limiting.
	rateLimitCount int

	// rateLimitWin is the time window duration for the rate limiter.
	rateLimitWin time.Duration

	// trustProxy indicates whether the server should trust headers like
	// X-Forwarded-For or CF-Connecting-IP when determining the client's
	// real IP address.
	trustProxy bool
}
