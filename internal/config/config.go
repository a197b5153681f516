// Package config handles the parsing and validation of application configuration
// from command-line arguments and environment variables.
package config

import (
	"os"
	"time"

	"github.com/jessevdk/go-flags"
	"github.com/placerank/placerank/internal/logger"
	"github.com/placerank/placerank/internal/vars"
)

// Config represents the complete application flags configuration.
type Config struct {
	// betteralign:ignore

	Server    Server        `group:"Server Options" env-namespace:"PLACERANK"`
	Upstream  Upstream      `group:"Upstream Options" namespace:"upstream" env-namespace:"PLACERANK_UPSTREAM"`
	Listing   Listing       `group:"Listing Options" namespace:"listing" env-namespace:"PLACERANK_LISTING"`
	Cache     Cache         `group:"Cache Options" namespace:"cache" env-namespace:"PLACERANK_CACHE"`
	RateLimit RateLimit     `group:"Rate Limit Options" namespace:"rate-limit" env-namespace:"PLACERANK_RATE_LIMIT"`
	Logger    logger.Config `group:"Logger Options" namespace:"log" env-namespace:"PLACERANK_LOG"`

	Version bool `short:"v" long:"version" description:"Print version and build info"`
}

// Server holds web server configuration.
type Server struct {
	// betteralign:ignore

	Address      string   `short:"l" long:"address" env:"LISTEN_ADDRESS" description:"Server listen address" default:":3000"`
	AllowedGames []string `short:"a" long:"allowed-game" env:"ALLOWED_GAMES" description:"Optional list of gameIds this instance serves, empty allows any" env-delim:","`
	CORSOrigin   string   `long:"cors-origin" env:"CORS_ORIGIN" description:"Value of the Access-Control-Allow-Origin response header" default:"*"`
	TrustProxy   bool     `long:"trust-proxy" env:"TRUST_PROXY" description:"Trust X-Forwarded-For headers"`
}

// Upstream holds games API client configuration.
type Upstream struct {
	// betteralign:ignore

	URL      string        `long:"url" env:"URL" description:"Base URL of the games API" default:"https://games.roblox.com"`
	PageSize int           `long:"page-size" env:"PAGE_SIZE" description:"Records requested per upstream page" default:"100"`
	Timeout  time.Duration `long:"timeout" env:"TIMEOUT" description:"HTTP timeout per upstream call" default:"10s"`
}

// Listing holds aggregation and ranking configuration.
type Listing struct {
	// betteralign:ignore

	MaxPages     int           `long:"max-pages" env:"MAX_PAGES" description:"Maximum upstream pages fetched per listing" default:"3"`
	PageDelay    time.Duration `long:"page-delay" env:"PAGE_DELAY" description:"Pause between successive upstream page fetches" default:"300ms"`
	DefaultLimit int           `long:"default-limit" env:"DEFAULT_LIMIT" description:"Listing size when the limit parameter is absent or invalid" default:"30"`
	MaxLimit     int           `long:"max-limit" env:"MAX_LIMIT" description:"Upper bound for the limit parameter" default:"100"`
}

// Cache holds freshness cache configuration.
type Cache struct {
	// betteralign:ignore

	TTL     time.Duration `long:"ttl" env:"TTL" description:"How long a computed listing stays fresh" default:"20s"`
	Cleanup time.Duration `long:"cleanup" env:"CLEANUP" description:"Janitor interval for purging stale entries, 0 keeps them until overwritten" default:"0"`
}

// RateLimit holds API rate limiting configuration.
type RateLimit struct {
	// betteralign:ignore

	Count  int           `long:"count" env:"COUNT" description:"Requests allowed per client IP within the window, 0 disables limiting" default:"120"`
	Window time.Duration `long:"window" env:"WINDOW" description:"Rate limit window duration" default:"1m"`
}

// Parse reads the configuration from flags and environment variables.
// It terminates the application if the configuration is invalid or if the help flag is invoked.
func Parse() *Config {
	var cfg Config
	parser := flags.NewParser(&cfg, flags.Default)
	parser.NamespaceDelimiter = "-"

	_, err := parser.Parse()
	if err != nil {
		if flagsErr, ok := err.(*flags.Error); ok {
			if flagsErr.Type == flags.ErrHelp {
				os.Exit(0)
			}
		}
		os.Exit(1)
	}

	if cfg.Version {
		vars.Print()
		os.Exit(0)
	}

	return &cfg
}
