package config

import (
	"testing"
	"time"

	"github.com/jessevdk/go-flags"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// parse runs the go-flags parser the same way Parse does, without
// touching os.Args or exiting.
func parse(t *testing.T, args ...string) *Config {
	t.Helper()

	var cfg Config
	parser := flags.NewParser(&cfg, flags.None)
	parser.NamespaceDelimiter = "-"

	_, err := parser.ParseArgs(args)
	require.NoError(t, err)

	return &cfg
}

func TestParse_Defaults(t *testing.T) {
	cfg := parse(t)

	assert.Equal(t, ":3000", cfg.Server.Address)
	assert.Empty(t, cfg.Server.AllowedGames)
	assert.Equal(t, "*", cfg.Server.CORSOrigin)
	assert.False(t, cfg.Server.TrustProxy)

	assert.Equal(t, "https://games.roblox.com", cfg.Upstream.URL)
	assert.Equal(t, 100, cfg.Upstream.PageSize)
	assert.Equal(t, 10*time.Second, cfg.Upstream.Timeout)

	assert.Equal(t, 3, cfg.Listing.MaxPages)
	assert.Equal(t, 300*time.Millisecond, cfg.Listing.PageDelay)
	assert.Equal(t, 30, cfg.Listing.DefaultLimit)
	assert.Equal(t, 100, cfg.Listing.MaxLimit)

	assert.Equal(t, 20*time.Second, cfg.Cache.TTL)
	assert.Equal(t, time.Duration(0), cfg.Cache.Cleanup)

	assert.Equal(t, 120, cfg.RateLimit.Count)
	assert.Equal(t, time.Minute, cfg.RateLimit.Window)
}

func TestParse_EnvOverrides(t *testing.T) {
	envVars := map[string]string{
		"PLACERANK_LISTEN_ADDRESS":    ":8080",
		"PLACERANK_ALLOWED_GAMES":     "111,222",
		"PLACERANK_CORS_ORIGIN":       "https://app.example.com",
		"PLACERANK_TRUST_PROXY":       "true",
		"PLACERANK_UPSTREAM_URL":      "http://127.0.0.1:9999",
		"PLACERANK_UPSTREAM_TIMEOUT":  "2s",
		"PLACERANK_LISTING_MAX_PAGES": "5",
		"PLACERANK_CACHE_TTL":         "45s",
		"PLACERANK_RATE_LIMIT_COUNT":  "10",
	}
	for k, v := range envVars {
		t.Setenv(k, v)
	}

	cfg := parse(t)

	assert.Equal(t, ":8080", cfg.Server.Address)
	assert.Equal(t, []string{"111", "222"}, cfg.Server.AllowedGames)
	assert.Equal(t, "https://app.example.com", cfg.Server.CORSOrigin)
	assert.True(t, cfg.Server.TrustProxy)
	assert.Equal(t, "http://127.0.0.1:9999", cfg.Upstream.URL)
	assert.Equal(t, 2*time.Second, cfg.Upstream.Timeout)
	assert.Equal(t, 5, cfg.Listing.MaxPages)
	assert.Equal(t, 45*time.Second, cfg.Cache.TTL)
	assert.Equal(t, 10, cfg.RateLimit.Count)
}

func TestParse_FlagOverrides(t *testing.T) {
	cfg := parse(t,
		"-l", ":9000",
		"-a", "111",
		"-a", "222",
		"--upstream-timeout", "2s",
		"--listing-max-pages", "7",
		"--listing-page-delay", "50ms",
		"--cache-ttl", "5s",
		"--rate-limit-count", "0",
	)

	assert.Equal(t, ":9000", cfg.Server.Address)
	assert.Equal(t, []string{"111", "222"}, cfg.Server.AllowedGames)
	assert.Equal(t, 2*time.Second, cfg.Upstream.Timeout)
	assert.Equal(t, 7, cfg.Listing.MaxPages)
	assert.Equal(t, 50*time.Millisecond, cfg.Listing.PageDelay)
	assert.Equal(t, 5*time.Second, cfg.Cache.TTL)
	assert.Equal(t, 0, cfg.RateLimit.Count)
}

func TestParse_FlagsBeatEnv(t *testing.T) {
	t.Setenv("PLACERANK_LISTING_MAX_PAGES", "5")

	cfg := parse(t, "--listing-max-pages", "7")

	assert.Equal(t, 7, cfg.Listing.MaxPages)
}
