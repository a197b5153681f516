package listing

import (
	"math"

	"github.com/placerank/placerank/internal/models"
	"github.com/placerank/placerank/internal/roblox"
)

// Defaults substituted when the upstream omits or nulls a field.
const (
	defaultMaxPlayers = 20
	defaultFPS        = 60
	defaultPing       = 0
)

// canonicalize shapes one raw upstream record into its canonical form.
// Pure and total: unreported fields get defaults, fractional rates are
// rounded half away from zero, the player count never goes negative.
func canonicalize(rec roblox.ServerRecord) models.ServerInfo {
	info := models.ServerInfo{
		JobID:      rec.ID,
		MaxPlayers: defaultMaxPlayers,
		FPS:        defaultFPS,
		Ping:       defaultPing,
	}

	if rec.Playing != nil && *rec.Playing > 0 {
		info.Players = *rec.Playing
	}
	if rec.MaxPlayers != nil && *rec.MaxPlayers >= 0 {
		info.MaxPlayers = *rec.MaxPlayers
	}
	if rec.FPS != nil {
		info.FPS = int(math.Round(*rec.FPS))
	}
	if rec.Ping != nil {
		info.Ping = int(math.Round(*rec.Ping))
	}

	return info
}
