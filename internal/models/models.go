// Package models defines the data structures served by the API.
package models

// ServerInfo is the canonical description of one public game server instance.
// Every field is always present in responses; absent upstream values are
// replaced with defaults during normalization.
type ServerInfo struct {
	// JobID is the upstream instance identifier, passed through verbatim.
	JobID string `json:"jobId"`

	// Players currently connected, never negative.
	Players int `json:"players"`

	// MaxPlayers capacity of the instance, defaults to 20 when unreported.
	MaxPlayers int `json:"maxPlayers"`

	// FPS of the instance rounded to a whole number, defaults to 60.
	FPS int `json:"fps"`

	// Ping of the instance in milliseconds rounded to a whole number, defaults to 0.
	Ping int `json:"ping"`
}

// ServerList is the aggregated, ranked answer for one game.
type ServerList struct {
	// GameID the listing was computed for.
	GameID string `json:"gameId"`

	// Total is the number of records collected upstream before truncation.
	Total int `json:"total"`

	// Count is the number of servers actually returned, len(Servers).
	Count int `json:"count"`

	// Servers ordered best first.
	Servers []ServerInfo `json:"servers"`
}
