package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/placerank/placerank/internal/apierr"
	"github.com/placerank/placerank/internal/listing"
	"github.com/placerank/placerank/internal/vars"
	"github.com/rs/zerolog/log"
)

// handleServers serves the ranked public-server listing for one game.
// Query params: ?gameId=123456789&limit=30
func (s *Server) handleServers(w http.ResponseWriter, r *http.Request) {
	gameID := r.URL.Query().Get("gameId")

	// Absent or non-numeric limit falls back to the default, the listing
	// service clamps the rest
	limit := s.defaultLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil {
			limit = n
		}
	}

	// Only well-formed gameIds are subject to the allow list, malformed
	// ones fall through to validation
	if listing.ValidGameID(gameID) && !s.gameAllowed(gameID) {
		log.Debug().Str("game_id", gameID).Msg("Game not in allow list")

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusForbidden)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "Game is not served by this instance"})
		return
	}

	list, err := s.listing.List(r.Context(), gameID, limit)
	if err != nil {
		s.respondListError(w, gameID, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(list)
}

// respondListError maps pipeline failures onto the wire contract: invalid
// input becomes 400 with a fixed message, everything else 500 with the
// underlying message.
func (s *Server) respondListError(w http.ResponseWriter, gameID string, err error) {
	w.Header().Set("Content-Type", "application/json")

	var verr *apierr.ValidationError
	if errors.As(err, &verr) {
		log.Debug().Err(err).Str("game_id", gameID).Msg("Rejected invalid query")

		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "Missing or invalid gameId"})
		return
	}

	log.Error().Err(err).Str("game_id", gameID).Msg("Failed to compute listing")

	w.WriteHeader(http.StatusInternalServerError)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
}

// handleRoot is the liveness probe.
func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{
		"status":  "ok",
		"message": fmt.Sprintf("%s %s is running", vars.Name, vars.Version),
	})
}
