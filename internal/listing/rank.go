package listing

import (
	"sort"

	"github.com/placerank/placerank/internal/models"
)

// Frame rates above this threshold earn the smooth-server bonus.
const smoothFPSThreshold = 30

// score orders servers for ranking. Player count dominates, a smooth frame
// rate adds a small bonus; ping and capacity deliberately do not participate.
// The score is internal to ranking and never serialized.
func score(s models.ServerInfo) int {
	v := s.Players * 10
	if s.FPS > smoothFPSThreshold {
		v += 5
	}

	return v
}

// rankServers sorts best first. The sort is stable, equal scores keep their
// upstream arrival order.
func rankServers(servers []models.ServerInfo) {
	sort.SliceStable(servers, func(i, j int) bool {
		return score(servers[i]) > score(servers[j])
	})
}

// truncateServers returns at most limit entries from the ranked slice.
func truncateServers(servers []models.ServerInfo, limit int) []models.ServerInfo {
	if limit >= len(servers) {
		return servers
	}

	return servers[:limit]
}
