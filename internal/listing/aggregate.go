package listing

import (
	"context"
	"time"

	"github.com/placerank/placerank/internal/roblox"
)

// aggregate collects raw server records for gameID by driving the fetcher
// page by page. Pages are sequential because each needs the previous page's
// continuation cursor. Termination conditions, checked after each page in
// this precedence:
//
//  1. the page budget is spent (hard stop regardless of remaining data),
//  2. the upstream returned no continuation cursor,
//  3. enough records accumulated for ranking to pick from (2x the limit).
//
// When continuing, a courtesy pause runs before the next fetch, never after
// the final page. Any fetch error aborts the whole aggregation immediately.
func (s *Service) aggregate(ctx context.Context, gameID string, limit int) ([]roblox.ServerRecord, error) {
	records := make([]roblox.ServerRecord, 0, 2*limit)

	cursor := ""
	for page := 1; ; page++ {
		result, err := s.fetcher.FetchPage(ctx, gameID, cursor)
		if err != nil {
			return nil, err
		}

		records = append(records, result.Data...)

		if page >= s.options.MaxPages {
			break
		}
		if result.NextPageCursor == "" {
			break
		}
		if len(records) >= 2*limit {
			break
		}

		cursor = result.NextPageCursor

		select {
		case <-time.After(s.options.PageDelay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	return records, nil
}
