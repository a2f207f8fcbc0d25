package digest

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/openhire/matchengine/internal/types"
)

// Schedule intervals for saved searches. Unknown schedules are treated as
// daily.
var scheduleIntervals = map[string]time.Duration{
	"hourly": time.Hour,
	"daily":  24 * time.Hour,
	"weekly": 7 * 24 * time.Hour,
}

// Due reports whether a saved search's schedule calls for a new digest.
func Due(search types.SavedSearch, now time.Time) bool {
	if search.LastRunAt == nil {
		return true
	}
	interval, ok := scheduleIntervals[search.Schedule]
	if !ok {
		interval = scheduleIntervals["daily"]
	}
	return now.Sub(*search.LastRunAt) >= interval
}

// RunAll generates digests for the given searches with bounded concurrency.
// Each generation reads its own job pool snapshot and performs its own
// transactional write; a failure cancels the remaining generations.
func (g *Generator) RunAll(ctx context.Context, searches []types.SavedSearch, concurrency int) ([]*types.Digest, error) {
	if concurrency < 1 {
		concurrency = 1
	}

	digests := make([]*types.Digest, len(searches))
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(concurrency)

	for i := range searches {
		eg.Go(func() error {
			d, err := g.Generate(ctx, searches[i])
			if err != nil {
				return err
			}
			digests[i] = d
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return digests, nil
}
