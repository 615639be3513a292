package client

// Availability probe.  The frontend polls /health on an interval and
// flips a banner when the store goes away; PollHealth reproduces that,
// with singleflight collapsing concurrent probes so a slow API never
// stacks requests.

import (
	"context"
	"net/http"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/pamirmotors/pamir/internal/health"
)

var healthGroup singleflight.Group

// Health probes the API.  On any failure a synthetic Disconnected report
// is returned rather than an error, matching the banner semantics.
func (c *Client) Health(ctx context.Context) health.Report {
	v, err, _ := healthGroup.Do(c.baseURL, func() (any, error) {
		var r health.Report
		if err := c.do(ctx, http.MethodGet, "/health", nil, &r); err != nil {
			return nil, err
		}
		return r, nil
	})
	if err != nil {
		c.log.Warnw("health probe failed", "err", err)
		return health.Report{
			Status:    "OK",
			Timestamp: time.Now().UTC(),
			Database:  "Disconnected",
		}
	}
	return v.(health.Report)
}

// PollHealth probes every interval and sends each report on the returned
// channel until ctx is cancelled.  The first report is sent immediately.
func (c *Client) PollHealth(ctx context.Context, interval time.Duration) <-chan health.Report {
	out := make(chan health.Report, 1)
	go func() {
		defer close(out)
		tick := time.NewTicker(interval)
		defer tick.Stop()
		for {
			select {
			case out <- c.Health(ctx):
			case <-ctx.Done():
				return
			}
			select {
			case <-tick.C:
			case <-ctx.Done():
				return
			}
		}
	}()
	return out
}
