package main

import (
	"context"
	"time"
)

// refreshViewsEvery rebuilds the aggregate views now and then on every tick
// until ctx is done.
func (app *application) refreshViewsEvery(ctx context.Context, interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		// Run once immediately
		app.refreshViews(ctx)

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				app.refreshViews(ctx)
			}
		}
	}()
}

func (app *application) refreshViews(ctx context.Context) {
	start := time.Now()
	if err := app.views.Refresh(ctx); err != nil {
		app.logger.Errorf("Error refreshing aggregate views: %v", err)
		return
	}
	app.logger.Infow("aggregate views refreshed", "took", time.Since(start))
}
