package db

import (
	"context"
	"fmt"
	"time"

	"github.com/lib/pq"
	"go.uber.org/zap"

	"wot/internal/infra/dbx"
	"wot/internal/metrics"
)

// AggregateViews are the materialized views behind the aggregate provider.
var AggregateViews = []string{
	"toilet_ratings_mv",
	"toilet_comment_counts_mv",
	"user_comment_counts_mv",
	"comment_reaction_counts_mv",
}

// ViewRefresher rebuilds materialized views without blocking readers.
type ViewRefresher struct {
	db     dbx.Querier
	views  []string
	logger *zap.SugaredLogger
}

func NewViewRefresher(db dbx.Querier, logger *zap.SugaredLogger, views ...string) *ViewRefresher {
	if len(views) == 0 {
		views = AggregateViews
	}
	return &ViewRefresher{db: db, views: views, logger: logger}
}

// Refresh refreshes every view in order and stops at the first failure.
func (r *ViewRefresher) Refresh(ctx context.Context) error {
	for _, view := range r.views {
		start := time.Now()
		if _, err := r.db.Exec(ctx, "REFRESH MATERIALIZED VIEW CONCURRENTLY "+pq.QuoteIdentifier(view)); err != nil {
			return fmt.Errorf("refresh %s: %w", view, err)
		}
		metrics.ObserveQuery("refresh_"+view, start)
		r.logger.Debugw("materialized view refreshed", "view", view, "took", time.Since(start))
	}
	return nil
}
