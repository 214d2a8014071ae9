package aggregates

import (
	"context"
	"time"

	"wot/internal/apperr"
	"wot/internal/infra/dbx"
	"wot/internal/metrics"
)

// Repository reads the aggregate materialized views, one statement per call.
type Repository struct {
	db dbx.Querier
}

func NewRepository(db dbx.Querier) *Repository {
	return &Repository{db: db}
}

func (r *Repository) RatingsFor(ctx context.Context, toiletIDs []int64) (map[int64]Rating, error) {
	out := make(map[int64]Rating, len(toiletIDs))
	if len(toiletIDs) == 0 {
		return out, nil
	}
	defer metrics.ObserveQuery("ratings_for", time.Now())

	query := `
		SELECT toilet_id, avg_clean, avg_structure, avg_accessibility, ratio_paper, total_ratings
		FROM toilet_ratings_mv
		WHERE toilet_id = ANY($1)
	`
	rows, err := r.db.Query(ctx, query, toiletIDs)
	if err != nil {
		return nil, apperr.Persistence("query toilet ratings", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id int64
			rt Rating
		)
		if err := rows.Scan(&id, &rt.AvgClean, &rt.AvgStructure, &rt.AvgAccessibility, &rt.RatioPaper, &rt.Total); err != nil {
			return nil, apperr.Persistence("scan toilet rating", err)
		}
		out[id] = rt
	}
	if err := rows.Err(); err != nil {
		return nil, apperr.Persistence("iterate toilet ratings", err)
	}
	return out, nil
}

func (r *Repository) ToiletCommentCountsFor(ctx context.Context, toiletIDs []int64) (map[int64]int, error) {
	return r.counts(ctx, "toilet_comment_counts_for",
		`SELECT toilet_id, comment_count FROM toilet_comment_counts_mv WHERE toilet_id = ANY($1)`,
		toiletIDs)
}

func (r *Repository) UserCommentCountsFor(ctx context.Context, userIDs []int64) (map[int64]int, error) {
	return r.counts(ctx, "user_comment_counts_for",
		`SELECT user_id, comment_count FROM user_comment_counts_mv WHERE user_id = ANY($1)`,
		userIDs)
}

func (r *Repository) ReactionCountsFor(ctx context.Context, commentIDs []int64) (map[int64]ReactionCount, error) {
	out := make(map[int64]ReactionCount, len(commentIDs))
	if len(commentIDs) == 0 {
		return out, nil
	}
	defer metrics.ObserveQuery("reaction_counts_for", time.Now())

	query := `
		SELECT comment_id, likes, dislikes
		FROM comment_reaction_counts_mv
		WHERE comment_id = ANY($1)
	`
	rows, err := r.db.Query(ctx, query, commentIDs)
	if err != nil {
		return nil, apperr.Persistence("query reaction counts", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id int64
			rc ReactionCount
		)
		if err := rows.Scan(&id, &rc.Likes, &rc.Dislikes); err != nil {
			return nil, apperr.Persistence("scan reaction count", err)
		}
		out[id] = rc
	}
	if err := rows.Err(); err != nil {
		return nil, apperr.Persistence("iterate reaction counts", err)
	}
	return out, nil
}

func (r *Repository) counts(ctx context.Context, op, query string, ids []int64) (map[int64]int, error) {
	out := make(map[int64]int, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	defer metrics.ObserveQuery(op, time.Now())

	rows, err := r.db.Query(ctx, query, ids)
	if err != nil {
		return nil, apperr.Persistence(op, err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id int64
			n  int
		)
		if err := rows.Scan(&id, &n); err != nil {
			return nil, apperr.Persistence(op, err)
		}
		out[id] = n
	}
	if err := rows.Err(); err != nil {
		return nil, apperr.Persistence(op, err)
	}
	return out, nil
}
