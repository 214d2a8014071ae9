package exclusions

import (
	"context"

	"wot/internal/apperr"
	"wot/internal/infra/dbx"
)

type Repository struct {
	db dbx.Querier
}

func NewRepository(db dbx.Querier) *Repository {
	return &Repository{db: db}
}

func (r *Repository) ExcludedToilets(ctx context.Context, userID int64) (map[int64]struct{}, error) {
	query := `
		SELECT i.toilet_id
		FROM toilet_reports tr
		JOIN interactions i ON i.id = tr.interaction_id
		WHERE i.user_id = $1
	`
	return r.idSet(ctx, "excluded toilets", query, userID)
}

func (r *Repository) ExcludedComments(ctx context.Context, userID int64) (map[int64]struct{}, error) {
	query := `
		SELECT hc.comment_id
		FROM hidden_comments hc
		JOIN interactions i ON i.id = hc.interaction_id
		WHERE i.user_id = $1
	`
	return r.idSet(ctx, "excluded comments", query, userID)
}

func (r *Repository) idSet(ctx context.Context, op, query string, userID int64) (map[int64]struct{}, error) {
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, apperr.Persistence(op, err)
	}
	defer rows.Close()

	set := make(map[int64]struct{})
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, apperr.Persistence(op, err)
		}
		set[id] = struct{}{}
	}
	if err := rows.Err(); err != nil {
		return nil, apperr.Persistence(op, err)
	}
	return set, nil
}

// ReportToilet records the report of an interaction. Reporting again replaces the type.
func (r *Repository) ReportToilet(ctx context.Context, interactionID, reportTypeID int64) error {
	query := `
		INSERT INTO toilet_reports (interaction_id, report_type_id)
		VALUES ($1, $2)
		ON CONFLICT (interaction_id) DO UPDATE
		SET report_type_id = EXCLUDED.report_type_id, created_at = NOW()
	`
	if _, err := r.db.Exec(ctx, query, interactionID, reportTypeID); err != nil {
		return apperr.Persistence("report toilet", err)
	}
	return nil
}

func (r *Repository) HideComment(ctx context.Context, interactionID, commentID int64) error {
	query := `
		INSERT INTO hidden_comments (interaction_id, comment_id)
		VALUES ($1, $2)
		ON CONFLICT (interaction_id, comment_id) DO NOTHING
	`
	if _, err := r.db.Exec(ctx, query, interactionID, commentID); err != nil {
		return apperr.Persistence("hide comment", err)
	}
	return nil
}

// UnhideComment removes a hide of the user, if any.
func (r *Repository) UnhideComment(ctx context.Context, userID, commentID int64) error {
	query := `
		DELETE FROM hidden_comments hc
		USING interactions i
		WHERE i.id = hc.interaction_id AND i.user_id = $1 AND hc.comment_id = $2
	`
	if _, err := r.db.Exec(ctx, query, userID, commentID); err != nil {
		return apperr.Persistence("unhide comment", err)
	}
	return nil
}
