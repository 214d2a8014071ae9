package reactions

import (
	"context"
	"fmt"
	"time"

	"wot/internal/apperr"
	"wot/internal/infra/dbx"
)

type Reaction struct {
	ID        int64     `json:"id"`
	CommentID int64     `json:"commentId"`
	UserID    int64     `json:"userId"`
	Type      string    `json:"type"`
	CreatedAt time.Time `json:"createdAt"`
}

type Store interface {
	// Put sets the user's reaction on a comment, replacing any previous type.
	Put(ctx context.Context, commentID, userID, reactionTypeID int64) (*Reaction, error)
	Delete(ctx context.Context, commentID, userID int64) error
	// ListByUser returns the user's reactions, limited to commentIDs when given.
	ListByUser(ctx context.Context, userID int64, commentIDs []int64) ([]Reaction, error)
}

type Repository struct {
	db dbx.Querier
}

func NewRepository(db dbx.Querier) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Put(ctx context.Context, commentID, userID, reactionTypeID int64) (*Reaction, error) {
	query := `
		WITH up AS (
			INSERT INTO reactions (comment_id, user_id, reaction_type_id)
			VALUES ($1, $2, $3)
			ON CONFLICT (comment_id, user_id) DO UPDATE
			SET reaction_type_id = EXCLUDED.reaction_type_id, created_at = NOW()
			RETURNING id, comment_id, user_id, reaction_type_id, created_at
		)
		SELECT up.id, up.comment_id, up.user_id, rt.technical_name, up.created_at
		FROM up
		JOIN reaction_types rt ON rt.id = up.reaction_type_id
	`
	var re Reaction
	err := r.db.QueryRow(ctx, query, commentID, userID, reactionTypeID).
		Scan(&re.ID, &re.CommentID, &re.UserID, &re.Type, &re.CreatedAt)
	if err != nil {
		return nil, apperr.Persistence("put reaction", err)
	}
	return &re, nil
}

func (r *Repository) Delete(ctx context.Context, commentID, userID int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM reactions WHERE comment_id = $1 AND user_id = $2`, commentID, userID)
	if err != nil {
		return apperr.Persistence("delete reaction", err)
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("Reaction", "comment and user", fmt.Sprintf("%d/%d", commentID, userID))
	}
	return nil
}

func (r *Repository) ListByUser(ctx context.Context, userID int64, commentIDs []int64) ([]Reaction, error) {
	query := `
		SELECT r.id, r.comment_id, r.user_id, rt.technical_name, r.created_at
		FROM reactions r
		JOIN reaction_types rt ON rt.id = r.reaction_type_id
		WHERE r.user_id = $1
	`
	args := []any{userID}
	if len(commentIDs) > 0 {
		query += " AND r.comment_id = ANY($2)"
		args = append(args, commentIDs)
	}
	query += " ORDER BY r.comment_id"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, apperr.Persistence("list reactions", err)
	}
	defer rows.Close()

	out := []Reaction{}
	for rows.Next() {
		var re Reaction
		if err := rows.Scan(&re.ID, &re.CommentID, &re.UserID, &re.Type, &re.CreatedAt); err != nil {
			return nil, apperr.Persistence("scan reaction", err)
		}
		out = append(out, re)
	}
	if err := rows.Err(); err != nil {
		return nil, apperr.Persistence("iterate reactions", err)
	}
	return out, nil
}
