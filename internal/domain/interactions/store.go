package interactions

import (
	"context"
	"time"

	"wot/internal/apperr"
	"wot/internal/infra/dbx"
)

// Interaction links a user to a toilet. Comments, reports and hidden comments hang off it.
type Interaction struct {
	ID        int64     `json:"id"`
	ToiletID  int64     `json:"toiletId"`
	UserID    int64     `json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
}

type Store interface {
	GetOrCreate(ctx context.Context, toiletID, userID int64) (*Interaction, error)
}

type Repository struct {
	db dbx.Querier
}

func NewRepository(db dbx.Querier) *Repository {
	return &Repository{db: db}
}

// GetOrCreate returns the (toilet, user) interaction, inserting it on first use.
// The no-op update makes RETURNING yield the existing row on conflict.
func (r *Repository) GetOrCreate(ctx context.Context, toiletID, userID int64) (*Interaction, error) {
	query := `
		INSERT INTO interactions (toilet_id, user_id)
		VALUES ($1, $2)
		ON CONFLICT (toilet_id, user_id) DO UPDATE SET toilet_id = EXCLUDED.toilet_id
		RETURNING id, toilet_id, user_id, created_at
	`
	var i Interaction
	if err := r.db.QueryRow(ctx, query, toiletID, userID).Scan(&i.ID, &i.ToiletID, &i.UserID, &i.CreatedAt); err != nil {
		return nil, apperr.Persistence("get or create interaction", err)
	}
	return &i, nil
}
