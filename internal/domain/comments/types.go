package comments

import (
	"context"
	"time"

	"wot/internal/params"
)

type Comment struct {
	ID                  int64     `json:"id"`
	InteractionID       int64     `json:"-"`
	ToiletID            int64     `json:"toiletId"`
	UserID              int64     `json:"userId"`
	Text                string    `json:"text"`
	RatingClean         int       `json:"ratingClean"`
	RatingPaper         bool      `json:"ratingPaper"`
	RatingStructure     int       `json:"ratingStructure"`
	RatingAccessibility int       `json:"ratingAccessibility"`
	Score               int       `json:"score"`
	CreatedAt           time.Time `json:"datetime"`
}

// Filter needs ToiletID, UserID or both. Requester only affects ordering:
// with ToiletID set, the requester's own comments come first.
type Filter struct {
	ToiletID  *int64
	UserID    *int64
	Requester *int64
	Exclude   map[int64]struct{}
}

type Store interface {
	List(ctx context.Context, filter Filter, page *params.Page) ([]Comment, error)
	GetByID(ctx context.Context, id int64) (*Comment, error)
	// Create inserts c under c.InteractionID and fills ID, Score and CreatedAt.
	Create(ctx context.Context, c *Comment) error
	// Delete removes the comment with its reactions and hides.
	Delete(ctx context.Context, id int64) error
}
