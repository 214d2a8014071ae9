package enrich

import (
	"time"

	"wot/internal/domain/aggregates"
)

// ToiletView is a toilet with its rating, comment count and extras.
type ToiletView struct {
	ID          int64             `json:"id"`
	Name        string            `json:"name"`
	Address     string            `json:"address"`
	Latitude    float64           `json:"latitude"`
	Longitude   float64           `json:"longitude"`
	PlaceID     *string           `json:"placeId,omitempty"`
	State       string            `json:"state"`
	Access      string            `json:"access"`
	CreatedAt   time.Time         `json:"createdAt"`
	Rating      aggregates.Rating `json:"rating"`
	NumComments int               `json:"numComments"`
	Extras      []string          `json:"extras"`
	// DistanceKm is set only when the listing had an origin.
	DistanceKm *float64 `json:"distanceKm,omitempty"`
}

// CommentView is a comment with its reaction counts and its author's comment count.
type CommentView struct {
	ID                  int64     `json:"id"`
	ToiletID            int64     `json:"toiletId"`
	UserID              int64     `json:"userId"`
	Text                string    `json:"text"`
	RatingClean         int       `json:"ratingClean"`
	RatingPaper         bool      `json:"ratingPaper"`
	RatingStructure     int       `json:"ratingStructure"`
	RatingAccessibility int       `json:"ratingAccessibility"`
	Score               int       `json:"score"`
	CreatedAt           time.Time `json:"datetime"`
	NumLikes            int       `json:"numLikes"`
	NumDislikes         int       `json:"numDislikes"`
	UserNumComments     int       `json:"userNumComments"`
}
