package aggregates

import "context"

// Rating is the averaged comment rating of a toilet. The zero value is the
// default for toilets nobody has rated yet.
type Rating struct {
	AvgClean         float64 `json:"avgClean"`
	AvgStructure     float64 `json:"avgStructure"`
	AvgAccessibility float64 `json:"avgAccessibility"`
	RatioPaper       float64 `json:"ratioPaper"`
	Total            int     `json:"totalRatings"`
}

type ReactionCount struct {
	Likes    int `json:"likes"`
	Dislikes int `json:"dislikes"`
}

// Provider returns precomputed aggregates keyed by id. Ids without a row are
// absent from the result; callers apply their own defaults.
type Provider interface {
	RatingsFor(ctx context.Context, toiletIDs []int64) (map[int64]Rating, error)
	ToiletCommentCountsFor(ctx context.Context, toiletIDs []int64) (map[int64]int, error)
	UserCommentCountsFor(ctx context.Context, userIDs []int64) (map[int64]int, error)
	ReactionCountsFor(ctx context.Context, commentIDs []int64) (map[int64]ReactionCount, error)
}
