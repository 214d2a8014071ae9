package reference

import "context"

// Moderation states.
const (
	StateActive    = "active"
	StateInactive  = "inactive"
	StateSuggested = "suggested"
	StateRejected  = "rejected"
)

// Reaction types that count towards likes and dislikes. Every other reaction
// type is a report against the comment.
const (
	ReactionLike    = "like"
	ReactionDislike = "dislike"
)

type ReactionType struct {
	ID            int64  `json:"id"`
	TechnicalName string `json:"technicalName"`
	// HidesComment marks report-like reactions that remove the comment from the reacting user's listings.
	HidesComment bool `json:"hidesComment"`
}

type ReportType struct {
	ID            int64  `json:"id"`
	TechnicalName string `json:"technicalName"`
}

// Store answers existence questions about reference data and core entities.
type Store interface {
	StateExists(ctx context.Context, technicalName string) (bool, error)
	AccessExists(ctx context.Context, technicalName string) (bool, error)
	UserExists(ctx context.Context, userID int64) (bool, error)
	ToiletExists(ctx context.Context, toiletID int64) (bool, error)
	// ReactionType and ReportType return an apperr NotFound for unknown names.
	ReactionType(ctx context.Context, technicalName string) (*ReactionType, error)
	ReportType(ctx context.Context, technicalName string) (*ReportType, error)
}
