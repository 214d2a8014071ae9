package exclusions

import "context"

// Provider returns the ids a user must never see again.
type Provider interface {
	// ExcludedToilets are the toilets the user reported.
	ExcludedToilets(ctx context.Context, userID int64) (map[int64]struct{}, error)
	// ExcludedComments are the comments the user hid with a report-like reaction.
	ExcludedComments(ctx context.Context, userID int64) (map[int64]struct{}, error)
}

// Store adds the writes that create exclusions.
type Store interface {
	Provider
	ReportToilet(ctx context.Context, interactionID, reportTypeID int64) error
	HideComment(ctx context.Context, interactionID, commentID int64) error
	UnhideComment(ctx context.Context, userID, commentID int64) error
}
