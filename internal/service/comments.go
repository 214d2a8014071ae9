package service

import (
	"context"
	"unicode/utf8"

	"go.uber.org/zap"

	"wot/internal/apperr"
	"wot/internal/domain/comments"
	"wot/internal/domain/exclusions"
	"wot/internal/domain/reactions"
	"wot/internal/domain/reference"
	"wot/internal/domain/storage"
	"wot/internal/enrich"
	"wot/internal/params"
)

const MaxCommentLength = 500

type CommentService struct {
	ref        reference.Store
	comments   comments.Store
	reactions  reactions.Store
	exclusions exclusions.Provider
	mapper     *enrich.Mapper
	tx         TxRunner
	logger     *zap.SugaredLogger
}

func NewCommentService(
	ref reference.Store,
	comments comments.Store,
	reactions reactions.Store,
	exclusions exclusions.Provider,
	mapper *enrich.Mapper,
	tx TxRunner,
	logger *zap.SugaredLogger,
) *CommentService {
	return &CommentService{
		ref:        ref,
		comments:   comments,
		reactions:  reactions,
		exclusions: exclusions,
		mapper:     mapper,
		tx:         tx,
		logger:     logger,
	}
}

type CreateCommentInput struct {
	ToiletID            int64  `json:"toiletId" validate:"required,gt=0"`
	UserID              int64  `json:"userId" validate:"required,gt=0"`
	Text                string `json:"text" validate:"max=500"`
	RatingClean         int    `json:"ratingClean" validate:"required,min=1,max=5"`
	RatingPaper         bool   `json:"ratingPaper"`
	RatingStructure     int    `json:"ratingStructure" validate:"required,min=1,max=5"`
	RatingAccessibility int    `json:"ratingAccessibility" validate:"required,min=1,max=5"`
}

func (in CreateCommentInput) validate() error {
	if utf8.RuneCountInString(in.Text) > MaxCommentLength {
		return apperr.Validation("text must be at most %d characters", MaxCommentLength)
	}
	ratings := []struct {
		name  string
		value int
	}{
		{"ratingClean", in.RatingClean},
		{"ratingStructure", in.RatingStructure},
		{"ratingAccessibility", in.RatingAccessibility},
	}
	for _, r := range ratings {
		if r.value < 1 || r.value > 5 {
			return apperr.Validation("%s must be between 1 and 5", r.name)
		}
	}
	return nil
}

type ReactionInput struct {
	CommentID int64  `json:"commentId" validate:"required,gt=0"`
	UserID    int64  `json:"userId" validate:"required,gt=0"`
	Type      string `json:"type" validate:"required"`
}

// ListCommentsByToilet lists a toilet's comments, newest first, with the
// requester's own comments on top and the comments they hid left out.
func (s *CommentService) ListCommentsByToilet(ctx context.Context, toiletID int64, requester *int64, page *params.Page) ([]enrich.CommentView, error) {
	if err := validate(ctx,
		userExists(s.ref, requester),
		toiletExists(s.ref, &toiletID),
	); err != nil {
		return nil, err
	}

	exclude, err := s.excluded(ctx, requester)
	if err != nil {
		return nil, err
	}

	cs, err := s.comments.List(ctx, comments.Filter{
		ToiletID:  &toiletID,
		Requester: requester,
		Exclude:   exclude,
	}, page)
	if err != nil {
		return nil, err
	}
	return s.mapper.Comments(ctx, cs)
}

// ListCommentsByUser lists the comments written by userID, minus those the requester hid.
func (s *CommentService) ListCommentsByUser(ctx context.Context, userID int64, requester *int64, page *params.Page) ([]enrich.CommentView, error) {
	if err := validate(ctx,
		userExists(s.ref, &userID),
		userExists(s.ref, requester),
	); err != nil {
		return nil, err
	}

	exclude, err := s.excluded(ctx, requester)
	if err != nil {
		return nil, err
	}

	cs, err := s.comments.List(ctx, comments.Filter{
		UserID:  &userID,
		Exclude: exclude,
	}, page)
	if err != nil {
		return nil, err
	}
	return s.mapper.Comments(ctx, cs)
}

func (s *CommentService) GetComment(ctx context.Context, id int64) (*enrich.CommentView, error) {
	c, err := s.comments.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.mapper.Comment(ctx, *c)
}

// CreateComment stores a rated comment under the (toilet, user) interaction.
func (s *CommentService) CreateComment(ctx context.Context, in CreateCommentInput) (*enrich.CommentView, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	if err := validate(ctx,
		userExists(s.ref, &in.UserID),
		toiletExists(s.ref, &in.ToiletID),
	); err != nil {
		return nil, err
	}

	c := comments.Comment{
		ToiletID:            in.ToiletID,
		UserID:              in.UserID,
		Text:                in.Text,
		RatingClean:         in.RatingClean,
		RatingPaper:         in.RatingPaper,
		RatingStructure:     in.RatingStructure,
		RatingAccessibility: in.RatingAccessibility,
	}
	err := s.tx.WithTx(ctx, func(tx *storage.Tx) error {
		interaction, err := tx.Interactions.GetOrCreate(ctx, in.ToiletID, in.UserID)
		if err != nil {
			return err
		}
		c.InteractionID = interaction.ID
		return tx.Comments.Create(ctx, &c)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Infow("comment created", "comment_id", c.ID, "toilet_id", c.ToiletID, "user_id", c.UserID)
	return s.mapper.Comment(ctx, c)
}

// DeleteComment removes a comment with its reactions and hides.
func (s *CommentService) DeleteComment(ctx context.Context, id int64) error {
	if err := s.comments.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Infow("comment deleted", "comment_id", id)
	return nil
}

// PutReaction sets the user's reaction on a comment. Report-like reaction
// types also hide the comment from the user.
func (s *CommentService) PutReaction(ctx context.Context, in ReactionInput) (*enrich.CommentView, error) {
	if err := validate(ctx, userExists(s.ref, &in.UserID)); err != nil {
		return nil, err
	}
	c, err := s.comments.GetByID(ctx, in.CommentID)
	if err != nil {
		return nil, err
	}
	reactionType, err := s.ref.ReactionType(ctx, in.Type)
	if err != nil {
		return nil, err
	}

	err = s.tx.WithTx(ctx, func(tx *storage.Tx) error {
		if _, err := tx.Reactions.Put(ctx, c.ID, in.UserID, reactionType.ID); err != nil {
			return err
		}
		if !reactionType.HidesComment {
			return tx.Exclusions.UnhideComment(ctx, in.UserID, c.ID)
		}
		interaction, err := tx.Interactions.GetOrCreate(ctx, c.ToiletID, in.UserID)
		if err != nil {
			return err
		}
		return tx.Exclusions.HideComment(ctx, interaction.ID, c.ID)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Infow("reaction saved", "comment_id", c.ID, "user_id", in.UserID, "type", reactionType.TechnicalName)
	return s.mapper.Comment(ctx, *c)
}

// DeleteReaction removes the user's reaction and any hide it caused.
func (s *CommentService) DeleteReaction(ctx context.Context, commentID, userID int64) error {
	return s.tx.WithTx(ctx, func(tx *storage.Tx) error {
		if err := tx.Reactions.Delete(ctx, commentID, userID); err != nil {
			return err
		}
		return tx.Exclusions.UnhideComment(ctx, userID, commentID)
	})
}

func (s *CommentService) ListReactions(ctx context.Context, userID int64, commentIDs []int64) ([]reactions.Reaction, error) {
	if err := validate(ctx, userExists(s.ref, &userID)); err != nil {
		return nil, err
	}
	return s.reactions.ListByUser(ctx, userID, commentIDs)
}

func (s *CommentService) excluded(ctx context.Context, requester *int64) (map[int64]struct{}, error) {
	if requester == nil {
		return nil, nil
	}
	return s.exclusions.ExcludedComments(ctx, *requester)
}
