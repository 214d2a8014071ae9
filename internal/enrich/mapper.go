// Package enrich turns stored toilets and comments into views carrying their
// aggregates. Every batch issues one lookup per aggregate source regardless of
// its size, and output order always matches input order.
package enrich

import (
	"context"

	"golang.org/x/sync/errgroup"

	"wot/internal/domain/aggregates"
	"wot/internal/domain/comments"
	"wot/internal/domain/extras"
	"wot/internal/domain/toilets"
	"wot/internal/geo"
	"wot/internal/metrics"
)

type Mapper struct {
	aggregates aggregates.Provider
	extras     extras.Provider
}

func NewMapper(aggregates aggregates.Provider, extras extras.Provider) *Mapper {
	return &Mapper{aggregates: aggregates, extras: extras}
}

// Toilets enriches ts. With a non-nil origin every view also carries its
// distance from origin.
func (m *Mapper) Toilets(ctx context.Context, ts []toilets.Toilet, origin *geo.Point) ([]ToiletView, error) {
	out := make([]ToiletView, 0, len(ts))
	if len(ts) == 0 {
		return out, nil
	}
	metrics.ObserveBatch("toilets", len(ts))

	ids := make([]int64, 0, len(ts))
	seen := make(map[int64]struct{}, len(ts))
	for _, t := range ts {
		if _, ok := seen[t.ID]; !ok {
			seen[t.ID] = struct{}{}
			ids = append(ids, t.ID)
		}
	}

	var (
		ratings map[int64]aggregates.Rating
		counts  map[int64]int
		tags    map[int64][]string
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		ratings, err = m.aggregates.RatingsFor(gctx, ids)
		return err
	})
	g.Go(func() (err error) {
		counts, err = m.aggregates.ToiletCommentCountsFor(gctx, ids)
		return err
	})
	g.Go(func() (err error) {
		tags, err = m.extras.TagsFor(gctx, ids)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	for _, t := range ts {
		out = append(out, toiletView(t, ratings[t.ID], counts[t.ID], tags[t.ID], origin))
	}
	return out, nil
}

// Toilet enriches a single toilet.
func (m *Mapper) Toilet(ctx context.Context, t toilets.Toilet) (*ToiletView, error) {
	ids := []int64{t.ID}

	ratings, err := m.aggregates.RatingsFor(ctx, ids)
	if err != nil {
		return nil, err
	}
	counts, err := m.aggregates.ToiletCommentCountsFor(ctx, ids)
	if err != nil {
		return nil, err
	}
	tags, err := m.extras.TagsFor(ctx, ids)
	if err != nil {
		return nil, err
	}

	v := toiletView(t, ratings[t.ID], counts[t.ID], tags[t.ID], nil)
	return &v, nil
}

func (m *Mapper) Comments(ctx context.Context, cs []comments.Comment) ([]CommentView, error) {
	out := make([]CommentView, 0, len(cs))
	if len(cs) == 0 {
		return out, nil
	}
	metrics.ObserveBatch("comments", len(cs))

	commentIDs := make([]int64, 0, len(cs))
	userIDs := make([]int64, 0, len(cs))
	seenUsers := make(map[int64]struct{}, len(cs))
	for _, c := range cs {
		commentIDs = append(commentIDs, c.ID)
		if _, ok := seenUsers[c.UserID]; !ok {
			seenUsers[c.UserID] = struct{}{}
			userIDs = append(userIDs, c.UserID)
		}
	}

	var (
		reactions map[int64]aggregates.ReactionCount
		userCount map[int64]int
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		reactions, err = m.aggregates.ReactionCountsFor(gctx, commentIDs)
		return err
	})
	g.Go(func() (err error) {
		userCount, err = m.aggregates.UserCommentCountsFor(gctx, userIDs)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	for _, c := range cs {
		out = append(out, commentView(c, reactions[c.ID], userCount[c.UserID]))
	}
	return out, nil
}

// Comment enriches a single comment.
func (m *Mapper) Comment(ctx context.Context, c comments.Comment) (*CommentView, error) {
	reactions, err := m.aggregates.ReactionCountsFor(ctx, []int64{c.ID})
	if err != nil {
		return nil, err
	}
	userCount, err := m.aggregates.UserCommentCountsFor(ctx, []int64{c.UserID})
	if err != nil {
		return nil, err
	}

	v := commentView(c, reactions[c.ID], userCount[c.UserID])
	return &v, nil
}

func toiletView(t toilets.Toilet, rating aggregates.Rating, numComments int, tags []string, origin *geo.Point) ToiletView {
	if tags == nil {
		tags = []string{}
	}
	v := ToiletView{
		ID:          t.ID,
		Name:        t.Name,
		Address:     t.Address,
		Latitude:    t.Latitude,
		Longitude:   t.Longitude,
		PlaceID:     t.PlaceID,
		State:       t.State,
		Access:      t.Access,
		CreatedAt:   t.CreatedAt,
		Rating:      rating,
		NumComments: numComments,
		Extras:      tags,
	}
	if origin != nil {
		d := geo.Distance(*origin, t.Point())
		v.DistanceKm = &d
	}
	return v
}

func commentView(c comments.Comment, reactions aggregates.ReactionCount, userComments int) CommentView {
	return CommentView{
		ID:                  c.ID,
		ToiletID:            c.ToiletID,
		UserID:              c.UserID,
		Text:                c.Text,
		RatingClean:         c.RatingClean,
		RatingPaper:         c.RatingPaper,
		RatingStructure:     c.RatingStructure,
		RatingAccessibility: c.RatingAccessibility,
		Score:               c.Score,
		CreatedAt:           c.CreatedAt,
		NumLikes:            reactions.Likes,
		NumDislikes:         reactions.Dislikes,
		UserNumComments:     userComments,
	}
}
