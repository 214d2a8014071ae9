package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"wot/internal/apperr"
	"wot/internal/domain/exclusions"
	"wot/internal/domain/reference"
	"wot/internal/domain/storage"
	"wot/internal/domain/toilets"
	"wot/internal/enrich"
	"wot/internal/geo"
	"wot/internal/params"
)

type ToiletService struct {
	ref        reference.Store
	toilets    toilets.Store
	exclusions exclusions.Provider
	mapper     *enrich.Mapper
	tx         TxRunner
	logger     *zap.SugaredLogger
}

func NewToiletService(
	ref reference.Store,
	toilets toilets.Store,
	exclusions exclusions.Provider,
	mapper *enrich.Mapper,
	tx TxRunner,
	logger *zap.SugaredLogger,
) *ToiletService {
	return &ToiletService{
		ref:        ref,
		toilets:    toilets,
		exclusions: exclusions,
		mapper:     mapper,
		tx:         tx,
		logger:     logger,
	}
}

type ListToiletsInput struct {
	IDs    []int64
	State  *string
	Access *string
	// Requester's reported toilets are left out, except on the IDs path.
	Requester *int64
	Page      *params.Page
}

type NearbyInput struct {
	Origin    geo.Point
	State     *string
	Access    *string
	Requester *int64
	Page      *params.Page
}

type ReportToiletInput struct {
	ToiletID int64  `json:"toiletId" validate:"required,gt=0"`
	UserID   int64  `json:"userId" validate:"required,gt=0"`
	Type     string `json:"type" validate:"required"`
}

func (s *ToiletService) ListToilets(ctx context.Context, in ListToiletsInput) ([]enrich.ToiletView, error) {
	if err := validate(ctx,
		stateExists(s.ref, in.State),
		userExists(s.ref, in.Requester),
		accessExists(s.ref, in.Access),
	); err != nil {
		return nil, err
	}

	filter := toilets.Filter{IDs: in.IDs, State: in.State, Access: in.Access}
	if len(in.IDs) == 0 {
		exclude, err := s.excluded(ctx, in.Requester)
		if err != nil {
			return nil, err
		}
		filter.Exclude = exclude
	}

	ts, err := s.toilets.List(ctx, filter, in.Page)
	if err != nil {
		return nil, err
	}
	return s.mapper.Toilets(ctx, ts, nil)
}

func (s *ToiletService) ListToiletsNearby(ctx context.Context, in NearbyInput) ([]enrich.ToiletView, error) {
	if err := in.Origin.Validate(); err != nil {
		return nil, err
	}
	if err := validate(ctx,
		stateExists(s.ref, in.State),
		userExists(s.ref, in.Requester),
		accessExists(s.ref, in.Access),
	); err != nil {
		return nil, err
	}

	exclude, err := s.excluded(ctx, in.Requester)
	if err != nil {
		return nil, err
	}

	origin := in.Origin
	ts, err := s.toilets.List(ctx, toilets.Filter{
		State:   in.State,
		Access:  in.Access,
		Origin:  &origin,
		Exclude: exclude,
	}, in.Page)
	if err != nil {
		return nil, err
	}
	return s.mapper.Toilets(ctx, ts, &origin)
}

// ListToiletsInBoundingBox returns the active toilets inside box, minus those
// the requester hid. Inverted bounds are swapped.
func (s *ToiletService) ListToiletsInBoundingBox(ctx context.Context, box geo.BoundingBox, requester *int64) ([]enrich.ToiletView, error) {
	if err := box.Validate(); err != nil {
		return nil, err
	}
	if err := validate(ctx, userExists(s.ref, requester)); err != nil {
		return nil, err
	}

	exclude, err := s.excluded(ctx, requester)
	if err != nil {
		return nil, err
	}

	normalized := box.Normalize()
	ts, err := s.toilets.List(ctx, toilets.Filter{BBox: &normalized, Exclude: exclude}, nil)
	if err != nil {
		return nil, err
	}
	return s.mapper.Toilets(ctx, ts, nil)
}

func (s *ToiletService) ListToiletsByUser(ctx context.Context, userID int64, state *string, page *params.Page) ([]enrich.ToiletView, error) {
	if err := validate(ctx,
		stateExists(s.ref, state),
		userExists(s.ref, &userID),
	); err != nil {
		return nil, err
	}

	ts, err := s.toilets.ListByUser(ctx, userID, toilets.Filter{State: state}, page)
	if err != nil {
		return nil, err
	}
	return s.mapper.Toilets(ctx, ts, nil)
}

func (s *ToiletService) SearchToilets(ctx context.Context, query string, page *params.Page) ([]enrich.ToiletView, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, apperr.Validation("search query is required")
	}

	ts, err := s.toilets.Search(ctx, query, page)
	if err != nil {
		return nil, err
	}
	return s.mapper.Toilets(ctx, ts, nil)
}

func (s *ToiletService) GetToilet(ctx context.Context, id int64) (*enrich.ToiletView, error) {
	t, err := s.toilets.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.mapper.Toilet(ctx, *t)
}

// ReportToilet records a report by the user. The toilet disappears from the
// user's listings from then on.
func (s *ToiletService) ReportToilet(ctx context.Context, in ReportToiletInput) error {
	if err := validate(ctx,
		userExists(s.ref, &in.UserID),
		toiletExists(s.ref, &in.ToiletID),
	); err != nil {
		return err
	}

	reportType, err := s.ref.ReportType(ctx, in.Type)
	if err != nil {
		return err
	}

	err = s.tx.WithTx(ctx, func(tx *storage.Tx) error {
		interaction, err := tx.Interactions.GetOrCreate(ctx, in.ToiletID, in.UserID)
		if err != nil {
			return err
		}
		return tx.Exclusions.ReportToilet(ctx, interaction.ID, reportType.ID)
	})
	if err != nil {
		return err
	}

	s.logger.Infow("toilet reported", "toilet_id", in.ToiletID, "user_id", in.UserID, "type", in.Type)
	return nil
}

func (s *ToiletService) excluded(ctx context.Context, requester *int64) (map[int64]struct{}, error) {
	if requester == nil {
		return nil, nil
	}
	return s.exclusions.ExcludedToilets(ctx, *requester)
}
