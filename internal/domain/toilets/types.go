package toilets

import (
	"context"
	"time"

	"wot/internal/geo"
	"wot/internal/params"
)

// Toilet is the stored record, without any aggregates.
type Toilet struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	PlaceID   *string   `json:"placeId,omitempty"`
	State     string    `json:"state"`
	Access    string    `json:"access"`
	CreatedAt time.Time `json:"createdAt"`
}

func (t Toilet) Point() geo.Point {
	return geo.Point{Lat: t.Latitude, Lon: t.Longitude}
}

// Filter selects exactly one base path, checked in this order: IDs, BBox,
// Origin, then everything ordered by id. IDs bypass every other field. BBox
// forces the active state and ignores State. Exclude and Access apply to
// every path but IDs.
type Filter struct {
	IDs     []int64
	State   *string
	BBox    *geo.BoundingBox
	Origin  *geo.Point
	Exclude map[int64]struct{}
	Access  *string
}

type Store interface {
	List(ctx context.Context, filter Filter, page *params.Page) ([]Toilet, error)
	// ListByUser returns the toilets the user interacted with. Only State,
	// Exclude and Access of filter are honoured.
	ListByUser(ctx context.Context, userID int64, filter Filter, page *params.Page) ([]Toilet, error)
	GetByID(ctx context.Context, id int64) (*Toilet, error)
	// Search ranks active toilets by full-text relevance on name and address.
	Search(ctx context.Context, query string, page *params.Page) ([]Toilet, error)
}
