// Package geo holds coordinates, bounding boxes and the great-circle distance
// used both for ranking in SQL and for the distance reported on toilet views.
package geo

import (
	"fmt"
	"math"

	"wot/internal/apperr"
)

// EarthRadiusKm is the sphere radius of the distance formula.
const EarthRadiusKm = 6371.0

type Point struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

func (p Point) Validate() error {
	if math.IsNaN(p.Lat) || p.Lat < -90 || p.Lat > 90 {
		return apperr.Validation("latitude %v out of range [-90, 90]", p.Lat)
	}
	if math.IsNaN(p.Lon) || p.Lon < -180 || p.Lon > 180 {
		return apperr.Validation("longitude %v out of range [-180, 180]", p.Lon)
	}
	return nil
}

type BoundingBox struct {
	MinLat float64 `json:"minLat"`
	MaxLat float64 `json:"maxLat"`
	MinLon float64 `json:"minLon"`
	MaxLon float64 `json:"maxLon"`
}

// Normalize swaps inverted bounds so that Min <= Max on both axes.
func (b BoundingBox) Normalize() BoundingBox {
	if b.MinLat > b.MaxLat {
		b.MinLat, b.MaxLat = b.MaxLat, b.MinLat
	}
	if b.MinLon > b.MaxLon {
		b.MinLon, b.MaxLon = b.MaxLon, b.MinLon
	}
	return b
}

func (b BoundingBox) Validate() error {
	if err := (Point{Lat: b.MinLat, Lon: b.MinLon}).Validate(); err != nil {
		return err
	}
	return Point{Lat: b.MaxLat, Lon: b.MaxLon}.Validate()
}

// Contains reports whether p lies inside the normalized box, edges included.
func (b BoundingBox) Contains(p Point) bool {
	n := b.Normalize()
	return p.Lat >= n.MinLat && p.Lat <= n.MaxLat && p.Lon >= n.MinLon && p.Lon <= n.MaxLon
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}

// Distance returns the great-circle distance in kilometres between a and b
// using the spherical law of cosines. It matches DistanceSQL exactly.
func Distance(a, b Point) float64 {
	c := math.Cos(radians(a.Lat))*math.Cos(radians(b.Lat))*math.Cos(radians(b.Lon)-radians(a.Lon)) +
		math.Sin(radians(a.Lat))*math.Sin(radians(b.Lat))
	// rounding can push identical points just past 1
	c = math.Max(-1, math.Min(1, c))
	return EarthRadiusKm * math.Acos(c)
}

// DistanceSQL renders Distance as a Postgres expression. latCol/lonCol are the
// row columns and latArg/lonArg the placeholders of the origin, e.g. "$1".
func DistanceSQL(latCol, lonCol, latArg, lonArg string) string {
	return fmt.Sprintf(
		"(%v * acos(LEAST(1, GREATEST(-1, cos(radians(%s)) * cos(radians(%s)) * cos(radians(%s) - radians(%s)) + sin(radians(%s)) * sin(radians(%s))))))",
		EarthRadiusKm, latArg, latCol, lonCol, lonArg, latArg, latCol,
	)
}
