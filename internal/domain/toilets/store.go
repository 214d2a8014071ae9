package toilets

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"wot/internal/apperr"
	"wot/internal/domain/reference"
	"wot/internal/geo"
	"wot/internal/infra/dbx"
	"wot/internal/metrics"
	"wot/internal/params"
)

const selectToilets = `
	SELECT
		t.id,
		t.name,
		t.address,
		t.latitude,
		t.longitude,
		t.place_id,
		s.technical_name,
		a.technical_name,
		t.created_at
	FROM toilets t
	JOIN states s ON s.id = t.state_id
	JOIN access_types a ON a.id = t.access_id
`

type Repository struct {
	db dbx.Querier
}

func NewRepository(db dbx.Querier) *Repository {
	return &Repository{db: db}
}

// query accumulates WHERE conditions and their positional arguments.
type query struct {
	where []string
	args  []any
}

func (q *query) arg(v any) string {
	q.args = append(q.args, v)
	return "$" + strconv.Itoa(len(q.args))
}

func (q *query) add(cond string) {
	q.where = append(q.where, cond)
}

func (q *query) build(base, orderBy string, page *params.Page) (string, []any) {
	sql := base
	if len(q.where) > 0 {
		sql += " WHERE " + strings.Join(q.where, " AND ")
	}
	sql += " ORDER BY " + orderBy
	return page.Apply(sql, q.args)
}

// modifiers applies the state, access and exclusion filters.
func (q *query) modifiers(f Filter) {
	if f.State != nil {
		q.add("s.technical_name = " + q.arg(*f.State))
	}
	if f.Access != nil {
		q.add("a.technical_name = " + q.arg(*f.Access))
	}
	if len(f.Exclude) > 0 {
		q.add("t.id <> ALL(" + q.arg(dbx.Keys(f.Exclude)) + ")")
	}
}

func (r *Repository) List(ctx context.Context, f Filter, page *params.Page) ([]Toilet, error) {
	defer metrics.ObserveQuery("list_toilets", time.Now())

	var (
		q       query
		orderBy = "t.id ASC"
	)

	switch {
	case len(f.IDs) > 0:
		q.add("t.id = ANY(" + q.arg(f.IDs) + ")")

	case f.BBox != nil:
		box := f.BBox.Normalize()
		q.add("s.technical_name = " + q.arg(reference.StateActive))
		q.add(fmt.Sprintf("t.latitude BETWEEN %s AND %s", q.arg(box.MinLat), q.arg(box.MaxLat)))
		q.add(fmt.Sprintf("t.longitude BETWEEN %s AND %s", q.arg(box.MinLon), q.arg(box.MaxLon)))
		f.State = nil
		q.modifiers(f)

	case f.Origin != nil:
		lat, lon := q.arg(f.Origin.Lat), q.arg(f.Origin.Lon)
		orderBy = geo.DistanceSQL("t.latitude", "t.longitude", lat, lon) + " ASC, t.id ASC"
		q.modifiers(f)

	default:
		q.modifiers(f)
	}

	sql, args := q.build(selectToilets, orderBy, page)
	return r.query(ctx, "list toilets", sql, args...)
}

func (r *Repository) ListByUser(ctx context.Context, userID int64, f Filter, page *params.Page) ([]Toilet, error) {
	defer metrics.ObserveQuery("list_toilets_by_user", time.Now())

	var q query
	base := selectToilets + " JOIN interactions i ON i.toilet_id = t.id AND i.user_id = " + q.arg(userID)
	q.modifiers(f)

	sql, args := q.build(base, "t.id ASC", page)
	return r.query(ctx, "list toilets by user", sql, args...)
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*Toilet, error) {
	rows, err := r.query(ctx, "get toilet", selectToilets+" WHERE t.id = $1", id)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, apperr.NotFound("Toilet", "id", strconv.FormatInt(id, 10))
	}
	return &rows[0], nil
}

// likeEscaper makes user input literal inside an ILIKE pattern.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func (r *Repository) Search(ctx context.Context, text string, page *params.Page) ([]Toilet, error) {
	defer metrics.ObserveQuery("search_toilets", time.Now())

	text = strings.TrimSpace(text)

	var q query
	term := q.arg(text)
	tsq := "plainto_tsquery('simple', " + term + ")"
	q.add("s.technical_name = " + q.arg(reference.StateActive))
	pattern := q.arg("%" + likeEscaper.Replace(text) + "%")
	q.add(fmt.Sprintf(`(t.search_vector @@ %s OR t.name ILIKE %s ESCAPE '\')`, tsq, pattern))

	sql, args := q.build(selectToilets, fmt.Sprintf("ts_rank_cd(t.search_vector, %s) DESC, t.id ASC", tsq), page)
	return r.query(ctx, "search toilets", sql, args...)
}

func (r *Repository) query(ctx context.Context, op, sql string, args ...any) ([]Toilet, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, apperr.Persistence(op, err)
	}
	defer rows.Close()

	out := []Toilet{}
	for rows.Next() {
		var t Toilet
		if err := rows.Scan(
			&t.ID,
			&t.Name,
			&t.Address,
			&t.Latitude,
			&t.Longitude,
			&t.PlaceID,
			&t.State,
			&t.Access,
			&t.CreatedAt,
		); err != nil {
			return nil, apperr.Persistence(op, err)
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, apperr.Persistence(op, err)
	}
	return out, nil
}
