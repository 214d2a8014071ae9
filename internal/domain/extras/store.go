package extras

import (
	"context"

	"wot/internal/apperr"
	"wot/internal/infra/dbx"
)

// Provider returns the extra-type technical names of each toilet.
type Provider interface {
	TagsFor(ctx context.Context, toiletIDs []int64) (map[int64][]string, error)
}

type Repository struct {
	db dbx.Querier
}

func NewRepository(db dbx.Querier) *Repository {
	return &Repository{db: db}
}

// TagsFor loads the tags of every toilet in one query, ordered by extra type.
func (r *Repository) TagsFor(ctx context.Context, toiletIDs []int64) (map[int64][]string, error) {
	out := make(map[int64][]string, len(toiletIDs))
	if len(toiletIDs) == 0 {
		return out, nil
	}

	query := `
		SELECT e.toilet_id, et.technical_name
		FROM extras e
		JOIN extra_types et ON et.id = e.extra_type_id
		WHERE e.toilet_id = ANY($1)
		ORDER BY e.toilet_id, et.id
	`
	rows, err := r.db.Query(ctx, query, toiletIDs)
	if err != nil {
		return nil, apperr.Persistence("query extras", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id  int64
			tag string
		)
		if err := rows.Scan(&id, &tag); err != nil {
			return nil, apperr.Persistence("scan extra", err)
		}
		out[id] = append(out[id], tag)
	}
	if err := rows.Err(); err != nil {
		return nil, apperr.Persistence("iterate extras", err)
	}
	return out, nil
}
