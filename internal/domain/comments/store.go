package comments

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"wot/internal/apperr"
	"wot/internal/infra/dbx"
	"wot/internal/metrics"
	"wot/internal/params"
)

const selectComments = `
	SELECT
		c.id,
		c.interaction_id,
		i.toilet_id,
		i.user_id,
		c.text,
		c.rating_clean,
		c.rating_paper,
		c.rating_structure,
		c.rating_accessibility,
		c.score,
		c.created_at
	FROM comments c
	JOIN interactions i ON i.id = c.interaction_id
`

type Repository struct {
	db dbx.Querier
}

func NewRepository(db dbx.Querier) *Repository {
	return &Repository{db: db}
}

// List returns the comments of a toilet and/or an author, newest first.
func (r *Repository) List(ctx context.Context, f Filter, page *params.Page) ([]Comment, error) {
	if f.ToiletID == nil && f.UserID == nil {
		return nil, apperr.Validation("comments can only be listed by toilet or by user")
	}
	defer metrics.ObserveQuery("list_comments", time.Now())

	var (
		where []string
		args  []any
	)
	arg := func(v any) string {
		args = append(args, v)
		return "$" + strconv.Itoa(len(args))
	}

	if f.ToiletID != nil {
		where = append(where, "i.toilet_id = "+arg(*f.ToiletID))
	}
	if f.UserID != nil {
		where = append(where, "i.user_id = "+arg(*f.UserID))
	}
	if len(f.Exclude) > 0 {
		where = append(where, "c.id <> ALL("+arg(dbx.Keys(f.Exclude))+")")
	}

	orderBy := "c.created_at DESC, c.id DESC"
	if f.ToiletID != nil && f.Requester != nil {
		orderBy = "CASE WHEN i.user_id = " + arg(*f.Requester) + " THEN 0 ELSE 1 END, " + orderBy
	}

	query := selectComments + " WHERE " + strings.Join(where, " AND ") + " ORDER BY " + orderBy
	query, args = page.Apply(query, args)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, apperr.Persistence("list comments", err)
	}
	defer rows.Close()

	out := []Comment{}
	for rows.Next() {
		c, err := scanComment(rows)
		if err != nil {
			return nil, apperr.Persistence("scan comment", err)
		}
		out = append(out, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, apperr.Persistence("iterate comments", err)
	}
	return out, nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*Comment, error) {
	c, err := scanComment(r.db.QueryRow(ctx, selectComments+" WHERE c.id = $1", id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperr.NotFound("Comment", "id", strconv.FormatInt(id, 10))
	}
	if err != nil {
		return nil, apperr.Persistence("get comment", err)
	}
	return c, nil
}

func (r *Repository) Create(ctx context.Context, c *Comment) error {
	query := `
		INSERT INTO comments (interaction_id, text, rating_clean, rating_paper, rating_structure, rating_accessibility)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, score, created_at
	`
	err := r.db.QueryRow(ctx, query,
		c.InteractionID,
		c.Text,
		c.RatingClean,
		c.RatingPaper,
		c.RatingStructure,
		c.RatingAccessibility,
	).Scan(&c.ID, &c.Score, &c.CreatedAt)
	if err != nil {
		return apperr.Persistence("create comment", err)
	}
	return nil
}

func (r *Repository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM comments WHERE id = $1`, id)
	if err != nil {
		return apperr.Persistence("delete comment", err)
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("Comment", "id", strconv.FormatInt(id, 10))
	}
	return nil
}

func scanComment(row pgx.Row) (*Comment, error) {
	var c Comment
	err := row.Scan(
		&c.ID,
		&c.InteractionID,
		&c.ToiletID,
		&c.UserID,
		&c.Text,
		&c.RatingClean,
		&c.RatingPaper,
		&c.RatingStructure,
		&c.RatingAccessibility,
		&c.Score,
		&c.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}
