package reference

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"wot/internal/apperr"
	"wot/internal/infra/dbx"
)

type Repository struct {
	db dbx.Querier
}

func NewRepository(db dbx.Querier) *Repository {
	return &Repository{db: db}
}

func (r *Repository) exists(ctx context.Context, op, query string, arg any) (bool, error) {
	var exists bool
	if err := r.db.QueryRow(ctx, query, arg).Scan(&exists); err != nil {
		return false, apperr.Persistence(op, err)
	}
	return exists, nil
}

func (r *Repository) StateExists(ctx context.Context, technicalName string) (bool, error) {
	return r.exists(ctx, "check state",
		`SELECT EXISTS (SELECT 1 FROM states WHERE technical_name = $1)`, technicalName)
}

func (r *Repository) AccessExists(ctx context.Context, technicalName string) (bool, error) {
	return r.exists(ctx, "check access type",
		`SELECT EXISTS (SELECT 1 FROM access_types WHERE technical_name = $1)`, technicalName)
}

func (r *Repository) UserExists(ctx context.Context, userID int64) (bool, error) {
	return r.exists(ctx, "check user",
		`SELECT EXISTS (SELECT 1 FROM users WHERE id = $1)`, userID)
}

func (r *Repository) ToiletExists(ctx context.Context, toiletID int64) (bool, error) {
	return r.exists(ctx, "check toilet",
		`SELECT EXISTS (SELECT 1 FROM toilets WHERE id = $1)`, toiletID)
}

func (r *Repository) ReactionType(ctx context.Context, technicalName string) (*ReactionType, error) {
	query := `SELECT id, technical_name, hides_comment FROM reaction_types WHERE technical_name = $1`

	var rt ReactionType
	err := r.db.QueryRow(ctx, query, technicalName).Scan(&rt.ID, &rt.TechnicalName, &rt.HidesComment)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperr.NotFound("Reaction type", "technical name", technicalName)
	}
	if err != nil {
		return nil, apperr.Persistence("get reaction type", err)
	}
	return &rt, nil
}

func (r *Repository) ReportType(ctx context.Context, technicalName string) (*ReportType, error) {
	query := `SELECT id, technical_name FROM report_types WHERE technical_name = $1`

	var rt ReportType
	err := r.db.QueryRow(ctx, query, technicalName).Scan(&rt.ID, &rt.TechnicalName)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperr.NotFound("Report type", "technical name", technicalName)
	}
	if err != nil {
		return nil, apperr.Persistence("get report type", err)
	}
	return &rt, nil
}
