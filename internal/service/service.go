// Package service validates caller input, runs the repository query and
// enriches the result. Reference checks run in a fixed order (state, user,
// toilet, then access) and stop at the first miss, before any listing query.
package service

import (
	"context"
	"strconv"

	"wot/internal/apperr"
	"wot/internal/domain/reference"
	"wot/internal/domain/storage"
)

// TxRunner runs a unit of work atomically.
type TxRunner interface {
	WithTx(ctx context.Context, fn func(tx *storage.Tx) error) error
}

// check is one step of a validation chain.
type check func(ctx context.Context) error

func validate(ctx context.Context, checks ...check) error {
	for _, c := range checks {
		if err := c(ctx); err != nil {
			return err
		}
	}
	return nil
}

func stateExists(ref reference.Store, state *string) check {
	return func(ctx context.Context) error {
		if state == nil {
			return nil
		}
		ok, err := ref.StateExists(ctx, *state)
		if err != nil {
			return err
		}
		if !ok {
			return apperr.NotFound("State", "technical name", *state)
		}
		return nil
	}
}

func userExists(ref reference.Store, userID *int64) check {
	return func(ctx context.Context) error {
		if userID == nil {
			return nil
		}
		ok, err := ref.UserExists(ctx, *userID)
		if err != nil {
			return err
		}
		if !ok {
			return apperr.NotFound("User", "id", strconv.FormatInt(*userID, 10))
		}
		return nil
	}
}

func toiletExists(ref reference.Store, toiletID *int64) check {
	return func(ctx context.Context) error {
		if toiletID == nil {
			return nil
		}
		ok, err := ref.ToiletExists(ctx, *toiletID)
		if err != nil {
			return err
		}
		if !ok {
			return apperr.NotFound("Toilet", "id", strconv.FormatInt(*toiletID, 10))
		}
		return nil
	}
}

func accessExists(ref reference.Store, access *string) check {
	return func(ctx context.Context) error {
		if access == nil {
			return nil
		}
		ok, err := ref.AccessExists(ctx, *access)
		if err != nil {
			return err
		}
		if !ok {
			return apperr.NotFound("Access", "technical name", *access)
		}
		return nil
	}
}
