package storage

import (
	"context"
	"fmt"

	"wot/internal/domain/aggregates"
	"wot/internal/domain/comments"
	"wot/internal/domain/exclusions"
	"wot/internal/domain/extras"
	"wot/internal/domain/interactions"
	"wot/internal/domain/reactions"
	"wot/internal/domain/reference"
	"wot/internal/domain/toilets"
	"wot/internal/infra/dbx"
)

type Container struct {
	pool         dbx.TxStarter // IMPORTANT: set the pool so WithTx works
	Reference    reference.Store
	Aggregates   aggregates.Provider
	Extras       extras.Provider
	Exclusions   exclusions.Store
	Interactions interactions.Store
	Toilets      toilets.Store
	Comments     comments.Store
	Reactions    reactions.Store
}

func NewContainer(db dbx.TxStarter) *Container {
	return &Container{
		pool:         db,
		Reference:    reference.NewRepository(db),
		Aggregates:   aggregates.NewRepository(db),
		Extras:       extras.NewRepository(db),
		Exclusions:   exclusions.NewRepository(db),
		Interactions: interactions.NewRepository(db),
		Toilets:      toilets.NewRepository(db),
		Comments:     comments.NewRepository(db),
		Reactions:    reactions.NewRepository(db),
	}
}

// Tx is a temporary, tx-scoped set of the repositories that write.
type Tx struct {
	Interactions interactions.Store
	Comments     comments.Store
	Reactions    reactions.Store
	Exclusions   exclusions.Store
}

// WithTx runs fn atomically. Any error from fn rolls the whole unit back.
func (c *Container) WithTx(ctx context.Context, fn func(tx *Tx) error) error {
	if c.pool == nil {
		return fmt.Errorf("storage container pool is nil (did you forget to set pool in NewContainer?)")
	}

	tx, err := c.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	defer func() {
		_ = tx.Rollback(ctx) // safe even if already committed
	}()

	s := &Tx{
		Interactions: interactions.NewRepository(tx),
		Comments:     comments.NewRepository(tx),
		Reactions:    reactions.NewRepository(tx),
		Exclusions:   exclusions.NewRepository(tx),
	}

	if err := fn(s); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
