// Package views derives the read-side views from the order and indent
// collections. Every call loads the collections in full and recomputes.
package views

import (
	"context"

	"aerozone/apierr"
	"aerozone/logger"
	"aerozone/models"
	"aerozone/repository"

	"golang.org/x/sync/errgroup"
)

type Builder struct {
	OrderRepo  repository.OrderLineRepository
	IndentRepo repository.IndentLineRepository
	Log        *logger.Logger
}

func NewBuilder(orders repository.OrderLineRepository, indents repository.IndentLineRepository, log *logger.Logger) *Builder {
	return &Builder{OrderRepo: orders, IndentRepo: indents, Log: log}
}

// OrderLines returns the stored order lines unchanged.
func (b *Builder) OrderLines(ctx context.Context) ([]models.OrderLine, error) {
	orders, err := b.OrderRepo.FindAll(ctx)
	if err != nil {
		return nil, b.storeError("order lines", err)
	}
	return orders, nil
}

// IndentLines returns the stored indent lines unchanged.
func (b *Builder) IndentLines(ctx context.Context) ([]models.IndentLine, error) {
	indents, err := b.IndentRepo.FindAll(ctx)
	if err != nil {
		return nil, b.storeError("indent lines", err)
	}
	return indents, nil
}

func (b *Builder) Merged(ctx context.Context) ([]models.MergedOrder, error) {
	orders, indents, err := b.loadBoth(ctx)
	if err != nil {
		return nil, err
	}
	return Merge(orders, indents), nil
}

func (b *Builder) Rollup(ctx context.Context) ([]models.RollupRow, error) {
	orders, indents, err := b.loadBoth(ctx)
	if err != nil {
		return nil, err
	}
	return Rollup(orders, indents), nil
}

func (b *Builder) GeoExport(ctx context.Context) ([]models.GeoRow, error) {
	orders, err := b.OrderLines(ctx)
	if err != nil {
		return nil, err
	}
	return GeoExport(orders), nil
}

func (b *Builder) RateExport(ctx context.Context) ([]models.RateRow, error) {
	orders, err := b.OrderLines(ctx)
	if err != nil {
		return nil, err
	}
	return RateExport(orders), nil
}

// loadBoth reads both collections concurrently.
func (b *Builder) loadBoth(ctx context.Context) ([]models.OrderLine, []models.IndentLine, error) {
	var (
		orders  []models.OrderLine
		indents []models.IndentLine
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		orders, err = b.OrderLines(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		indents, err = b.IndentLines(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return orders, indents, nil
}

func (b *Builder) storeError(what string, err error) error {
	if b.Log != nil {
		b.Log.Error("failed to load "+what, "error", err)
	}
	return apierr.Store(err)
}
