package repository

import (
	"context"

	"aerozone/models"
)

// OrderLineRepository stores uploaded order lines. Records are only ever
// appended; FindAll returns them in insertion order.
type OrderLineRepository interface {
	InsertMany(ctx context.Context, lines []models.OrderLine) error
	FindAll(ctx context.Context) ([]models.OrderLine, error)
}

// IndentLineRepository reads the externally maintained indent rows in insertion order.
type IndentLineRepository interface {
	FindAll(ctx context.Context) ([]models.IndentLine, error)
}
