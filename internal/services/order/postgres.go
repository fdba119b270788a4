package order

import (
	"context"

	"storefront/internal/database"
	"storefront/internal/models"
)

// PostgresRepository stores orders in PostgreSQL.
type PostgresRepository struct {
	db *database.DB
}

// NewPostgresRepository creates a new order repository
func NewPostgresRepository(db *database.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Insert persists the order as a single row. The insert is atomic: either
// the full record exists afterwards or none of it does.
func (r *PostgresRepository) Insert(ctx context.Context, order *models.Order) error {
	return r.db.QueryRow(ctx, database.InsertOrderSQL,
		order.MainItemID,
		order.MainQuantity,
		order.DessertItemID,
		order.DessertQuantity,
		order.PickupDate,
		order.TotalPrice,
	).Scan(&order.ID, &order.CreatedAt)
}
