package catalog

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"storefront/internal/database"
	"storefront/internal/models"
)

// PostgresRepository stores menu items in PostgreSQL.
type PostgresRepository struct {
	db *database.DB
}

// NewPostgresRepository creates a new catalog repository
func NewPostgresRepository(db *database.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) List(ctx context.Context) ([]models.MenuItem, error) {
	rows, err := r.db.Query(ctx, database.ListMenuItemsSQL)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []models.MenuItem{}
	for rows.Next() {
		var item models.MenuItem
		if err := rows.Scan(&item.ID, &item.Name, &item.Category, &item.Price, &item.ImageURL); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *PostgresRepository) Get(ctx context.Context, id int64) (*models.MenuItem, error) {
	var item models.MenuItem
	err := r.db.QueryRow(ctx, database.GetMenuItemSQL, id).
		Scan(&item.ID, &item.Name, &item.Category, &item.Price, &item.ImageURL)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *PostgresRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, database.CountMenuItemsSQL).Scan(&count)
	return count, err
}

func (r *PostgresRepository) Insert(ctx context.Context, item models.MenuItem) error {
	return r.db.Exec(ctx, database.InsertMenuItemSQL, item.Name, item.Category, item.Price, item.ImageURL)
}
