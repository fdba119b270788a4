package database

// Catalog queries
const (
	ListMenuItemsSQL = `
		SELECT id, name, category, price, image_url
		FROM menu_items
		ORDER BY id ASC`

	GetMenuItemSQL = `
		SELECT id, name, category, price, image_url
		FROM menu_items
		WHERE id = $1`

	CountMenuItemsSQL = `
		SELECT COUNT(*) FROM menu_items`

	// ON CONFLICT (name) makes the seed safe against two instances racing
	// on an empty catalog: the loser's insert is a no-op.
	InsertMenuItemSQL = `
		INSERT INTO menu_items (name, category, price, image_url)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (name) DO NOTHING`
)

// Order queries
const (
	InsertOrderSQL = `
		INSERT INTO orders (main_item_id, main_quantity, dessert_item_id, dessert_quantity, pickup_date, total_price)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at`
)
