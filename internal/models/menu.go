package models

// Category classifies a menu item
type Category string

const (
	CategoryMain    Category = "main"
	CategoryDessert Category = "dessert"
)

// MenuItem represents an orderable catalog entry. Prices are integer
// minor currency units (cents).
type MenuItem struct {
	ID       int64    `json:"id"`
	Name     string   `json:"name"`
	Category Category `json:"category"`
	Price    int64    `json:"price"`
	ImageURL string   `json:"imageUrl"`
}
