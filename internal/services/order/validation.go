package order

import (
	"time"

	"storefront/internal/models"
)

const (
	minQuantity = 1
	maxQuantity = 5
)

// ValidateCreateOrder checks the shape of an inbound order payload before it
// reaches the store. It is pure: the same input always yields the same
// result, and only the first offending field is reported.
func ValidateCreateOrder(req *models.CreateOrderRequest) error {
	if req.MainItemID == nil {
		return &models.ValidationError{Field: "mainItemId", Message: "main item is required"}
	}
	if *req.MainItemID <= 0 {
		return &models.ValidationError{Field: "mainItemId", Message: "main item id must be positive"}
	}

	if req.MainQuantity == nil {
		return &models.ValidationError{Field: "mainQuantity", Message: "main quantity is required"}
	}
	if *req.MainQuantity < minQuantity || *req.MainQuantity > maxQuantity {
		return &models.ValidationError{Field: "mainQuantity", Message: "main quantity must be between 1 and 5"}
	}

	if req.DessertItemID != nil && *req.DessertItemID <= 0 {
		return &models.ValidationError{Field: "dessertItemId", Message: "dessert item id must be positive"}
	}

	dessertQty := 0
	if req.DessertQuantity != nil {
		dessertQty = *req.DessertQuantity
	}
	if req.DessertItemID == nil && dessertQty != 0 {
		return &models.ValidationError{Field: "dessertQuantity", Message: "dessert quantity must be 0 without a dessert selection"}
	}
	if req.DessertItemID != nil && (dessertQty < minQuantity || dessertQty > maxQuantity) {
		return &models.ValidationError{Field: "dessertQuantity", Message: "dessert quantity must be between 1 and 5 when a dessert is selected"}
	}

	if req.PickupDate == "" {
		return &models.ValidationError{Field: "pickupDate", Message: "pickup date is required"}
	}
	if _, err := time.Parse(models.PickupDateLayout, req.PickupDate); err != nil {
		return &models.ValidationError{Field: "pickupDate", Message: "pickup date must be a date in YYYY-MM-DD format"}
	}

	return nil
}
