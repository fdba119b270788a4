package order

import (
	"context"
	"fmt"
	"time"

	"storefront/internal/logger"
	"storefront/internal/models"
)

// Catalog resolves menu item references during order creation.
type Catalog interface {
	GetMenuItem(ctx context.Context, id int64) (*models.MenuItem, error)
}

// Repository is the storage contract the order service depends on.
type Repository interface {
	// Insert persists the order atomically and fills in its assigned
	// identifier and creation time.
	Insert(ctx context.Context, order *models.Order) error
}

// Service implements the order store: validated, price-consistent order
// creation against the catalog.
type Service struct {
	repo             Repository
	catalog          Catalog
	logger           *logger.Logger
	pickupWindowDays int
	now              func() time.Time
}

// NewService creates a new order service. pickupWindowDays bounds how far
// ahead a pickup date may be (0 disables the window check).
func NewService(repo Repository, catalog Catalog, log *logger.Logger, pickupWindowDays int) *Service {
	return &Service{
		repo:             repo,
		catalog:          catalog,
		logger:           log,
		pickupWindowDays: pickupWindowDays,
		now:              time.Now,
	}
}

// CreateOrder validates the request, resolves its catalog references,
// recomputes the total price server-side and persists the order. Any
// client-supplied total is ignored.
func (s *Service) CreateOrder(ctx context.Context, req *models.CreateOrderRequest) (*models.Order, error) {
	if err := ValidateCreateOrder(req); err != nil {
		return nil, err
	}
	if err := s.validatePickupDate(req.PickupDate); err != nil {
		return nil, err
	}

	main, err := s.catalog.GetMenuItem(ctx, *req.MainItemID)
	if err != nil {
		return nil, fmt.Errorf("resolve main item: %w", err)
	}
	if main == nil || main.Category != models.CategoryMain {
		return nil, &models.ReferenceError{Field: "mainItemId", ID: *req.MainItemID}
	}

	total := main.Price * int64(*req.MainQuantity)

	dessertQty := 0
	if req.DessertItemID != nil {
		dessert, err := s.catalog.GetMenuItem(ctx, *req.DessertItemID)
		if err != nil {
			return nil, fmt.Errorf("resolve dessert item: %w", err)
		}
		if dessert == nil || dessert.Category != models.CategoryDessert {
			return nil, &models.ReferenceError{Field: "dessertItemId", ID: *req.DessertItemID}
		}
		dessertQty = *req.DessertQuantity
		total += dessert.Price * int64(dessertQty)
	}

	order := &models.Order{
		MainItemID:      *req.MainItemID,
		MainQuantity:    *req.MainQuantity,
		DessertItemID:   req.DessertItemID,
		DessertQuantity: dessertQty,
		PickupDate:      req.PickupDate,
		TotalPrice:      total,
	}

	if err := s.repo.Insert(ctx, order); err != nil {
		return nil, fmt.Errorf("insert order: %w", err)
	}

	s.logger.Info("order_created", fmt.Sprintf("Order %d created", order.ID), "", map[string]any{
		"order_id":    order.ID,
		"total_price": order.TotalPrice,
		"pickup_date": order.PickupDate,
	})

	return order, nil
}

// validatePickupDate rejects dates in the past and, when the window is
// enabled, dates outside the next pickupWindowDays calendar days.
func (s *Service) validatePickupDate(value string) error {
	pickup, err := time.Parse(models.PickupDateLayout, value)
	if err != nil {
		return &models.ValidationError{Field: "pickupDate", Message: "pickup date must be a date in YYYY-MM-DD format"}
	}

	now := s.now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	if pickup.Before(today) {
		return &models.ValidationError{Field: "pickupDate", Message: "pickup date must not be in the past"}
	}

	if s.pickupWindowDays > 0 {
		earliest := today.AddDate(0, 0, 1)
		latest := today.AddDate(0, 0, s.pickupWindowDays)
		if pickup.Before(earliest) || pickup.After(latest) {
			return &models.ValidationError{
				Field:   "pickupDate",
				Message: fmt.Sprintf("pickup date must be within the next %d days", s.pickupWindowDays),
			}
		}
	}

	return nil
}
