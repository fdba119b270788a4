package order

import (
	"context"
	"errors"
	"testing"
	"time"

	"storefront/internal/logger"
	"storefront/internal/models"
)

type fakeCatalog struct {
	items map[int64]models.MenuItem
}

func (c *fakeCatalog) GetMenuItem(ctx context.Context, id int64) (*models.MenuItem, error) {
	item, ok := c.items[id]
	if !ok {
		return nil, nil
	}
	return &item, nil
}

type fakeRepository struct {
	inserted []*models.Order
	failWith error
}

func (r *fakeRepository) Insert(ctx context.Context, order *models.Order) error {
	if r.failWith != nil {
		return r.failWith
	}
	order.ID = int64(len(r.inserted) + 1)
	order.CreatedAt = time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)
	r.inserted = append(r.inserted, order)
	return nil
}

func seededCatalog() *fakeCatalog {
	return &fakeCatalog{items: map[int64]models.MenuItem{
		1: {ID: 1, Name: "Chicken Rice", Category: models.CategoryMain, Price: 850},
		2: {ID: 2, Name: "Brownie", Category: models.CategoryDessert, Price: 300},
	}}
}

func newTestService(repo *fakeRepository, windowDays int) *Service {
	svc := NewService(repo, seededCatalog(), logger.New("test"), windowDays)
	svc.now = func() time.Time { return time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC) }
	return svc
}

func TestCreateOrder_RecomputesTotalPrice(t *testing.T) {
	repo := &fakeRepository{}
	svc := newTestService(repo, 3)

	clientTotal := int64(1) // tampered client total, must be ignored
	order, err := svc.CreateOrder(context.Background(), &models.CreateOrderRequest{
		MainItemID:      i64(1),
		MainQuantity:    num(2),
		DessertItemID:   i64(2),
		DessertQuantity: num(1),
		PickupDate:      "2025-01-02",
		TotalPrice:      &clientTotal,
	})
	if err != nil {
		t.Fatalf("CreateOrder: %v", err)
	}

	if order.TotalPrice != 2000 {
		t.Errorf("expected total 2000 (850*2 + 300*1), got %d", order.TotalPrice)
	}
	if len(repo.inserted) != 1 {
		t.Fatalf("expected 1 insert, got %d", len(repo.inserted))
	}
	if repo.inserted[0].TotalPrice != 2000 {
		t.Errorf("persisted total %d, want 2000", repo.inserted[0].TotalPrice)
	}
}

func TestCreateOrder_MainOnly(t *testing.T) {
	repo := &fakeRepository{}
	svc := newTestService(repo, 3)

	order, err := svc.CreateOrder(context.Background(), &models.CreateOrderRequest{
		MainItemID:   i64(1),
		MainQuantity: num(3),
		PickupDate:   "2025-01-03",
	})
	if err != nil {
		t.Fatalf("CreateOrder: %v", err)
	}

	if order.TotalPrice != 2550 {
		t.Errorf("expected total 2550, got %d", order.TotalPrice)
	}
	if order.DessertItemID != nil {
		t.Errorf("expected nil dessert item, got %v", *order.DessertItemID)
	}
	if order.DessertQuantity != 0 {
		t.Errorf("expected dessert quantity 0, got %d", order.DessertQuantity)
	}
}

func TestCreateOrder_UnknownReferences(t *testing.T) {
	tests := []struct {
		name      string
		req       *models.CreateOrderRequest
		wantField string
	}{
		{
			name: "unknown main item",
			req: &models.CreateOrderRequest{
				MainItemID:   i64(99),
				MainQuantity: num(1),
				PickupDate:   "2025-01-02",
			},
			wantField: "mainItemId",
		},
		{
			name: "main item of dessert category",
			req: &models.CreateOrderRequest{
				MainItemID:   i64(2),
				MainQuantity: num(1),
				PickupDate:   "2025-01-02",
			},
			wantField: "mainItemId",
		},
		{
			name: "unknown dessert item",
			req: &models.CreateOrderRequest{
				MainItemID:      i64(1),
				MainQuantity:    num(1),
				DessertItemID:   i64(77),
				DessertQuantity: num(1),
				PickupDate:      "2025-01-02",
			},
			wantField: "dessertItemId",
		},
		{
			name: "dessert item of main category",
			req: &models.CreateOrderRequest{
				MainItemID:      i64(1),
				MainQuantity:    num(1),
				DessertItemID:   i64(1),
				DessertQuantity: num(1),
				PickupDate:      "2025-01-02",
			},
			wantField: "dessertItemId",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeRepository{}
			svc := newTestService(repo, 3)

			_, err := svc.CreateOrder(context.Background(), tt.req)

			var refErr *models.ReferenceError
			if !errors.As(err, &refErr) {
				t.Fatalf("expected ReferenceError, got %v", err)
			}
			if refErr.Field != tt.wantField {
				t.Errorf("expected field %q, got %q", tt.wantField, refErr.Field)
			}
			if len(repo.inserted) != 0 {
				t.Errorf("expected no write, got %d inserts", len(repo.inserted))
			}
		})
	}
}

func TestCreateOrder_PickupWindow(t *testing.T) {
	tests := []struct {
		name       string
		windowDays int
		pickupDate string
		wantErr    bool
	}{
		{"tomorrow inside window", 3, "2025-01-02", false},
		{"last day of window", 3, "2025-01-04", false},
		{"today rejected with window", 3, "2025-01-01", true},
		{"beyond window", 3, "2025-01-05", true},
		{"past date", 3, "2024-12-31", true},
		{"window disabled allows far future", 0, "2025-06-01", false},
		{"window disabled allows today", 0, "2025-01-01", false},
		{"window disabled still rejects past", 0, "2024-12-31", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeRepository{}
			svc := newTestService(repo, tt.windowDays)

			_, err := svc.CreateOrder(context.Background(), &models.CreateOrderRequest{
				MainItemID:   i64(1),
				MainQuantity: num(1),
				PickupDate:   tt.pickupDate,
			})

			if !tt.wantErr {
				if err != nil {
					t.Fatalf("expected success, got %v", err)
				}
				return
			}

			var validationErr *models.ValidationError
			if !errors.As(err, &validationErr) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if validationErr.Field != "pickupDate" {
				t.Errorf("expected field pickupDate, got %q", validationErr.Field)
			}
			if len(repo.inserted) != 0 {
				t.Errorf("expected no write, got %d inserts", len(repo.inserted))
			}
		})
	}
}

func TestCreateOrder_StorageFailure(t *testing.T) {
	repo := &fakeRepository{failWith: errors.New("connection refused")}
	svc := newTestService(repo, 3)

	_, err := svc.CreateOrder(context.Background(), &models.CreateOrderRequest{
		MainItemID:   i64(1),
		MainQuantity: num(1),
		PickupDate:   "2025-01-02",
	})
	if err == nil {
		t.Fatal("expected error from failing repository")
	}

	var validationErr *models.ValidationError
	var refErr *models.ReferenceError
	if errors.As(err, &validationErr) || errors.As(err, &refErr) {
		t.Errorf("storage failure must not surface as a client error, got %v", err)
	}
}
