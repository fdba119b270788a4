package order

import (
	"errors"
	"testing"

	"storefront/internal/models"
)

func i64(v int64) *int64 { return &v }
func num(v int) *int     { return &v }

func TestValidateCreateOrder(t *testing.T) {
	tests := []struct {
		name      string
		req       *models.CreateOrderRequest
		wantField string // "" means valid
	}{
		{
			name: "valid full order",
			req: &models.CreateOrderRequest{
				MainItemID:      i64(1),
				MainQuantity:    num(2),
				DessertItemID:   i64(2),
				DessertQuantity: num(1),
				PickupDate:      "2025-01-02",
			},
		},
		{
			name: "valid without dessert",
			req: &models.CreateOrderRequest{
				MainItemID:   i64(1),
				MainQuantity: num(1),
				PickupDate:   "2025-01-02",
			},
		},
		{
			name: "missing main item",
			req: &models.CreateOrderRequest{
				MainQuantity: num(1),
				PickupDate:   "2025-01-02",
			},
			wantField: "mainItemId",
		},
		{
			name: "missing main quantity",
			req: &models.CreateOrderRequest{
				MainItemID: i64(1),
				PickupDate: "2025-01-02",
			},
			wantField: "mainQuantity",
		},
		{
			name: "main quantity above limit",
			req: &models.CreateOrderRequest{
				MainItemID:   i64(1),
				MainQuantity: num(6),
				PickupDate:   "2025-01-02",
			},
			wantField: "mainQuantity",
		},
		{
			name: "main quantity zero",
			req: &models.CreateOrderRequest{
				MainItemID:   i64(1),
				MainQuantity: num(0),
				PickupDate:   "2025-01-02",
			},
			wantField: "mainQuantity",
		},
		{
			name: "dessert quantity without dessert",
			req: &models.CreateOrderRequest{
				MainItemID:      i64(1),
				MainQuantity:    num(1),
				DessertQuantity: num(2),
				PickupDate:      "2025-01-02",
			},
			wantField: "dessertQuantity",
		},
		{
			name: "dessert selected with zero quantity",
			req: &models.CreateOrderRequest{
				MainItemID:      i64(1),
				MainQuantity:    num(1),
				DessertItemID:   i64(2),
				DessertQuantity: num(0),
				PickupDate:      "2025-01-02",
			},
			wantField: "dessertQuantity",
		},
		{
			name: "dessert selected with quantity omitted",
			req: &models.CreateOrderRequest{
				MainItemID:    i64(1),
				MainQuantity:  num(1),
				DessertItemID: i64(2),
				PickupDate:    "2025-01-02",
			},
			wantField: "dessertQuantity",
		},
		{
			name: "dessert quantity above limit",
			req: &models.CreateOrderRequest{
				MainItemID:      i64(1),
				MainQuantity:    num(1),
				DessertItemID:   i64(2),
				DessertQuantity: num(6),
				PickupDate:      "2025-01-02",
			},
			wantField: "dessertQuantity",
		},
		{
			name: "missing pickup date",
			req: &models.CreateOrderRequest{
				MainItemID:   i64(1),
				MainQuantity: num(1),
			},
			wantField: "pickupDate",
		},
		{
			name: "malformed pickup date",
			req: &models.CreateOrderRequest{
				MainItemID:   i64(1),
				MainQuantity: num(1),
				PickupDate:   "02/01/2025",
			},
			wantField: "pickupDate",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateCreateOrder(tt.req)
			if tt.wantField == "" {
				if err != nil {
					t.Fatalf("expected valid request, got %v", err)
				}
				return
			}

			var validationErr *models.ValidationError
			if !errors.As(err, &validationErr) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if validationErr.Field != tt.wantField {
				t.Errorf("expected field %q, got %q (%s)", tt.wantField, validationErr.Field, validationErr.Message)
			}
		})
	}
}

func TestValidateCreateOrder_Deterministic(t *testing.T) {
	req := &models.CreateOrderRequest{
		MainQuantity: num(7),
		PickupDate:   "bad",
	}

	first := ValidateCreateOrder(req)
	second := ValidateCreateOrder(req)
	if first == nil || second == nil {
		t.Fatal("expected errors for malformed request")
	}
	if first.Error() != second.Error() {
		t.Errorf("same input yielded different errors: %q vs %q", first, second)
	}
}
