package notification

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"storefront/internal/config"
	"storefront/internal/logger"
	"storefront/internal/models"
)

// Catalog resolves item names for the notification text.
type Catalog interface {
	GetMenuItem(ctx context.Context, id int64) (*models.MenuItem, error)
}

// EventPublisher publishes order-created events to the kitchen queue.
type EventPublisher interface {
	PublishOrderCreated(ctx context.Context, event models.OrderCreatedEvent) error
}

// Dispatcher sends a best-effort push notification for each persisted
// order. Every failure is logged and absorbed: a lost notification never
// affects the order itself.
type Dispatcher struct {
	catalog   Catalog
	publisher EventPublisher // nil disables kitchen events
	client    *http.Client
	server    string
	topic     string
	logger    *logger.Logger
}

// NewDispatcher creates a new notification dispatcher
func NewDispatcher(catalog Catalog, publisher EventPublisher, cfg config.NotifyConfig, log *logger.Logger) *Dispatcher {
	return &Dispatcher{
		catalog:   catalog,
		publisher: publisher,
		client:    &http.Client{Timeout: 15 * time.Second},
		server:    strings.TrimRight(cfg.Server, "/"),
		topic:     cfg.Topic,
		logger:    log,
	}
}

// Notify formats and sends the kitchen alert for an already-persisted
// order. It never returns an error.
func (d *Dispatcher) Notify(ctx context.Context, order *models.Order) {
	message, items := d.buildMessage(ctx, order)
	d.push(ctx, order.ID, message)
	d.publishEvent(ctx, order, items)
}

// buildMessage resolves item names best-effort: an unresolvable item drops
// its line rather than failing the whole notification.
func (d *Dispatcher) buildMessage(ctx context.Context, order *models.Order) (string, []models.EventItem) {
	var b strings.Builder
	var items []models.EventItem

	fmt.Fprintf(&b, "New Order #%d\n", order.ID)
	fmt.Fprintf(&b, "Pickup: %s\n", order.PickupDate)

	if main, err := d.catalog.GetMenuItem(ctx, order.MainItemID); err != nil {
		d.logger.Error("notification_item_lookup_failed", "Failed to resolve main item", "", err, map[string]any{"item_id": order.MainItemID})
	} else if main != nil {
		fmt.Fprintf(&b, "Main: %dx %s\n", order.MainQuantity, main.Name)
		items = append(items, models.EventItem{Name: main.Name, Quantity: order.MainQuantity})
	}

	if order.DessertItemID != nil {
		if dessert, err := d.catalog.GetMenuItem(ctx, *order.DessertItemID); err != nil {
			d.logger.Error("notification_item_lookup_failed", "Failed to resolve dessert item", "", err, map[string]any{"item_id": *order.DessertItemID})
		} else if dessert != nil {
			fmt.Fprintf(&b, "Dessert: %dx %s\n", order.DessertQuantity, dessert.Name)
			items = append(items, models.EventItem{Name: dessert.Name, Quantity: order.DessertQuantity})
		}
	}

	fmt.Fprintf(&b, "Total: %s", formatPrice(order.TotalPrice))
	return b.String(), items
}

func (d *Dispatcher) push(ctx context.Context, orderID int64, message string) {
	url := d.server + "/" + d.topic

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, strings.NewReader(message))
	if err != nil {
		d.logger.Error("notification_failed", "Failed to build push request", "", err, map[string]any{"order_id": orderID})
		return
	}
	req.Header.Set("Title", "New Food Order Received")
	req.Header.Set("Priority", "high")
	req.Header.Set("Tags", "shallow_pan_of_food")

	resp, err := d.client.Do(req)
	if err != nil {
		d.logger.Error("notification_failed", "Failed to send push notification", "", err, map[string]any{
			"order_id": orderID,
			"topic":    d.topic,
		})
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		d.logger.Error("notification_failed",
			fmt.Sprintf("Push endpoint returned status %d", resp.StatusCode), "", nil,
			map[string]any{
				"order_id": orderID,
				"topic":    d.topic,
			})
		return
	}

	d.logger.Info("notification_sent", fmt.Sprintf("Notification sent to %s", d.topic), "", map[string]any{
		"order_id": orderID,
	})
}

func (d *Dispatcher) publishEvent(ctx context.Context, order *models.Order, items []models.EventItem) {
	if d.publisher == nil {
		return
	}

	event := models.OrderCreatedEvent{
		OrderID:    order.ID,
		PickupDate: order.PickupDate,
		Items:      items,
		TotalPrice: order.TotalPrice,
		Timestamp:  time.Now().UTC(),
	}

	if err := d.publisher.PublishOrderCreated(ctx, event); err != nil {
		d.logger.Error("kitchen_event_failed", "Failed to publish order created event", "", err, map[string]any{
			"order_id": order.ID,
		})
	}
}

// formatPrice renders minor currency units as a two-decimal dollar string.
func formatPrice(cents int64) string {
	return fmt.Sprintf("$%d.%02d", cents/100, cents%100)
}
