package order

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"storefront/internal/logger"
	"storefront/internal/models"
)

// Creator creates orders from validated input.
type Creator interface {
	CreateOrder(ctx context.Context, req *models.CreateOrderRequest) (*models.Order, error)
}

// Notifier dispatches a best-effort notification for a persisted order.
type Notifier interface {
	Notify(ctx context.Context, order *models.Order)
}

// Handler serves the order intake endpoint.
type Handler struct {
	service  Creator
	notifier Notifier
	logger   *logger.Logger
}

// NewHandler creates a new order handler
func NewHandler(service Creator, notifier Notifier, log *logger.Logger) *Handler {
	return &Handler{
		service:  service,
		notifier: notifier,
		logger:   log,
	}
}

// Register registers the order routes on the given mux.
func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/orders", h.CreateOrder)
}

type errorResponse struct {
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

// CreateOrder handles POST /api/orders
func (h *Handler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	requestID := logger.GenerateRequestID()

	var req models.CreateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Error("validation_failed", "Failed to parse request body", requestID, err, nil)
		h.writeJSON(w, http.StatusBadRequest, errorResponse{Message: "Invalid request body"})
		return
	}

	order, err := h.service.CreateOrder(r.Context(), &req)
	if err != nil {
		h.writeCreateError(w, requestID, err)
		return
	}

	h.logger.Debug("order_accepted", "Order created successfully", requestID, map[string]any{
		"order_id":    order.ID,
		"total_price": order.TotalPrice,
	})

	h.writeJSON(w, http.StatusCreated, order)

	// Kitchen notification runs out-of-band: the response above is final
	// no matter what happens to the dispatch.
	go h.notifier.Notify(context.Background(), order)
}

func (h *Handler) writeCreateError(w http.ResponseWriter, requestID string, err error) {
	var validationErr *models.ValidationError
	if errors.As(err, &validationErr) {
		h.logger.Debug("validation_failed", validationErr.Error(), requestID, nil)
		h.writeJSON(w, http.StatusBadRequest, errorResponse{Message: validationErr.Message, Field: validationErr.Field})
		return
	}

	var refErr *models.ReferenceError
	if errors.As(err, &refErr) {
		h.logger.Debug("reference_not_found", refErr.Error(), requestID, nil)
		h.writeJSON(w, http.StatusBadRequest, errorResponse{Message: refErr.Error(), Field: refErr.Field})
		return
	}

	h.logger.Error("order_creation_failed", "Failed to create order", requestID, err, nil)
	h.writeJSON(w, http.StatusInternalServerError, errorResponse{Message: "Internal server error"})
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("response_encoding_failed", "Failed to encode response", "", err, nil)
	}
}
