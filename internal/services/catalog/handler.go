package catalog

import (
	"encoding/json"
	"net/http"
	"strconv"

	"storefront/internal/logger"
)

// Handler serves the public menu endpoints.
type Handler struct {
	service *Service
	logger  *logger.Logger
}

// NewHandler creates a new catalog handler
func NewHandler(service *Service, log *logger.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  log,
	}
}

// Register registers the menu routes on the given mux.
func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/menu", h.ListMenu)
	mux.HandleFunc("GET /api/menu/{id}", h.GetMenuItem)
}

// ListMenu handles GET /api/menu
func (h *Handler) ListMenu(w http.ResponseWriter, r *http.Request) {
	requestID := logger.GenerateRequestID()

	items, err := h.service.ListMenuItems(r.Context())
	if err != nil {
		h.logger.Error("menu_list_failed", "Failed to list menu items", requestID, err, nil)
		h.writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	h.writeJSON(w, http.StatusOK, items)
}

// GetMenuItem handles GET /api/menu/{id}
func (h *Handler) GetMenuItem(w http.ResponseWriter, r *http.Request) {
	requestID := logger.GenerateRequestID()

	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		h.writeError(w, http.StatusNotFound, "Item not found")
		return
	}

	item, err := h.service.GetMenuItem(r.Context(), id)
	if err != nil {
		h.logger.Error("menu_get_failed", "Failed to get menu item", requestID, err, map[string]any{"id": id})
		h.writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if item == nil {
		h.writeError(w, http.StatusNotFound, "Item not found")
		return
	}

	h.writeJSON(w, http.StatusOK, item)
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("response_encoding_failed", "Failed to encode response", "", err, nil)
	}
}

func (h *Handler) writeError(w http.ResponseWriter, status int, message string) {
	h.writeJSON(w, status, map[string]string{"message": message})
}
