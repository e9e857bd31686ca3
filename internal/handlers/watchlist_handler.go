package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/artfusion/backend/internal/models"
	"github.com/artfusion/backend/internal/services"
	log "github.com/sirupsen/logrus"
)

// WatchListHandler handles HTTP requests for per-user watch lists.
type WatchListHandler struct {
	Service *services.WatchListService
}

// NewWatchListHandler creates a new instance of WatchListHandler.
func NewWatchListHandler(service *services.WatchListService) *WatchListHandler {
	return &WatchListHandler{Service: service}
}

// addListRequest carries the watch-list add payload. The client sends the
// selected catalog item as a one-element data array; only data[0] is used.
type addListRequest struct {
	Email string               `json:"email"`
	Data  []models.WatchedItem `json:"data"`
}

// removeItemRequest carries the watch-list delete payload. The field names
// match what the frontend sends.
type removeItemRequest struct {
	Email  string `json:"e"`
	ItemID string `json:"id"`
}

// AddToListHandler appends an item to the caller's watch list. A repeated
// id answers 200 with a duplicate marker rather than an error status, so
// the frontend can tell the two outcomes apart.
func (h *WatchListHandler) AddToListHandler(w http.ResponseWriter, r *http.Request) {
	var req addListRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.WithError(err).Warn("Failed to decode watch list add payload")
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	if req.Email == "" || len(req.Data) == 0 {
		http.Error(w, "Email and item are required", http.StatusBadRequest)
		return
	}

	result, err := h.Service.AddItem(r.Context(), req.Email, req.Data[0])
	if err != nil {
		switch {
		case errors.Is(err, services.ErrDuplicateItem):
			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(map[string]string{"found": "duplicateFound"})
		case errors.Is(err, services.ErrInvalidInput):
			http.Error(w, "Email and item are required", http.StatusBadRequest)
		default:
			log.WithFields(log.Fields{
				"email": req.Email,
				"error": err,
			}).Error("Failed to add item to watch list")
			http.Error(w, "Failed to add item to watch list", http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}

// ViewListHandler returns the caller's watched items in insertion order, an
// empty array when there are none.
func (h *WatchListHandler) ViewListHandler(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")
	if email == "" {
		http.Error(w, "Email is required", http.StatusBadRequest)
		return
	}

	items, err := h.Service.GetList(r.Context(), email)
	if err != nil {
		log.WithFields(log.Fields{
			"email": email,
			"error": err,
		}).Error("Failed to fetch watch list")
		http.Error(w, "Failed to fetch watch list", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(items)
}

// RemoveItemHandler removes one item from the caller's watch list.
func (h *WatchListHandler) RemoveItemHandler(w http.ResponseWriter, r *http.Request) {
	var req removeItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.WithError(err).Warn("Failed to decode watch list delete payload")
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	if req.Email == "" || req.ItemID == "" {
		http.Error(w, "Email and item ID are required", http.StatusBadRequest)
		return
	}

	if _, err := h.Service.RemoveItem(r.Context(), req.Email, req.ItemID); err != nil {
		switch {
		case errors.Is(err, services.ErrNotFound):
			http.Error(w, "Item not found", http.StatusNotFound)
		default:
			log.WithFields(log.Fields{
				"email":  req.Email,
				"itemID": req.ItemID,
				"error":  err,
			}).Error("Failed to remove item from watch list")
			http.Error(w, "Failed to remove item from watch list", http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": true,
		"message": "Item deleted successfully",
	})
}
