package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/artfusion/backend/internal/models"
	"github.com/artfusion/backend/internal/services"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

// CraftHandler handles HTTP requests for the craft catalog.
type CraftHandler struct {
	Service *services.CraftService
}

// NewCraftHandler creates a new instance of CraftHandler.
func NewCraftHandler(service *services.CraftService) *CraftHandler {
	return &CraftHandler{Service: service}
}

// HomeHandler responds with a plaintext greeting.
func (h *CraftHandler) HomeHandler(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte("Hello World"))
}

// GetCraftsHandler returns the whole catalog.
func (h *CraftHandler) GetCraftsHandler(w http.ResponseWriter, r *http.Request) {
	crafts, err := h.Service.GetAllCrafts(r.Context())
	if err != nil {
		log.WithError(err).Error("Failed to fetch crafts")
		http.Error(w, "Failed to fetch crafts", http.StatusInternalServerError)
		return
	}
	if crafts == nil {
		crafts = []models.CraftItem{}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(crafts)
}

// GetCraftsByCategoryHandler returns the catalog entries of one category.
func (h *CraftHandler) GetCraftsByCategoryHandler(w http.ResponseWriter, r *http.Request) {
	category := mux.Vars(r)["category"]

	crafts, err := h.Service.GetCraftsByCategory(r.Context(), category)
	if err != nil {
		log.WithFields(log.Fields{
			"category": category,
			"error":    err,
		}).Error("Failed to fetch crafts by category")
		http.Error(w, "Failed to fetch crafts", http.StatusInternalServerError)
		return
	}
	if crafts == nil {
		crafts = []models.CraftItem{}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(crafts)
}

// GetCraftHandler returns a single catalog entry by id.
func (h *CraftHandler) GetCraftHandler(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	craft, err := h.Service.GetCraftByID(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidInput):
			http.Error(w, "Invalid craft ID", http.StatusBadRequest)
		case errors.Is(err, services.ErrNotFound):
			http.Error(w, "Craft not found", http.StatusNotFound)
		default:
			log.WithError(err).Error("Failed to fetch craft")
			http.Error(w, "Failed to fetch craft", http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(craft)
}

// AddCraftHandler inserts a new catalog entry.
func (h *CraftHandler) AddCraftHandler(w http.ResponseWriter, r *http.Request) {
	var craft models.CraftItem
	if err := json.NewDecoder(r.Body).Decode(&craft); err != nil {
		log.WithError(err).Warn("Failed to decode craft payload")
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	result, err := h.Service.AddCraft(r.Context(), &craft)
	if err != nil {
		if errors.Is(err, services.ErrInvalidInput) {
			http.Error(w, "Craft must have a title", http.StatusBadRequest)
			return
		}
		log.WithError(err).Error("Failed to add craft")
		http.Error(w, "Failed to add craft", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}

// UpdateCraftHandler replaces a catalog entry's fields, creating it when
// the id has no match yet.
func (h *CraftHandler) UpdateCraftHandler(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var craft models.CraftItem
	if err := json.NewDecoder(r.Body).Decode(&craft); err != nil {
		log.WithError(err).Warn("Failed to decode craft update payload")
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	result, err := h.Service.UpdateCraft(r.Context(), id, &craft)
	if err != nil {
		if errors.Is(err, services.ErrInvalidInput) {
			http.Error(w, "Invalid craft ID", http.StatusBadRequest)
			return
		}
		log.WithFields(log.Fields{
			"craftID": id,
			"error":   err,
		}).Error("Failed to update craft")
		http.Error(w, "Failed to update craft", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}
