package services

import (
	"context"
	"time"

	"github.com/artfusion/backend/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// CraftStore is the slice of the craft repository the service depends on.
type CraftStore interface {
	GetAll(ctx context.Context) ([]models.CraftItem, error)
	GetByCategory(ctx context.Context, category string) ([]models.CraftItem, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.CraftItem, error)
	Insert(ctx context.Context, craft *models.CraftItem) (*mongo.InsertOneResult, error)
	Upsert(ctx context.Context, id primitive.ObjectID, craft *models.CraftItem) (*mongo.UpdateResult, error)
}

// CraftService exposes the craft catalog operations.
type CraftService struct {
	store CraftStore
}

// NewCraftService creates a new instance of CraftService.
func NewCraftService(store CraftStore) *CraftService {
	return &CraftService{store: store}
}

func (s *CraftService) GetAllCrafts(ctx context.Context) ([]models.CraftItem, error) {
	return s.store.GetAll(ctx)
}

func (s *CraftService) GetCraftsByCategory(ctx context.Context, category string) ([]models.CraftItem, error) {
	if category == "" {
		return nil, ErrInvalidInput
	}
	return s.store.GetByCategory(ctx, category)
}

// GetCraftByID resolves the hex id and fetches the item. A malformed id is
// a request-format error, an unmatched one is not-found.
func (s *CraftService) GetCraftByID(ctx context.Context, id string) (*models.CraftItem, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidInput
	}

	craft, err := s.store.GetByID(ctx, objID)
	if err != nil {
		return nil, err
	}
	if craft == nil {
		return nil, ErrNotFound
	}
	return craft, nil
}

// AddCraft inserts a new catalog item, stamping the submission time when
// the payload carries none.
func (s *CraftService) AddCraft(ctx context.Context, craft *models.CraftItem) (*mongo.InsertOneResult, error) {
	if craft.Title == "" {
		return nil, ErrInvalidInput
	}
	if craft.SubmittedAt.IsZero() {
		craft.SubmittedAt = time.Now()
	}
	return s.store.Insert(ctx, craft)
}

// UpdateCraft replaces the item's fields under the given id, creating the
// document when it does not exist yet.
func (s *CraftService) UpdateCraft(ctx context.Context, id string, craft *models.CraftItem) (*mongo.UpdateResult, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidInput
	}
	return s.store.Upsert(ctx, objID, craft)
}
