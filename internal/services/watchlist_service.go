package services

import (
	"context"

	"github.com/artfusion/backend/internal/models"
	"go.mongodb.org/mongo-driver/mongo"
)

// WatchListStore is the slice of the watch-list repository the service
// depends on.
type WatchListStore interface {
	GetByEmail(ctx context.Context, email string) (*models.WatchList, error)
	AppendItem(ctx context.Context, email string, item models.WatchedItem) (*mongo.UpdateResult, error)
	PullItem(ctx context.Context, email, itemID string) (*mongo.UpdateResult, error)
}

// WatchListService implements the per-user watch list: duplicate-checked
// add, ordered retrieval, and conditional remove.
type WatchListService struct {
	store WatchListStore
}

// NewWatchListService creates a new instance of WatchListService.
func NewWatchListService(store WatchListStore) *WatchListService {
	return &WatchListService{store: store}
}

// AddItem appends item to the list for email unless an entry with the same
// id is already present, in which case it reports ErrDuplicateItem and
// writes nothing.
//
// The duplicate scan reads the current document and the append is a separate
// atomic upsert; only create-vs-append is race-free, not the scan itself.
// Two concurrent adds of the same id can therefore both pass the scan and
// both append. Known limitation, kept deliberately.
func (s *WatchListService) AddItem(ctx context.Context, email string, item models.WatchedItem) (*mongo.UpdateResult, error) {
	if email == "" || item.ID == "" {
		return nil, ErrInvalidInput
	}

	list, err := s.store.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	if list != nil {
		// A document written before any add may lack the items array;
		// the nil slice scans as empty.
		for _, existing := range list.Items {
			if existing.ID == item.ID {
				return nil, ErrDuplicateItem
			}
		}
	}

	return s.store.AppendItem(ctx, email, item)
}

// GetList returns the user's watched items in insertion order. A user with
// no watch list document gets an empty list, not an error.
func (s *WatchListService) GetList(ctx context.Context, email string) ([]models.WatchedItem, error) {
	if email == "" {
		return nil, ErrInvalidInput
	}

	list, err := s.store.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if list == nil || list.Items == nil {
		return []models.WatchedItem{}, nil
	}
	return list.Items, nil
}

// RemoveItem removes the entry with the given id from the user's list.
// Zero modifications — whether the document or just the entry is missing —
// reports ErrNotFound; no document is created as a side effect.
func (s *WatchListService) RemoveItem(ctx context.Context, email, itemID string) (*mongo.UpdateResult, error) {
	if email == "" || itemID == "" {
		return nil, ErrInvalidInput
	}

	result, err := s.store.PullItem(ctx, email, itemID)
	if err != nil {
		return nil, err
	}
	if result.ModifiedCount == 0 {
		return nil, ErrNotFound
	}
	return result, nil
}
