package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/artfusion/backend/internal/models"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// WatchListRepository handles database operations on per-user watch lists.
type WatchListRepository struct {
	collection *mongo.Collection
}

// NewWatchListRepository creates a new instance of WatchListRepository.
func NewWatchListRepository(db *mongo.Database) *WatchListRepository {
	return &WatchListRepository{
		collection: db.Collection("watchlists"),
	}
}

// GetByEmail retrieves the watch list document for an email. Returns
// (nil, nil) when the user has no document yet.
func (r *WatchListRepository) GetByEmail(ctx context.Context, email string) (*models.WatchList, error) {
	var list models.WatchList
	err := r.collection.FindOne(ctx, bson.M{"email": email}).Decode(&list)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"email": email,
			"error": err,
		}).Warn("Failed to find watch list by email")
		return nil, fmt.Errorf("failed to find watch list: %v", err)
	}
	return &list, nil
}

// AppendItem appends an item to the user's list in one atomic upsert: when
// no document exists yet, $setOnInsert creates it with the email and $push
// seeds the array, so two concurrent first adds cannot both create a record.
func (r *WatchListRepository) AppendItem(ctx context.Context, email string, item models.WatchedItem) (*mongo.UpdateResult, error) {
	update := bson.M{
		"$setOnInsert": bson.M{"email": email},
		"$push":        bson.M{"data": item},
	}

	result, err := r.collection.UpdateOne(ctx, bson.M{"email": email}, update, options.Update().SetUpsert(true))
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"email":  email,
			"itemID": item.ID,
			"error":  err,
		}).Error("Failed to append item to watch list")
		return nil, fmt.Errorf("failed to append item to watch list: %v", err)
	}

	logrus.WithFields(logrus.Fields{
		"email":  email,
		"itemID": item.ID,
	}).Info("Item appended to watch list")
	return result, nil
}

// PullItem removes every array entry with the given item id from the user's
// list. The update is not an upsert, so an unknown email creates nothing.
func (r *WatchListRepository) PullItem(ctx context.Context, email, itemID string) (*mongo.UpdateResult, error) {
	update := bson.M{"$pull": bson.M{"data": bson.M{"_id": itemID}}}

	result, err := r.collection.UpdateOne(ctx, bson.M{"email": email}, update)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"email":  email,
			"itemID": itemID,
			"error":  err,
		}).Error("Failed to remove item from watch list")
		return nil, fmt.Errorf("failed to remove item from watch list: %v", err)
	}

	return result, nil
}
