package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/artfusion/backend/internal/models"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CraftRepository handles database operations on the craft catalog.
type CraftRepository struct {
	collection *mongo.Collection
}

// NewCraftRepository creates a new instance of CraftRepository.
func NewCraftRepository(db *mongo.Database) *CraftRepository {
	return &CraftRepository{
		collection: db.Collection("crafts"),
	}
}

// GetAll returns every craft item in stored order.
func (r *CraftRepository) GetAll(ctx context.Context) ([]models.CraftItem, error) {
	return r.find(ctx, bson.M{})
}

// GetByCategory returns the craft items whose category matches exactly.
func (r *CraftRepository) GetByCategory(ctx context.Context, category string) ([]models.CraftItem, error) {
	return r.find(ctx, bson.M{"category": category})
}

func (r *CraftRepository) find(ctx context.Context, filter bson.M) ([]models.CraftItem, error) {
	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch crafts: %v", err)
	}
	defer cursor.Close(ctx)

	var crafts []models.CraftItem
	for cursor.Next(ctx) {
		var craft models.CraftItem
		if err := cursor.Decode(&craft); err != nil {
			return nil, fmt.Errorf("failed to decode craft: %v", err)
		}
		crafts = append(crafts, craft)
	}

	return crafts, nil
}

// GetByID retrieves a single craft item. Returns (nil, nil) when no item
// matches, so callers can tell absence apart from store failure.
func (r *CraftRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.CraftItem, error) {
	var craft models.CraftItem
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&craft)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"craftID": id.Hex(),
			"error":   err,
		}).Warn("Failed to find craft by ID")
		return nil, fmt.Errorf("failed to find craft by id: %v", err)
	}
	return &craft, nil
}

// Insert adds a new craft item and fills in its generated ID.
func (r *CraftRepository) Insert(ctx context.Context, craft *models.CraftItem) (*mongo.InsertOneResult, error) {
	result, err := r.collection.InsertOne(ctx, craft)
	if err != nil {
		logrus.WithError(err).Error("Failed to insert craft into database")
		return nil, fmt.Errorf("failed to insert craft: %v", err)
	}

	if insertedID, ok := result.InsertedID.(primitive.ObjectID); ok {
		craft.ID = insertedID
	}

	logrus.WithField("craftID", craft.ID.Hex()).Info("Craft inserted successfully")
	return result, nil
}

// Upsert replaces the craft item's fields, creating the document when the
// id has no match yet.
func (r *CraftRepository) Upsert(ctx context.Context, id primitive.ObjectID, craft *models.CraftItem) (*mongo.UpdateResult, error) {
	update := bson.M{
		"$set": bson.M{
			"title":       craft.Title,
			"photo":       craft.Photo,
			"location":    craft.Location,
			"price":       craft.Price,
			"category":    craft.Category,
			"description": craft.Description,
			"submittedAt": craft.SubmittedAt,
		},
	}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, update, options.Update().SetUpsert(true))
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"craftID": id.Hex(),
			"error":   err,
		}).Error("Failed to upsert craft")
		return nil, fmt.Errorf("failed to upsert craft: %v", err)
	}

	logrus.WithField("craftID", id.Hex()).Info("Craft upserted successfully")
	return result, nil
}
