package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CraftItem is a catalog entry in the crafts collection.
type CraftItem struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Title       string             `bson:"title" json:"title"`
	Photo       string             `bson:"photo" json:"photo"`
	Location    string             `bson:"location" json:"location"`
	Price       float64            `bson:"price" json:"price"`
	Category    string             `bson:"category" json:"category"`
	Description string             `bson:"description" json:"description"`
	SubmittedAt time.Time          `bson:"submittedAt" json:"submittedAt"`
}
