package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// WatchedItem is a copy of a catalog item embedded in a user's watch list.
// The copy is taken at add-time and does not track later catalog edits.
// Its id is the catalog id as the client sent it, kept as a plain string
// because duplicate detection and removal compare it verbatim.
type WatchedItem struct {
	ID          string  `bson:"_id" json:"_id"`
	Title       string  `bson:"title,omitempty" json:"title,omitempty"`
	Photo       string  `bson:"photo,omitempty" json:"photo,omitempty"`
	Location    string  `bson:"location,omitempty" json:"location,omitempty"`
	Price       float64 `bson:"price,omitempty" json:"price,omitempty"`
	Category    string  `bson:"category,omitempty" json:"category,omitempty"`
	Description string  `bson:"description,omitempty" json:"description,omitempty"`
	SubmittedAt string  `bson:"submittedAt,omitempty" json:"submittedAt,omitempty"`
}

// WatchList is the per-user document in the watchlists collection, one per
// email. Items keeps insertion order; no two entries may share an id.
// The bson field name "data" matches the stored documents.
type WatchList struct {
	ID    primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	Email string             `bson:"email" json:"email"`
	Items []WatchedItem      `bson:"data" json:"data"`
}
