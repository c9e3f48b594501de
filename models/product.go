package models

import "go.mongodb.org/mongo-driver/bson/primitive"

type Product struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name        string             `bson:"name" json:"name"`
	Description string             `bson:"description" json:"description"`
	Image       string             `bson:"image" json:"image"`
	Price       float64            `bson:"price" json:"price"`
	Brand       string             `bson:"brand" json:"brand"`
	Stock       int                `bson:"stock" json:"stock"`
	User        primitive.ObjectID `bson:"user,omitempty" json:"user,omitempty"`
}

// ProductFields carries the catalog fields of a product for full-field
// updates. The creator reference is deliberately not part of it.
type ProductFields struct {
	Name        string  `bson:"name" json:"name"`
	Description string  `bson:"description" json:"description"`
	Image       string  `bson:"image" json:"image"`
	Price       float64 `bson:"price" json:"price"`
	Brand       string  `bson:"brand" json:"brand"`
	Stock       int     `bson:"stock" json:"stock"`
}
