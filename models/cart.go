package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Cart holds an ordered set of product references and a derived total.
// The total is recomputed by every writer; it is not re-validated on read,
// so it can drift if product prices change after being added.
type Cart struct {
	ID       primitive.ObjectID   `bson:"_id,omitempty" json:"_id,omitempty"`
	Products []primitive.ObjectID `bson:"products" json:"products"`
	Total    float64              `bson:"total" json:"total"`
}

// PopulatedCart is a cart with its product references expanded to full
// records, the shape returned by the cart read endpoint.
type PopulatedCart struct {
	ID       primitive.ObjectID `json:"_id,omitempty"`
	Products []Product          `json:"products"`
	Total    float64            `json:"total"`
}
