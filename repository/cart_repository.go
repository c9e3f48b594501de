package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/shopbay/backend/models"
)

type CartRepository struct {
	collection *mongo.Collection
}

func NewCartRepository(db *mongo.Database) *CartRepository {
	return &CartRepository{
		collection: db.Collection("carts"),
	}
}

func (r *CartRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Cart, error) {
	var cart models.Cart
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&cart)
	if err != nil {
		return nil, err
	}
	return &cart, nil
}

func (r *CartRepository) Create(ctx context.Context, cart *models.Cart) (primitive.ObjectID, error) {
	res, err := r.collection.InsertOne(ctx, cart)
	if err != nil {
		return primitive.NilObjectID, err
	}
	id := res.InsertedID.(primitive.ObjectID)
	cart.ID = id
	return id, nil
}

// Save persists the full cart document. Writers are expected to have the
// product list and total consistent with each other before calling this.
func (r *CartRepository) Save(ctx context.Context, cart *models.Cart) error {
	_, err := r.collection.ReplaceOne(ctx, bson.M{"_id": cart.ID}, cart)
	return err
}
