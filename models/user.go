package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// User is a registered account. The password is a bcrypt hash and the token
// is the JWT issued at registration, reused for the account's lifetime.
type User struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name     string             `bson:"name" json:"name"`
	Email    string             `bson:"email" json:"email"`
	Password string             `bson:"password" json:"-"`
	Token    string             `bson:"token" json:"token,omitempty"`
	Role     string             `bson:"role" json:"role"`
	Cart     primitive.ObjectID `bson:"cart,omitempty" json:"cart,omitempty"`
}
