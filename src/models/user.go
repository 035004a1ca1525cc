package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// User is a dashboard account. Password comes in from the frontend
// but is never serialized back.
type User struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email    string             `bson:"email" json:"email" validate:"required,email"`
	Password string             `bson:"password,omitempty" json:"-"`
	Name     string             `bson:"name,omitempty" json:"name,omitempty"`
	Role     string             `bson:"role" json:"role"`
}

// LoginRequest is the dashboard login payload.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}
