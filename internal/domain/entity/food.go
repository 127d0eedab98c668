// Package entity contains the core domain records stored in MongoDB.
package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Food is a listed food item in the foods collection.
type Food struct {
	ID            primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Name          string             `json:"food_name" bson:"food_name"`
	OwnerEmail    string             `json:"user_email" bson:"user_email"`
	Quantity      int64              `json:"quantity" bson:"quantity"`
	PurchaseCount int64              `json:"purchase_count" bson:"purchase_count"`
	Price         float64            `json:"price,omitempty" bson:"price,omitempty"`
	Description   string             `json:"description,omitempty" bson:"description,omitempty"`
	Image         string             `json:"food_image,omitempty" bson:"food_image,omitempty"`
	Category      string             `json:"category,omitempty" bson:"category,omitempty"`
	Origin        string             `json:"food_origin,omitempty" bson:"food_origin,omitempty"`
	CreatedAt     time.Time          `json:"created_at,omitempty" bson:"created_at,omitempty"`
}
