package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Order is a purchase record in the orders collection. The food reference is
// stored as a native ObjectID; it is converted from hex exactly once at the
// API boundary.
type Order struct {
	ID         primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	FoodID     primitive.ObjectID `json:"food_id" bson:"food_id"`
	BuyerEmail string             `json:"buyer_email" bson:"buyer_email"`
	Quantity   int64              `json:"order_quantity" bson:"order_quantity"`
	BuyerName  string             `json:"buyer_name,omitempty" bson:"buyer_name,omitempty"`
	FoodName   string             `json:"food_name,omitempty" bson:"food_name,omitempty"`
	Price      float64            `json:"price,omitempty" bson:"price,omitempty"`
	Image      string             `json:"food_image,omitempty" bson:"food_image,omitempty"`
	CreatedAt  time.Time          `json:"created_at,omitempty" bson:"created_at,omitempty"`

	// FoodInfo is populated by the read-time lookup against the foods
	// collection. It is never written to the orders collection.
	FoodInfo *Food `json:"food_info,omitempty" bson:"food_info,omitempty"`
}
