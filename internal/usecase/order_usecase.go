package usecase

import (
	"context"

	"foodio/internal/domain/entity"
)

// --- Input DTOs ---

// PlaceOrderInput defines the data required to place an order. FoodID is the
// hex form of the food's ObjectID; quantity and id validation happen in the
// usecase so the error messages stay exact.
type PlaceOrderInput struct {
	FoodID     string  `json:"foodId"`
	BuyerEmail string  `json:"buyer_email" validate:"omitempty,email"`
	Quantity   int64   `json:"order_quantity"`
	BuyerName  string  `json:"buyer_name"`
	FoodName   string  `json:"food_name"`
	Price      float64 `json:"price" validate:"omitempty,gte=0"`
	Image      string  `json:"food_image"`
}

// --- Output DTOs ---

// PlaceOrderOutput returns the insertion acknowledgment.
type PlaceOrderOutput struct {
	Acknowledged bool   `json:"acknowledged"`
	InsertedID   string `json:"insertedId"`
}

// OrderUsecase defines the interface for order-related business operations.
type OrderUsecase interface {
	// PlaceOrder validates the request, reserves stock atomically and
	// records the order. Stock is never oversold: the reservation is a
	// single conditional update on the food document.
	PlaceOrder(ctx context.Context, input *PlaceOrderInput) (*PlaceOrderOutput, error)

	// ListOrdersByBuyer returns the buyer's orders, each joined with the
	// referenced food's details. The email is required. An unknown buyer
	// yields an empty slice, not an error.
	ListOrdersByBuyer(ctx context.Context, email string) ([]*entity.Order, error)
}
