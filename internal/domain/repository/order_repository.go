package repository

import (
	"context"

	"foodio/internal/domain/entity"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OrderRepository is the persistence contract for the orders collection.
// Orders are insert-only; nothing updates or deletes them.
type OrderRepository interface {
	// Insert persists a new order and returns the assigned id.
	Insert(ctx context.Context, order *entity.Order) (primitive.ObjectID, error)

	// FindByBuyerWithFood returns all orders placed by the given buyer, each
	// with FoodInfo populated from the foods collection. FoodInfo is nil
	// when the referenced food no longer exists.
	FindByBuyerWithFood(ctx context.Context, email string) ([]*entity.Order, error)
}
