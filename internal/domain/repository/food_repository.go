// Package repository defines the persistence contracts the domain depends on.
package repository

import (
	"context"

	"foodio/internal/domain/entity"
	"foodio/internal/errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	// ErrFoodNotFound is returned when no food matches the given id.
	ErrFoodNotFound = errors.New("food not found")

	// ErrFoodNotOwned is returned when an owner-scoped mutation matches zero
	// documents. Callers must not distinguish missing from not-owned.
	ErrFoodNotOwned = errors.New("food not owned by caller or does not exist")

	// ErrInsufficientStock is returned when a conditional stock reservation
	// matches zero documents.
	ErrInsufficientStock = errors.New("insufficient stock")
)

// FoodPatch carries the owner-updatable fields. Nil fields are left
// untouched; the update is a partial $set, never a document replacement.
type FoodPatch struct {
	Name        *string
	Quantity    *int64
	Price       *float64
	Description *string
	Image       *string
	Category    *string
	Origin      *string
}

// FoodRepository is the persistence contract for the foods collection.
type FoodRepository interface {
	// Find returns all foods, or the foods whose name contains the search
	// text case-insensitively when search is non-empty. Natural store order.
	Find(ctx context.Context, search string) ([]*entity.Food, error)

	// FindByOwner returns all foods owned by the given email.
	FindByOwner(ctx context.Context, email string) ([]*entity.Food, error)

	// FindByID returns the food with the given id, or ErrFoodNotFound.
	FindByID(ctx context.Context, id primitive.ObjectID) (*entity.Food, error)

	// Insert persists a new food and returns the assigned id.
	Insert(ctx context.Context, food *entity.Food) (primitive.ObjectID, error)

	// UpdateOwned applies the patch to the food matched by both id and owner
	// email. Returns ErrFoodNotOwned when zero documents matched.
	UpdateOwned(ctx context.Context, id primitive.ObjectID, email string, patch *FoodPatch) error

	// DeleteOwned removes the food matched by both id and owner email.
	// Returns ErrFoodNotOwned when zero documents matched.
	DeleteOwned(ctx context.Context, id primitive.ObjectID, email string) error

	// TopByPurchaseCount returns up to limit foods ordered by purchase_count
	// descending. Ties keep the store's natural order.
	TopByPurchaseCount(ctx context.Context, limit int64) ([]*entity.Food, error)

	// ReserveStock decrements quantity and increments purchase_count by n in
	// a single conditional update that only matches when quantity >= n.
	// Returns ErrInsufficientStock when zero documents matched, which covers
	// both a missing food and a short stock; the caller disambiguates.
	ReserveStock(ctx context.Context, id primitive.ObjectID, n int64) error

	// ReleaseStock reverses a prior reservation of n units.
	ReleaseStock(ctx context.Context, id primitive.ObjectID, n int64) error
}
