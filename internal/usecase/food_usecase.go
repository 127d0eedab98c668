// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"foodio/internal/domain/entity"
)

// --- Input DTOs ---

// CreateFoodInput defines the data required to list a new food.
// Unknown client fields are dropped at the boundary; only these named fields
// ever reach the store.
type CreateFoodInput struct {
	Name        string  `json:"food_name" validate:"required"`
	OwnerEmail  string  `json:"user_email" validate:"required,email"`
	Quantity    int64   `json:"quantity" validate:"gte=0"`
	Price       float64 `json:"price" validate:"omitempty,gte=0"`
	Description string  `json:"description"`
	Image       string  `json:"food_image"`
	Category    string  `json:"category"`
	Origin      string  `json:"food_origin"`
}

// UpdateFoodInput defines the owner-updatable fields. Nil fields are left
// untouched.
type UpdateFoodInput struct {
	Name        *string  `json:"food_name" validate:"omitempty,min=1"`
	Quantity    *int64   `json:"quantity" validate:"omitempty,gte=0"`
	Price       *float64 `json:"price" validate:"omitempty,gte=0"`
	Description *string  `json:"description"`
	Image       *string  `json:"food_image"`
	Category    *string  `json:"category"`
	Origin      *string  `json:"food_origin"`
}

// --- Output DTOs ---

// CreateFoodOutput returns the insertion acknowledgment.
type CreateFoodOutput struct {
	Acknowledged bool   `json:"acknowledged"`
	InsertedID   string `json:"insertedId"`
}

// FoodUsecase defines the interface for food-related business operations.
// This is the contract that the delivery layer depends on.
type FoodUsecase interface {
	// ListFoods returns all foods, optionally filtered by a case-insensitive
	// substring match on the food name.
	ListFoods(ctx context.Context, search string) ([]*entity.Food, error)

	// ListFoodsByOwner returns the foods owned by the given email. The email
	// is required.
	ListFoodsByOwner(ctx context.Context, email string) ([]*entity.Food, error)

	// GetFood returns a single food by its hex id.
	GetFood(ctx context.Context, id string) (*entity.Food, error)

	// CreateFood lists a new food with purchase_count starting at zero.
	CreateFood(ctx context.Context, input *CreateFoodInput) (*CreateFoodOutput, error)

	// UpdateFood applies a partial update, scoped to the owning email.
	UpdateFood(ctx context.Context, id string, email string, input *UpdateFoodInput) error

	// DeleteFood removes a food, scoped to the owning email.
	DeleteFood(ctx context.Context, id string, email string) error

	// TopFoods returns the most purchased foods, best sellers first.
	TopFoods(ctx context.Context) ([]*entity.Food, error)
}
