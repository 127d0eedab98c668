// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "foodio/internal/delivery/context"
	"foodio/internal/domain/entity"
	domainerrors "foodio/internal/domain/errors"
	"foodio/internal/domain/repository"
	"foodio/internal/usecase"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/fx"
)

// topFoodsLimit caps the best-seller listing.
const topFoodsLimit = 6

// foodService implements the FoodUsecase interface.
type foodService struct {
	foodRepo repository.FoodRepository
	logger   *slog.Logger
}

// FoodServiceParams holds dependencies for foodService, injected by Fx.
type FoodServiceParams struct {
	fx.In

	FoodRepo repository.FoodRepository
	Logger   *slog.Logger
}

// NewFoodService is the constructor for foodService.
func NewFoodService(params FoodServiceParams) usecase.FoodUsecase {
	return &foodService{
		foodRepo: params.FoodRepo,
		logger:   params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *foodService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListFoods returns every food, or the foods matching the search text.
func (srv *foodService) ListFoods(ctx context.Context, search string) ([]*entity.Food, error) {
	foods, err := srv.foodRepo.Find(ctx, search)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list foods")
	}

	return foods, nil
}

// ListFoodsByOwner returns the foods owned by the given email.
func (srv *foodService) ListFoodsByOwner(ctx context.Context, email string) ([]*entity.Food, error) {
	if email == "" {
		return nil, domainerrors.ErrEmailRequired
	}

	foods, err := srv.foodRepo.FindByOwner(ctx, email)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list foods by owner")
	}

	return foods, nil
}

// GetFood returns a single food by its hex id.
func (srv *foodService) GetFood(ctx context.Context, id string) (*entity.Food, error) {
	foodID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domainerrors.ErrInvalidFoodID
	}

	food, err := srv.foodRepo.FindByID(ctx, foodID)
	if err != nil {
		if errors.Is(err, repository.ErrFoodNotFound) {
			return nil, domainerrors.ErrFoodNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to get food")
	}

	return food, nil
}

// CreateFood lists a new food. purchase_count always starts at zero no
// matter what the caller sent.
func (srv *foodService) CreateFood(ctx context.Context, input *usecase.CreateFoodInput) (*usecase.CreateFoodOutput, error) {
	food := &entity.Food{
		Name:          input.Name,
		OwnerEmail:    input.OwnerEmail,
		Quantity:      input.Quantity,
		PurchaseCount: 0,
		Price:         input.Price,
		Description:   input.Description,
		Image:         input.Image,
		Category:      input.Category,
		Origin:        input.Origin,
		CreatedAt:     time.Now().UTC(),
	}

	id, err := srv.foodRepo.Insert(ctx, food)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to create food")
	}

	srv.log(ctx).Info("Food created",
		slog.String("foodId", id.Hex()),
		slog.String("owner", input.OwnerEmail))

	return &usecase.CreateFoodOutput{
		Acknowledged: true,
		InsertedID:   id.Hex(),
	}, nil
}

// UpdateFood applies a partial update scoped to the owning email.
func (srv *foodService) UpdateFood(ctx context.Context, id string, email string, input *usecase.UpdateFoodInput) error {
	if email == "" {
		return domainerrors.ErrEmailRequired
	}

	foodID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domainerrors.ErrInvalidFoodID
	}

	patch := &repository.FoodPatch{
		Name:        input.Name,
		Quantity:    input.Quantity,
		Price:       input.Price,
		Description: input.Description,
		Image:       input.Image,
		Category:    input.Category,
		Origin:      input.Origin,
	}

	if err := srv.foodRepo.UpdateOwned(ctx, foodID, email, patch); err != nil {
		if errors.Is(err, repository.ErrFoodNotOwned) {
			return domainerrors.ErrFoodOwnershipViolation
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update food")
	}

	return nil
}

// DeleteFood removes a food scoped to the owning email.
func (srv *foodService) DeleteFood(ctx context.Context, id string, email string) error {
	if email == "" {
		return domainerrors.ErrEmailRequired
	}

	foodID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domainerrors.ErrInvalidFoodID
	}

	if err := srv.foodRepo.DeleteOwned(ctx, foodID, email); err != nil {
		if errors.Is(err, repository.ErrFoodNotOwned) {
			return domainerrors.ErrFoodOwnershipViolation
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to delete food")
	}

	srv.log(ctx).Info("Food deleted",
		slog.String("foodId", id),
		slog.String("owner", email))

	return nil
}

// TopFoods returns the best sellers, purchase_count descending.
func (srv *foodService) TopFoods(ctx context.Context) ([]*entity.Food, error) {
	foods, err := srv.foodRepo.TopByPurchaseCount(ctx, topFoodsLimit)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list top foods")
	}

	return foods, nil
}
