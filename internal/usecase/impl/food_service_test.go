package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"foodio/internal/domain/entity"
	domainerrors "foodio/internal/domain/errors"
	"foodio/internal/domain/repository"
	mockRepo "foodio/internal/mocks/repository"
	"foodio/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// foodServiceFixtures holds all test dependencies for food service tests.
type foodServiceFixtures struct {
	service  usecase.FoodUsecase
	foodRepo *mockRepo.MockFoodRepository
}

func createTestFoodService(t *testing.T) foodServiceFixtures {
	foodRepo := mockRepo.NewMockFoodRepository(t)
	service := NewFoodService(FoodServiceParams{
		FoodRepo: foodRepo,
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return foodServiceFixtures{
		service:  service,
		foodRepo: foodRepo,
	}
}

func TestFoodService_ListFoods_PassesSearchThrough(t *testing.T) {
	fx := createTestFoodService(t)

	ctx := context.Background()
	expected := []*entity.Food{
		{ID: primitive.NewObjectID(), Name: "Chicken Biryani"},
	}

	fx.foodRepo.EXPECT().
		Find(ctx, "biryani").
		Return(expected, nil)

	foods, err := fx.service.ListFoods(ctx, "biryani")
	require.NoError(t, err)
	assert.Equal(t, expected, foods)
}

func TestFoodService_ListFoods_EmptySearchReturnsAll(t *testing.T) {
	fx := createTestFoodService(t)

	ctx := context.Background()
	expected := []*entity.Food{
		{ID: primitive.NewObjectID(), Name: "Chicken Biryani"},
		{ID: primitive.NewObjectID(), Name: "Pad Thai"},
	}

	fx.foodRepo.EXPECT().
		Find(ctx, "").
		Return(expected, nil)

	foods, err := fx.service.ListFoods(ctx, "")
	require.NoError(t, err)
	assert.Len(t, foods, 2)
}

func TestFoodService_ListFoodsByOwner_EmailRequired(t *testing.T) {
	fx := createTestFoodService(t)

	foods, err := fx.service.ListFoodsByOwner(context.Background(), "")
	require.Nil(t, foods)
	assert.ErrorIs(t, err, domainerrors.ErrEmailRequired)
}

func TestFoodService_GetFood_InvalidID(t *testing.T) {
	fx := createTestFoodService(t)

	food, err := fx.service.GetFood(context.Background(), "zzz")
	require.Nil(t, food)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidFoodID)
}

func TestFoodService_GetFood_NotFound(t *testing.T) {
	fx := createTestFoodService(t)

	ctx := context.Background()
	foodID := primitive.NewObjectID()

	fx.foodRepo.EXPECT().
		FindByID(ctx, foodID).
		Return(nil, repository.ErrFoodNotFound)

	food, err := fx.service.GetFood(ctx, foodID.Hex())
	require.Nil(t, food)
	assert.ErrorIs(t, err, domainerrors.ErrFoodNotFound)
}

func TestFoodService_CreateFood_StartsWithZeroPurchases(t *testing.T) {
	fx := createTestFoodService(t)

	ctx := context.Background()
	foodID := primitive.NewObjectID()

	fx.foodRepo.EXPECT().
		Insert(ctx, mock.AnythingOfType("*entity.Food")).
		Run(func(ctx context.Context, food *entity.Food) {
			assert.Equal(t, "Chicken Biryani", food.Name)
			assert.Equal(t, "owner@example.com", food.OwnerEmail)
			assert.Equal(t, int64(10), food.Quantity)
			assert.Zero(t, food.PurchaseCount)
			assert.False(t, food.CreatedAt.IsZero())
		}).
		Return(foodID, nil)

	output, err := fx.service.CreateFood(ctx, &usecase.CreateFoodInput{
		Name:       "Chicken Biryani",
		OwnerEmail: "owner@example.com",
		Quantity:   10,
		Price:      8.5,
	})
	require.NoError(t, err)
	assert.True(t, output.Acknowledged)
	assert.Equal(t, foodID.Hex(), output.InsertedID)
}

func TestFoodService_UpdateFood_EmailRequired(t *testing.T) {
	fx := createTestFoodService(t)

	err := fx.service.UpdateFood(context.Background(), primitive.NewObjectID().Hex(), "", &usecase.UpdateFoodInput{})
	assert.ErrorIs(t, err, domainerrors.ErrEmailRequired)
}

func TestFoodService_UpdateFood_WrongOwnerIsForbidden(t *testing.T) {
	fx := createTestFoodService(t)

	ctx := context.Background()
	foodID := primitive.NewObjectID()

	fx.foodRepo.EXPECT().
		UpdateOwned(ctx, foodID, "intruder@example.com", mock.AnythingOfType("*repository.FoodPatch")).
		Return(repository.ErrFoodNotOwned)

	err := fx.service.UpdateFood(ctx, foodID.Hex(), "intruder@example.com", &usecase.UpdateFoodInput{})

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 403, appErr.HTTPCode())
	assert.Equal(t, "FOOD_OWNERSHIP_VIOLATION", appErr.ErrorCode())
}

func TestFoodService_DeleteFood_WrongOwnerIsForbidden(t *testing.T) {
	fx := createTestFoodService(t)

	ctx := context.Background()
	foodID := primitive.NewObjectID()

	fx.foodRepo.EXPECT().
		DeleteOwned(ctx, foodID, "intruder@example.com").
		Return(repository.ErrFoodNotOwned)

	err := fx.service.DeleteFood(ctx, foodID.Hex(), "intruder@example.com")
	assert.ErrorIs(t, err, domainerrors.ErrFoodOwnershipViolation)
}

func TestFoodService_TopFoods_UsesFixedLimit(t *testing.T) {
	fx := createTestFoodService(t)

	ctx := context.Background()
	expected := []*entity.Food{
		{Name: "Pad Thai", PurchaseCount: 42},
		{Name: "Chicken Biryani", PurchaseCount: 17},
	}

	fx.foodRepo.EXPECT().
		TopByPurchaseCount(ctx, int64(6)).
		Return(expected, nil)

	foods, err := fx.service.TopFoods(ctx)
	require.NoError(t, err)
	assert.LessOrEqual(t, len(foods), 6)
	assert.Equal(t, expected, foods)
}
