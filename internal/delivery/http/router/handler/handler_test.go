package handler

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"foodio/internal/delivery/http/middleware"
	"foodio/internal/delivery/http/validator"
	"foodio/internal/domain/entity"
	"foodio/internal/domain/repository"
	mockRepo "foodio/internal/mocks/repository"
	"foodio/internal/usecase/impl"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Request contexts differ per request, so repository expectations match them
// loosely.
var (
	mockAnyContext = mock.MatchedBy(func(context.Context) bool { return true })
	mockAnyFood    = mock.AnythingOfType("*entity.Food")
	mockAnyOrder   = mock.AnythingOfType("*entity.Order")
	mockAnyPatch   = mock.AnythingOfType("*repository.FoodPatch")
)

// serverFixtures wires real handlers and services over mocked repositories,
// behind the same validator and error boundary the production server uses.
type serverFixtures struct {
	e         *echo.Echo
	foodRepo  *mockRepo.MockFoodRepository
	orderRepo *mockRepo.MockOrderRepository
}

func createTestServer(t *testing.T) serverFixtures {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	foodRepo := mockRepo.NewMockFoodRepository(t)
	orderRepo := mockRepo.NewMockOrderRepository(t)

	foodUC := impl.NewFoodService(impl.FoodServiceParams{
		FoodRepo: foodRepo,
		Logger:   logger,
	})
	orderUC := impl.NewOrderService(impl.OrderServiceParams{
		OrderRepo: orderRepo,
		FoodRepo:  foodRepo,
		Logger:    logger,
	})

	foodHandler := NewFoodHandler(foodUC, logger)
	orderHandler := NewOrderHandler(orderUC, logger)

	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(logger).HandleHTTPError

	e.GET("/", Liveness)
	e.GET("/health", HealthCheck)
	e.GET("/foods", foodHandler.ListFoods)
	e.POST("/foods", foodHandler.CreateFood)
	e.GET("/foods/:id", foodHandler.GetFood)
	e.PUT("/foods/:id", foodHandler.UpdateFood)
	e.DELETE("/foods/:id", foodHandler.DeleteFood)
	e.GET("/my-foods", foodHandler.ListMyFoods)
	e.GET("/top-foods", foodHandler.TopFoods)
	e.GET("/my-orders", orderHandler.ListMyOrders)
	e.POST("/orders", orderHandler.PlaceOrder)

	return serverFixtures{
		e:         e,
		foodRepo:  foodRepo,
		orderRepo: orderRepo,
	}
}

func (fx serverFixtures) do(method, target, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	fx.e.ServeHTTP(rec, req)

	return rec
}

func TestLiveness(t *testing.T) {
	fx := createTestServer(t)

	rec := fx.do(http.MethodGet, "/", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Server is running", rec.Body.String())
}

func TestListFoods_WithSearch(t *testing.T) {
	fx := createTestServer(t)

	fx.foodRepo.EXPECT().
		Find(mockAnyContext, "biryani").
		Return([]*entity.Food{{ID: primitive.NewObjectID(), Name: "Chicken Biryani"}}, nil)

	rec := fx.do(http.MethodGet, "/foods?search=biryani", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Chicken Biryani")
}

func TestListMyFoods_MissingEmail(t *testing.T) {
	fx := createTestServer(t)

	rec := fx.do(http.MethodGet, "/my-foods", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "EMAIL_REQUIRED")
	assert.Contains(t, rec.Body.String(), "Email query is required")
}

func TestGetFood_MalformedID(t *testing.T) {
	fx := createTestServer(t)

	rec := fx.do(http.MethodGet, "/foods/not-an-object-id", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_FOOD_ID")
}

func TestGetFood_NotFound(t *testing.T) {
	fx := createTestServer(t)

	foodID := primitive.NewObjectID()
	fx.foodRepo.EXPECT().
		FindByID(mockAnyContext, foodID).
		Return(nil, repository.ErrFoodNotFound)

	rec := fx.do(http.MethodGet, "/foods/"+foodID.Hex(), "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "FOOD_NOT_FOUND")
}

func TestCreateFood_Success(t *testing.T) {
	fx := createTestServer(t)

	foodID := primitive.NewObjectID()
	fx.foodRepo.EXPECT().
		Insert(mockAnyContext, mockAnyFood).
		Return(foodID, nil)

	body := `{"food_name":"Pad Thai","user_email":"owner@example.com","quantity":10,"price":7.5}`
	rec := fx.do(http.MethodPost, "/foods", body)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), foodID.Hex())
}

func TestCreateFood_ValidationFailure(t *testing.T) {
	fx := createTestServer(t)

	// food_name missing
	body := `{"user_email":"owner@example.com","quantity":10}`
	rec := fx.do(http.MethodPost, "/foods", body)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_FAILED")
}

func TestUpdateFood_WrongOwner(t *testing.T) {
	fx := createTestServer(t)

	foodID := primitive.NewObjectID()
	fx.foodRepo.EXPECT().
		UpdateOwned(mockAnyContext, foodID, "intruder@example.com", mockAnyPatch).
		Return(repository.ErrFoodNotOwned)

	rec := fx.do(http.MethodPut, "/foods/"+foodID.Hex()+"?email=intruder@example.com", `{"price":1}`)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), "FOOD_OWNERSHIP_VIOLATION")
}

func TestUpdateFood_MissingEmail(t *testing.T) {
	fx := createTestServer(t)

	rec := fx.do(http.MethodPut, "/foods/"+primitive.NewObjectID().Hex(), `{"price":1}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "EMAIL_REQUIRED")
}

func TestDeleteFood_WrongOwner(t *testing.T) {
	fx := createTestServer(t)

	foodID := primitive.NewObjectID()
	fx.foodRepo.EXPECT().
		DeleteOwned(mockAnyContext, foodID, "intruder@example.com").
		Return(repository.ErrFoodNotOwned)

	rec := fx.do(http.MethodDelete, "/foods/"+foodID.Hex()+"?email=intruder@example.com", "")
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestTopFoods(t *testing.T) {
	fx := createTestServer(t)

	fx.foodRepo.EXPECT().
		TopByPurchaseCount(mockAnyContext, int64(6)).
		Return([]*entity.Food{
			{Name: "Pad Thai", PurchaseCount: 42},
			{Name: "Chicken Biryani", PurchaseCount: 17},
		}, nil)

	rec := fx.do(http.MethodGet, "/top-foods", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Pad Thai")
}

func TestPlaceOrder_Success(t *testing.T) {
	fx := createTestServer(t)

	foodID := primitive.NewObjectID()
	orderID := primitive.NewObjectID()

	fx.foodRepo.EXPECT().
		ReserveStock(mockAnyContext, foodID, int64(3)).
		Return(nil)
	fx.orderRepo.EXPECT().
		Insert(mockAnyContext, mockAnyOrder).
		Return(orderID, nil)

	body := fmt.Sprintf(`{"foodId":%q,"buyer_email":"buyer@example.com","order_quantity":3}`, foodID.Hex())
	rec := fx.do(http.MethodPost, "/orders", body)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), orderID.Hex())
	assert.Contains(t, rec.Body.String(), `"acknowledged":true`)
}

func TestPlaceOrder_InvalidFoodID(t *testing.T) {
	fx := createTestServer(t)

	rec := fx.do(http.MethodPost, "/orders", `{"foodId":"garbage","order_quantity":1}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid foodId")
}

func TestPlaceOrder_InvalidQuantity(t *testing.T) {
	fx := createTestServer(t)

	body := fmt.Sprintf(`{"foodId":%q,"order_quantity":0}`, primitive.NewObjectID().Hex())
	rec := fx.do(http.MethodPost, "/orders", body)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid order quantity")
}

func TestPlaceOrder_StockOut(t *testing.T) {
	fx := createTestServer(t)

	foodID := primitive.NewObjectID()

	fx.foodRepo.EXPECT().
		ReserveStock(mockAnyContext, foodID, int64(3)).
		Return(repository.ErrInsufficientStock)
	fx.foodRepo.EXPECT().
		FindByID(mockAnyContext, foodID).
		Return(&entity.Food{ID: foodID, Quantity: 2}, nil)

	body := fmt.Sprintf(`{"foodId":%q,"order_quantity":3}`, foodID.Hex())
	rec := fx.do(http.MethodPost, "/orders", body)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Items Stock Out")
}

func TestPlaceOrder_FoodNotFound(t *testing.T) {
	fx := createTestServer(t)

	foodID := primitive.NewObjectID()

	fx.foodRepo.EXPECT().
		ReserveStock(mockAnyContext, foodID, int64(1)).
		Return(repository.ErrInsufficientStock)
	fx.foodRepo.EXPECT().
		FindByID(mockAnyContext, foodID).
		Return(nil, repository.ErrFoodNotFound)

	body := fmt.Sprintf(`{"foodId":%q,"order_quantity":1}`, foodID.Hex())
	rec := fx.do(http.MethodPost, "/orders", body)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Food not found")
}

func TestListMyOrders_MissingEmail(t *testing.T) {
	fx := createTestServer(t)

	rec := fx.do(http.MethodGet, "/my-orders", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Email query is required")
}

func TestListMyOrders_UnknownBuyerReturnsEmptyArray(t *testing.T) {
	fx := createTestServer(t)

	fx.orderRepo.EXPECT().
		FindByBuyerWithFood(mockAnyContext, "missing@x").
		Return([]*entity.Order{}, nil)

	rec := fx.do(http.MethodGet, "/my-orders?email=missing@x", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"data":[]`)
}
