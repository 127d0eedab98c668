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

// orderService implements the OrderUsecase interface.
type orderService struct {
	orderRepo repository.OrderRepository
	foodRepo  repository.FoodRepository
	logger    *slog.Logger
}

// OrderServiceParams holds dependencies for orderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	OrderRepo repository.OrderRepository
	FoodRepo  repository.FoodRepository
	Logger    *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	return &orderService{
		orderRepo: params.OrderRepo,
		foodRepo:  params.FoodRepo,
		logger:    params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// PlaceOrder reserves stock and records the order.
//
// The reservation is a single conditional update (match on id AND
// quantity >= n, then $inc), so two concurrent placements can never both
// succeed past the available stock. The order insert happens only after the
// reservation held; if the insert fails the reservation is released so the
// food's counters stay consistent.
func (srv *orderService) PlaceOrder(ctx context.Context, input *usecase.PlaceOrderInput) (*usecase.PlaceOrderOutput, error) {
	foodID, err := primitive.ObjectIDFromHex(input.FoodID)
	if err != nil {
		return nil, domainerrors.ErrInvalidFoodID
	}

	if input.Quantity < 1 {
		return nil, domainerrors.ErrInvalidOrderQuantity
	}

	if err := srv.foodRepo.ReserveStock(ctx, foodID, input.Quantity); err != nil {
		if errors.Is(err, repository.ErrInsufficientStock) {
			// Zero matched documents: either the food is gone or the stock
			// is short. Look it up to pick the right error; no mutation has
			// happened either way.
			if _, lookupErr := srv.foodRepo.FindByID(ctx, foodID); errors.Is(lookupErr, repository.ErrFoodNotFound) {
				return nil, domainerrors.ErrFoodNotFound
			}

			return nil, domainerrors.ErrItemsStockOut
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to reserve stock")
	}

	order := &entity.Order{
		FoodID:     foodID,
		BuyerEmail: input.BuyerEmail,
		Quantity:   input.Quantity,
		BuyerName:  input.BuyerName,
		FoodName:   input.FoodName,
		Price:      input.Price,
		Image:      input.Image,
		CreatedAt:  time.Now().UTC(),
	}

	orderID, err := srv.orderRepo.Insert(ctx, order)
	if err != nil {
		// Compensate: hand the reserved units back before surfacing the
		// failure.
		if releaseErr := srv.foodRepo.ReleaseStock(ctx, foodID, input.Quantity); releaseErr != nil {
			srv.log(ctx).Error("Failed to release reserved stock after order insert failure",
				slog.String("foodId", foodID.Hex()),
				slog.Int64("quantity", input.Quantity),
				slog.Any("error", releaseErr))
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to insert order")
	}

	srv.log(ctx).Info("Order placed",
		slog.String("orderId", orderID.Hex()),
		slog.String("foodId", foodID.Hex()),
		slog.String("buyer", input.BuyerEmail),
		slog.Int64("quantity", input.Quantity))

	return &usecase.PlaceOrderOutput{
		Acknowledged: true,
		InsertedID:   orderID.Hex(),
	}, nil
}

// ListOrdersByBuyer returns the buyer's orders joined with food details.
func (srv *orderService) ListOrdersByBuyer(ctx context.Context, email string) ([]*entity.Order, error) {
	if email == "" {
		return nil, domainerrors.ErrEmailRequired
	}

	orders, err := srv.orderRepo.FindByBuyerWithFood(ctx, email)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list orders by buyer")
	}

	return orders, nil
}
