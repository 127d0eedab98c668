// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"foodio/internal/delivery/http/middleware"
	"foodio/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	FoodHandler         *handler.FoodHandler
	OrderHandler        *handler.OrderHandler
	LoggerMiddleware    *middleware.LoggerMiddleware
	RequestIDMiddleware *middleware.RequestIDMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	foodHandler         *handler.FoodHandler
	orderHandler        *handler.OrderHandler
	loggerMiddleware    *middleware.LoggerMiddleware
	requestIDMiddleware *middleware.RequestIDMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		foodHandler:         params.FoodHandler,
		orderHandler:        params.OrderHandler,
		loggerMiddleware:    params.LoggerMiddleware,
		requestIDMiddleware: params.RequestIDMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.Use(r.requestIDMiddleware.Handle)
	e.Use(r.loggerMiddleware.Handle)

	// Liveness and health endpoints
	e.GET("/", handler.Liveness)
	e.GET("/health", handler.HealthCheck)

	// Food routes
	e.GET("/foods", r.foodHandler.ListFoods)
	e.POST("/foods", r.foodHandler.CreateFood)
	e.GET("/foods/:id", r.foodHandler.GetFood)
	e.PUT("/foods/:id", r.foodHandler.UpdateFood)
	e.DELETE("/foods/:id", r.foodHandler.DeleteFood)
	e.GET("/my-foods", r.foodHandler.ListMyFoods)
	e.GET("/top-foods", r.foodHandler.TopFoods)

	// Order routes
	e.GET("/my-orders", r.orderHandler.ListMyOrders)
	e.POST("/orders", r.orderHandler.PlaceOrder)
}
