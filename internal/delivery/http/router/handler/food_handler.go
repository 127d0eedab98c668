// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"foodio/internal/delivery/http/response"
	"foodio/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// FoodHandler holds dependencies for food-related handlers.
type FoodHandler struct {
	uc     usecase.FoodUsecase
	logger *slog.Logger
}

// NewFoodHandler is the constructor for FoodHandler, injected by Fx.
func NewFoodHandler(uc usecase.FoodUsecase, logger *slog.Logger) *FoodHandler {
	return &FoodHandler{
		uc:     uc,
		logger: logger,
	}
}

// ListFoods handles GET /foods, with an optional ?search filter.
func (h *FoodHandler) ListFoods(c echo.Context) error {
	search := c.QueryParam("search")

	foods, err := h.uc.ListFoods(c.Request().Context(), search)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, foods, "")
}

// ListMyFoods handles GET /my-foods?email=...
func (h *FoodHandler) ListMyFoods(c echo.Context) error {
	email := c.QueryParam("email")

	foods, err := h.uc.ListFoodsByOwner(c.Request().Context(), email)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, foods, "")
}

// GetFood handles GET /foods/:id.
func (h *FoodHandler) GetFood(c echo.Context) error {
	food, err := h.uc.GetFood(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, food, "")
}

// CreateFood handles POST /foods.
func (h *FoodHandler) CreateFood(c echo.Context) error {
	var input *usecase.CreateFoodInput
	if err := c.Bind(&input); err != nil || input == nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid food input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.CreateFood(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, output, "Food created successfully")
}

// UpdateFood handles PUT /foods/:id?email=...
func (h *FoodHandler) UpdateFood(c echo.Context) error {
	var input *usecase.UpdateFoodInput
	if err := c.Bind(&input); err != nil || input == nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid food patch")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.UpdateFood(c.Request().Context(), c.Param("id"), c.QueryParam("email"), input); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]bool{"acknowledged": true}, "Food updated successfully")
}

// DeleteFood handles DELETE /foods/:id?email=...
func (h *FoodHandler) DeleteFood(c echo.Context) error {
	if err := h.uc.DeleteFood(c.Request().Context(), c.Param("id"), c.QueryParam("email")); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]bool{"acknowledged": true}, "Food deleted successfully")
}

// TopFoods handles GET /top-foods.
func (h *FoodHandler) TopFoods(c echo.Context) error {
	foods, err := h.uc.TopFoods(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, foods, "")
}
