package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"agenda/internal/errors"
	"agenda/internal/model"
	"agenda/internal/service"
)

// CardHandler handles the card resource endpoints.
type CardHandler struct {
	svc service.CardService
}

// NewCardHandler creates a new card handler.
func NewCardHandler(svc service.CardService) *CardHandler {
	return &CardHandler{svc: svc}
}

// CardRequest represents a card create/update payload.
type CardRequest struct {
	CardNumber string `json:"card_number" validate:"required"`
	CardExpiry string `json:"card_expiry" validate:"required"`
	Cardholder string `json:"cardholder" validate:"required"`
	Balance    string `json:"balance" validate:"required"`
}

func (r *CardRequest) toModel() (*model.Card, *echo.HTTPError) {
	balance, err := decimal.NewFromString(r.Balance)
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid balance",
			Code:  "INVALID_BALANCE",
		})
	}
	return &model.Card{
		CardNumber: r.CardNumber,
		CardExpiry: r.CardExpiry,
		Cardholder: r.Cardholder,
		Balance:    balance,
	}, nil
}

// List godoc
// @Summary List cards
// @Tags cards
// @Produce json
// @Success 200 {array} model.Card
// @Failure 500 {object} errors.ErrorResponse
// @Router /carts [get]
func (h *CardHandler) List(c echo.Context) error {
	cards, err := h.svc.List(c.Request().Context())
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, cards)
}

// Get godoc
// @Summary Get card by id
// @Tags cards
// @Produce json
// @Param id path int true "Card ID"
// @Success 200 {object} model.Card
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /carts/{id} [get]
func (h *CardHandler) Get(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	card, err := h.svc.Get(c.Request().Context(), id)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, card)
}

// Create godoc
// @Summary Create card
// @Tags cards
// @Accept json
// @Produce json
// @Param card body CardRequest true "Card payload"
// @Success 201 {object} MessageResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /carts [post]
func (h *CardHandler) Create(c echo.Context) error {
	var req CardRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid request body",
			Code:  "INVALID_REQUEST",
		})
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: err.Error(),
			Code:  "VALIDATION_ERROR",
		})
	}
	card, httpErr := req.toModel()
	if httpErr != nil {
		return httpErr
	}

	if err := h.svc.Create(c.Request().Context(), card); err != nil {
		mapped := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(mapped.StatusCode, mapped.ToErrorResponse())
	}
	return c.JSON(http.StatusCreated, MessageResponse{Message: "card created"})
}

// Update godoc
// @Summary Update card
// @Tags cards
// @Accept json
// @Produce json
// @Param id path int true "Card ID"
// @Param card body CardRequest true "Card payload"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /carts/{id} [patch]
func (h *CardHandler) Update(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	var req CardRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid request body",
			Code:  "INVALID_REQUEST",
		})
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: err.Error(),
			Code:  "VALIDATION_ERROR",
		})
	}
	card, httpErr := req.toModel()
	if httpErr != nil {
		return httpErr
	}

	if err := h.svc.Update(c.Request().Context(), id, card); err != nil {
		mapped := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(mapped.StatusCode, mapped.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, MessageResponse{Message: "card updated"})
}

// Delete godoc
// @Summary Delete card
// @Tags cards
// @Produce json
// @Param id path int true "Card ID"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /carts/{id} [delete]
func (h *CardHandler) Delete(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	if err := h.svc.Delete(c.Request().Context(), id); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, MessageResponse{Message: "card deleted"})
}
