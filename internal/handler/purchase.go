package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"collection-orders/internal/dto"
	"collection-orders/internal/model"
	"collection-orders/internal/service"
)

type PurchaseHandler struct {
	purchaseService service.PurchaseService
	logger          *slog.Logger
}

func NewPurchaseHandler(purchaseService service.PurchaseService, logger *slog.Logger) *PurchaseHandler {
	return &PurchaseHandler{
		purchaseService: purchaseService,
		logger:          logger,
	}
}

func (h *PurchaseHandler) ListOrders(c echo.Context) error {
	ctx := c.Request().Context()

	// Atoi failures leave zero values; the service substitutes defaults.
	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	ordersPage, err := h.purchaseService.ListOrders(ctx, page, limit)
	if err != nil {
		h.logger.Error("listing purchases", "error", err)
		return c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Ошибка сервера при получении заказов"})
	}

	return c.JSON(http.StatusOK, ordersPage)
}

func (h *PurchaseHandler) ListProducts(c echo.Context) error {
	ctx := c.Request().Context()

	purchaseID := c.Param("purchaseId")

	items, err := h.purchaseService.ListLineItems(ctx, purchaseID)
	if err != nil {
		if errors.Is(err, model.ErrInvalidArgument) {
			return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "purchaseId не задан"})
		}
		h.logger.Error("listing purchase products", "purchase_id", purchaseID, "error", err)
		return c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Ошибка сервера при получении товаров"})
	}

	return c.JSON(http.StatusOK, items)
}
