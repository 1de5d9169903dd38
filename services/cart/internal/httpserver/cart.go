package httpserver

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/dmarkin/webshop/pkg/events"
	"github.com/dmarkin/webshop/pkg/logging"
	"github.com/dmarkin/webshop/services/cart/internal/service"
	"github.com/dmarkin/webshop/services/cart/internal/transport"
)

type CartHTTP struct {
	Svc      *service.CartService
	Producer *events.Producer
}

func (h *CartHTTP) publish(c echo.Context, key string, event map[string]any) {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()
	if err := h.Producer.PublishEvent(ctx, "cart_events", key, event); err != nil {
		logging.FromContext(c.Request().Context()).Error("kafka_publish_failed", "error", err)
	}
}

func (h *CartHTTP) GetItems(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.get_items")

	sid := sessionID(c)

	items, err := h.Svc.GetItems(ctx, sid)
	if err != nil {
		l.Error("get_cart_error", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot get cart")
	}

	l.Info("get_cart_success", "count", len(items))
	return c.JSON(http.StatusOK, items)
}

func (h *CartHTTP) AddItem(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.add_item")

	sid := sessionID(c)

	var req transport.AddItemRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("add_to_cart_error", "status", 400, "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	quantity := 1
	if req.Quantity != nil {
		quantity = *req.Quantity
	}

	item, created, err := h.Svc.AddItem(ctx, sid, req.ProductID, quantity)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrValidation):
			l.Warn("add_to_cart_error", "status", 422, "error", err)
			return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
		case errors.Is(err, service.ErrNotFound):
			l.Warn("add_to_cart_error", "status", 404, "error", err)
			return echo.NewHTTPError(http.StatusNotFound, "product not found")
		default:
			l.Error("add_to_cart_error", "status", 500, "error", err)
			return echo.NewHTTPError(http.StatusInternalServerError, "cannot add item to cart")
		}
	}

	h.publish(c, sid, map[string]any{
		"type":      "cart_item_added",
		"sessionID": sid,
		"productID": item.ProductID,
		"quantity":  item.Quantity,
	})

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	l.Info("add_to_cart_success", "item_id", item.ID, "quantity", item.Quantity)
	return c.JSON(status, item)
}

func (h *CartHTTP) RemoveItem(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.remove_item")

	sid := sessionID(c)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		l.Warn("remove_from_cart_error", "status", 400, "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "id is not an integer")
	}

	if err := h.Svc.RemoveItem(ctx, sid, uint(id)); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			l.Warn("remove_from_cart_error", "status", 404, "error", err)
			return echo.NewHTTPError(http.StatusNotFound, "cart item not found")
		}
		l.Error("remove_from_cart_error", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot remove item from cart")
	}

	h.publish(c, sid, map[string]any{
		"type":      "cart_item_removed",
		"sessionID": sid,
		"itemID":    id,
	})
	l.Info("remove_from_cart_success", "item_id", id)
	return c.NoContent(http.StatusNoContent)
}

func (h *CartHTTP) ClearCart(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.clear")

	sid := sessionID(c)

	if err := h.Svc.ClearCart(ctx, sid); err != nil {
		l.Error("clear_cart_error", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot clear cart")
	}

	h.publish(c, sid, map[string]any{
		"type":      "cart_cleared",
		"sessionID": sid,
	})
	l.Info("clear_cart_success")
	return c.NoContent(http.StatusNoContent)
}
