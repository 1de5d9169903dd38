package httpserver

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/dmarkin/webshop/pkg/events"
	"github.com/dmarkin/webshop/pkg/logging"
	"github.com/dmarkin/webshop/services/catalog/internal/service"
	"github.com/dmarkin/webshop/services/catalog/internal/transport"
)

type CatalogHTTP struct {
	Svc      *service.CatalogService
	Producer *events.Producer
}

func (h *CatalogHTTP) publish(c echo.Context, event map[string]any) {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()
	if err := h.Producer.PublishEvent(ctx, "product_events", fmt.Sprint(event["productID"]), event); err != nil {
		logging.FromContext(c.Request().Context()).Error("kafka_publish_failed", "error", err)
	}
}

func parseID(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "id is not an integer")
	}
	return uint(id), nil
}

func (h *CatalogHTTP) GetProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.get_product")

	id, err := parseID(c)
	if err != nil {
		l.Warn("get_product_failed", "status", 400, "reason", "bad id", "error", err)
		return err
	}

	product, err := h.Svc.GetProduct(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			l.Warn("get_product_failed", "status", 404, "reason", "product not found", "error", err)
			return echo.NewHTTPError(http.StatusNotFound, "product not found")
		}
		l.Error("get_product_failed", "status", 500, "reason", "cannot get product", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot get product")
	}

	return c.JSON(http.StatusOK, product)
}

func (h *CatalogHTTP) ListProducts(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.list_products")

	query := c.QueryParam("q")

	items, err := h.Svc.ListProducts(ctx, query)
	if err != nil {
		l.Error("list_products_error", "status", 500, "reason", "cannot list products", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot list products")
	}

	l.Info("list_products_success", "count", len(items))
	return c.JSON(http.StatusOK, items)
}

func (h *CatalogHTTP) SearchProducts(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.search_products")

	query := c.QueryParam("q")
	if query == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "q is required")
	}

	items, err := h.Svc.SearchProducts(ctx, query)
	if err != nil {
		l.Error("search_products_error", "status", 500, "reason", "search failed", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "search failed")
	}

	l.Info("search_products_success", "count", len(items))
	return c.JSON(http.StatusOK, items)
}

func (h *CatalogHTTP) CreateProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "create_product")

	var req transport.ProductRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("product_create_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	prod, err := h.Svc.CreateProduct(ctx, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrValidation):
			l.Warn("product_create_error", "status", 422, "reason", "validation", "error", err)
			return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
		case errors.Is(err, service.ErrConflict):
			l.Warn("product_create_error", "status", 409, "reason", "name taken", "error", err)
			return echo.NewHTTPError(http.StatusConflict, "product name already exists")
		default:
			l.Error("product_create_error", "status", 500, "reason", "cannot add product to db", "error", err)
			return echo.NewHTTPError(http.StatusInternalServerError, "cannot add product to db")
		}
	}

	h.publish(c, map[string]any{
		"type":      "product_created",
		"productID": prod.ID,
		"name":      prod.Name,
	})
	l.Info("create_product_success", "product_id", prod.ID)
	return c.JSON(http.StatusCreated, prod)
}

func (h *CatalogHTTP) ReplaceProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "replace_product")

	id, err := parseID(c)
	if err != nil {
		l.Warn("product_replace_error", "status", 400, "reason", "bad id", "error", err)
		return err
	}

	var req transport.ProductRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("product_replace_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	prod, err := h.Svc.ReplaceProduct(ctx, id, req)
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			l.Warn("product_replace_error", "status", 404, "reason", "product not found", "error", err)
			return echo.NewHTTPError(http.StatusNotFound, "product not found")
		case errors.Is(err, service.ErrValidation):
			l.Warn("product_replace_error", "status", 422, "reason", "validation", "error", err)
			return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
		case errors.Is(err, service.ErrConflict):
			l.Warn("product_replace_error", "status", 409, "reason", "name taken", "error", err)
			return echo.NewHTTPError(http.StatusConflict, "product name already exists")
		default:
			l.Error("product_replace_error", "status", 500, "reason", "cannot update product", "error", err)
			return echo.NewHTTPError(http.StatusInternalServerError, "cannot update product")
		}
	}

	h.publish(c, map[string]any{
		"type":      "product_updated",
		"productID": prod.ID,
		"name":      prod.Name,
	})
	l.Info("replace_product_success", "product_id", prod.ID)
	return c.JSON(http.StatusOK, prod)
}

func (h *CatalogHTTP) DeleteProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "delete_product")

	id, err := parseID(c)
	if err != nil {
		l.Warn("product_delete_error", "status", 400, "reason", "bad id", "error", err)
		return err
	}

	if err := h.Svc.DeleteProduct(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			l.Warn("product_delete_error", "status", 404, "reason", "product not found", "error", err)
			return echo.NewHTTPError(http.StatusNotFound, "product not found")
		}
		l.Error("product_delete_error", "status", 500, "reason", "cannot delete product", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot delete product")
	}

	h.publish(c, map[string]any{
		"type":      "product_deleted",
		"productID": id,
	})
	l.Info("delete_product_success", "product_id", id)
	return c.NoContent(http.StatusNoContent)
}
