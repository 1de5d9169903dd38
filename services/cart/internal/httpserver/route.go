package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

type Deps struct {
	CartHandler *CartHTTP
}

func Register(e *echo.Echo, d *Deps) {
	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/health/ready", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	items := e.Group("/cart/items")
	items.GET("/", d.CartHandler.GetItems)
	items.POST("/", d.CartHandler.AddItem)
	items.DELETE("/", d.CartHandler.ClearCart)
	items.DELETE("/:id", d.CartHandler.RemoveItem)
}
