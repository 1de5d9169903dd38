package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	authmw "github.com/dmarkin/webshop/pkg/middleware/auth"
)

type Deps struct {
	CatalogHandler *CatalogHTTP
	JWTSecret      []byte
}

func Register(e *echo.Echo, d *Deps) {
	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/health/ready", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	gate := &authmw.Gate{Secret: d.JWTSecret}

	products := e.Group("/products")
	products.GET("/", d.CatalogHandler.ListProducts)
	products.GET("/search", d.CatalogHandler.SearchProducts)
	products.GET("/:id", d.CatalogHandler.GetProduct)

	admin := products.Group("", gate.RequireAdmin)
	admin.POST("/", d.CatalogHandler.CreateProduct)
	admin.PUT("/:id", d.CatalogHandler.ReplaceProduct)
	admin.DELETE("/:id", d.CatalogHandler.DeleteProduct)
}
