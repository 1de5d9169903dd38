package httpserver

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	sessionHeader = "X-Cart-Session"
	sessionCookie = "cart_session"
)

// sessionID scopes the cart. Header wins over cookie; a client sending
// neither gets a fresh id minted into a cookie, so the original
// single-shared-cart flow keeps working without any client changes.
func sessionID(c echo.Context) string {
	if v := c.Request().Header.Get(sessionHeader); v != "" {
		return v
	}
	if ck, err := c.Cookie(sessionCookie); err == nil && ck.Value != "" {
		return ck.Value
	}

	id := uuid.NewString()
	c.SetCookie(&http.Cookie{
		Name:     sessionCookie,
		Value:    id,
		Path:     "/",
		MaxAge:   int(30 * 24 * time.Hour / time.Second),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return id
}
