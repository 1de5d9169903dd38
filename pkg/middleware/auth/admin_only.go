package auth

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// Gate protects catalog writes. With no secret configured the gate is
// open, so the service keeps its public contract by default.
type Gate struct {
	Secret []byte
}

func (g *Gate) RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if len(g.Secret) == 0 {
			return next(c)
		}

		raw := tokenFromRequest(c)
		if raw == "" {
			return echo.NewHTTPError(http.StatusUnauthorized, "missing token")
		}

		token, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signature method: %v", t.Header["alg"])
			}
			return g.Secret, nil
		})
		if err != nil || !token.Valid {
			return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
		}
		role, ok := claims["role"].(string)
		if !ok || role != "admin" {
			return echo.NewHTTPError(http.StatusForbidden, "not enough rights")
		}

		c.Set("role", role)
		return next(c)
	}
}

func tokenFromRequest(c echo.Context) string {
	h := c.Request().Header.Get(echo.HeaderAuthorization)
	if strings.HasPrefix(h, "Bearer ") {
		return strings.TrimPrefix(h, "Bearer ")
	}
	if ck, err := c.Cookie("accessToken"); err == nil {
		return ck.Value
	}
	return ""
}
