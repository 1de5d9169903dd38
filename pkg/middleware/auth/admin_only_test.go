package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

var secret = []byte("test_secret")

func signToken(t *testing.T, role string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  1,
		"role": role,
		"exp":  time.Now().Add(time.Hour).Unix(),
	})
	raw, err := token.SignedString(secret)
	require.NoError(t, err)
	return raw
}

func call(t *testing.T, gate *Gate, header string) error {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/products/", nil)
	if header != "" {
		req.Header.Set(echo.HeaderAuthorization, header)
	}
	c := e.NewContext(req, httptest.NewRecorder())

	next := func(c echo.Context) error { return c.NoContent(http.StatusOK) }
	return gate.RequireAdmin(next)(c)
}

func TestGateOpenWithoutSecret(t *testing.T) {
	require.NoError(t, call(t, &Gate{}, ""))
}

func TestGateRejectsMissingToken(t *testing.T) {
	err := call(t, &Gate{Secret: secret}, "")
	var he *echo.HTTPError
	require.ErrorAs(t, err, &he)
	require.Equal(t, http.StatusUnauthorized, he.Code)
}

func TestGateRejectsNonAdmin(t *testing.T) {
	err := call(t, &Gate{Secret: secret}, "Bearer "+signToken(t, "user"))
	var he *echo.HTTPError
	require.ErrorAs(t, err, &he)
	require.Equal(t, http.StatusForbidden, he.Code)
}

func TestGateAllowsAdmin(t *testing.T) {
	require.NoError(t, call(t, &Gate{Secret: secret}, "Bearer "+signToken(t, "admin")))
}

func TestGateRejectsBadSignature(t *testing.T) {
	other := &Gate{Secret: []byte("other_secret")}
	err := call(t, other, "Bearer "+signToken(t, "admin"))
	var he *echo.HTTPError
	require.ErrorAs(t, err, &he)
	require.Equal(t, http.StatusUnauthorized, he.Code)
}
