package integration

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/dmarkin/webshop/internal/models"
	"github.com/dmarkin/webshop/services/cart/internal/httpserver"
	"github.com/dmarkin/webshop/services/cart/internal/repo"
	"github.com/dmarkin/webshop/services/cart/internal/service"
)

type testEnv struct {
	T  *testing.T
	E  *echo.Echo
	H  *httpserver.CartHTTP
	DB *gorm.DB
}

func newTestEnv(t *testing.T) *testEnv {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect to in-memory db: %v", err)
	}

	// single connection so every query sees the same :memory: db
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(&models.Product{}, &models.CartItem{}); err != nil {
		t.Fatalf("failed to migrate tables: %v", err)
	}

	return &testEnv{
		T:  t,
		E:  echo.New(),
		DB: db,
		H: &httpserver.CartHTTP{
			Svc: &service.CartService{Repo: &repo.GormRepo{DB: db}},
		},
	}
}

func (env *testEnv) seedProduct(name string, price float64, stock uint) *models.Product {
	p := &models.Product{Name: name, Description: name + " description", Price: price, Stock: stock}
	require.NoError(env.T, env.DB.Create(p).Error)
	return p
}

// doJSONRequest builds an echo context for the given session. Session
// scoping goes through the X-Cart-Session header here; the cookie path
// is covered separately.
func (env *testEnv) doJSONRequest(method, path, session string, body interface{}) (*httptest.ResponseRecorder, echo.Context) {
	var buf bytes.Buffer
	if body != nil {
		require.NoError(env.T, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if session != "" {
		req.Header.Set("X-Cart-Session", session)
	}

	rec := httptest.NewRecorder()
	c := env.E.NewContext(req, rec)
	return rec, c
}

func (env *testEnv) addItem(session string, productID uint, quantity int) (*httptest.ResponseRecorder, error) {
	body := map[string]interface{}{"product_id": productID, "quantity": quantity}
	rec, c := env.doJSONRequest(http.MethodPost, "/cart/items/", session, body)
	return rec, env.H.AddItem(c)
}

func requireHTTPError(t *testing.T, err error, code int) {
	t.Helper()
	var he *echo.HTTPError
	require.ErrorAs(t, err, &he)
	require.Equal(t, code, he.Code)
}
