package integration

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/dmarkin/webshop/internal/models"
	"github.com/dmarkin/webshop/services/catalog/internal/httpserver"
	"github.com/dmarkin/webshop/services/catalog/internal/repo"
	"github.com/dmarkin/webshop/services/catalog/internal/service"
)

type testEnv struct {
	T  *testing.T
	E  *echo.Echo
	H  *httpserver.CatalogHTTP
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
		H: &httpserver.CatalogHTTP{
			Svc: &service.CatalogService{Repo: &repo.GormRepo{DB: db}},
		},
	}
}

func (env *testEnv) doJSONRequest(method, path string, body interface{}) (*httptest.ResponseRecorder, echo.Context) {
	var buf bytes.Buffer
	if body != nil {
		require.NoError(env.T, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

	rec := httptest.NewRecorder()
	c := env.E.NewContext(req, rec)
	return rec, c
}

func requireHTTPError(t *testing.T, err error, code int) {
	t.Helper()
	var he *echo.HTTPError
	require.ErrorAs(t, err, &he)
	require.Equal(t, code, he.Code)
}
