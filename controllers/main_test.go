package controllers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/kendall-kelly/tailorshop-api/controllers"
	"github.com/kendall-kelly/tailorshop-api/repository"
	"github.com/kendall-kelly/tailorshop-api/routes"
	"github.com/kendall-kelly/tailorshop-api/services"
	"github.com/kendall-kelly/tailorshop-api/tests/testutil"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// testEnv is an API wired to an in-memory database and blob store. Every
// request is treated as coming from user 1.
type testEnv struct {
	router *gin.Engine
	db     *gorm.DB
	store  *services.MockBlobStore
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)
	require.NoError(t, controllers.RegisterValidators())

	db := testutil.NewTestDB(t)
	repo := repository.New(db)
	store := services.NewMockBlobStore()
	auth := services.NewAuthService(repo.Users, services.TokenConfig{
		Secret:   "controller-test-secret",
		Issuer:   "tailorshop-test",
		Audience: "tailorshop",
		TTL:      time.Hour,
	}, zap.NewNop())

	router := gin.New()
	routes.Register(router.Group("/api/v1"), controllers.NewHandler(repo, store, auth, zap.NewNop()), testutil.SetMockAuthContext(1))
	return &testEnv{router: router, db: db, store: store}
}

// do sends body as JSON (nil for none) and decodes the JSON response.
func (e *testEnv) do(t *testing.T, method, path string, body any) (int, map[string]interface{}) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return e.serve(t, req)
}

func (e *testEnv) serve(t *testing.T, req *http.Request) (int, map[string]interface{}) {
	t.Helper()

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response), "body: %s", w.Body.String())
	return w.Code, response
}

func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}
