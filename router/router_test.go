package router_test

import (
	"database/sql"
	"net/http"
	"net/http/httptest"
	"regexp"
	"testing"
	"time"

	"go-finance-api/handler"
	"go-finance-api/repository"
	"go-finance-api/router"
	"go-finance-api/service"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "router-test-secret"

func newTestRouter(t *testing.T) (http.Handler, sqlmock.Sqlmock, *service.AuthService) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	auth := service.NewAuthService(testSecret, "")
	users := service.NewUserService(repository.NewUserRepository(db))

	h := router.Handlers{
		User:        handler.NewUserHandler(users),
		Account:     handler.NewAccountHandler(nil, users),
		Transaction: handler.NewTransactionHandler(nil, users),
		Dashboard:   handler.NewDashboardHandler(nil, users),
		Budget:      handler.NewBudgetHandler(nil, users),
		Health:      handler.NewHealthHandler(db),
	}
	return router.NewRouter(h, auth, handler.NewRateLimiter(0, 0)), mock, auth
}

func TestRouter_Health(t *testing.T) {
	r, _, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"status":"API is healthy and running"}`, rr.Body.String())
	assert.NotEmpty(t, rr.Header().Get(handler.RequestIDHeader))
}

func TestRouter_Metrics(t *testing.T) {
	r, _, _ := newTestRouter(t)

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/health", nil))
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `finance_api_http_requests_total{method="GET",path="GET /health",status="200"}`)
}

func TestRouter_ProtectedRoutesRequireToken(t *testing.T) {
	r, _, _ := newTestRouter(t)

	routes := []struct{ method, path string }{
		{http.MethodGet, "/api/accounts"},
		{http.MethodPost, "/api/transactions/bulk-delete"},
		{http.MethodDelete, "/api/transactions/3f0c6f0e-3c39-4a52-9d55-2a1b1f6f4c11"},
		{http.MethodGet, "/api/dashboard"},
		{http.MethodPut, "/api/budget"},
	}
	for _, route := range routes {
		t.Run(route.method+" "+route.path, func(t *testing.T) {
			rr := httptest.NewRecorder()
			r.ServeHTTP(rr, httptest.NewRequest(route.method, route.path, nil))
			assert.Equal(t, http.StatusUnauthorized, rr.Code)
		})
	}
}

func TestRouter_MethodNotAllowed(t *testing.T) {
	r, _, _ := newTestRouter(t)

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodPatch, "/api/budget", nil))

	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
}

func TestRouter_Me_UnsyncedUser(t *testing.T) {
	r, mock, auth := newTestRouter(t)
	token, err := auth.GenerateToken("user_2abc", "Ada", "ada@example.com", time.Minute)
	require.NoError(t, err)

	mock.ExpectQuery(regexp.QuoteMeta(`FROM users WHERE external_id = $1`)).
		WithArgs("user_2abc").
		WillReturnError(sql.ErrNoRows)

	req := httptest.NewRequest(http.MethodGet, "/api/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Contains(t, rr.Body.String(), "user not found")
	assert.NoError(t, mock.ExpectationsWereMet())
}
