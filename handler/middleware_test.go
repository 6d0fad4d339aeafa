package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"go-finance-api/model"
	"go-finance-api/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
)

func TestAuthMiddleware(t *testing.T) {
	var seen *model.AppClaims
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = ClaimsFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	cases := []struct {
		name       string
		header     string
		setup      func(p *mockTokenParser)
		wantStatus int
	}{
		{"missing header", "", func(*mockTokenParser) {}, http.StatusUnauthorized},
		{"not a bearer token", "Basic abc", func(*mockTokenParser) {}, http.StatusUnauthorized},
		{"rejected token", "Bearer bad", func(p *mockTokenParser) {
			p.On("ParseToken", "bad").Return(nil, service.ErrUnauthorized).Once()
		}, http.StatusUnauthorized},
		{"valid token", "Bearer good", func(p *mockTokenParser) {
			p.On("ParseToken", "good").Return(&model.AppClaims{RegisteredClaims: jwt.RegisteredClaims{Subject: "user_1"}}, nil).Once()
		}, http.StatusOK},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			seen = nil
			parser := new(mockTokenParser)
			tc.setup(parser)

			req := httptest.NewRequest(http.MethodGet, "/api/me", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			rr := httptest.NewRecorder()
			AuthMiddleware(parser)(next).ServeHTTP(rr, req)

			assert.Equal(t, tc.wantStatus, rr.Code)
			if tc.wantStatus == http.StatusOK {
				if assert.NotNil(t, seen) {
					assert.Equal(t, "user_1", seen.Subject)
				}
			} else {
				assert.Nil(t, seen)
			}
			parser.AssertExpectations(t)
		})
	}
}

func TestRateLimiter(t *testing.T) {
	limiter := NewRateLimiter(0.001, 2)
	handler := limiter.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	call := func(subject string) int {
		req := httptest.NewRequest(http.MethodGet, "/api/accounts", nil)
		if subject != "" {
			req = withSubject(req, subject)
		}
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)
		return rr.Code
	}

	assert.Equal(t, http.StatusOK, call("alice"))
	assert.Equal(t, http.StatusOK, call("alice"))
	assert.Equal(t, http.StatusTooManyRequests, call("alice"))
	assert.Equal(t, http.StatusOK, call("bob"), "buckets are per caller")
	assert.Equal(t, http.StatusOK, call(""), "anonymous callers are keyed by address")
}

func TestRateLimiter_Disabled(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})
	limiter := NewRateLimiter(0, 0)

	wrapped := limiter.Middleware(next)

	rr := httptest.NewRecorder()
	for i := 0; i < 50; i++ {
		wrapped.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	}
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestRequestLogger_SetsRequestID(t *testing.T) {
	handler := RequestLogger(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusAccepted)
	}))

	t.Run("generated", func(t *testing.T) {
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusAccepted, rr.Code)
		assert.NotEmpty(t, rr.Header().Get(RequestIDHeader))
	})

	t.Run("propagated", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(RequestIDHeader, "req-123")
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		assert.Equal(t, "req-123", rr.Header().Get(RequestIDHeader))
	})
}

type stubPinger struct{ err error }

func (s stubPinger) PingContext(context.Context) error { return s.err }

func TestHealthCheck(t *testing.T) {
	t.Run("healthy", func(t *testing.T) {
		rr := httptest.NewRecorder()
		NewHealthHandler(stubPinger{}).HealthCheck(rr, httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"status":"API is healthy and running"}`, rr.Body.String())
	})

	t.Run("database down", func(t *testing.T) {
		rr := httptest.NewRecorder()
		NewHealthHandler(stubPinger{err: errors.New("refused")}).HealthCheck(rr, httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
	})
}

func TestStatusFor(t *testing.T) {
	assert.Equal(t, http.StatusUnauthorized, statusFor(service.ErrUnauthorized))
	assert.Equal(t, http.StatusNotFound, statusFor(service.ErrUserNotFound))
	assert.Equal(t, http.StatusBadRequest, statusFor(service.ErrNoTransactionIDs))
	assert.Equal(t, http.StatusConflict, statusFor(service.ErrAccountHasTransactions))
	assert.Equal(t, http.StatusInternalServerError, statusFor(service.ErrTransactionFailed))
	assert.Equal(t, http.StatusInternalServerError, statusFor(errors.New("boom")))
}

