package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-finance-api/model"
	"go-finance-api/service"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestBudgetHandler_UpdateBudget(t *testing.T) {
	svc, users := new(mockBudgetService), new(mockUserService)
	h := NewBudgetHandler(svc, users)
	user := &model.User{ID: uuid.New()}
	users.On("ResolveUser", mock.Anything, "user_1").Return(user, nil)

	t.Run("saved", func(t *testing.T) {
		svc.On("UpdateBudget", mock.Anything, user.ID, mock.MatchedBy(func(d decimal.Decimal) bool {
			return d.Equal(decimal.NewFromInt(1500))
		})).Return(&model.Budget{UserID: user.ID, Amount: decimal.NewFromInt(1500)}, nil).Once()

		req := withSubject(httptest.NewRequest(http.MethodPut, "/api/budget", strings.NewReader(`{"amount":"1500"}`)), "user_1")
		rr := httptest.NewRecorder()
		ErrorHandlingMiddleware(h.UpdateBudget).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("non-positive amount", func(t *testing.T) {
		svc.On("UpdateBudget", mock.Anything, user.ID, mock.Anything).Return(nil, service.ErrInvalidAmount).Once()

		req := withSubject(httptest.NewRequest(http.MethodPut, "/api/budget", strings.NewReader(`{"amount":"0"}`)), "user_1")
		rr := httptest.NewRecorder()
		ErrorHandlingMiddleware(h.UpdateBudget).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}
