package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-finance-api/model"
	"go-finance-api/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestTransactionHandler_BulkDelete(t *testing.T) {
	ids := []uuid.UUID{uuid.New(), uuid.New()}
	body := fmt.Sprintf(`{"transaction_ids":["%s","%s"]}`, ids[0], ids[1])

	cases := []struct {
		name       string
		result     model.BulkDeleteResult
		err        error
		wantStatus int
	}{
		{
			name:       "success",
			result:     model.BulkDeleteResult{Success: true, DeletedCount: 2, RequestedCount: 2, Message: "Successfully deleted 2 transaction(s)"},
			wantStatus: http.StatusOK,
		},
		{
			name:       "nothing owned",
			result:     model.BulkDeleteResult{Success: false, RequestedCount: 2, Error: "no transactions found to delete"},
			err:        service.ErrTransactionsNotFound,
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "unknown user",
			result:     model.BulkDeleteResult{Success: false, RequestedCount: 2, Error: "user not found"},
			err:        service.ErrUserNotFound,
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "rolled back",
			result:     model.BulkDeleteResult{Success: false, RequestedCount: 2, Error: "transaction failed, no changes were made"},
			err:        fmt.Errorf("%w: deadlock", service.ErrTransactionFailed),
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := new(mockTransactionService)
			h := NewTransactionHandler(svc, new(mockUserService))
			svc.On("BulkDelete", mock.Anything, "user_1", ids).Return(tc.result, tc.err).Once()

			req := withSubject(httptest.NewRequest(http.MethodPost, "/api/transactions/bulk-delete", strings.NewReader(body)), "user_1")
			rr := httptest.NewRecorder()
			ErrorHandlingMiddleware(h.BulkDelete).ServeHTTP(rr, req)

			assert.Equal(t, tc.wantStatus, rr.Code)
			var got model.BulkDeleteResult
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
			assert.Equal(t, tc.result, got)
			svc.AssertExpectations(t)
		})
	}

	t.Run("empty list reaches the service", func(t *testing.T) {
		svc := new(mockTransactionService)
		h := NewTransactionHandler(svc, new(mockUserService))
		result := model.BulkDeleteResult{Success: false, Error: "no transaction IDs provided"}
		svc.On("BulkDelete", mock.Anything, "user_1", []uuid.UUID{}).Return(result, service.ErrNoTransactionIDs).Once()

		req := withSubject(httptest.NewRequest(http.MethodPost, "/api/transactions/bulk-delete", strings.NewReader(`{"transaction_ids":[]}`)), "user_1")
		rr := httptest.NewRecorder()
		ErrorHandlingMiddleware(h.BulkDelete).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.JSONEq(t, `{"success":false,"error":"no transaction IDs provided"}`, rr.Body.String())
	})

	t.Run("malformed body", func(t *testing.T) {
		svc := new(mockTransactionService)
		h := NewTransactionHandler(svc, new(mockUserService))

		req := withSubject(httptest.NewRequest(http.MethodPost, "/api/transactions/bulk-delete", strings.NewReader(`{"transaction_ids":["nope"]}`)), "user_1")
		rr := httptest.NewRecorder()
		ErrorHandlingMiddleware(h.BulkDelete).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.JSONEq(t, `{"success":false,"error":"Invalid request body"}`, rr.Body.String())
		svc.AssertNotCalled(t, "BulkDelete", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestTransactionHandler_CreateTransaction(t *testing.T) {
	user := &model.User{ID: uuid.New()}
	accountID := uuid.New()

	t.Run("created", func(t *testing.T) {
		svc, users := new(mockTransactionService), new(mockUserService)
		h := NewTransactionHandler(svc, users)
		users.On("ResolveUser", mock.Anything, "user_1").Return(user, nil).Once()
		svc.On("CreateTransaction", mock.Anything, user.ID, mock.MatchedBy(func(req model.TransactionRequest) bool {
			return req.AccountID == accountID && req.Amount.String() == "12.5"
		})).Return(&model.Transaction{ID: uuid.New(), AccountID: accountID}, nil).Once()

		body := fmt.Sprintf(`{"account_id":"%s","type":"EXPENSE","amount":"12.50","date":"2025-03-01T00:00:00Z"}`, accountID)
		req := withSubject(httptest.NewRequest(http.MethodPost, "/api/transactions", strings.NewReader(body)), "user_1")
		rr := httptest.NewRecorder()
		ErrorHandlingMiddleware(h.CreateTransaction).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusCreated, rr.Code)
		svc.AssertExpectations(t)
	})

	t.Run("validation failure", func(t *testing.T) {
		svc, users := new(mockTransactionService), new(mockUserService)
		h := NewTransactionHandler(svc, users)

		body := fmt.Sprintf(`{"account_id":"%s","type":"TRANSFER","amount":"1","date":"2025-03-01T00:00:00Z"}`, accountID)
		req := withSubject(httptest.NewRequest(http.MethodPost, "/api/transactions", strings.NewReader(body)), "user_1")
		rr := httptest.NewRecorder()
		ErrorHandlingMiddleware(h.CreateTransaction).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		svc.AssertNotCalled(t, "CreateTransaction", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("account not owned", func(t *testing.T) {
		svc, users := new(mockTransactionService), new(mockUserService)
		h := NewTransactionHandler(svc, users)
		users.On("ResolveUser", mock.Anything, "user_1").Return(user, nil).Once()
		svc.On("CreateTransaction", mock.Anything, user.ID, mock.Anything).Return(nil, service.ErrAccountNotFound).Once()

		body := fmt.Sprintf(`{"account_id":"%s","type":"INCOME","amount":"1","date":"2025-03-01T00:00:00Z"}`, accountID)
		req := withSubject(httptest.NewRequest(http.MethodPost, "/api/transactions", strings.NewReader(body)), "user_1")
		rr := httptest.NewRecorder()
		ErrorHandlingMiddleware(h.CreateTransaction).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.JSONEq(t, `{"code":404,"message":"account not found"}`, rr.Body.String())
	})
}

func TestTransactionHandler_DeleteTransaction(t *testing.T) {
	user := &model.User{ID: uuid.New()}
	id := uuid.New()

	t.Run("deleted", func(t *testing.T) {
		svc, users := new(mockTransactionService), new(mockUserService)
		h := NewTransactionHandler(svc, users)
		users.On("ResolveUser", mock.Anything, "user_1").Return(user, nil).Once()
		svc.On("DeleteTransaction", mock.Anything, user.ID, id).Return(nil).Once()

		req := withSubject(httptest.NewRequest(http.MethodDelete, "/api/transactions/"+id.String(), nil), "user_1")
		req.SetPathValue("id", id.String())
		rr := httptest.NewRecorder()
		ErrorHandlingMiddleware(h.DeleteTransaction).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNoContent, rr.Code)
	})

	t.Run("bad id", func(t *testing.T) {
		h := NewTransactionHandler(new(mockTransactionService), new(mockUserService))

		req := withSubject(httptest.NewRequest(http.MethodDelete, "/api/transactions/42", nil), "user_1")
		req.SetPathValue("id", "42")
		rr := httptest.NewRecorder()
		ErrorHandlingMiddleware(h.DeleteTransaction).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}
