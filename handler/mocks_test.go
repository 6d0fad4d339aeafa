package handler

import (
	"context"
	"net/http"

	"go-finance-api/model"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

type mockUserService struct{ mock.Mock }

func (m *mockUserService) ResolveUser(ctx context.Context, subject string) (*model.User, error) {
	args := m.Called(ctx, subject)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *mockUserService) SyncUser(ctx context.Context, claims *model.AppClaims) (*model.User, error) {
	args := m.Called(ctx, claims)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

type mockTokenParser struct{ mock.Mock }

func (m *mockTokenParser) ParseToken(tokenString string) (*model.AppClaims, error) {
	args := m.Called(tokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.AppClaims), args.Error(1)
}

type mockAccountService struct{ mock.Mock }

func (m *mockAccountService) CreateAccount(ctx context.Context, userID uuid.UUID, req model.AccountRequest) (*model.Account, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Account), args.Error(1)
}

func (m *mockAccountService) ListAccounts(ctx context.Context, userID uuid.UUID) ([]*model.Account, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Account), args.Error(1)
}

func (m *mockAccountService) GetAccountWithTransactions(ctx context.Context, userID, accountID uuid.UUID) (*model.AccountDetail, error) {
	args := m.Called(ctx, userID, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.AccountDetail), args.Error(1)
}

func (m *mockAccountService) UpdateAccount(ctx context.Context, userID, accountID uuid.UUID, req model.AccountRequest) (*model.Account, error) {
	args := m.Called(ctx, userID, accountID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Account), args.Error(1)
}

func (m *mockAccountService) DeleteAccount(ctx context.Context, userID, accountID uuid.UUID) error {
	args := m.Called(ctx, userID, accountID)
	return args.Error(0)
}

type mockTransactionService struct{ mock.Mock }

func (m *mockTransactionService) CreateTransaction(ctx context.Context, userID uuid.UUID, req model.TransactionRequest) (*model.Transaction, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Transaction), args.Error(1)
}

func (m *mockTransactionService) GetTransaction(ctx context.Context, userID, id uuid.UUID) (*model.Transaction, error) {
	args := m.Called(ctx, userID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Transaction), args.Error(1)
}

func (m *mockTransactionService) UpdateTransaction(ctx context.Context, userID, id uuid.UUID, req model.TransactionRequest) (*model.Transaction, error) {
	args := m.Called(ctx, userID, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Transaction), args.Error(1)
}

func (m *mockTransactionService) DeleteTransaction(ctx context.Context, userID, id uuid.UUID) error {
	args := m.Called(ctx, userID, id)
	return args.Error(0)
}

func (m *mockTransactionService) BulkDelete(ctx context.Context, subject string, ids []uuid.UUID) (model.BulkDeleteResult, error) {
	args := m.Called(ctx, subject, ids)
	return args.Get(0).(model.BulkDeleteResult), args.Error(1)
}

type mockDashboardService struct{ mock.Mock }

func (m *mockDashboardService) AccountSummary(ctx context.Context, userID, accountID uuid.UUID) (*model.AccountSummary, error) {
	args := m.Called(ctx, userID, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.AccountSummary), args.Error(1)
}

func (m *mockDashboardService) ExpenseBreakdown(ctx context.Context, userID uuid.UUID) ([]model.CategoryExpense, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.CategoryExpense), args.Error(1)
}

func (m *mockDashboardService) ChartData(ctx context.Context, userID, accountID uuid.UUID, rangeKey string) (*model.ChartData, error) {
	args := m.Called(ctx, userID, accountID, rangeKey)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ChartData), args.Error(1)
}

func (m *mockDashboardService) Overview(ctx context.Context, userID uuid.UUID) (*model.DashboardOverview, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.DashboardOverview), args.Error(1)
}

type mockBudgetService struct{ mock.Mock }

func (m *mockBudgetService) UpdateBudget(ctx context.Context, userID uuid.UUID, amount decimal.Decimal) (*model.Budget, error) {
	args := m.Called(ctx, userID, amount)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Budget), args.Error(1)
}

func (m *mockBudgetService) GetBudgetStatus(ctx context.Context, userID uuid.UUID) (*model.BudgetStatus, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.BudgetStatus), args.Error(1)
}

// withSubject returns r as if AuthMiddleware had accepted a token for subject.
func withSubject(r *http.Request, subject string) *http.Request {
	claims := &model.AppClaims{RegisteredClaims: jwt.RegisteredClaims{Subject: subject}}
	return r.WithContext(context.WithValue(r.Context(), ClaimsKey, claims))
}
