package service

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"go-finance-api/model"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	db, sqlMock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db, sqlMock
}

// decimalEq matches a decimal argument by value rather than representation.
func decimalEq(s string) interface{} {
	want := decimal.RequireFromString(s)
	return mock.MatchedBy(func(d decimal.Decimal) bool { return d.Equal(want) })
}

type mockUserRepo struct{ mock.Mock }

func (m *mockUserRepo) CreateUser(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *mockUserRepo) GetUserByExternalID(ctx context.Context, externalID string) (*model.User, error) {
	args := m.Called(ctx, externalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

type mockAccountRepo struct{ mock.Mock }

func (m *mockAccountRepo) CreateAccount(ctx context.Context, tx *sql.Tx, account *model.Account) error {
	args := m.Called(ctx, tx, account)
	return args.Error(0)
}

func (m *mockAccountRepo) CountAccountsByUserID(ctx context.Context, tx *sql.Tx, userID uuid.UUID) (int, error) {
	args := m.Called(ctx, tx, userID)
	return args.Int(0), args.Error(1)
}

func (m *mockAccountRepo) ClearDefault(ctx context.Context, tx *sql.Tx, userID, exceptID uuid.UUID) error {
	args := m.Called(ctx, tx, userID, exceptID)
	return args.Error(0)
}

func (m *mockAccountRepo) PromoteDefaultAccount(ctx context.Context, tx *sql.Tx, userID uuid.UUID) error {
	args := m.Called(ctx, tx, userID)
	return args.Error(0)
}

func (m *mockAccountRepo) GetAccountsByUserID(ctx context.Context, userID uuid.UUID) ([]*model.Account, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Account), args.Error(1)
}

func (m *mockAccountRepo) GetAccountByID(ctx context.Context, userID, accountID uuid.UUID) (*model.Account, error) {
	args := m.Called(ctx, userID, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Account), args.Error(1)
}

func (m *mockAccountRepo) GetDefaultAccount(ctx context.Context, userID uuid.UUID) (*model.Account, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Account), args.Error(1)
}

func (m *mockAccountRepo) GetAccountForUpdate(ctx context.Context, tx *sql.Tx, userID, accountID uuid.UUID) (*model.Account, error) {
	args := m.Called(ctx, tx, userID, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Account), args.Error(1)
}

func (m *mockAccountRepo) UpdateAccount(ctx context.Context, tx *sql.Tx, account *model.Account) error {
	args := m.Called(ctx, tx, account)
	return args.Error(0)
}

func (m *mockAccountRepo) AdjustBalance(ctx context.Context, tx *sql.Tx, accountID uuid.UUID, delta decimal.Decimal) error {
	args := m.Called(ctx, tx, accountID, delta)
	return args.Error(0)
}

func (m *mockAccountRepo) DeleteAccount(ctx context.Context, tx *sql.Tx, userID, accountID uuid.UUID) error {
	args := m.Called(ctx, tx, userID, accountID)
	return args.Error(0)
}

type mockTransactionRepo struct{ mock.Mock }

func (m *mockTransactionRepo) CreateTransaction(ctx context.Context, tx *sql.Tx, transaction *model.Transaction) error {
	args := m.Called(ctx, tx, transaction)
	return args.Error(0)
}

func (m *mockTransactionRepo) UpdateTransaction(ctx context.Context, tx *sql.Tx, transaction *model.Transaction) error {
	args := m.Called(ctx, tx, transaction)
	return args.Error(0)
}

func (m *mockTransactionRepo) GetTransactionByID(ctx context.Context, userID, id uuid.UUID) (*model.Transaction, error) {
	args := m.Called(ctx, userID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Transaction), args.Error(1)
}

func (m *mockTransactionRepo) GetTransactionForUpdate(ctx context.Context, tx *sql.Tx, userID, id uuid.UUID) (*model.Transaction, error) {
	args := m.Called(ctx, tx, userID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Transaction), args.Error(1)
}

func (m *mockTransactionRepo) GetTransactionsForUpdate(ctx context.Context, tx *sql.Tx, userID uuid.UUID, ids []uuid.UUID) ([]*model.Transaction, error) {
	args := m.Called(ctx, tx, userID, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Transaction), args.Error(1)
}

func (m *mockTransactionRepo) DeleteTransactions(ctx context.Context, tx *sql.Tx, userID uuid.UUID, ids []uuid.UUID) (int64, error) {
	args := m.Called(ctx, tx, userID, ids)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockTransactionRepo) CountByAccountID(ctx context.Context, tx *sql.Tx, accountID uuid.UUID) (int, error) {
	args := m.Called(ctx, tx, accountID)
	return args.Int(0), args.Error(1)
}

func (m *mockTransactionRepo) GetTransactionsByAccountID(ctx context.Context, userID, accountID uuid.UUID) ([]*model.Transaction, error) {
	args := m.Called(ctx, userID, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Transaction), args.Error(1)
}

func (m *mockTransactionRepo) GetTransactionsBetween(ctx context.Context, userID, accountID uuid.UUID, from, to time.Time) ([]*model.Transaction, error) {
	args := m.Called(ctx, userID, accountID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Transaction), args.Error(1)
}

func (m *mockTransactionRepo) SumByType(ctx context.Context, userID, accountID uuid.UUID) (decimal.Decimal, decimal.Decimal, error) {
	args := m.Called(ctx, userID, accountID)
	return args.Get(0).(decimal.Decimal), args.Get(1).(decimal.Decimal), args.Error(2)
}

func (m *mockTransactionRepo) SumExpensesByCategory(ctx context.Context, userID, accountID uuid.UUID) ([]model.CategoryExpense, error) {
	args := m.Called(ctx, userID, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.CategoryExpense), args.Error(1)
}

func (m *mockTransactionRepo) SumExpensesBetween(ctx context.Context, userID, accountID uuid.UUID, from, to time.Time) (decimal.Decimal, error) {
	args := m.Called(ctx, userID, accountID, from, to)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

type mockBudgetRepo struct{ mock.Mock }

func (m *mockBudgetRepo) GetBudgetByUserID(ctx context.Context, userID uuid.UUID) (*model.Budget, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Budget), args.Error(1)
}

func (m *mockBudgetRepo) UpsertBudget(ctx context.Context, budget *model.Budget) error {
	args := m.Called(ctx, budget)
	return args.Error(0)
}

type mockInvalidator struct{ mock.Mock }

func (m *mockInvalidator) InvalidateViews(ctx context.Context, userID uuid.UUID, accountIDs ...uuid.UUID) {
	m.Called(ctx, userID, accountIDs)
}

type mockCache struct{ mock.Mock }

func (m *mockCache) Get(ctx context.Context, key string) *redis.StringCmd {
	args := m.Called(ctx, key)
	return args.Get(0).(*redis.StringCmd)
}

func (m *mockCache) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd {
	args := m.Called(ctx, key, value, expiration)
	return args.Get(0).(*redis.StatusCmd)
}

func (m *mockCache) Del(ctx context.Context, keys ...string) *redis.IntCmd {
	args := m.Called(ctx, keys)
	return args.Get(0).(*redis.IntCmd)
}

func cacheMiss() *redis.StringCmd { return redis.NewStringResult("", redis.Nil) }

func cacheHit(value string) *redis.StringCmd { return redis.NewStringResult(value, nil) }

func cacheStored() *redis.StatusCmd { return redis.NewStatusResult("OK", nil) }
