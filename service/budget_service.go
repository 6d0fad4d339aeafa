package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"go-finance-api/logger"
	"go-finance-api/model"
	"go-finance-api/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	hundred          = decimal.NewFromInt(100)
	nearLimitPercent = decimal.NewFromInt(80)
)

type BudgetService struct {
	budgetRepo      repository.IBudgetRepository
	accountRepo     repository.IAccountRepository
	transactionRepo repository.ITransactionRepository
	invalidator     ViewInvalidator
	now             func() time.Time
}

func NewBudgetService(budgetRepo repository.IBudgetRepository, accountRepo repository.IAccountRepository,
	transactionRepo repository.ITransactionRepository, invalidator ViewInvalidator) *BudgetService {
	return &BudgetService{
		budgetRepo:      budgetRepo,
		accountRepo:     accountRepo,
		transactionRepo: transactionRepo,
		invalidator:     afterCommit(invalidator),
		now:             time.Now,
	}
}

// UpdateBudget sets the user's monthly budget, creating it if needed.
func (s *BudgetService) UpdateBudget(ctx context.Context, userID uuid.UUID, amount decimal.Decimal) (*model.Budget, error) {
	if !amount.IsPositive() {
		return nil, ErrInvalidAmount
	}
	if err := checkMoneyScale(amount); err != nil {
		return nil, err
	}

	budget := &model.Budget{UserID: userID, Amount: amount}
	if err := s.budgetRepo.UpsertBudget(ctx, budget); err != nil {
		return nil, fmt.Errorf("could not save budget: %w", err)
	}

	s.invalidator.InvalidateViews(ctx, userID)
	logger.Log.WithField("user_id", userID).Info("Budget updated")
	return budget, nil
}

// GetBudgetStatus compares the budget with this month's expenses on the
// default account. Both a missing budget and a missing default account are
// valid states, not errors.
func (s *BudgetService) GetBudgetStatus(ctx context.Context, userID uuid.UUID) (*model.BudgetStatus, error) {
	budget, err := s.budgetRepo.GetBudgetByUserID(ctx, userID)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("could not load budget: %w", err)
	}
	if errors.Is(err, sql.ErrNoRows) {
		budget = nil
	}

	spent := decimal.Zero
	account, err := s.accountRepo.GetDefaultAccount(ctx, userID)
	switch {
	case err == nil:
		from, to := monthBounds(s.now())
		spent, err = s.transactionRepo.SumExpensesBetween(ctx, userID, account.ID, from, to)
		if err != nil {
			return nil, fmt.Errorf("could not sum monthly expenses: %w", err)
		}
	case !errors.Is(err, sql.ErrNoRows):
		return nil, fmt.Errorf("could not load default account: %w", err)
	}

	return computeBudgetStatus(budget, spent), nil
}

// monthBounds returns [first day of the month, first day of the next month) in UTC.
func monthBounds(now time.Time) (time.Time, time.Time) {
	now = now.UTC()
	from := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	return from, from.AddDate(0, 1, 0)
}

func computeBudgetStatus(budget *model.Budget, spent decimal.Decimal) *model.BudgetStatus {
	status := &model.BudgetStatus{
		Budget:          budget,
		CurrentExpenses: spent,
		Remaining:       decimal.Zero,
		SpentPercentage: decimal.Zero,
	}
	if budget == nil || !budget.Amount.IsPositive() {
		return status
	}

	status.Remaining = budget.Amount.Sub(spent)
	pct := spent.Div(budget.Amount).Mul(hundred)
	if pct.GreaterThan(hundred) {
		pct = hundred
	}
	status.SpentPercentage = pct.Round(2)

	switch {
	case spent.GreaterThan(budget.Amount):
		status.State = model.BudgetOver
	case pct.GreaterThanOrEqual(nearLimitPercent):
		status.State = model.BudgetNearLimit
	default:
		status.State = model.BudgetHealthy
	}
	return status
}
