package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"go-finance-api/model"
	"go-finance-api/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

var categoryPalette = []string{
	"#4F46E5", "#10B981", "#F59E0B", "#EF4444",
	"#8B5CF6", "#EC4899", "#06B6D4", "#84CC16",
}

const (
	defaultChartRange = "1M"
	uncategorized     = "Uncategorized"
)

var chartRangeDays = map[string]int{
	"7D": 7,
	"1M": 30,
	"3M": 90,
	"6M": 180,
}

// DashboardService builds the read-only views over accounts and transactions.
type DashboardService struct {
	accountRepo     repository.IAccountRepository
	transactionRepo repository.ITransactionRepository
	accounts        *AccountService
	budgets         *BudgetService
	cache           ICacheClient
	cacheTTL        time.Duration
	now             func() time.Time
}

func NewDashboardService(accountRepo repository.IAccountRepository, transactionRepo repository.ITransactionRepository,
	accounts *AccountService, budgets *BudgetService, cache ICacheClient, cacheTTL time.Duration) *DashboardService {
	if cacheTTL <= 0 {
		cacheTTL = defaultCacheTTL
	}
	return &DashboardService{
		accountRepo:     accountRepo,
		transactionRepo: transactionRepo,
		accounts:        accounts,
		budgets:         budgets,
		cache:           cache,
		cacheTTL:        cacheTTL,
		now:             time.Now,
	}
}

func (s *DashboardService) ownedAccount(ctx context.Context, userID, accountID uuid.UUID) (*model.Account, error) {
	account, err := s.accountRepo.GetAccountByID(ctx, userID, accountID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrAccountNotFound
		}
		return nil, err
	}
	return account, nil
}

// AccountSummary reports the account's totals and savings rate.
func (s *DashboardService) AccountSummary(ctx context.Context, userID, accountID uuid.UUID) (*model.AccountSummary, error) {
	account, err := s.ownedAccount(ctx, userID, accountID)
	if err != nil {
		return nil, err
	}

	cacheKey := summaryCacheKey(accountID)
	summary := &model.AccountSummary{}
	if readCache(ctx, s.cache, cacheKey, summary) {
		return summary, nil
	}

	income, expense, err := s.transactionRepo.SumByType(ctx, userID, accountID)
	if err != nil {
		return nil, fmt.Errorf("could not sum account transactions: %w", err)
	}
	summary = &model.AccountSummary{
		AccountID:     account.ID,
		Name:          account.Name,
		Balance:       account.Balance,
		TotalIncome:   income,
		TotalExpenses: expense,
		SavingsRate:   savingsRate(income, expense),
	}

	writeCache(ctx, s.cache, cacheKey, summary, s.cacheTTL)
	return summary, nil
}

// savingsRate is (income - expenses) / income as a percentage, 0 without income.
func savingsRate(income, expense decimal.Decimal) decimal.Decimal {
	if !income.IsPositive() {
		return decimal.Zero
	}
	return income.Sub(expense).Div(income).Mul(hundred).Round(2)
}

// ExpenseBreakdown groups the default account's expenses by category. A user
// without a default account gets an empty breakdown.
func (s *DashboardService) ExpenseBreakdown(ctx context.Context, userID uuid.UUID) ([]model.CategoryExpense, error) {
	cacheKey := expensesCacheKey(userID)
	var breakdown []model.CategoryExpense
	if readCache(ctx, s.cache, cacheKey, &breakdown) {
		return breakdown, nil
	}

	account, err := s.accountRepo.GetDefaultAccount(ctx, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return []model.CategoryExpense{}, nil
		}
		return nil, fmt.Errorf("could not load default account: %w", err)
	}

	breakdown, err = s.transactionRepo.SumExpensesByCategory(ctx, userID, account.ID)
	if err != nil {
		return nil, fmt.Errorf("could not group expenses: %w", err)
	}
	breakdown = colourCategories(breakdown)

	writeCache(ctx, s.cache, cacheKey, breakdown, s.cacheTTL)
	return breakdown, nil
}

func colourCategories(totals []model.CategoryExpense) []model.CategoryExpense {
	for i := range totals {
		if totals[i].Category == "" {
			totals[i].Category = uncategorized
		}
		totals[i].Color = categoryPalette[i%len(categoryPalette)]
	}
	return totals
}

// ChartData buckets the account's transactions in the range by calendar day.
func (s *DashboardService) ChartData(ctx context.Context, userID, accountID uuid.UUID, rangeKey string) (*model.ChartData, error) {
	if rangeKey == "" {
		rangeKey = defaultChartRange
	}
	start, end, err := chartWindow(rangeKey, s.now())
	if err != nil {
		return nil, err
	}
	if _, err := s.ownedAccount(ctx, userID, accountID); err != nil {
		return nil, err
	}

	cacheKey := chartCacheKey(accountID, rangeKey, end)
	chart := &model.ChartData{}
	if readCache(ctx, s.cache, cacheKey, chart) {
		return chart, nil
	}

	txns, err := s.transactionRepo.GetTransactionsBetween(ctx, userID, accountID, start, end)
	if err != nil {
		return nil, fmt.Errorf("could not load chart transactions: %w", err)
	}

	chart = &model.ChartData{
		Range:  rangeKey,
		Start:  start,
		End:    end,
		Points: bucketByDay(txns),
	}
	if rangeKey == "ALL" && len(chart.Points) > 0 {
		chart.Start = chart.Points[0].Date
	}
	for _, p := range chart.Points {
		chart.TotalIncome = chart.TotalIncome.Add(p.Income)
		chart.TotalExpense = chart.TotalExpense.Add(p.Expense)
	}
	chart.Net = chart.TotalIncome.Sub(chart.TotalExpense)

	writeCache(ctx, s.cache, cacheKey, chart, s.cacheTTL)
	return chart, nil
}

// chartWindow returns [start of day rangeDays ago, end of today] in UTC. ALL
// starts at the Unix epoch.
func chartWindow(rangeKey string, now time.Time) (time.Time, time.Time, error) {
	now = now.UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	end := today.Add(24*time.Hour - time.Nanosecond)

	if rangeKey == "ALL" {
		return time.Unix(0, 0).UTC(), end, nil
	}
	days, ok := chartRangeDays[rangeKey]
	if !ok {
		return time.Time{}, time.Time{}, ErrInvalidRange
	}
	return today.AddDate(0, 0, -days), end, nil
}

// bucketByDay expects txns sorted by date ascending.
func bucketByDay(txns []*model.Transaction) []model.ChartPoint {
	points := make([]model.ChartPoint, 0)
	for _, t := range txns {
		d := t.Date.UTC()
		day := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
		if len(points) == 0 || !points[len(points)-1].Date.Equal(day) {
			points = append(points, model.ChartPoint{
				Date:    day,
				Label:   day.Format("Jan 02"),
				Income:  decimal.Zero,
				Expense: decimal.Zero,
			})
		}
		p := &points[len(points)-1]
		if t.Type == model.TransactionTypeIncome {
			p.Income = p.Income.Add(t.Amount)
		} else {
			p.Expense = p.Expense.Add(t.Amount)
		}
	}
	return points
}

// Overview gathers the dashboard's three panels concurrently.
func (s *DashboardService) Overview(ctx context.Context, userID uuid.UUID) (*model.DashboardOverview, error) {
	overview := &model.DashboardOverview{}
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		accounts, err := s.accounts.ListAccounts(gctx, userID)
		overview.Accounts = accounts
		return err
	})
	g.Go(func() error {
		expenses, err := s.ExpenseBreakdown(gctx, userID)
		overview.Expenses = expenses
		return err
	})
	g.Go(func() error {
		budget, err := s.budgets.GetBudgetStatus(gctx, userID)
		overview.Budget = budget
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return overview, nil
}
