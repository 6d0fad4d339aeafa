package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type AccountSummary struct {
	AccountID     uuid.UUID       `json:"account_id"`
	Name          string          `json:"name"`
	Balance       decimal.Decimal `json:"balance"`
	TotalIncome   decimal.Decimal `json:"total_income"`
	TotalExpenses decimal.Decimal `json:"total_expenses"`
	SavingsRate   decimal.Decimal `json:"savings_rate"`
}

type CategoryExpense struct {
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
	Color    string          `json:"color"`
}

// ChartPoint aggregates one calendar day (UTC).
type ChartPoint struct {
	Date    time.Time       `json:"date"`
	Label   string          `json:"label"`
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
}

type ChartData struct {
	Range        string          `json:"range"`
	Start        time.Time       `json:"start"`
	End          time.Time       `json:"end"`
	Points       []ChartPoint    `json:"points"`
	TotalIncome  decimal.Decimal `json:"total_income"`
	TotalExpense decimal.Decimal `json:"total_expense"`
	Net          decimal.Decimal `json:"net"`
}

type DashboardOverview struct {
	Accounts []*Account        `json:"accounts"`
	Expenses []CategoryExpense `json:"expenses"`
	Budget   *BudgetStatus     `json:"budget"`
}
