package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Budget struct {
	ID        uuid.UUID       `json:"id"`
	UserID    uuid.UUID       `json:"user_id"`
	Amount    decimal.Decimal `json:"amount"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

type BudgetState string

const (
	BudgetHealthy   BudgetState = "HEALTHY"
	BudgetNearLimit BudgetState = "NEAR_LIMIT"
	BudgetOver      BudgetState = "OVER_BUDGET"
)

// BudgetStatus compares the monthly budget with the current month's expenses
// on the default account. Budget is nil when the user has not set one.
type BudgetStatus struct {
	Budget          *Budget         `json:"budget"`
	CurrentExpenses decimal.Decimal `json:"current_expenses"`
	Remaining       decimal.Decimal `json:"remaining"`
	SpentPercentage decimal.Decimal `json:"spent_percentage"`
	State           BudgetState     `json:"state,omitempty"`
}
