package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "INCOME"
	TransactionTypeExpense TransactionType = "EXPENSE"
)

type RecurringInterval string

const (
	RecurringDaily   RecurringInterval = "DAILY"
	RecurringWeekly  RecurringInterval = "WEEKLY"
	RecurringMonthly RecurringInterval = "MONTHLY"
	RecurringYearly  RecurringInterval = "YEARLY"
)

type TransactionStatus string

const (
	TransactionStatusPending   TransactionStatus = "PENDING"
	TransactionStatusCompleted TransactionStatus = "COMPLETED"
	TransactionStatusFailed    TransactionStatus = "FAILED"
)

// Transaction amounts are always stored positive; Type decides whether the
// amount is added to or subtracted from the account balance.
type Transaction struct {
	ID                uuid.UUID         `json:"id"`
	UserID            uuid.UUID         `json:"user_id"`
	AccountID         uuid.UUID         `json:"account_id"`
	Type              TransactionType   `json:"type"`
	Amount            decimal.Decimal   `json:"amount"`
	Description       string            `json:"description"`
	Category          string            `json:"category"`
	Date              time.Time         `json:"date"`
	IsRecurring       bool              `json:"is_recurring"`
	RecurringInterval RecurringInterval `json:"recurring_interval,omitempty"`
	NextRecurringDate *time.Time        `json:"next_recurring_date,omitempty"`
	Status            TransactionStatus `json:"status"`
	CreatedAt         time.Time         `json:"created_at"`
	UpdatedAt         time.Time         `json:"updated_at"`
}

// BalanceEffect is the signed amount this transaction contributes to its account.
func (t *Transaction) BalanceEffect() decimal.Decimal {
	if t.Type == TransactionTypeExpense {
		return t.Amount.Neg()
	}
	return t.Amount
}

// BulkDeleteResult is the uniform outcome of a batch delete. Failures carry
// Success=false and the error message instead of a count.
type BulkDeleteResult struct {
	Success        bool   `json:"success"`
	DeletedCount   int    `json:"deletedCount,omitempty"`
	RequestedCount int    `json:"requestedCount,omitempty"`
	Message        string `json:"message,omitempty"`
	Error          string `json:"error,omitempty"`
}
