// file: model/request.go

package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AccountRequest is the payload for creating or updating an account.
type AccountRequest struct {
	Name      string           `json:"name" validate:"required,min=1,max=100"`
	Type      AccountType      `json:"type" validate:"required,oneof=CURRENT SAVINGS"`
	Balance   *decimal.Decimal `json:"balance" validate:"required"`
	IsDefault bool             `json:"is_default"`
}

// TransactionRequest is the payload for creating or updating a transaction.
// Amount must be positive; the sign comes from Type.
type TransactionRequest struct {
	AccountID         uuid.UUID         `json:"account_id" validate:"required"`
	Type              TransactionType   `json:"type" validate:"required,oneof=INCOME EXPENSE"`
	Amount            decimal.Decimal   `json:"amount"`
	Description       string            `json:"description" validate:"max=500"`
	Category          string            `json:"category" validate:"max=100"`
	Date              time.Time         `json:"date" validate:"required"`
	IsRecurring       bool              `json:"is_recurring"`
	RecurringInterval RecurringInterval `json:"recurring_interval" validate:"omitempty,oneof=DAILY WEEKLY MONTHLY YEARLY"`
}

// BulkDeleteRequest carries the ids selected for deletion. An empty list is
// rejected by the service, not by validation, so the caller still receives
// a BulkDeleteResult.
type BulkDeleteRequest struct {
	TransactionIDs []uuid.UUID `json:"transaction_ids"`
}

type BudgetRequest struct {
	Amount decimal.Decimal `json:"amount"`
}
