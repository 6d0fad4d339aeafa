package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type AccountType string

const (
	AccountTypeCurrent AccountType = "CURRENT"
	AccountTypeSavings AccountType = "SAVINGS"
)

type Account struct {
	ID               uuid.UUID       `json:"id"`
	UserID           uuid.UUID       `json:"user_id"`
	Name             string          `json:"name"`
	Type             AccountType     `json:"type"`
	Balance          decimal.Decimal `json:"balance"`
	IsDefault        bool            `json:"is_default"`
	TransactionCount int             `json:"transaction_count"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

// AccountDetail is an account together with its transaction history, newest first.
type AccountDetail struct {
	*Account
	Transactions []*Transaction `json:"transactions"`
}
