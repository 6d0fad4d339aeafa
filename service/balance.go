package service

import (
	"bytes"
	"context"
	"database/sql"
	"sort"

	"go-finance-api/model"
	"go-finance-api/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// balanceDeltas accumulates one net balance change per account.
type balanceDeltas map[uuid.UUID]decimal.Decimal

func (d balanceDeltas) add(accountID uuid.UUID, amount decimal.Decimal) {
	d[accountID] = d[accountID].Add(amount)
}

// removalDeltas returns the correction each account needs once txns are gone:
// a removed expense gives its amount back, a removed income takes it away.
func removalDeltas(txns []*model.Transaction) balanceDeltas {
	deltas := make(balanceDeltas)
	for _, t := range txns {
		deltas.add(t.AccountID, t.BalanceEffect().Neg())
	}
	return deltas
}

// accountIDs lists the affected accounts in ascending order. Applying updates
// in this order keeps concurrent units of work from deadlocking each other.
func (d balanceDeltas) accountIDs() []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(d))
	for id := range d {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return bytes.Compare(ids[i][:], ids[j][:]) < 0 })
	return ids
}

// apply issues one increment per account with a non-zero delta.
func (d balanceDeltas) apply(ctx context.Context, tx *sql.Tx, accounts repository.IAccountRepository) error {
	for _, id := range d.accountIDs() {
		delta := d[id]
		if delta.IsZero() {
			continue
		}
		if err := accounts.AdjustBalance(ctx, tx, id, delta); err != nil {
			return err
		}
	}
	return nil
}

// moneyScale matches the NUMERIC(18,2) columns. Anything finer would be
// rounded by the database separately from the balance increment.
const moneyScale = 2

func checkMoneyScale(amounts ...decimal.Decimal) error {
	for _, a := range amounts {
		if !a.Equal(a.Truncate(moneyScale)) {
			return ErrTooPrecise
		}
	}
	return nil
}
