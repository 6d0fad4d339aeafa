package service

import (
	"context"
	"database/sql"
	"errors"

	"go-finance-api/model"
	"go-finance-api/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ledger is an in-memory store whose writes are staged until the test
// settles them, mirroring what the database does on commit and rollback.
type ledger struct {
	balances map[uuid.UUID]decimal.Decimal
	txns     map[uuid.UUID]*model.Transaction

	staged         bool
	stagedBalances map[uuid.UUID]decimal.Decimal
	stagedTxns     map[uuid.UUID]*model.Transaction

	failAdjustFor uuid.UUID
}

func newLedger() *ledger {
	return &ledger{
		balances: make(map[uuid.UUID]decimal.Decimal),
		txns:     make(map[uuid.UUID]*model.Transaction),
	}
}

func (l *ledger) addTransaction(t *model.Transaction) {
	l.txns[t.ID] = t
}

// begin opens a staging area. settle commits it when err is nil and drops it otherwise.
func (l *ledger) begin() {
	l.staged = true
	l.stagedBalances = make(map[uuid.UUID]decimal.Decimal, len(l.balances))
	for k, v := range l.balances {
		l.stagedBalances[k] = v
	}
	l.stagedTxns = make(map[uuid.UUID]*model.Transaction, len(l.txns))
	for k, v := range l.txns {
		l.stagedTxns[k] = v
	}
}

func (l *ledger) settle(err error) {
	if err == nil {
		l.balances, l.txns = l.stagedBalances, l.stagedTxns
	}
	l.staged = false
	l.stagedBalances, l.stagedTxns = nil, nil
}

func (l *ledger) liveTxns() map[uuid.UUID]*model.Transaction {
	if l.staged {
		return l.stagedTxns
	}
	return l.txns
}

type ledgerTransactionRepo struct {
	repository.ITransactionRepository
	l *ledger
}

func (r ledgerTransactionRepo) GetTransactionsForUpdate(_ context.Context, _ *sql.Tx, userID uuid.UUID, ids []uuid.UUID) ([]*model.Transaction, error) {
	out := make([]*model.Transaction, 0)
	for _, id := range ids {
		if t, ok := r.l.liveTxns()[id]; ok && t.UserID == userID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (r ledgerTransactionRepo) DeleteTransactions(_ context.Context, _ *sql.Tx, userID uuid.UUID, ids []uuid.UUID) (int64, error) {
	var n int64
	for _, id := range ids {
		if t, ok := r.l.stagedTxns[id]; ok && t.UserID == userID {
			delete(r.l.stagedTxns, id)
			n++
		}
	}
	return n, nil
}

type ledgerAccountRepo struct {
	repository.IAccountRepository
	l *ledger
}

func (r ledgerAccountRepo) AdjustBalance(_ context.Context, _ *sql.Tx, accountID uuid.UUID, delta decimal.Decimal) error {
	if accountID == r.l.failAdjustFor {
		return errors.New("connection reset by peer")
	}
	balance, ok := r.l.stagedBalances[accountID]
	if !ok {
		return sql.ErrNoRows
	}
	r.l.stagedBalances[accountID] = balance.Add(delta)
	return nil
}
