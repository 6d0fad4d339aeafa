package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"go-finance-api/logger"
	"go-finance-api/metrics"
	"go-finance-api/model"
	"go-finance-api/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type TransactionService struct {
	db              *sql.DB
	userRepo        repository.IUserRepository
	accountRepo     repository.IAccountRepository
	transactionRepo repository.ITransactionRepository
	invalidator     ViewInvalidator
}

func NewTransactionService(db *sql.DB, userRepo repository.IUserRepository, accountRepo repository.IAccountRepository,
	transactionRepo repository.ITransactionRepository, invalidator ViewInvalidator) *TransactionService {
	return &TransactionService{
		db:              db,
		userRepo:        userRepo,
		accountRepo:     accountRepo,
		transactionRepo: transactionRepo,
		invalidator:     afterCommit(invalidator),
	}
}

func checkTransactionRequest(req model.TransactionRequest) error {
	if !req.Amount.IsPositive() {
		return ErrInvalidAmount
	}
	if err := checkMoneyScale(req.Amount); err != nil {
		return err
	}
	if req.IsRecurring && req.RecurringInterval == "" {
		return ErrMissingInterval
	}
	return nil
}

// applyRequest copies the request onto t and derives the recurrence fields.
func applyRequest(t *model.Transaction, req model.TransactionRequest) {
	t.AccountID = req.AccountID
	t.Type = req.Type
	t.Amount = req.Amount
	t.Description = req.Description
	t.Category = req.Category
	t.Date = req.Date
	t.IsRecurring = req.IsRecurring
	t.RecurringInterval = ""
	t.NextRecurringDate = nil
	if req.IsRecurring {
		t.RecurringInterval = req.RecurringInterval
		t.NextRecurringDate = nextRecurringDate(req.Date, req.RecurringInterval)
	}
}

// CreateTransaction records the transaction and moves the account balance by
// its effect in the same unit of work.
func (s *TransactionService) CreateTransaction(ctx context.Context, userID uuid.UUID, req model.TransactionRequest) (*model.Transaction, error) {
	log := logger.Log.WithFields(logrus.Fields{
		"user_id":    userID,
		"account_id": req.AccountID,
		"type":       req.Type,
	})

	if err := checkTransactionRequest(req); err != nil {
		return nil, err
	}

	transaction := &model.Transaction{UserID: userID, Status: model.TransactionStatusCompleted}
	applyRequest(transaction, req)

	err := inTx(ctx, s.db, func(tx *sql.Tx) error {
		if _, err := s.accountRepo.GetAccountForUpdate(ctx, tx, userID, req.AccountID); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return ErrAccountNotFound
			}
			return err
		}
		if err := s.transactionRepo.CreateTransaction(ctx, tx, transaction); err != nil {
			return fmt.Errorf("could not create transaction record: %w", err)
		}
		deltas := make(balanceDeltas)
		deltas.add(transaction.AccountID, transaction.BalanceEffect())
		return deltas.apply(ctx, tx, s.accountRepo)
	})
	if err != nil {
		log.WithError(err).Warn("Transaction creation failed")
		return nil, err
	}

	s.invalidator.InvalidateViews(ctx, userID, transaction.AccountID)
	log.WithField("transaction_id", transaction.ID).Info("Transaction created")
	return transaction, nil
}

func (s *TransactionService) GetTransaction(ctx context.Context, userID, id uuid.UUID) (*model.Transaction, error) {
	transaction, err := s.transactionRepo.GetTransactionByID(ctx, userID, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTransactionNotFound
		}
		return nil, err
	}
	return transaction, nil
}

// UpdateTransaction reverses the stored effect and applies the new one, which
// may land on a different account.
func (s *TransactionService) UpdateTransaction(ctx context.Context, userID, id uuid.UUID, req model.TransactionRequest) (*model.Transaction, error) {
	log := logger.Log.WithFields(logrus.Fields{
		"user_id":        userID,
		"transaction_id": id,
	})

	if err := checkTransactionRequest(req); err != nil {
		return nil, err
	}

	var updated *model.Transaction
	var affected []uuid.UUID
	err := inTx(ctx, s.db, func(tx *sql.Tx) error {
		current, err := s.transactionRepo.GetTransactionForUpdate(ctx, tx, userID, id)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return ErrTransactionNotFound
			}
			return err
		}
		if _, err := s.accountRepo.GetAccountForUpdate(ctx, tx, userID, req.AccountID); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return ErrAccountNotFound
			}
			return err
		}

		deltas := make(balanceDeltas)
		deltas.add(current.AccountID, current.BalanceEffect().Neg())

		next := *current
		applyRequest(&next, req)
		deltas.add(next.AccountID, next.BalanceEffect())

		if err := s.transactionRepo.UpdateTransaction(ctx, tx, &next); err != nil {
			return fmt.Errorf("could not update transaction record: %w", err)
		}
		if err := deltas.apply(ctx, tx, s.accountRepo); err != nil {
			return err
		}
		updated = &next
		affected = deltas.accountIDs()
		return nil
	})
	if err != nil {
		log.WithError(err).Warn("Transaction update failed")
		return nil, err
	}

	s.invalidator.InvalidateViews(ctx, userID, affected...)
	log.Info("Transaction updated")
	return updated, nil
}

// DeleteTransaction removes a single owned transaction.
func (s *TransactionService) DeleteTransaction(ctx context.Context, userID, id uuid.UUID) error {
	_, affected, err := s.deleteTransactions(ctx, userID, []uuid.UUID{id})
	if err != nil {
		if errors.Is(err, ErrTransactionsNotFound) {
			return ErrTransactionNotFound
		}
		return err
	}
	s.invalidator.InvalidateViews(ctx, userID, affected...)
	return nil
}

// BulkDelete deletes the caller's transactions among ids and reverses their
// effect on every touched account. Ids that are unknown or owned by someone
// else are skipped. The returned result always describes the outcome; the
// error carries its kind for the transport layer.
func (s *TransactionService) BulkDelete(ctx context.Context, subject string, ids []uuid.UUID) (model.BulkDeleteResult, error) {
	deleted, err := s.bulkDelete(ctx, subject, ids)
	metrics.BulkDeleteRequests.WithLabelValues(outcome(err)).Inc()
	if err != nil {
		return model.BulkDeleteResult{Success: false, RequestedCount: len(ids), Error: publicMessage(err)}, err
	}

	metrics.TransactionsDeleted.Add(float64(deleted))
	return model.BulkDeleteResult{
		Success:        true,
		DeletedCount:   int(deleted),
		RequestedCount: len(ids),
		Message:        fmt.Sprintf("Successfully deleted %d transaction(s)", deleted),
	}, nil
}

func (s *TransactionService) bulkDelete(ctx context.Context, subject string, ids []uuid.UUID) (int64, error) {
	if subject == "" {
		return 0, ErrUnauthorized
	}
	if len(ids) == 0 {
		return 0, ErrNoTransactionIDs
	}

	user, err := resolveUser(ctx, s.userRepo, subject)
	if err != nil {
		return 0, err
	}

	deleted, affected, err := s.deleteTransactions(ctx, user.ID, ids)
	if err != nil {
		logger.Log.WithFields(logrus.Fields{
			"user_id":   user.ID,
			"requested": len(ids),
		}).WithError(err).Warn("Bulk delete failed")
		return 0, err
	}

	s.invalidator.InvalidateViews(ctx, user.ID, affected...)
	return deleted, nil
}

// deleteTransactions is the reconciliation core: it locks the owned rows,
// deletes them and corrects each account balance by the net reversed amount,
// all in one unit of work. It returns the deleted count and the accounts whose
// balance moved.
func (s *TransactionService) deleteTransactions(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) (int64, []uuid.UUID, error) {
	log := logger.Log.WithFields(logrus.Fields{
		"user_id":   userID,
		"requested": len(ids),
	})
	ids = uniqueIDs(ids)

	var deleted int64
	var affected []uuid.UUID
	err := inTx(ctx, s.db, func(tx *sql.Tx) error {
		txns, err := s.transactionRepo.GetTransactionsForUpdate(ctx, tx, userID, ids)
		if err != nil {
			return fmt.Errorf("could not load transactions: %w", err)
		}
		if len(txns) == 0 {
			return ErrTransactionsNotFound
		}

		owned := make([]uuid.UUID, 0, len(txns))
		for _, t := range txns {
			owned = append(owned, t.ID)
		}
		deltas := removalDeltas(txns)

		deleted, err = s.transactionRepo.DeleteTransactions(ctx, tx, userID, owned)
		if err != nil {
			return fmt.Errorf("could not delete transactions: %w", err)
		}
		if deleted != int64(len(owned)) {
			return fmt.Errorf("deleted %d of %d locked transactions", deleted, len(owned))
		}

		if err := deltas.apply(ctx, tx, s.accountRepo); err != nil {
			return fmt.Errorf("could not adjust account balance: %w", err)
		}
		affected = deltas.accountIDs()
		return nil
	})
	if err != nil {
		return 0, nil, err
	}

	log.WithFields(logrus.Fields{
		"deleted":  deleted,
		"accounts": len(affected),
	}).Info("Transactions deleted and balances reconciled")
	return deleted, affected, nil
}

func uniqueIDs(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

// publicMessage hides infrastructure causes from callers; domain errors are
// reported as is.
func publicMessage(err error) string {
	var kindErr *kindError
	switch {
	case errors.As(err, &kindErr):
		return kindErr.msg
	case errors.Is(err, ErrUnauthorized):
		return ErrUnauthorized.Error()
	case errors.Is(err, ErrTransactionFailed):
		return "transaction failed, no changes were made"
	default:
		return "could not delete transactions"
	}
}

// outcome is the metrics label for an operation result.
func outcome(err error) string {
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, ErrUnauthorized):
		return "unauthorized"
	case errors.Is(err, ErrInvalidArgument):
		return "invalid_argument"
	case errors.Is(err, ErrNotFound):
		return "not_found"
	case errors.Is(err, ErrConflict):
		return "conflict"
	case errors.Is(err, ErrTransactionFailed):
		return "transaction_failed"
	default:
		return "error"
	}
}
