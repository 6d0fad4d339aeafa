package repository

import (
	"context"
	"database/sql"
	"time"

	"go-finance-api/logger"
	"go-finance-api/model"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// ITransactionRepository defines the contract for transaction database operations.
type ITransactionRepository interface {
	CreateTransaction(ctx context.Context, tx *sql.Tx, transaction *model.Transaction) error
	UpdateTransaction(ctx context.Context, tx *sql.Tx, transaction *model.Transaction) error
	GetTransactionByID(ctx context.Context, userID, id uuid.UUID) (*model.Transaction, error)
	GetTransactionForUpdate(ctx context.Context, tx *sql.Tx, userID, id uuid.UUID) (*model.Transaction, error)
	GetTransactionsForUpdate(ctx context.Context, tx *sql.Tx, userID uuid.UUID, ids []uuid.UUID) ([]*model.Transaction, error)
	DeleteTransactions(ctx context.Context, tx *sql.Tx, userID uuid.UUID, ids []uuid.UUID) (int64, error)
	CountByAccountID(ctx context.Context, tx *sql.Tx, accountID uuid.UUID) (int, error)
	GetTransactionsByAccountID(ctx context.Context, userID, accountID uuid.UUID) ([]*model.Transaction, error)
	GetTransactionsBetween(ctx context.Context, userID, accountID uuid.UUID, from, to time.Time) ([]*model.Transaction, error)
	SumByType(ctx context.Context, userID, accountID uuid.UUID) (income, expense decimal.Decimal, err error)
	SumExpensesByCategory(ctx context.Context, userID, accountID uuid.UUID) ([]model.CategoryExpense, error)
	SumExpensesBetween(ctx context.Context, userID, accountID uuid.UUID, from, to time.Time) (decimal.Decimal, error)
}

// TransactionRepository implements ITransactionRepository.
type TransactionRepository struct {
	DB *sql.DB
}

func NewTransactionRepository(db *sql.DB) *TransactionRepository {
	return &TransactionRepository{DB: db}
}

const transactionColumns = `id, user_id, account_id, type, amount, description, category, date,
	is_recurring, recurring_interval, next_recurring_date, status, created_at, updated_at`

func scanTransaction(row interface{ Scan(dest ...any) error }) (*model.Transaction, error) {
	var (
		t        model.Transaction
		interval sql.NullString
		next     sql.NullTime
	)
	err := row.Scan(&t.ID, &t.UserID, &t.AccountID, &t.Type, &t.Amount, &t.Description, &t.Category, &t.Date,
		&t.IsRecurring, &interval, &next, &t.Status, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return nil, err
	}
	t.RecurringInterval = model.RecurringInterval(interval.String)
	if next.Valid {
		t.NextRecurringDate = &next.Time
	}
	return &t, nil
}

func scanTransactions(rows *sql.Rows, log *logrus.Entry) ([]*model.Transaction, error) {
	defer rows.Close()

	transactions := make([]*model.Transaction, 0)
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			log.WithError(err).Error("Failed to scan transaction row")
			return nil, err
		}
		transactions = append(transactions, t)
	}
	return transactions, rows.Err()
}

func nullInterval(interval model.RecurringInterval) sql.NullString {
	return sql.NullString{String: string(interval), Valid: interval != ""}
}

func nullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}

// idArray converts ids for use with `= ANY($n)`.
func idArray(ids []uuid.UUID) interface{} {
	s := make([]string, len(ids))
	for i, id := range ids {
		s[i] = id.String()
	}
	return pq.Array(s)
}

func (r *TransactionRepository) CreateTransaction(ctx context.Context, tx *sql.Tx, transaction *model.Transaction) error {
	log := logger.Log.WithFields(logrus.Fields{
		"account_id": transaction.AccountID,
		"type":       transaction.Type,
		"amount":     transaction.Amount.String(),
	})
	log.Info("Executing query to create a new transaction")

	query := `
		INSERT INTO transactions (user_id, account_id, type, amount, description, category, date,
			is_recurring, recurring_interval, next_recurring_date, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id, created_at, updated_at`
	err := tx.QueryRowContext(ctx, query, transaction.UserID, transaction.AccountID, transaction.Type, transaction.Amount,
		transaction.Description, transaction.Category, transaction.Date, transaction.IsRecurring,
		nullInterval(transaction.RecurringInterval), nullTime(transaction.NextRecurringDate), transaction.Status).
		Scan(&transaction.ID, &transaction.CreatedAt, &transaction.UpdatedAt)
	if err != nil {
		log.WithError(err).Error("Failed to execute create transaction query")
		return err
	}
	return nil
}

func (r *TransactionRepository) UpdateTransaction(ctx context.Context, tx *sql.Tx, transaction *model.Transaction) error {
	log := logger.Log.WithFields(logrus.Fields{
		"transaction_id": transaction.ID,
		"account_id":     transaction.AccountID,
		"amount":         transaction.Amount.String(),
	})
	log.Info("Executing query to update transaction")

	query := `
		UPDATE transactions SET account_id = $1, type = $2, amount = $3, description = $4, category = $5, date = $6,
			is_recurring = $7, recurring_interval = $8, next_recurring_date = $9, updated_at = now()
		WHERE id = $10 AND user_id = $11
		RETURNING updated_at`
	err := tx.QueryRowContext(ctx, query, transaction.AccountID, transaction.Type, transaction.Amount, transaction.Description,
		transaction.Category, transaction.Date, transaction.IsRecurring, nullInterval(transaction.RecurringInterval),
		nullTime(transaction.NextRecurringDate), transaction.ID, transaction.UserID).
		Scan(&transaction.UpdatedAt)
	if err != nil {
		log.WithError(err).Error("Failed to execute update transaction query")
		return err
	}
	return nil
}

func (r *TransactionRepository) GetTransactionByID(ctx context.Context, userID, id uuid.UUID) (*model.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE id = $1 AND user_id = $2`
	t, err := scanTransaction(r.DB.QueryRowContext(ctx, query, id, userID))
	if err != nil && err != sql.ErrNoRows {
		logger.Log.WithField("transaction_id", id).WithError(err).Error("Failed to execute get transaction query")
	}
	return t, err
}

func (r *TransactionRepository) GetTransactionForUpdate(ctx context.Context, tx *sql.Tx, userID, id uuid.UUID) (*model.Transaction, error) {
	log := logger.Log.WithField("transaction_id", id)
	log.Info("Executing query to get transaction for update")

	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE id = $1 AND user_id = $2 FOR UPDATE`
	t, err := scanTransaction(tx.QueryRowContext(ctx, query, id, userID))
	if err != nil && err != sql.ErrNoRows {
		log.WithError(err).Error("Failed to execute get transaction for update query")
	}
	return t, err
}

// GetTransactionsForUpdate loads and row-locks the transactions among ids that
// belong to userID. Unknown and foreign ids are simply absent from the result.
func (r *TransactionRepository) GetTransactionsForUpdate(ctx context.Context, tx *sql.Tx, userID uuid.UUID, ids []uuid.UUID) ([]*model.Transaction, error) {
	log := logger.Log.WithFields(logrus.Fields{
		"user_id":   userID,
		"requested": len(ids),
	})
	log.Info("Executing query to lock transactions for deletion")

	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE id = ANY($1) AND user_id = $2 ORDER BY id FOR UPDATE`
	rows, err := tx.QueryContext(ctx, query, idArray(ids), userID)
	if err != nil {
		log.WithError(err).Error("Failed to execute lock transactions query")
		return nil, err
	}
	return scanTransactions(rows, log)
}

// DeleteTransactions removes the given ids, re-filtered by owner, and reports
// how many rows were deleted.
func (r *TransactionRepository) DeleteTransactions(ctx context.Context, tx *sql.Tx, userID uuid.UUID, ids []uuid.UUID) (int64, error) {
	log := logger.Log.WithFields(logrus.Fields{
		"user_id": userID,
		"count":   len(ids),
	})
	log.Info("Executing query to delete transactions")

	result, err := tx.ExecContext(ctx, `DELETE FROM transactions WHERE id = ANY($1) AND user_id = $2`, idArray(ids), userID)
	if err != nil {
		log.WithError(err).Error("Failed to execute delete transactions query")
		return 0, err
	}
	return result.RowsAffected()
}

func (r *TransactionRepository) CountByAccountID(ctx context.Context, tx *sql.Tx, accountID uuid.UUID) (int, error) {
	var count int
	err := tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM transactions WHERE account_id = $1`, accountID).Scan(&count)
	if err != nil {
		logger.Log.WithField("account_id", accountID).WithError(err).Error("Failed to count transactions")
		return 0, err
	}
	return count, nil
}

// GetTransactionsByAccountID retrieves the history of an account, newest first.
func (r *TransactionRepository) GetTransactionsByAccountID(ctx context.Context, userID, accountID uuid.UUID) ([]*model.Transaction, error) {
	log := logger.Log.WithField("account_id", accountID)
	log.Debug("Executing query to get transactions by account ID")

	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE account_id = $1 AND user_id = $2 ORDER BY date DESC`
	rows, err := r.DB.QueryContext(ctx, query, accountID, userID)
	if err != nil {
		log.WithError(err).Error("Failed to execute query for transactions by account ID")
		return nil, err
	}
	return scanTransactions(rows, log)
}

// GetTransactionsBetween returns the account's transactions dated within
// [from, to], oldest first.
func (r *TransactionRepository) GetTransactionsBetween(ctx context.Context, userID, accountID uuid.UUID, from, to time.Time) ([]*model.Transaction, error) {
	log := logger.Log.WithFields(logrus.Fields{
		"account_id": accountID,
		"from":       from,
		"to":         to,
	})
	log.Debug("Executing query to get transactions in date range")

	query := `SELECT ` + transactionColumns + ` FROM transactions
		WHERE account_id = $1 AND user_id = $2 AND date >= $3 AND date <= $4 ORDER BY date ASC`
	rows, err := r.DB.QueryContext(ctx, query, accountID, userID, from, to)
	if err != nil {
		log.WithError(err).Error("Failed to execute query for transactions in date range")
		return nil, err
	}
	return scanTransactions(rows, log)
}

func (r *TransactionRepository) SumByType(ctx context.Context, userID, accountID uuid.UUID) (decimal.Decimal, decimal.Decimal, error) {
	var income, expense decimal.Decimal
	query := `
		SELECT COALESCE(SUM(amount) FILTER (WHERE type = 'INCOME'), 0),
		       COALESCE(SUM(amount) FILTER (WHERE type = 'EXPENSE'), 0)
		FROM transactions WHERE user_id = $1 AND account_id = $2`
	if err := r.DB.QueryRowContext(ctx, query, userID, accountID).Scan(&income, &expense); err != nil {
		logger.Log.WithField("account_id", accountID).WithError(err).Error("Failed to execute sum by type query")
		return decimal.Zero, decimal.Zero, err
	}
	return income, expense, nil
}

// SumExpensesByCategory groups the account's expenses by category, largest first.
func (r *TransactionRepository) SumExpensesByCategory(ctx context.Context, userID, accountID uuid.UUID) ([]model.CategoryExpense, error) {
	log := logger.Log.WithField("account_id", accountID)

	query := `
		SELECT category, SUM(amount) AS total FROM transactions
		WHERE user_id = $1 AND account_id = $2 AND type = 'EXPENSE'
		GROUP BY category ORDER BY total DESC, category ASC`
	rows, err := r.DB.QueryContext(ctx, query, userID, accountID)
	if err != nil {
		log.WithError(err).Error("Failed to execute expenses by category query")
		return nil, err
	}
	defer rows.Close()

	totals := make([]model.CategoryExpense, 0)
	for rows.Next() {
		var c model.CategoryExpense
		if err := rows.Scan(&c.Category, &c.Amount); err != nil {
			log.WithError(err).Error("Failed to scan category total row")
			return nil, err
		}
		totals = append(totals, c)
	}
	return totals, rows.Err()
}

// SumExpensesBetween totals the account's expenses dated within [from, to).
func (r *TransactionRepository) SumExpensesBetween(ctx context.Context, userID, accountID uuid.UUID, from, to time.Time) (decimal.Decimal, error) {
	var total decimal.Decimal
	query := `
		SELECT COALESCE(SUM(amount), 0) FROM transactions
		WHERE user_id = $1 AND account_id = $2 AND type = 'EXPENSE' AND date >= $3 AND date < $4`
	if err := r.DB.QueryRowContext(ctx, query, userID, accountID, from, to).Scan(&total); err != nil {
		logger.Log.WithField("account_id", accountID).WithError(err).Error("Failed to execute sum expenses query")
		return decimal.Zero, err
	}
	return total, nil
}
