package repository

import (
	"context"
	"database/sql"

	"go-finance-api/logger"
	"go-finance-api/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// IAccountRepository defines the contract for account database operations.
// Methods taking a *sql.Tx run inside the caller's unit of work.
type IAccountRepository interface {
	CreateAccount(ctx context.Context, tx *sql.Tx, account *model.Account) error
	CountAccountsByUserID(ctx context.Context, tx *sql.Tx, userID uuid.UUID) (int, error)
	ClearDefault(ctx context.Context, tx *sql.Tx, userID, exceptID uuid.UUID) error
	PromoteDefaultAccount(ctx context.Context, tx *sql.Tx, userID uuid.UUID) error
	GetAccountsByUserID(ctx context.Context, userID uuid.UUID) ([]*model.Account, error)
	GetAccountByID(ctx context.Context, userID, accountID uuid.UUID) (*model.Account, error)
	GetDefaultAccount(ctx context.Context, userID uuid.UUID) (*model.Account, error)
	GetAccountForUpdate(ctx context.Context, tx *sql.Tx, userID, accountID uuid.UUID) (*model.Account, error)
	UpdateAccount(ctx context.Context, tx *sql.Tx, account *model.Account) error
	AdjustBalance(ctx context.Context, tx *sql.Tx, accountID uuid.UUID, delta decimal.Decimal) error
	DeleteAccount(ctx context.Context, tx *sql.Tx, userID, accountID uuid.UUID) error
}

// AccountRepository implements IAccountRepository.
type AccountRepository struct {
	DB *sql.DB
}

func NewAccountRepository(db *sql.DB) *AccountRepository {
	return &AccountRepository{DB: db}
}

const accountSelect = `
	SELECT a.id, a.user_id, a.name, a.type, a.balance, a.is_default, a.created_at, a.updated_at,
	       (SELECT COUNT(*) FROM transactions t WHERE t.account_id = a.id) AS transaction_count
	FROM accounts a`

func scanAccount(row interface{ Scan(dest ...any) error }) (*model.Account, error) {
	var acc model.Account
	err := row.Scan(&acc.ID, &acc.UserID, &acc.Name, &acc.Type, &acc.Balance, &acc.IsDefault,
		&acc.CreatedAt, &acc.UpdatedAt, &acc.TransactionCount)
	if err != nil {
		return nil, err
	}
	return &acc, nil
}

// CreateAccount adds a new account to the database.
func (r *AccountRepository) CreateAccount(ctx context.Context, tx *sql.Tx, account *model.Account) error {
	log := logger.Log.WithFields(logrus.Fields{
		"user_id":    account.UserID,
		"type":       account.Type,
		"is_default": account.IsDefault,
	})
	log.Info("Executing query to create a new account")

	query := `INSERT INTO accounts (user_id, name, type, balance, is_default) VALUES ($1, $2, $3, $4, $5) RETURNING id, created_at, updated_at`
	err := tx.QueryRowContext(ctx, query, account.UserID, account.Name, account.Type, account.Balance, account.IsDefault).
		Scan(&account.ID, &account.CreatedAt, &account.UpdatedAt)
	if err != nil {
		log.WithError(err).Error("Failed to execute create account query")
		return err
	}
	return nil
}

func (r *AccountRepository) CountAccountsByUserID(ctx context.Context, tx *sql.Tx, userID uuid.UUID) (int, error) {
	var count int
	err := tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM accounts WHERE user_id = $1`, userID).Scan(&count)
	if err != nil {
		logger.Log.WithField("user_id", userID).WithError(err).Error("Failed to count accounts")
		return 0, err
	}
	return count, nil
}

// ClearDefault unsets the default flag on every account of the user except
// exceptID. Pass uuid.Nil to clear all of them.
func (r *AccountRepository) ClearDefault(ctx context.Context, tx *sql.Tx, userID, exceptID uuid.UUID) error {
	log := logger.Log.WithFields(logrus.Fields{
		"user_id":   userID,
		"except_id": exceptID,
	})
	log.Info("Executing query to clear default account flag")

	query := `UPDATE accounts SET is_default = FALSE, updated_at = now() WHERE user_id = $1 AND is_default AND id <> $2`
	if _, err := tx.ExecContext(ctx, query, userID, exceptID); err != nil {
		log.WithError(err).Error("Failed to execute clear default query")
		return err
	}
	return nil
}

// PromoteDefaultAccount marks the user's oldest account as default. It is a
// no-op when the user has no accounts left.
func (r *AccountRepository) PromoteDefaultAccount(ctx context.Context, tx *sql.Tx, userID uuid.UUID) error {
	log := logger.Log.WithField("user_id", userID)
	log.Info("Executing query to promote a new default account")

	query := `
		UPDATE accounts SET is_default = TRUE, updated_at = now()
		WHERE id = (SELECT id FROM accounts WHERE user_id = $1 ORDER BY created_at ASC LIMIT 1)`
	if _, err := tx.ExecContext(ctx, query, userID); err != nil {
		log.WithError(err).Error("Failed to execute promote default account query")
		return err
	}
	return nil
}

// GetAccountsByUserID retrieves all accounts for a specific user, oldest first.
func (r *AccountRepository) GetAccountsByUserID(ctx context.Context, userID uuid.UUID) ([]*model.Account, error) {
	log := logger.Log.WithField("user_id", userID)
	log.Debug("Executing query to get accounts by user ID")

	rows, err := r.DB.QueryContext(ctx, accountSelect+` WHERE a.user_id = $1 ORDER BY a.created_at ASC`, userID)
	if err != nil {
		log.WithError(err).Error("Failed to execute query for accounts by user ID")
		return nil, err
	}
	defer rows.Close()

	accounts := make([]*model.Account, 0)
	for rows.Next() {
		acc, err := scanAccount(rows)
		if err != nil {
			log.WithError(err).Error("Failed to scan account row")
			return nil, err
		}
		accounts = append(accounts, acc)
	}
	return accounts, rows.Err()
}

// GetAccountByID returns the account only when it belongs to userID.
func (r *AccountRepository) GetAccountByID(ctx context.Context, userID, accountID uuid.UUID) (*model.Account, error) {
	acc, err := scanAccount(r.DB.QueryRowContext(ctx, accountSelect+` WHERE a.id = $1 AND a.user_id = $2`, accountID, userID))
	if err != nil && err != sql.ErrNoRows {
		logger.Log.WithField("account_id", accountID).WithError(err).Error("Failed to execute get account query")
	}
	return acc, err
}

func (r *AccountRepository) GetDefaultAccount(ctx context.Context, userID uuid.UUID) (*model.Account, error) {
	acc, err := scanAccount(r.DB.QueryRowContext(ctx, accountSelect+` WHERE a.user_id = $1 AND a.is_default`, userID))
	if err != nil && err != sql.ErrNoRows {
		logger.Log.WithField("user_id", userID).WithError(err).Error("Failed to execute get default account query")
	}
	return acc, err
}

// GetAccountForUpdate loads and row-locks an account owned by userID.
func (r *AccountRepository) GetAccountForUpdate(ctx context.Context, tx *sql.Tx, userID, accountID uuid.UUID) (*model.Account, error) {
	log := logger.Log.WithField("account_id", accountID)
	log.Info("Executing query to get account for update")

	account := &model.Account{}
	query := `SELECT id, user_id, name, type, balance, is_default, created_at, updated_at FROM accounts WHERE id = $1 AND user_id = $2 FOR UPDATE`
	err := tx.QueryRowContext(ctx, query, accountID, userID).Scan(&account.ID, &account.UserID, &account.Name, &account.Type,
		&account.Balance, &account.IsDefault, &account.CreatedAt, &account.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			log.Info("Account not found for update")
		} else {
			log.WithError(err).Error("Failed to execute get account for update query")
		}
		return nil, err
	}
	return account, nil
}

func (r *AccountRepository) UpdateAccount(ctx context.Context, tx *sql.Tx, account *model.Account) error {
	log := logger.Log.WithFields(logrus.Fields{
		"account_id": account.ID,
		"is_default": account.IsDefault,
	})
	log.Info("Executing query to update account")

	query := `UPDATE accounts SET name = $1, type = $2, balance = $3, is_default = $4, updated_at = now() WHERE id = $5 AND user_id = $6 RETURNING updated_at`
	err := tx.QueryRowContext(ctx, query, account.Name, account.Type, account.Balance, account.IsDefault, account.ID, account.UserID).
		Scan(&account.UpdatedAt)
	if err != nil {
		log.WithError(err).Error("Failed to execute update account query")
		return err
	}
	return nil
}

// AdjustBalance increments the stored balance by delta in a single statement,
// so concurrent writers on the same row serialize on the row lock. It returns
// sql.ErrNoRows when the account does not exist.
func (r *AccountRepository) AdjustBalance(ctx context.Context, tx *sql.Tx, accountID uuid.UUID, delta decimal.Decimal) error {
	log := logger.Log.WithFields(logrus.Fields{
		"account_id": accountID,
		"delta":      delta.String(),
	})
	log.Info("Executing query to adjust account balance")

	result, err := tx.ExecContext(ctx, `UPDATE accounts SET balance = balance + $1, updated_at = now() WHERE id = $2`, delta, accountID)
	if err != nil {
		log.WithError(err).Error("Failed to execute adjust account balance query")
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		log.Warn("No account row updated while adjusting balance")
		return sql.ErrNoRows
	}
	return nil
}

func (r *AccountRepository) DeleteAccount(ctx context.Context, tx *sql.Tx, userID, accountID uuid.UUID) error {
	log := logger.Log.WithField("account_id", accountID)
	log.Info("Executing query to delete account")

	result, err := tx.ExecContext(ctx, `DELETE FROM accounts WHERE id = $1 AND user_id = $2`, accountID, userID)
	if err != nil {
		log.WithError(err).Error("Failed to execute delete account query")
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}
