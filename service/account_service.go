package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"go-finance-api/logger"
	"go-finance-api/model"
	"go-finance-api/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type AccountService struct {
	db              *sql.DB
	accountRepo     repository.IAccountRepository
	transactionRepo repository.ITransactionRepository
	cache           ICacheClient
	cacheTTL        time.Duration
	invalidator     ViewInvalidator
}

// NewAccountService wires the account use cases. cache may be nil.
func NewAccountService(db *sql.DB, accountRepo repository.IAccountRepository, transactionRepo repository.ITransactionRepository,
	cache ICacheClient, cacheTTL time.Duration, invalidator ViewInvalidator) *AccountService {
	if cacheTTL <= 0 {
		cacheTTL = defaultCacheTTL
	}
	return &AccountService{
		db:              db,
		accountRepo:     accountRepo,
		transactionRepo: transactionRepo,
		cache:           cache,
		cacheTTL:        cacheTTL,
		invalidator:     afterCommit(invalidator),
	}
}

func checkAccountRequest(req model.AccountRequest) error {
	if req.Balance == nil {
		return ErrInvalidBalance
	}
	return checkMoneyScale(*req.Balance)
}

// CreateAccount stores a new account. The user's first account is always the
// default one, and a new default takes the flag from the previous one.
func (s *AccountService) CreateAccount(ctx context.Context, userID uuid.UUID, req model.AccountRequest) (*model.Account, error) {
	log := logger.Log.WithFields(logrus.Fields{
		"user_id": userID,
		"type":    req.Type,
	})
	if err := checkAccountRequest(req); err != nil {
		return nil, err
	}

	account := &model.Account{
		UserID:  userID,
		Name:    req.Name,
		Type:    req.Type,
		Balance: *req.Balance,
	}

	err := inTx(ctx, s.db, func(tx *sql.Tx) error {
		count, err := s.accountRepo.CountAccountsByUserID(ctx, tx, userID)
		if err != nil {
			return err
		}
		account.IsDefault = count == 0 || req.IsDefault
		if account.IsDefault && count > 0 {
			if err := s.accountRepo.ClearDefault(ctx, tx, userID, uuid.Nil); err != nil {
				return err
			}
		}
		return s.accountRepo.CreateAccount(ctx, tx, account)
	})
	if err != nil {
		log.WithError(err).Error("Account creation failed")
		return nil, err
	}

	s.invalidator.InvalidateViews(ctx, userID, account.ID)
	log.WithField("account_id", account.ID).Info("Account created")
	return account, nil
}

// ListAccounts returns the user's accounts oldest first, served from the
// cache when possible.
func (s *AccountService) ListAccounts(ctx context.Context, userID uuid.UUID) ([]*model.Account, error) {
	cacheKey := accountsCacheKey(userID)

	var accounts []*model.Account
	if readCache(ctx, s.cache, cacheKey, &accounts) {
		return accounts, nil
	}

	accounts, err := s.accountRepo.GetAccountsByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	writeCache(ctx, s.cache, cacheKey, accounts, s.cacheTTL)
	return accounts, nil
}

// GetAccountWithTransactions returns the account and its history, newest first.
func (s *AccountService) GetAccountWithTransactions(ctx context.Context, userID, accountID uuid.UUID) (*model.AccountDetail, error) {
	account, err := s.accountRepo.GetAccountByID(ctx, userID, accountID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrAccountNotFound
		}
		return nil, err
	}

	transactions, err := s.transactionRepo.GetTransactionsByAccountID(ctx, userID, accountID)
	if err != nil {
		return nil, fmt.Errorf("could not load account transactions: %w", err)
	}
	return &model.AccountDetail{Account: account, Transactions: transactions}, nil
}

// UpdateAccount edits the account. The submitted balance overwrites the
// current one. The default flag can only be moved to an account, never
// cleared, so a user with accounts always has a default.
func (s *AccountService) UpdateAccount(ctx context.Context, userID, accountID uuid.UUID, req model.AccountRequest) (*model.Account, error) {
	log := logger.Log.WithFields(logrus.Fields{
		"user_id":    userID,
		"account_id": accountID,
	})
	if err := checkAccountRequest(req); err != nil {
		return nil, err
	}

	var account *model.Account
	err := inTx(ctx, s.db, func(tx *sql.Tx) error {
		current, err := s.accountRepo.GetAccountForUpdate(ctx, tx, userID, accountID)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return ErrAccountNotFound
			}
			return err
		}

		if req.IsDefault && !current.IsDefault {
			if err := s.accountRepo.ClearDefault(ctx, tx, userID, accountID); err != nil {
				return err
			}
			current.IsDefault = true
		}
		current.Name = req.Name
		current.Type = req.Type
		current.Balance = *req.Balance

		if err := s.accountRepo.UpdateAccount(ctx, tx, current); err != nil {
			return err
		}
		account = current
		return nil
	})
	if err != nil {
		log.WithError(err).Warn("Account update failed")
		return nil, err
	}

	s.invalidator.InvalidateViews(ctx, userID, accountID)
	log.Info("Account updated")
	return account, nil
}

// DeleteAccount removes an account without transactions. Deleting the default
// account promotes the user's oldest remaining account.
func (s *AccountService) DeleteAccount(ctx context.Context, userID, accountID uuid.UUID) error {
	log := logger.Log.WithFields(logrus.Fields{
		"user_id":    userID,
		"account_id": accountID,
	})

	err := inTx(ctx, s.db, func(tx *sql.Tx) error {
		account, err := s.accountRepo.GetAccountForUpdate(ctx, tx, userID, accountID)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return ErrAccountNotFound
			}
			return err
		}

		count, err := s.transactionRepo.CountByAccountID(ctx, tx, accountID)
		if err != nil {
			return err
		}
		if count > 0 {
			return ErrAccountHasTransactions
		}

		if err := s.accountRepo.DeleteAccount(ctx, tx, userID, accountID); err != nil {
			return err
		}
		if account.IsDefault {
			return s.accountRepo.PromoteDefaultAccount(ctx, tx, userID)
		}
		return nil
	})
	if err != nil {
		log.WithError(err).Warn("Account deletion failed")
		return err
	}

	s.invalidator.InvalidateViews(ctx, userID, accountID)
	log.Info("Account deleted")
	return nil
}
