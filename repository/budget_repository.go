package repository

import (
	"context"
	"database/sql"

	"go-finance-api/logger"
	"go-finance-api/model"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type IBudgetRepository interface {
	GetBudgetByUserID(ctx context.Context, userID uuid.UUID) (*model.Budget, error)
	UpsertBudget(ctx context.Context, budget *model.Budget) error
}

type BudgetRepository struct {
	DB *sql.DB
}

func NewBudgetRepository(db *sql.DB) *BudgetRepository {
	return &BudgetRepository{DB: db}
}

func (r *BudgetRepository) GetBudgetByUserID(ctx context.Context, userID uuid.UUID) (*model.Budget, error) {
	budget := &model.Budget{}
	query := `SELECT id, user_id, amount, created_at, updated_at FROM budgets WHERE user_id = $1`
	err := r.DB.QueryRowContext(ctx, query, userID).
		Scan(&budget.ID, &budget.UserID, &budget.Amount, &budget.CreatedAt, &budget.UpdatedAt)
	if err != nil {
		if err != sql.ErrNoRows {
			logger.Log.WithField("user_id", userID).WithError(err).Error("Failed to execute get budget query")
		}
		return nil, err
	}
	return budget, nil
}

// UpsertBudget creates the user's budget or replaces its amount.
func (r *BudgetRepository) UpsertBudget(ctx context.Context, budget *model.Budget) error {
	log := logger.Log.WithFields(logrus.Fields{
		"user_id": budget.UserID,
		"amount":  budget.Amount.String(),
	})
	log.Info("Executing query to upsert budget")

	query := `
		INSERT INTO budgets (user_id, amount) VALUES ($1, $2)
		ON CONFLICT (user_id) DO UPDATE SET amount = EXCLUDED.amount, updated_at = now()
		RETURNING id, created_at, updated_at`
	err := r.DB.QueryRowContext(ctx, query, budget.UserID, budget.Amount).
		Scan(&budget.ID, &budget.CreatedAt, &budget.UpdatedAt)
	if err != nil {
		log.WithError(err).Error("Failed to execute upsert budget query")
		return err
	}
	return nil
}
