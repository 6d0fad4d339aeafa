package repository

import (
	"context"
	"database/sql"

	"go-finance-api/logger"
	"go-finance-api/model"
)

// IUserRepository defines the contract for user database operations.
type IUserRepository interface {
	CreateUser(ctx context.Context, user *model.User) error
	GetUserByExternalID(ctx context.Context, externalID string) (*model.User, error)
}

type UserRepository struct {
	DB *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{DB: db}
}

// CreateUser inserts the user. A concurrent insert for the same external id
// resolves to the existing row instead of failing.
func (r *UserRepository) CreateUser(ctx context.Context, user *model.User) error {
	log := logger.Log.WithField("external_id", user.ExternalID)
	log.Info("Executing query to create a new user")

	query := `
		INSERT INTO users (external_id, email, name, image_url) VALUES ($1, $2, $3, $4)
		ON CONFLICT (external_id) DO UPDATE SET updated_at = now()
		RETURNING id, email, name, image_url, created_at, updated_at`
	err := r.DB.QueryRowContext(ctx, query, user.ExternalID, user.Email, user.Name, user.ImageURL).
		Scan(&user.ID, &user.Email, &user.Name, &user.ImageURL, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		log.WithError(err).Error("Failed to execute create user query")
		return err
	}
	return nil
}

func (r *UserRepository) GetUserByExternalID(ctx context.Context, externalID string) (*model.User, error) {
	user := &model.User{}
	query := `SELECT id, external_id, email, name, image_url, created_at, updated_at FROM users WHERE external_id = $1`
	err := r.DB.QueryRowContext(ctx, query, externalID).
		Scan(&user.ID, &user.ExternalID, &user.Email, &user.Name, &user.ImageURL, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if err != sql.ErrNoRows {
			logger.Log.WithField("external_id", externalID).WithError(err).Error("Failed to execute get user query")
		}
		return nil, err
	}
	return user, nil
}
