package handler

import (
	"context"
	"net/http"

	"go-finance-api/common"
	"go-finance-api/logger"
	"go-finance-api/model"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type AccountService interface {
	CreateAccount(ctx context.Context, userID uuid.UUID, req model.AccountRequest) (*model.Account, error)
	ListAccounts(ctx context.Context, userID uuid.UUID) ([]*model.Account, error)
	GetAccountWithTransactions(ctx context.Context, userID, accountID uuid.UUID) (*model.AccountDetail, error)
	UpdateAccount(ctx context.Context, userID, accountID uuid.UUID, req model.AccountRequest) (*model.Account, error)
	DeleteAccount(ctx context.Context, userID, accountID uuid.UUID) error
}

type AccountHandler struct {
	service AccountService
	users   UserResolver
}

func NewAccountHandler(service AccountService, users UserResolver) *AccountHandler {
	return &AccountHandler{service: service, users: users}
}

// CreateAccount godoc
// @Summary      Create an account
// @Description  The first account of a user always becomes the default one.
// @Tags         accounts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        account body model.AccountRequest true "Account details"
// @Success      201  {object}  model.Account
// @Failure      400  {object}  common.AppError
// @Failure      401  {object}  common.AppError
// @Failure      500  {object}  common.AppError
// @Router       /api/accounts [post]
func (h *AccountHandler) CreateAccount(w http.ResponseWriter, r *http.Request) *common.AppError {
	var req model.AccountRequest
	if err := common.ValidateAndDecode(r, &req); err != nil {
		return err
	}

	user, appErr := currentUser(r, h.users)
	if appErr != nil {
		return appErr
	}

	logger.Log.WithFields(logrus.Fields{
		"user_id": user.ID,
		"type":    req.Type,
	}).Info("Create account request received")

	account, err := h.service.CreateAccount(r.Context(), user.ID, req)
	if err != nil {
		return toAppError(err, "Could not create account")
	}

	common.WriteJSON(w, http.StatusCreated, account)
	return nil
}

// ListAccounts godoc
// @Summary      List accounts
// @Tags         accounts
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   model.Account
// @Failure      401  {object}  common.AppError
// @Failure      500  {object}  common.AppError
// @Router       /api/accounts [get]
func (h *AccountHandler) ListAccounts(w http.ResponseWriter, r *http.Request) *common.AppError {
	user, appErr := currentUser(r, h.users)
	if appErr != nil {
		return appErr
	}

	accounts, err := h.service.ListAccounts(r.Context(), user.ID)
	if err != nil {
		return toAppError(err, "Could not retrieve accounts")
	}

	common.WriteJSON(w, http.StatusOK, accounts)
	return nil
}

// GetAccount godoc
// @Summary      Account with its transactions
// @Tags         accounts
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Account ID"
// @Success      200  {object}  model.AccountDetail
// @Failure      400  {object}  common.AppError
// @Failure      404  {object}  common.AppError
// @Router       /api/accounts/{id} [get]
func (h *AccountHandler) GetAccount(w http.ResponseWriter, r *http.Request) *common.AppError {
	accountID, appErr := pathID(r, "id")
	if appErr != nil {
		return appErr
	}
	user, appErr := currentUser(r, h.users)
	if appErr != nil {
		return appErr
	}

	detail, err := h.service.GetAccountWithTransactions(r.Context(), user.ID, accountID)
	if err != nil {
		return toAppError(err, "Could not retrieve account")
	}

	common.WriteJSON(w, http.StatusOK, detail)
	return nil
}

// UpdateAccount godoc
// @Summary      Update an account
// @Description  Setting is_default moves the default flag to this account.
// @Tags         accounts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Account ID"
// @Param        account body model.AccountRequest true "Account details"
// @Success      200  {object}  model.Account
// @Failure      400  {object}  common.AppError
// @Failure      404  {object}  common.AppError
// @Router       /api/accounts/{id} [put]
func (h *AccountHandler) UpdateAccount(w http.ResponseWriter, r *http.Request) *common.AppError {
	accountID, appErr := pathID(r, "id")
	if appErr != nil {
		return appErr
	}
	var req model.AccountRequest
	if err := common.ValidateAndDecode(r, &req); err != nil {
		return err
	}
	user, appErr := currentUser(r, h.users)
	if appErr != nil {
		return appErr
	}

	account, err := h.service.UpdateAccount(r.Context(), user.ID, accountID, req)
	if err != nil {
		return toAppError(err, "Could not update account")
	}

	common.WriteJSON(w, http.StatusOK, account)
	return nil
}

// DeleteAccount godoc
// @Summary      Delete an account
// @Description  Refused while transactions still reference the account.
// @Tags         accounts
// @Security     BearerAuth
// @Param        id path string true "Account ID"
// @Success      204
// @Failure      404  {object}  common.AppError
// @Failure      409  {object}  common.AppError "Account still has transactions"
// @Router       /api/accounts/{id} [delete]
func (h *AccountHandler) DeleteAccount(w http.ResponseWriter, r *http.Request) *common.AppError {
	accountID, appErr := pathID(r, "id")
	if appErr != nil {
		return appErr
	}
	user, appErr := currentUser(r, h.users)
	if appErr != nil {
		return appErr
	}

	if err := h.service.DeleteAccount(r.Context(), user.ID, accountID); err != nil {
		return toAppError(err, "Could not delete account")
	}

	w.WriteHeader(http.StatusNoContent)
	return nil
}
