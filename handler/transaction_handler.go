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

type TransactionService interface {
	CreateTransaction(ctx context.Context, userID uuid.UUID, req model.TransactionRequest) (*model.Transaction, error)
	GetTransaction(ctx context.Context, userID, id uuid.UUID) (*model.Transaction, error)
	UpdateTransaction(ctx context.Context, userID, id uuid.UUID, req model.TransactionRequest) (*model.Transaction, error)
	DeleteTransaction(ctx context.Context, userID, id uuid.UUID) error
	BulkDelete(ctx context.Context, subject string, ids []uuid.UUID) (model.BulkDeleteResult, error)
}

type TransactionHandler struct {
	service TransactionService
	users   UserResolver
}

func NewTransactionHandler(service TransactionService, users UserResolver) *TransactionHandler {
	return &TransactionHandler{service: service, users: users}
}

// CreateTransaction godoc
// @Summary      Record a transaction
// @Description  Inserts the transaction and moves the account balance by its amount.
// @Tags         transactions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        transaction body model.TransactionRequest true "Transaction details"
// @Success      201  {object}  model.Transaction
// @Failure      400  {object}  common.AppError
// @Failure      404  {object}  common.AppError "Account not found"
// @Failure      500  {object}  common.AppError
// @Router       /api/transactions [post]
func (h *TransactionHandler) CreateTransaction(w http.ResponseWriter, r *http.Request) *common.AppError {
	var req model.TransactionRequest
	if err := common.ValidateAndDecode(r, &req); err != nil {
		return err
	}
	user, appErr := currentUser(r, h.users)
	if appErr != nil {
		return appErr
	}

	transaction, err := h.service.CreateTransaction(r.Context(), user.ID, req)
	if err != nil {
		return toAppError(err, "Could not create transaction")
	}

	common.WriteJSON(w, http.StatusCreated, transaction)
	return nil
}

// GetTransaction godoc
// @Summary      Get a transaction
// @Tags         transactions
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Transaction ID"
// @Success      200  {object}  model.Transaction
// @Failure      404  {object}  common.AppError
// @Router       /api/transactions/{id} [get]
func (h *TransactionHandler) GetTransaction(w http.ResponseWriter, r *http.Request) *common.AppError {
	id, appErr := pathID(r, "id")
	if appErr != nil {
		return appErr
	}
	user, appErr := currentUser(r, h.users)
	if appErr != nil {
		return appErr
	}

	transaction, err := h.service.GetTransaction(r.Context(), user.ID, id)
	if err != nil {
		return toAppError(err, "Could not retrieve transaction")
	}

	common.WriteJSON(w, http.StatusOK, transaction)
	return nil
}

// UpdateTransaction godoc
// @Summary      Update a transaction
// @Description  Reverses the old amount and applies the new one, possibly on another account.
// @Tags         transactions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Transaction ID"
// @Param        transaction body model.TransactionRequest true "Transaction details"
// @Success      200  {object}  model.Transaction
// @Failure      400  {object}  common.AppError
// @Failure      404  {object}  common.AppError
// @Router       /api/transactions/{id} [put]
func (h *TransactionHandler) UpdateTransaction(w http.ResponseWriter, r *http.Request) *common.AppError {
	id, appErr := pathID(r, "id")
	if appErr != nil {
		return appErr
	}
	var req model.TransactionRequest
	if err := common.ValidateAndDecode(r, &req); err != nil {
		return err
	}
	user, appErr := currentUser(r, h.users)
	if appErr != nil {
		return appErr
	}

	transaction, err := h.service.UpdateTransaction(r.Context(), user.ID, id, req)
	if err != nil {
		return toAppError(err, "Could not update transaction")
	}

	common.WriteJSON(w, http.StatusOK, transaction)
	return nil
}

// DeleteTransaction godoc
// @Summary      Delete a transaction
// @Tags         transactions
// @Security     BearerAuth
// @Param        id path string true "Transaction ID"
// @Success      204
// @Failure      404  {object}  common.AppError
// @Router       /api/transactions/{id} [delete]
func (h *TransactionHandler) DeleteTransaction(w http.ResponseWriter, r *http.Request) *common.AppError {
	id, appErr := pathID(r, "id")
	if appErr != nil {
		return appErr
	}
	user, appErr := currentUser(r, h.users)
	if appErr != nil {
		return appErr
	}

	if err := h.service.DeleteTransaction(r.Context(), user.ID, id); err != nil {
		return toAppError(err, "Could not delete transaction")
	}

	w.WriteHeader(http.StatusNoContent)
	return nil
}

// BulkDelete godoc
// @Summary      Delete several transactions
// @Description  Deletes the caller's transactions among the given ids and corrects every affected account balance atomically. Ids the caller does not own are skipped.
// @Tags         transactions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body model.BulkDeleteRequest true "Transaction ids"
// @Success      200  {object}  model.BulkDeleteResult
// @Failure      400  {object}  model.BulkDeleteResult "No ids provided"
// @Failure      401  {object}  model.BulkDeleteResult
// @Failure      404  {object}  model.BulkDeleteResult "User or transactions not found"
// @Failure      500  {object}  model.BulkDeleteResult "Nothing was changed"
// @Router       /api/transactions/bulk-delete [post]
func (h *TransactionHandler) BulkDelete(w http.ResponseWriter, r *http.Request) *common.AppError {
	var req model.BulkDeleteRequest
	if err := common.ValidateAndDecode(r, &req); err != nil {
		common.WriteJSON(w, err.Code, model.BulkDeleteResult{Success: false, Error: err.Message})
		return nil
	}

	result, err := h.service.BulkDelete(r.Context(), subject(r), req.TransactionIDs)
	if err != nil {
		status := statusFor(err)
		if status == http.StatusInternalServerError {
			logger.Log.WithFields(logrus.Fields{
				"status_code": status,
				"requested":   len(req.TransactionIDs),
			}).WithError(err).Error("Bulk delete failed")
		}
		common.WriteJSON(w, status, result)
		return nil
	}

	common.WriteJSON(w, http.StatusOK, result)
	return nil
}
