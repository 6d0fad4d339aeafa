package handler

import (
	"context"
	"net/http"

	"go-finance-api/common"
	"go-finance-api/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type BudgetService interface {
	UpdateBudget(ctx context.Context, userID uuid.UUID, amount decimal.Decimal) (*model.Budget, error)
	GetBudgetStatus(ctx context.Context, userID uuid.UUID) (*model.BudgetStatus, error)
}

type BudgetHandler struct {
	service BudgetService
	users   UserResolver
}

func NewBudgetHandler(service BudgetService, users UserResolver) *BudgetHandler {
	return &BudgetHandler{service: service, users: users}
}

// GetBudget godoc
// @Summary      Monthly budget status
// @Tags         budget
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  model.BudgetStatus
// @Router       /api/budget [get]
func (h *BudgetHandler) GetBudget(w http.ResponseWriter, r *http.Request) *common.AppError {
	user, appErr := currentUser(r, h.users)
	if appErr != nil {
		return appErr
	}

	status, err := h.service.GetBudgetStatus(r.Context(), user.ID)
	if err != nil {
		return toAppError(err, "Could not load budget")
	}

	common.WriteJSON(w, http.StatusOK, status)
	return nil
}

// UpdateBudget godoc
// @Summary      Set the monthly budget
// @Tags         budget
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        budget body model.BudgetRequest true "Budget amount"
// @Success      200  {object}  model.Budget
// @Failure      400  {object}  common.AppError
// @Router       /api/budget [put]
func (h *BudgetHandler) UpdateBudget(w http.ResponseWriter, r *http.Request) *common.AppError {
	var req model.BudgetRequest
	if err := common.ValidateAndDecode(r, &req); err != nil {
		return err
	}
	user, appErr := currentUser(r, h.users)
	if appErr != nil {
		return appErr
	}

	budget, err := h.service.UpdateBudget(r.Context(), user.ID, req.Amount)
	if err != nil {
		return toAppError(err, "Could not update budget")
	}

	common.WriteJSON(w, http.StatusOK, budget)
	return nil
}
