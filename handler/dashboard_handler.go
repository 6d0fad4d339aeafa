package handler

import (
	"context"
	"net/http"

	"go-finance-api/common"
	"go-finance-api/model"

	"github.com/google/uuid"
)

type DashboardService interface {
	AccountSummary(ctx context.Context, userID, accountID uuid.UUID) (*model.AccountSummary, error)
	ExpenseBreakdown(ctx context.Context, userID uuid.UUID) ([]model.CategoryExpense, error)
	ChartData(ctx context.Context, userID, accountID uuid.UUID, rangeKey string) (*model.ChartData, error)
	Overview(ctx context.Context, userID uuid.UUID) (*model.DashboardOverview, error)
}

type DashboardHandler struct {
	service DashboardService
	users   UserResolver
}

func NewDashboardHandler(service DashboardService, users UserResolver) *DashboardHandler {
	return &DashboardHandler{service: service, users: users}
}

// Overview godoc
// @Summary      Dashboard overview
// @Description  Accounts, default-account expense breakdown and monthly budget status.
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  model.DashboardOverview
// @Failure      401  {object}  common.AppError
// @Router       /api/dashboard [get]
func (h *DashboardHandler) Overview(w http.ResponseWriter, r *http.Request) *common.AppError {
	user, appErr := currentUser(r, h.users)
	if appErr != nil {
		return appErr
	}

	overview, err := h.service.Overview(r.Context(), user.ID)
	if err != nil {
		return toAppError(err, "Could not load dashboard")
	}

	common.WriteJSON(w, http.StatusOK, overview)
	return nil
}

// ExpenseBreakdown godoc
// @Summary      Expenses by category
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   model.CategoryExpense
// @Router       /api/dashboard/expenses [get]
func (h *DashboardHandler) ExpenseBreakdown(w http.ResponseWriter, r *http.Request) *common.AppError {
	user, appErr := currentUser(r, h.users)
	if appErr != nil {
		return appErr
	}

	breakdown, err := h.service.ExpenseBreakdown(r.Context(), user.ID)
	if err != nil {
		return toAppError(err, "Could not load expenses")
	}

	common.WriteJSON(w, http.StatusOK, breakdown)
	return nil
}

// AccountSummary godoc
// @Summary      Account totals
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Account ID"
// @Success      200  {object}  model.AccountSummary
// @Failure      404  {object}  common.AppError
// @Router       /api/accounts/{id}/summary [get]
func (h *DashboardHandler) AccountSummary(w http.ResponseWriter, r *http.Request) *common.AppError {
	accountID, appErr := pathID(r, "id")
	if appErr != nil {
		return appErr
	}
	user, appErr := currentUser(r, h.users)
	if appErr != nil {
		return appErr
	}

	summary, err := h.service.AccountSummary(r.Context(), user.ID, accountID)
	if err != nil {
		return toAppError(err, "Could not load account summary")
	}

	common.WriteJSON(w, http.StatusOK, summary)
	return nil
}

// ChartData godoc
// @Summary      Daily income and expenses
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Param        id    path   string true  "Account ID"
// @Param        range query  string false "7D, 1M, 3M, 6M or ALL" default(1M)
// @Success      200  {object}  model.ChartData
// @Failure      400  {object}  common.AppError "Unknown range"
// @Failure      404  {object}  common.AppError
// @Router       /api/accounts/{id}/chart [get]
func (h *DashboardHandler) ChartData(w http.ResponseWriter, r *http.Request) *common.AppError {
	accountID, appErr := pathID(r, "id")
	if appErr != nil {
		return appErr
	}
	user, appErr := currentUser(r, h.users)
	if appErr != nil {
		return appErr
	}

	chart, err := h.service.ChartData(r.Context(), user.ID, accountID, r.URL.Query().Get("range"))
	if err != nil {
		return toAppError(err, "Could not load chart data")
	}

	common.WriteJSON(w, http.StatusOK, chart)
	return nil
}
