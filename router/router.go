package router

import (
	"net/http"

	"go-finance-api/common"
	_ "go-finance-api/docs"
	"go-finance-api/handler"
	"go-finance-api/metrics"

	httpSwagger "github.com/swaggo/http-swagger/v2"
)

// Handlers groups every HTTP handler the API exposes.
type Handlers struct {
	User        *handler.UserHandler
	Account     *handler.AccountHandler
	Transaction *handler.TransactionHandler
	Dashboard   *handler.DashboardHandler
	Budget      *handler.BudgetHandler
	Health      *handler.HealthHandler
}

func NewRouter(h Handlers, auth handler.TokenParser, limiter *handler.RateLimiter) http.Handler {
	mux := http.NewServeMux()

	protected := func(fn func(http.ResponseWriter, *http.Request) *common.AppError) http.Handler {
		return handler.AuthMiddleware(auth)(limiter.Middleware(handler.ErrorHandlingMiddleware(fn)))
	}

	mux.HandleFunc("GET /health", h.Health.HealthCheck)
	mux.Handle("GET /metrics", metrics.Handler())
	mux.Handle("GET /swagger/", httpSwagger.WrapHandler)

	mux.Handle("POST /api/users/sync", protected(h.User.SyncUser))
	mux.Handle("GET /api/me", protected(h.User.Me))

	mux.Handle("POST /api/accounts", protected(h.Account.CreateAccount))
	mux.Handle("GET /api/accounts", protected(h.Account.ListAccounts))
	mux.Handle("GET /api/accounts/{id}", protected(h.Account.GetAccount))
	mux.Handle("PUT /api/accounts/{id}", protected(h.Account.UpdateAccount))
	mux.Handle("DELETE /api/accounts/{id}", protected(h.Account.DeleteAccount))
	mux.Handle("GET /api/accounts/{id}/summary", protected(h.Dashboard.AccountSummary))
	mux.Handle("GET /api/accounts/{id}/chart", protected(h.Dashboard.ChartData))

	mux.Handle("POST /api/transactions", protected(h.Transaction.CreateTransaction))
	mux.Handle("POST /api/transactions/bulk-delete", protected(h.Transaction.BulkDelete))
	mux.Handle("GET /api/transactions/{id}", protected(h.Transaction.GetTransaction))
	mux.Handle("PUT /api/transactions/{id}", protected(h.Transaction.UpdateTransaction))
	mux.Handle("DELETE /api/transactions/{id}", protected(h.Transaction.DeleteTransaction))

	mux.Handle("GET /api/dashboard", protected(h.Dashboard.Overview))
	mux.Handle("GET /api/dashboard/expenses", protected(h.Dashboard.ExpenseBreakdown))

	mux.Handle("GET /api/budget", protected(h.Budget.GetBudget))
	mux.Handle("PUT /api/budget", protected(h.Budget.UpdateBudget))

	return handler.RequestLogger(metrics.Middleware(mux))
}
