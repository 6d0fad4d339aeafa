package handler

import (
	"errors"
	"net/http"

	"go-finance-api/common"
	"go-finance-api/service"

	"github.com/google/uuid"
)

func ErrorHandlingMiddleware(next func(http.ResponseWriter, *http.Request) *common.AppError) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := next(w, r); err != nil {
			err.Send(w)
		}
	}
}

// statusFor maps a service error kind to its HTTP status.
func statusFor(err error) int {
	switch {
	case errors.Is(err, service.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, service.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrInvalidArgument):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// toAppError converts a service error. Domain errors keep their message;
// anything else is reported with fallback so internals do not leak.
func toAppError(err error, fallback string) *common.AppError {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		return common.NewAppError(status, fallback, err)
	}
	return common.NewAppError(status, err.Error(), err)
}

func pathID(r *http.Request, name string) (uuid.UUID, *common.AppError) {
	id, err := uuid.Parse(r.PathValue(name))
	if err != nil {
		return uuid.Nil, common.NewAppError(http.StatusBadRequest, "Invalid "+name+" in URL path", err)
	}
	return id, nil
}
