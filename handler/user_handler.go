package handler

import (
	"context"
	"net/http"

	"go-finance-api/common"
	"go-finance-api/model"
)

// UserResolver maps the authenticated subject to the local user.
type UserResolver interface {
	ResolveUser(ctx context.Context, subject string) (*model.User, error)
}

type UserService interface {
	UserResolver
	SyncUser(ctx context.Context, claims *model.AppClaims) (*model.User, error)
}

type UserHandler struct {
	service UserService
}

func NewUserHandler(service UserService) *UserHandler {
	return &UserHandler{service: service}
}

// currentUser resolves the caller of an authenticated request.
func currentUser(r *http.Request, users UserResolver) (*model.User, *common.AppError) {
	user, err := users.ResolveUser(r.Context(), subject(r))
	if err != nil {
		return nil, toAppError(err, "Could not resolve user")
	}
	return user, nil
}

// SyncUser godoc
// @Summary      Sync the signed-in user
// @Description  Creates the local user record for the token subject on first sign-in and returns it.
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  model.User
// @Failure      401  {object}  common.AppError "Unauthorized: Invalid or missing token"
// @Failure      500  {object}  common.AppError
// @Router       /api/users/sync [post]
func (h *UserHandler) SyncUser(w http.ResponseWriter, r *http.Request) *common.AppError {
	claims, _ := ClaimsFromContext(r.Context())
	user, err := h.service.SyncUser(r.Context(), claims)
	if err != nil {
		return toAppError(err, "Could not sync user")
	}
	common.WriteJSON(w, http.StatusOK, user)
	return nil
}

// Me godoc
// @Summary      Current user
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  model.User
// @Failure      401  {object}  common.AppError
// @Failure      404  {object}  common.AppError "User has not been synced yet"
// @Router       /api/me [get]
func (h *UserHandler) Me(w http.ResponseWriter, r *http.Request) *common.AppError {
	user, appErr := currentUser(r, h.service)
	if appErr != nil {
		return appErr
	}
	common.WriteJSON(w, http.StatusOK, user)
	return nil
}
