// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"accounts/internal/delivery/http/response"
	"accounts/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AccountHandler holds dependencies for account-related handlers.
type AccountHandler struct {
	accounts    usecase.AccountUsecase
	credentials usecase.CredentialUsecase
	logger      *slog.Logger
}

// NewAccountHandler is the constructor for AccountHandler, injected by Fx.
func NewAccountHandler(accounts usecase.AccountUsecase, credentials usecase.CredentialUsecase, logger *slog.Logger) *AccountHandler {
	return &AccountHandler{
		accounts:    accounts,
		credentials: credentials,
		logger:      logger,
	}
}

// --- Request/response DTOs ---

type createAccountRequest struct {
	Name                 string `json:"name" validate:"required,min=1,max=100"`
	Email                string `json:"email" validate:"required,email"`
	Password             string `json:"password" validate:"required,min=6,max=32"`
	PasswordConfirmation string `json:"password_confirmation" validate:"required"`
}

type createAccountResponse struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type updateAccountRequest struct {
	Name  string `json:"name" validate:"required,min=1,max=100"`
	Email string `json:"email" validate:"required,email"`
}

type changePasswordRequest struct {
	OldPassword     string `json:"old_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=6,max=32"`
	ConfirmPassword string `json:"confirm_password" validate:"required"`
}

type accountIDResponse struct {
	ID uuid.UUID `json:"id"`
}

// ListAccounts handles the request to list all accounts.
func (h *AccountHandler) ListAccounts(c echo.Context) error {
	views, err := h.accounts.ListAccounts(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, views, "Accounts retrieved successfully")
}

// GetAccount handles the request to read a single account.
func (h *AccountHandler) GetAccount(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.UnprocessableEntity(c, "UNKNOWN_USER", "Unknown user")
	}

	view, err := h.accounts.GetAccount(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, view, "Account retrieved successfully")
}

// CreateAccount handles the account creation request.
func (h *AccountHandler) CreateAccount(c echo.Context) error {
	var req createAccountRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid account input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", "Input validation failed")
	}

	view, err := h.accounts.CreateAccount(c.Request().Context(), &usecase.CreateAccountInput{
		Name:                 req.Name,
		Email:                req.Email,
		Password:             req.Password,
		PasswordConfirmation: req.PasswordConfirmation,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	// The creation response carries no identifier and, like every other
	// response, no password material.
	return response.Success(c, http.StatusCreated, createAccountResponse{
		Name:  view.Name,
		Email: view.Email,
	}, "Account created successfully")
}

// UpdateAccount handles the request to update name/email of an account.
func (h *AccountHandler) UpdateAccount(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.UnprocessableEntity(c, "UNKNOWN_USER", "Unknown user")
	}

	var req updateAccountRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid account input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", "Input validation failed")
	}

	if err := h.accounts.UpdateAccount(c.Request().Context(), id, &usecase.UpdateAccountInput{
		Name:  req.Name,
		Email: req.Email,
	}); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, accountIDResponse{ID: id}, "Account updated successfully")
}

// DeleteAccount handles the request to delete an account.
func (h *AccountHandler) DeleteAccount(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.UnprocessableEntity(c, "UNKNOWN_USER", "Unknown user")
	}

	if err := h.accounts.DeleteAccount(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, accountIDResponse{ID: id}, "Account deleted successfully")
}

// ChangePassword handles the password-change request.
func (h *AccountHandler) ChangePassword(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", "Invalid account id")
	}

	var req changePasswordRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid password change input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", "Input validation failed")
	}

	if err := h.credentials.ChangePassword(c.Request().Context(), id, &usecase.ChangePasswordInput{
		OldPassword:     req.OldPassword,
		NewPassword:     req.NewPassword,
		ConfirmPassword: req.ConfirmPassword,
	}); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Password changed"}, "Password changed successfully")
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
