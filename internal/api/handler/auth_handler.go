package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/collabhub/partner-directory/internal/api/metrics"
	"github.com/collabhub/partner-directory/internal/core/domain"
	"github.com/collabhub/partner-directory/internal/core/ports"
	"github.com/collabhub/partner-directory/internal/core/service"
)

// SessionOps is the slice of the session manager the auth handler needs.
type SessionOps interface {
	Login(ctx context.Context, email, password string) (domain.Session, error)
	Register(ctx context.Context, input ports.RegisterInput) (domain.Session, error)
	Logout(ctx context.Context, email string) error
	Restore(ctx context.Context, email string) (domain.Session, service.RestoreOutcome)
	UpdateUser(ctx context.Context, email string, patch ports.UserPatch) (domain.Session, error)
}

type AuthHandler struct {
	sessions SessionOps
}

func NewAuthHandler(sessions SessionOps) *AuthHandler {
	return &AuthHandler{sessions: sessions}
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type businessInfoRequest struct {
	Name        string `json:"name"        validate:"required"`
	Description string `json:"description"`
	Location    string `json:"location"`
	Category    string `json:"category"    validate:"required"`
}

type registerRequest struct {
	FirstName string              `json:"first_name" validate:"required"`
	LastName  string              `json:"last_name"  validate:"required"`
	Email     string              `json:"email"      validate:"required,email"`
	Password  string              `json:"password"   validate:"required,min=8"`
	Business  businessInfoRequest `json:"business"`
}

type profilePatchRequest struct {
	FirstName *string              `json:"first_name"`
	LastName  *string              `json:"last_name"`
	AvatarURL *string              `json:"avatar_url"`
	Business  *businessInfoRequest `json:"business"`
}

type sessionResponse struct {
	Authenticated bool         `json:"authenticated"`
	User          *domain.User `json:"user,omitempty"`
}

// Login authenticates credentials and opens a session.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  sessionResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      502   {object}  errorResponse
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	sess, err := h.sessions.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		metrics.LoginAttemptsTotal.WithLabelValues(loginResult(err)).Inc()
		return err
	}
	metrics.LoginAttemptsTotal.WithLabelValues("success").Inc()

	return c.JSON(http.StatusOK, sessionResponse{Authenticated: sess.Authenticated, User: sess.User})
}

// Register creates an account and opens a session.
//
// @Summary      Register a new account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Account details"
// @Success      201   {object}  sessionResponse
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Failure      502   {object}  errorResponse
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	sess, err := h.sessions.Register(c.Request().Context(), ports.RegisterInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  req.Password,
		Business: ports.BusinessInfoInput{
			Name:        req.Business.Name,
			Description: req.Business.Description,
			Location:    req.Business.Location,
			Category:    req.Business.Category,
		},
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, sessionResponse{Authenticated: sess.Authenticated, User: sess.User})
}

// Session returns the caller's restored session state.
//
// @Summary      Current session
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  sessionResponse
// @Failure      401  {object}  errorResponse
// @Router       /auth/session [get]
func (h *AuthHandler) Session(c echo.Context) error {
	email, err := ctxEmail(c)
	if err != nil {
		return err
	}

	sess, outcome := h.sessions.Restore(c.Request().Context(), email)
	metrics.SessionRestoresTotal.WithLabelValues(string(outcome)).Inc()

	return c.JSON(http.StatusOK, sessionResponse{Authenticated: sess.Authenticated, User: sess.User})
}

// Logout closes the caller's session. Idempotent.
//
// @Summary      Logout
// @Tags         auth
// @Security     BearerAuth
// @Success      204
// @Failure      401  {object}  errorResponse
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	email, err := ctxEmail(c)
	if err != nil {
		return err
	}

	if err := h.sessions.Logout(c.Request().Context(), email); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// UpdateProfile shallow-merges the supplied fields into the caller's user.
//
// @Summary      Update profile
// @Tags         auth
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      profilePatchRequest  true  "Fields to update"
// @Success      200   {object}  sessionResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /auth/profile [patch]
func (h *AuthHandler) UpdateProfile(c echo.Context) error {
	email, err := ctxEmail(c)
	if err != nil {
		return err
	}

	var req profilePatchRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	patch := ports.UserPatch{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		AvatarURL: req.AvatarURL,
	}
	if req.Business != nil {
		patch.Business = &ports.BusinessInfoInput{
			Name:        req.Business.Name,
			Description: req.Business.Description,
			Location:    req.Business.Location,
			Category:    req.Business.Category,
		}
	}

	sess, err := h.sessions.UpdateUser(c.Request().Context(), email, patch)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, sessionResponse{Authenticated: sess.Authenticated, User: sess.User})
}

func loginResult(err error) string {
	switch {
	case errors.Is(err, domain.ErrInvalidCredentials), errors.Is(err, domain.ErrUserNotFound):
		return "invalid_credentials"
	case errors.Is(err, domain.ErrLoginSuperseded):
		return "superseded"
	default:
		return "error"
	}
}
