package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/collabhub/partner-directory/internal/core/domain"
)

// ctxEmail extracts the account email injected by the Auth middleware.
// Presence of the claim proves the middleware ran; session operations are
// meaningless without it, so a missing claim fails fast with
// ErrNotAuthenticated, which the error handler renders as 401.
func ctxEmail(c echo.Context) (string, error) {
	email, _ := c.Get("email").(string)
	if email == "" {
		return "", domain.ErrNotAuthenticated
	}
	return email, nil
}
