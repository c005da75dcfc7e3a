package remote

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/collabhub/partner-directory/internal/core/domain"
	"github.com/collabhub/partner-directory/internal/core/ports"
)

// AuthClient implements ports.AuthGateway against the remote auth service.
type AuthClient struct {
	base   string
	client *http.Client
}

func NewAuthClient(baseURL string, timeout time.Duration) *AuthClient {
	return &AuthClient{
		base:   strings.TrimRight(baseURL, "/"),
		client: newHTTPClient(timeout),
	}
}

// Wire shapes of the remote auth service.

type loginPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registerPayload struct {
	FirstName string              `json:"firstName"`
	LastName  string              `json:"lastName"`
	Email     string              `json:"email"`
	Password  string              `json:"password"`
	Business  businessInfoPayload `json:"businessInfo"`
}

type businessInfoPayload struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Location    string `json:"location,omitempty"`
	Category    string `json:"category"`
}

type authResponse struct {
	Success     bool     `json:"success"`
	AccessToken string   `json:"accessToken"`
	Email       string   `json:"email"`
	UserID      string   `json:"userId"`
	User        wireUser `json:"user"`
}

type wireUser struct {
	FirstName    string              `json:"firstName"`
	LastName     string              `json:"lastName"`
	Email        string              `json:"email"`
	UserID       string              `json:"userId"`
	AccessToken  string              `json:"accessToken"`
	AvatarURL    string              `json:"avatarUrl"`
	BusinessInfo businessInfoPayload `json:"businessInfo"`
}

func (c *AuthClient) Login(ctx context.Context, email, password string) (*domain.User, error) {
	var resp authResponse
	status, err := postJSON(ctx, c.client, c.base+"/api/Auth/login", loginPayload{Email: email, Password: password}, &resp)
	if err != nil {
		return nil, mapAuthError(status, err)
	}
	if !resp.Success {
		return nil, domain.ErrInvalidCredentials
	}
	return userFromResponse(resp), nil
}

func (c *AuthClient) Register(ctx context.Context, input ports.RegisterInput) (*domain.User, error) {
	payload := registerPayload{
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Email:     input.Email,
		Password:  input.Password,
		Business: businessInfoPayload{
			Name:        input.Business.Name,
			Description: input.Business.Description,
			Location:    input.Business.Location,
			Category:    input.Business.Category,
		},
	}

	var resp authResponse
	status, err := postJSON(ctx, c.client, c.base+"/api/Auth/register", payload, &resp)
	if err != nil {
		return nil, mapAuthError(status, err)
	}
	if !resp.Success {
		return nil, domain.ErrInvalidCredentials
	}
	return userFromResponse(resp), nil
}

func userFromResponse(resp authResponse) *domain.User {
	u := resp.User
	token := u.AccessToken
	if token == "" {
		token = resp.AccessToken
	}

	user := &domain.User{
		ID:        u.UserID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		FullName:  domain.FullName(u.FirstName, u.LastName),
		Email:     u.Email,
		Token:     token,
		AvatarURL: u.AvatarURL,
	}
	if u.BusinessInfo.Name != "" {
		user.Business = &domain.BusinessInfo{
			Name:        u.BusinessInfo.Name,
			Description: u.BusinessInfo.Description,
			Location:    u.BusinessInfo.Location,
			Category:    u.BusinessInfo.Category,
		}
	}
	return user
}

// mapAuthError folds transport failures and status codes into the domain's
// error taxonomy. status 0 means the request never reached the backend.
func mapAuthError(status int, err error) error {
	switch {
	case status == 0:
		return fmt.Errorf("%w: %v", domain.ErrAuthUnavailable, err)
	case status == http.StatusUnauthorized || status == http.StatusBadRequest:
		return fmt.Errorf("%w: %v", domain.ErrInvalidCredentials, err)
	case status == http.StatusConflict:
		return fmt.Errorf("%w: %v", domain.ErrUserExists, err)
	case status >= 500:
		return fmt.Errorf("%w: %v", domain.ErrAuthUnavailable, err)
	default:
		return fmt.Errorf("auth request failed (%d): %v", status, err)
	}
}
