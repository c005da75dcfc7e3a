package service

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/collabhub/partner-directory/internal/core/domain"
	"github.com/collabhub/partner-directory/internal/core/ports"
)

// LocalAuth implements ports.AuthGateway against a local account store.
// It stands in for the remote identity backend in development and tests.
type LocalAuth struct {
	repo      ports.AccountRepository
	jwtSecret string
	tokenTTL  time.Duration
}

func NewLocalAuth(repo ports.AccountRepository, jwtSecret string, tokenTTL time.Duration) *LocalAuth {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &LocalAuth{repo: repo, jwtSecret: jwtSecret, tokenTTL: tokenTTL}
}

func (a *LocalAuth) Register(ctx context.Context, input ports.RegisterInput) (*domain.User, error) {
	if input.Email == "" || input.Password == "" || input.FirstName == "" {
		return nil, domain.ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	account := &domain.Account{
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Email:        input.Email,
		PasswordHash: string(hash),
		Business: domain.BusinessInfo{
			Name:        input.Business.Name,
			Description: input.Business.Description,
			Location:    input.Business.Location,
			Category:    input.Business.Category,
		},
		CreatedAt: now,
		UpdatedAt: now,
	}

	created, err := a.repo.Create(ctx, account)
	if err != nil {
		return nil, err
	}
	return a.userFromAccount(created)
}

func (a *LocalAuth) Login(ctx context.Context, email, password string) (*domain.User, error) {
	if email == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	account, err := a.repo.FindByEmail(ctx, email)
	if err != nil {
		// Unknown email and wrong password are indistinguishable to the
		// caller, matching the remote gateway's contract.
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)) != nil {
		return nil, domain.ErrInvalidCredentials
	}

	return a.userFromAccount(account)
}

func (a *LocalAuth) userFromAccount(account *domain.Account) (*domain.User, error) {
	signed, err := a.generateToken(account)
	if err != nil {
		return nil, err
	}

	business := account.Business
	return &domain.User{
		ID:        account.ID,
		FirstName: account.FirstName,
		LastName:  account.LastName,
		FullName:  domain.FullName(account.FirstName, account.LastName),
		Email:     account.Email,
		Token:     signed,
		AvatarURL: account.AvatarURL,
		Business:  &business,
	}, nil
}

func (a *LocalAuth) generateToken(account *domain.Account) (string, error) {
	claims := jwt.MapClaims{
		"sub":   account.Email,
		"name":  domain.FullName(account.FirstName, account.LastName),
		"email": account.Email,
		"exp":   time.Now().Add(a.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(a.jwtSecret))
}
