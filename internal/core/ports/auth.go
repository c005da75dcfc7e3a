package ports

import (
	"context"

	"github.com/collabhub/partner-directory/internal/core/domain"
)

// BusinessInfoInput carries the business-profile summary supplied at signup.
type BusinessInfoInput struct {
	Name        string
	Description string
	Location    string
	Category    string
}

// RegisterInput carries everything needed to create an account.
type RegisterInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
	Business  BusinessInfoInput
}

// AuthGateway authenticates credentials against a backing identity provider.
// Two implementations exist: a remote HTTP client and a local account store.
type AuthGateway interface {
	Login(ctx context.Context, email, password string) (*domain.User, error)
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)
}

// SessionStore persists serialized session blobs under opaque keys.
// Load returns domain.ErrSessionNotFound when no blob exists for the key.
type SessionStore interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, blob []byte) error
	Clear(ctx context.Context, key string) error
}

// AccountRepository is the persistence interface behind the local auth gateway.
type AccountRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.Account, error)
	Create(ctx context.Context, account *domain.Account) (*domain.Account, error)
}

// UserPatch is a shallow partial update of the current user. Nil fields are
// left untouched.
type UserPatch struct {
	FirstName *string
	LastName  *string
	AvatarURL *string
	Business  *BusinessInfoInput
}
