package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/collabhub/partner-directory/internal/core/domain"
)

const accountCollection = "accounts"

// AccountRepository stores local credential records in MongoDB.
type AccountRepository struct {
	coll *mongo.Collection
}

func NewAccountRepository(db *mongo.Database) *AccountRepository {
	return &AccountRepository{coll: db.Collection(accountCollection)}
}

type mongoAccount struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	FirstName    string             `bson:"first_name"`
	LastName     string             `bson:"last_name"`
	Email        string             `bson:"email"`
	PasswordHash string             `bson:"password_hash"`
	AvatarURL    string             `bson:"avatar_url,omitempty"`
	Business     mongoBusinessInfo  `bson:"business"`
	CreatedAt    int64              `bson:"created_at"`
	UpdatedAt    int64              `bson:"updated_at"`
}

type mongoBusinessInfo struct {
	Name        string `bson:"name"`
	Description string `bson:"description"`
	Location    string `bson:"location,omitempty"`
	Category    string `bson:"category"`
}

func (r *AccountRepository) Create(ctx context.Context, account *domain.Account) (*domain.Account, error) {
	doc := mongoAccount{
		FirstName:    account.FirstName,
		LastName:     account.LastName,
		Email:        account.Email,
		PasswordHash: account.PasswordHash,
		AvatarURL:    account.AvatarURL,
		Business: mongoBusinessInfo{
			Name:        account.Business.Name,
			Description: account.Business.Description,
			Location:    account.Business.Location,
			Category:    account.Business.Category,
		},
		CreatedAt: account.CreatedAt.Unix(),
		UpdatedAt: account.UpdatedAt.Unix(),
	}

	_, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrUserExists
		}
		return nil, fmt.Errorf("insert account: %w", err)
	}

	// fetch back to get ID
	created, err := r.FindByEmail(ctx, account.Email)
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (r *AccountRepository) FindByEmail(ctx context.Context, email string) (*domain.Account, error) {
	var ma mongoAccount
	if err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&ma); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find account: %w", err)
	}

	return &domain.Account{
		ID:           ma.ID.Hex(),
		FirstName:    ma.FirstName,
		LastName:     ma.LastName,
		Email:        ma.Email,
		PasswordHash: ma.PasswordHash,
		AvatarURL:    ma.AvatarURL,
		Business: domain.BusinessInfo{
			Name:        ma.Business.Name,
			Description: ma.Business.Description,
			Location:    ma.Business.Location,
			Category:    ma.Business.Category,
		},
		CreatedAt: unixToTime(ma.CreatedAt),
		UpdatedAt: unixToTime(ma.UpdatedAt),
	}, nil
}

func unixToTime(ts int64) time.Time {
	if ts == 0 {
		return time.Time{}
	}
	return time.Unix(ts, 0).UTC()
}
