package ports

import (
	"context"

	"github.com/collabhub/partner-directory/internal/core/domain"
)

// ListBusinessesInput carries all parameters for the list endpoint.
type ListBusinessesInput struct {
	Query     string
	Category  string
	Location  string
	Platform  string
	MinRating float64
	SortBy    string
	Direction string
	Page      int
	Limit     int
}

// ListBusinessesResult is returned by ListBusinesses.
type ListBusinessesResult struct {
	Items      []domain.Business
	Total      int
	Page       int
	Limit      int
	TotalPages int
}

// CatalogStats summarizes the directory contents.
type CatalogStats struct {
	Total         int
	Categories    int
	Locations     int
	AverageRating float64
	TopRated      int
	Recent        int
}

// Recommendation pairs a candidate business with the collaboration ideas the
// recommendation backend suggested for it. Ideas are empty when the
// recommendation came from the local fallback ranking.
type Recommendation struct {
	Business domain.Business
	Ideas    []string
}

// CatalogService defines the read operations of the directory.
type CatalogService interface {
	ListBusinesses(ctx context.Context, input ListBusinessesInput) (*ListBusinessesResult, error)
	GetBusiness(ctx context.Context, id string) (*domain.Business, error)
	Stats(ctx context.Context) (*CatalogStats, error)
	Suggest(ctx context.Context, query string, limit int) ([]string, error)
	Recommendations(ctx context.Context, businessID string, limit int) ([]Recommendation, error)
}

// BusinessRepository is the persistence interface for the business catalog.
type BusinessRepository interface {
	List(ctx context.Context) ([]domain.Business, error)
	FindByID(ctx context.Context, id string) (*domain.Business, error)
}

// ProfileClient fetches a single business profile from the remote directory
// backend. Used to resolve profiles not present in the local catalog.
type ProfileClient interface {
	FetchBusiness(ctx context.Context, id string) (*domain.Business, error)
}

// RecommendClient queries the remote collaboration-matching service.
type RecommendClient interface {
	Collaborations(ctx context.Context, businessID, prompt string) ([]Recommendation, error)
}
