package remote

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/collabhub/partner-directory/internal/core/domain"
)

// ProfileClient fetches business profiles from the remote directory backend.
type ProfileClient struct {
	base   string
	client *http.Client
}

func NewProfileClient(baseURL string, timeout time.Duration) *ProfileClient {
	return &ProfileClient{
		base:   strings.TrimRight(baseURL, "/"),
		client: newHTTPClient(timeout),
	}
}

type wireProfile struct {
	UserID       string       `json:"userId"`
	Name         string       `json:"name"`
	Description  string       `json:"description"`
	Category     string       `json:"category"`
	Rating       float64      `json:"rating"`
	Followers    string       `json:"followers"`
	ImageURL     string       `json:"imageUrl"`
	ContactEmail string       `json:"contactEmail"`
	Location     wireLocation `json:"location"`
	SocialMedia  []wireSocial `json:"socialMedia"`
}

type wireLocation struct {
	City    string `json:"city"`
	Country string `json:"country"`
}

type wireSocial struct {
	Platform string `json:"platform"`
	URL      string `json:"url"`
}

// FetchBusiness resolves a single profile. A 404 from the backend maps to
// domain.ErrBusinessNotFound so callers can distinguish "missing" from
// "unreachable".
func (c *ProfileClient) FetchBusiness(ctx context.Context, id string) (*domain.Business, error) {
	var profile wireProfile
	endpoint := c.base + "/api/ApplicationUser/business/" + url.PathEscape(id)

	status, err := getJSON(ctx, c.client, endpoint, &profile)
	if err != nil {
		if status == http.StatusNotFound {
			return nil, fmt.Errorf("%w: %s", domain.ErrBusinessNotFound, id)
		}
		if status == 0 || status >= 500 {
			return nil, fmt.Errorf("%w: %v", domain.ErrCatalogUnavailable, err)
		}
		return nil, fmt.Errorf("fetch business %s (%d): %v", id, status, err)
	}

	return profileToDomain(id, profile), nil
}

func profileToDomain(id string, p wireProfile) *domain.Business {
	if p.UserID != "" {
		id = p.UserID
	}

	location := p.Location.City
	if p.Location.Country != "" {
		if location != "" {
			location += ", "
		}
		location += p.Location.Country
	}

	platforms := make([]string, 0, len(p.SocialMedia))
	for _, s := range p.SocialMedia {
		if s.Platform != "" {
			platforms = append(platforms, s.Platform)
		}
	}

	return &domain.Business{
		ID:           id,
		Name:         p.Name,
		Description:  p.Description,
		Category:     p.Category,
		Location:     location,
		Rating:       p.Rating,
		Followers:    p.Followers,
		Platforms:    platforms,
		ImageURL:     p.ImageURL,
		ContactEmail: p.ContactEmail,
	}
}
