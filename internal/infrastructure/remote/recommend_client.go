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

// RecommendClient queries the collaboration-matching backend.
type RecommendClient struct {
	base   string
	client *http.Client
}

func NewRecommendClient(baseURL string, timeout time.Duration) *RecommendClient {
	return &RecommendClient{
		base:   strings.TrimRight(baseURL, "/"),
		client: newHTTPClient(timeout),
	}
}

type collabPayload struct {
	BusinessID string `json:"business_id"`
	Prompt     string `json:"prompt"`
}

type collabResponse struct {
	Businesses []collabBusiness `json:"businesses"`
}

type collabBusiness struct {
	ID                 string   `json:"id"`
	Name               string   `json:"name"`
	Description        string   `json:"description"`
	Category           string   `json:"category"`
	Location           string   `json:"location"`
	Rating             float64  `json:"rating"`
	Followers          string   `json:"followers"`
	Platforms          []string `json:"platforms"`
	ImageURL           string   `json:"image_url"`
	CollaborationIdeas []string `json:"collaboration_ideas"`
}

func (c *RecommendClient) Collaborations(ctx context.Context, businessID, prompt string) ([]ports.Recommendation, error) {
	var resp collabResponse
	payload := collabPayload{BusinessID: businessID, Prompt: prompt}

	status, err := postJSON(ctx, c.client, c.base+"/api/search_collab", payload, &resp)
	if err != nil {
		if status == http.StatusNotFound {
			return nil, fmt.Errorf("%w: %s", domain.ErrBusinessNotFound, businessID)
		}
		return nil, fmt.Errorf("collaboration search: %v", err)
	}

	recs := make([]ports.Recommendation, 0, len(resp.Businesses))
	for _, b := range resp.Businesses {
		recs = append(recs, ports.Recommendation{
			Business: domain.Business{
				ID:          b.ID,
				Name:        b.Name,
				Description: b.Description,
				Category:    b.Category,
				Location:    b.Location,
				Rating:      b.Rating,
				Followers:   b.Followers,
				Platforms:   b.Platforms,
				ImageURL:    b.ImageURL,
			},
			Ideas: b.CollaborationIdeas,
		})
	}
	return recs, nil
}
