// Package memory provides in-process implementations of the persistence
// ports: a seeded business catalog and a session store. Both back the
// development configuration and the test suites.
package memory

import (
	"context"

	"github.com/collabhub/partner-directory/internal/core/domain"
)

// BusinessRepository serves a fixed catalog from memory. Records are copied
// on the way out so callers can never mutate the backing slice.
type BusinessRepository struct {
	records []domain.Business
}

func NewBusinessRepository(records []domain.Business) *BusinessRepository {
	copied := make([]domain.Business, len(records))
	copy(copied, records)
	return &BusinessRepository{records: copied}
}

func (r *BusinessRepository) List(_ context.Context) ([]domain.Business, error) {
	out := make([]domain.Business, len(r.records))
	copy(out, r.records)
	return out, nil
}

func (r *BusinessRepository) FindByID(_ context.Context, id string) (*domain.Business, error) {
	for _, b := range r.records {
		if b.ID == id {
			found := b
			return &found, nil
		}
	}
	return nil, domain.ErrBusinessNotFound
}

// DefaultCatalog returns the seed directory used in memory mode.
func DefaultCatalog() []domain.Business {
	return []domain.Business{
		{
			ID:           "b-001",
			Name:         "Aurora Roastery",
			Description:  "Specialty coffee roaster supplying cafes and offices across the Pacific Northwest with single-origin beans and barista training programs.",
			Category:     "Food & Beverage",
			Location:     "Portland, OR",
			Rating:       4.8,
			Followers:    "12.5K",
			Platforms:    []string{"Instagram", "TikTok"},
			ContactEmail: "hello@auroraroastery.example",
			TopRated:     true,
		},
		{
			ID:          "b-002",
			Name:        "Summit Trail Gear",
			Description: "Outdoor equipment brand focused on ultralight backpacking gear, looking for retail and content partnerships with hiking communities.",
			Category:    "Outdoor & Sports",
			Location:    "Denver, CO",
			Rating:      4.6,
			Followers:   "89K",
			Platforms:   []string{"Instagram", "YouTube"},
			TopRated:    true,
		},
		{
			ID:           "b-003",
			Name:         "Pixelforge Studio",
			Description:  "Independent game studio producing narrative adventures; open to co-marketing, soundtrack licensing, and merchandising collaborations.",
			Category:     "Entertainment",
			Location:     "Austin, TX",
			Rating:       4.4,
			Followers:    "230K",
			Platforms:    []string{"Twitch", "YouTube", "Discord"},
			ContactEmail: "partners@pixelforge.example",
			Recent:       true,
		},
		{
			ID:          "b-004",
			Name:        "Verde Skincare",
			Description: "Plant-based skincare line with a loyal subscription base, seeking influencer partnerships and cross-promotions with wellness brands.",
			Category:    "Beauty & Wellness",
			Location:    "Los Angeles, CA",
			Rating:      4.9,
			Followers:   "1.2M",
			Platforms:   []string{"Instagram", "TikTok", "YouTube"},
			TopRated:    true,
		},
		{
			ID:          "b-005",
			Name:        "Harbor & Co. Coffee",
			Description: "Neighborhood coffee chain with four locations, interested in local sourcing partnerships and community event sponsorships downtown.",
			Category:    "Food & Beverage",
			Location:    "Seattle, WA",
			Rating:      4.2,
			Followers:   "8.7K",
			Platforms:   []string{"Instagram"},
			Recent:      true,
		},
		{
			ID:          "b-006",
			Name:        "Northbeam Analytics",
			Description: "B2B analytics consultancy helping e-commerce brands understand attribution; offers co-hosted webinars and white-label reporting tools.",
			Category:    "Technology",
			Location:    "Portland, OR",
			Rating:      4.5,
			Followers:   "3.4K",
			Platforms:   []string{"LinkedIn", "YouTube"},
		},
		{
			ID:          "b-007",
			Name:        "Cedar Lane Bakery",
			Description: "Family-run bakery known for sourdough and seasonal pastries, exploring wholesale partnerships with restaurants and grocers.",
			Category:    "Food & Beverage",
			Location:    "Portland, OR",
			Rating:      4.7,
			Followers:   "21K",
			Platforms:   []string{"Instagram", "Facebook"},
			Recent:      true,
		},
		{
			ID:          "b-008",
			Name:        "Atlas Fitness Collective",
			Description: "Boutique gym network with certified trainers producing short-form workout content; open to apparel and supplement collaborations.",
			Category:    "Outdoor & Sports",
			Location:    "Denver, CO",
			Rating:      4.1,
			Followers:   "145K",
			Platforms:   []string{"TikTok", "Instagram", "YouTube"},
		},
	}
}
