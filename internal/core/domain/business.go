package domain

import "errors"

var ErrBusinessNotFound = errors.New("business not found")
var ErrCatalogUnavailable = errors.New("catalog temporarily unavailable")

// Business is a single directory entry: a company or creator profile
// available for partnership inquiries.
type Business struct {
	ID           string   `json:"id" bson:"_id,omitempty"`
	Name         string   `json:"name" bson:"name"`
	Description  string   `json:"description" bson:"description"`
	Category     string   `json:"category" bson:"category"`
	Location     string   `json:"location" bson:"location"`
	Rating       float64  `json:"rating" bson:"rating"`
	Followers    string   `json:"followers" bson:"followers"`
	Platforms    []string `json:"platforms" bson:"platforms"`
	ImageURL     string   `json:"image_url,omitempty" bson:"image_url,omitempty"`
	ContactEmail string   `json:"contact_email,omitempty" bson:"contact_email,omitempty"`
	TopRated     bool     `json:"top_rated" bson:"top_rated"`
	Recent       bool     `json:"recent" bson:"recent"`
}

// Criteria narrows a business list. The zero value of each field means
// "match all" for that dimension.
type Criteria struct {
	Query     string
	Category  string
	Location  string
	Platform  string
	MinRating float64
}

// IsZero reports whether no dimension is active.
func (c Criteria) IsZero() bool {
	return c.Query == "" && c.Category == "" && c.Location == "" &&
		c.Platform == "" && c.MinRating == 0
}
