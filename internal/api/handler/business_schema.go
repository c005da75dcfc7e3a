package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/collabhub/partner-directory/internal/core/domain"
	"github.com/collabhub/partner-directory/internal/core/ports"
)

type listBusinessesResponse struct {
	Items      []domain.Business `json:"items"`
	Total      int               `json:"total"`
	Page       int               `json:"page"`
	Limit      int               `json:"limit"`
	TotalPages int               `json:"total_pages"`
}

type statsResponse struct {
	Total         int     `json:"total"`
	Categories    int     `json:"categories"`
	Locations     int     `json:"locations"`
	AverageRating float64 `json:"average_rating"`
	TopRated      int     `json:"top_rated"`
	Recent        int     `json:"recent"`
}

type suggestResponse struct {
	Suggestions []string `json:"suggestions"`
}

type recommendationResponse struct {
	Business domain.Business `json:"business"`
	Ideas    []string        `json:"collaboration_ideas,omitempty"`
}

type inquiryRequest struct {
	SenderName  string `json:"sender_name"  validate:"required"`
	SenderEmail string `json:"sender_email" validate:"required,email"`
	Subject     string `json:"subject"      validate:"required"`
	Message     string `json:"message"      validate:"required,min=10"`
}

type acceptedResponse struct {
	Message string `json:"message"`
}

// listInputFromQuery maps the list endpoint's query string to the service DTO.
// Unparsable numeric parameters fall back to their zero values.
func listInputFromQuery(c echo.Context) ports.ListBusinessesInput {
	minRating, _ := strconv.ParseFloat(c.QueryParam("min_rating"), 64)
	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	return ports.ListBusinessesInput{
		Query:     c.QueryParam("q"),
		Category:  c.QueryParam("category"),
		Location:  c.QueryParam("location"),
		Platform:  c.QueryParam("platform"),
		MinRating: minRating,
		SortBy:    c.QueryParam("sort"),
		Direction: c.QueryParam("direction"),
		Page:      page,
		Limit:     limit,
	}
}
