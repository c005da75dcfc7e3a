package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/collabhub/partner-directory/internal/core/ports"
)

// BusinessHandler serves the directory's browse endpoints.
type BusinessHandler struct {
	catalog ports.CatalogService
}

func NewBusinessHandler(catalog ports.CatalogService) *BusinessHandler {
	return &BusinessHandler{catalog: catalog}
}

// List handles GET /v1/businesses with filter, sort, and pagination params.
//
// @Summary      List businesses
// @Tags         businesses
// @Produce      json
// @Param        q           query  string  false  "Free-text search term"
// @Param        category    query  string  false  "Exact category"
// @Param        location    query  string  false  "Location substring"
// @Param        platform    query  string  false  "Required platform"
// @Param        min_rating  query  number  false  "Minimum rating (0-5)"
// @Param        sort        query  string  false  "Sort field: name|rating|followers|recency"
// @Param        direction   query  string  false  "asc or desc"
// @Param        page        query  int     false  "Page (1-based)"
// @Param        limit       query  int     false  "Page size (max 100)"
// @Success      200  {object}  listBusinessesResponse
// @Failure      500  {object}  errorResponse
// @Router       /v1/businesses [get]
func (h *BusinessHandler) List(c echo.Context) error {
	result, err := h.catalog.ListBusinesses(c.Request().Context(), listInputFromQuery(c))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, listBusinessesResponse{
		Items:      result.Items,
		Total:      result.Total,
		Page:       result.Page,
		Limit:      result.Limit,
		TotalPages: result.TotalPages,
	})
}

// Get handles GET /v1/businesses/:id.
//
// @Summary      Get a business profile
// @Tags         businesses
// @Produce      json
// @Param        id  path  string  true  "Business identifier"
// @Success      200  {object}  domain.Business
// @Failure      404  {object}  errorResponse
// @Router       /v1/businesses/{id} [get]
func (h *BusinessHandler) Get(c echo.Context) error {
	business, err := h.catalog.GetBusiness(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, business)
}

// Stats handles GET /v1/businesses/stats.
//
// @Summary      Directory statistics
// @Tags         businesses
// @Produce      json
// @Success      200  {object}  statsResponse
// @Router       /v1/businesses/stats [get]
func (h *BusinessHandler) Stats(c echo.Context) error {
	stats, err := h.catalog.Stats(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, statsResponse{
		Total:         stats.Total,
		Categories:    stats.Categories,
		Locations:     stats.Locations,
		AverageRating: stats.AverageRating,
		TopRated:      stats.TopRated,
		Recent:        stats.Recent,
	})
}

// Suggest handles GET /v1/businesses/suggest?q=&limit=.
//
// @Summary      Search suggestions
// @Tags         businesses
// @Produce      json
// @Param        q      query  string  true   "Partial search term"
// @Param        limit  query  int     false  "Maximum suggestions"
// @Success      200  {object}  suggestResponse
// @Router       /v1/businesses/suggest [get]
func (h *BusinessHandler) Suggest(c echo.Context) error {
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	suggestions, err := h.catalog.Suggest(c.Request().Context(), c.QueryParam("q"), limit)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, suggestResponse{Suggestions: suggestions})
}

// Recommendations handles GET /v1/businesses/:id/recommendations.
//
// @Summary      Partnership recommendations for a business
// @Tags         businesses
// @Produce      json
// @Param        id     path   string  true   "Anchor business identifier"
// @Param        limit  query  int     false  "Maximum recommendations"
// @Success      200  {array}   recommendationResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/businesses/{id}/recommendations [get]
func (h *BusinessHandler) Recommendations(c echo.Context) error {
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	recs, err := h.catalog.Recommendations(c.Request().Context(), c.Param("id"), limit)
	if err != nil {
		return err
	}

	out := make([]recommendationResponse, 0, len(recs))
	for _, r := range recs {
		out = append(out, recommendationResponse{Business: r.Business, Ideas: r.Ideas})
	}
	return c.JSON(http.StatusOK, out)
}
