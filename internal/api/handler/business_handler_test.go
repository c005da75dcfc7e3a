package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/collabhub/partner-directory/internal/core/domain"
	"github.com/collabhub/partner-directory/internal/core/ports"
)

type stubCatalog struct {
	listFn      func(ctx context.Context, input ports.ListBusinessesInput) (*ports.ListBusinessesResult, error)
	getFn       func(ctx context.Context, id string) (*domain.Business, error)
	statsFn     func(ctx context.Context) (*ports.CatalogStats, error)
	suggestFn   func(ctx context.Context, query string, limit int) ([]string, error)
	recommendFn func(ctx context.Context, businessID string, limit int) ([]ports.Recommendation, error)
}

func (s *stubCatalog) ListBusinesses(ctx context.Context, input ports.ListBusinessesInput) (*ports.ListBusinessesResult, error) {
	return s.listFn(ctx, input)
}

func (s *stubCatalog) GetBusiness(ctx context.Context, id string) (*domain.Business, error) {
	return s.getFn(ctx, id)
}

func (s *stubCatalog) Stats(ctx context.Context) (*ports.CatalogStats, error) {
	return s.statsFn(ctx)
}

func (s *stubCatalog) Suggest(ctx context.Context, query string, limit int) ([]string, error) {
	return s.suggestFn(ctx, query, limit)
}

func (s *stubCatalog) Recommendations(ctx context.Context, businessID string, limit int) ([]ports.Recommendation, error) {
	return s.recommendFn(ctx, businessID, limit)
}

func newGetContext(t *testing.T, target string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestBusinessHandler_List_QueryBinding(t *testing.T) {
	stub := &stubCatalog{
		listFn: func(_ context.Context, input ports.ListBusinessesInput) (*ports.ListBusinessesResult, error) {
			if input.Query != "coffee" || input.Category != "food" || input.MinRating != 4.5 {
				t.Fatalf("query params not bound: %+v", input)
			}
			if input.SortBy != "rating" || input.Direction != "desc" || input.Page != 2 || input.Limit != 10 {
				t.Fatalf("sort/paging params not bound: %+v", input)
			}
			return &ports.ListBusinessesResult{Items: []domain.Business{}, Page: 2, Limit: 10}, nil
		},
	}
	h := NewBusinessHandler(stub)

	c, rec := newGetContext(t, "/v1/businesses?q=coffee&category=food&min_rating=4.5&sort=rating&direction=desc&page=2&limit=10")
	if err := h.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestBusinessHandler_List_MalformedNumbersIgnored(t *testing.T) {
	stub := &stubCatalog{
		listFn: func(_ context.Context, input ports.ListBusinessesInput) (*ports.ListBusinessesResult, error) {
			if input.MinRating != 0 || input.Page != 0 || input.Limit != 0 {
				t.Fatalf("malformed numbers should bind as zero: %+v", input)
			}
			return &ports.ListBusinessesResult{}, nil
		},
	}
	h := NewBusinessHandler(stub)

	c, _ := newGetContext(t, "/v1/businesses?min_rating=high&page=two&limit=lots")
	if err := h.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
}

func TestBusinessHandler_Get_Success(t *testing.T) {
	stub := &stubCatalog{
		getFn: func(_ context.Context, id string) (*domain.Business, error) {
			if id != "b-7" {
				t.Fatalf("unexpected id: %s", id)
			}
			return &domain.Business{ID: "b-7", Name: "Harbor Books"}, nil
		},
	}
	h := NewBusinessHandler(stub)

	c, rec := newGetContext(t, "/v1/businesses/b-7")
	c.SetParamNames("id")
	c.SetParamValues("b-7")
	if err := h.Get(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp domain.Business
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.Name != "Harbor Books" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestBusinessHandler_Get_NotFound(t *testing.T) {
	stub := &stubCatalog{
		getFn: func(_ context.Context, _ string) (*domain.Business, error) {
			return nil, domain.ErrBusinessNotFound
		},
	}
	h := NewBusinessHandler(stub)

	c, _ := newGetContext(t, "/v1/businesses/missing")
	c.SetParamNames("id")
	c.SetParamValues("missing")
	if err := h.Get(c); !errors.Is(err, domain.ErrBusinessNotFound) {
		t.Fatalf("expected ErrBusinessNotFound passthrough, got %v", err)
	}
}

func TestBusinessHandler_Stats(t *testing.T) {
	stub := &stubCatalog{
		statsFn: func(_ context.Context) (*ports.CatalogStats, error) {
			return &ports.CatalogStats{Total: 8, Categories: 5, Locations: 4, AverageRating: 4.3, TopRated: 3, Recent: 2}, nil
		},
	}
	h := NewBusinessHandler(stub)

	c, rec := newGetContext(t, "/v1/businesses/stats")
	if err := h.Stats(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["total"] != float64(8) || resp["average_rating"] != 4.3 {
		t.Fatalf("unexpected stats payload: %+v", resp)
	}
}

func TestBusinessHandler_Suggest(t *testing.T) {
	stub := &stubCatalog{
		suggestFn: func(_ context.Context, query string, limit int) ([]string, error) {
			if query != "cof" || limit != 5 {
				t.Fatalf("params not bound: %q %d", query, limit)
			}
			return []string{"Cinder Coffee", "coffee"}, nil
		},
	}
	h := NewBusinessHandler(stub)

	c, rec := newGetContext(t, "/v1/businesses/suggest?q=cof&limit=5")
	if err := h.Suggest(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp suggestResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp.Suggestions) != 2 || resp.Suggestions[0] != "Cinder Coffee" {
		t.Fatalf("unexpected suggestions: %+v", resp.Suggestions)
	}
}

func TestBusinessHandler_Recommendations(t *testing.T) {
	stub := &stubCatalog{
		recommendFn: func(_ context.Context, businessID string, limit int) ([]ports.Recommendation, error) {
			if businessID != "b-1" || limit != 3 {
				t.Fatalf("params not bound: %q %d", businessID, limit)
			}
			return []ports.Recommendation{
				{Business: domain.Business{ID: "b-3", Name: "Cinder Coffee"}, Ideas: []string{"shared loyalty card"}},
			}, nil
		},
	}
	h := NewBusinessHandler(stub)

	c, rec := newGetContext(t, "/v1/businesses/b-1/recommendations?limit=3")
	c.SetParamNames("id")
	c.SetParamValues("b-1")
	if err := h.Recommendations(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp []recommendationResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp) != 1 || resp[0].Business.ID != "b-3" || len(resp[0].Ideas) != 1 {
		t.Fatalf("unexpected recommendations payload: %+v", resp)
	}
}
