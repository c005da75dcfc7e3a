package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/collabhub/partner-directory/internal/api/metrics"
	"github.com/collabhub/partner-directory/internal/core/domain"
	"github.com/collabhub/partner-directory/internal/core/ports"
	"github.com/collabhub/partner-directory/internal/core/query"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100

	defaultRecommendLimit = 6
)

// CatalogService serves the directory's browse surface: list, lookup, stats,
// suggestions, and recommendations. Filtering and ranking happen in-memory
// through the query package; profiles and recommendations may also come from
// remote backends when those clients are configured.
type CatalogService struct {
	repo      ports.BusinessRepository
	profiles  ports.ProfileClient   // optional
	recommend ports.RecommendClient // optional
	log       zerolog.Logger
}

func NewCatalogService(repo ports.BusinessRepository, profiles ports.ProfileClient, recommend ports.RecommendClient, log zerolog.Logger) *CatalogService {
	return &CatalogService{repo: repo, profiles: profiles, recommend: recommend, log: log}
}

func (s *CatalogService) ListBusinesses(ctx context.Context, input ports.ListBusinessesInput) (*ports.ListBusinessesResult, error) {
	records, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list businesses: %w", err)
	}

	filtered := query.Filter(records, domain.Criteria{
		Query:     input.Query,
		Category:  input.Category,
		Location:  input.Location,
		Platform:  input.Platform,
		MinRating: input.MinRating,
	})
	if input.SortBy != "" {
		filtered = query.Sort(filtered, input.SortBy, input.Direction)
	}

	metrics.CatalogSearchesTotal.Inc()

	page, limit := normalizePage(input.Page, input.Limit)
	total := len(filtered)
	totalPages := (total + limit - 1) / limit
	start := (page - 1) * limit
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}

	return &ports.ListBusinessesResult{
		Items:      filtered[start:end],
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages,
	}, nil
}

// GetBusiness resolves a profile from the local catalog first and falls back
// to the remote profile backend when one is configured.
func (s *CatalogService) GetBusiness(ctx context.Context, id string) (*domain.Business, error) {
	b, err := s.repo.FindByID(ctx, id)
	if err == nil {
		return b, nil
	}
	if !errors.Is(err, domain.ErrBusinessNotFound) || s.profiles == nil {
		return nil, err
	}

	remote, rerr := s.profiles.FetchBusiness(ctx, id)
	if rerr != nil {
		return nil, rerr
	}
	return remote, nil
}

func (s *CatalogService) Stats(ctx context.Context) (*ports.CatalogStats, error) {
	records, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("catalog stats: %w", err)
	}
	stats := query.Stats(records)
	return &stats, nil
}

func (s *CatalogService) Suggest(ctx context.Context, q string, limit int) ([]string, error) {
	records, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("suggest: %w", err)
	}
	return query.Suggest(records, q, limit), nil
}

// Recommendations asks the remote collaboration matcher first; when it is
// unconfigured or failing, it falls back to the local category/location
// ranking (without collaboration ideas).
func (s *CatalogService) Recommendations(ctx context.Context, businessID string, limit int) ([]ports.Recommendation, error) {
	if limit <= 0 {
		limit = defaultRecommendLimit
	}

	anchor, err := s.GetBusiness(ctx, businessID)
	if err != nil {
		return nil, err
	}

	if s.recommend != nil {
		prompt := fmt.Sprintf("partners for a %s business in %s", anchor.Category, anchor.Location)
		recs, rerr := s.recommend.Collaborations(ctx, businessID, prompt)
		if rerr == nil {
			if len(recs) > limit {
				recs = recs[:limit]
			}
			return recs, nil
		}
		metrics.RecommendFallbacksTotal.Inc()
		s.log.Warn().Err(rerr).Str("business_id", businessID).Msg("remote recommendations failed, using local ranking")
	}

	records, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("recommendations: %w", err)
	}

	ranked := query.Recommend(records, *anchor, limit)
	recs := make([]ports.Recommendation, 0, len(ranked))
	for _, b := range ranked {
		recs = append(recs, ports.Recommendation{Business: b})
	}
	return recs, nil
}

func normalizePage(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}
	return page, limit
}
