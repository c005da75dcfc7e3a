package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/collabhub/partner-directory/internal/core/domain"
	"github.com/collabhub/partner-directory/internal/core/ports"
	"github.com/collabhub/partner-directory/internal/core/query"
)

type stubBusinessRepo struct {
	records []domain.Business
	listErr error
}

func (r *stubBusinessRepo) List(_ context.Context) ([]domain.Business, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	return r.records, nil
}

func (r *stubBusinessRepo) FindByID(_ context.Context, id string) (*domain.Business, error) {
	for i := range r.records {
		if r.records[i].ID == id {
			b := r.records[i]
			return &b, nil
		}
	}
	return nil, domain.ErrBusinessNotFound
}

type stubProfileClient struct {
	business *domain.Business
	err      error
	calls    int
}

func (c *stubProfileClient) FetchBusiness(_ context.Context, _ string) (*domain.Business, error) {
	c.calls++
	if c.err != nil {
		return nil, c.err
	}
	return c.business, nil
}

type stubRecommendClient struct {
	recs []ports.Recommendation
	err  error
}

func (c *stubRecommendClient) Collaborations(_ context.Context, _, _ string) ([]ports.Recommendation, error) {
	if c.err != nil {
		return nil, c.err
	}
	return c.recs, nil
}

func catalogFixture() []domain.Business {
	return []domain.Business{
		{ID: "b-1", Name: "Aurora Bakery", Category: "food", Location: "Porto", Rating: 4.8, Followers: "12K", Platforms: []string{"instagram"}},
		{ID: "b-2", Name: "Beacon Fitness", Category: "fitness", Location: "Porto", Rating: 4.2, Followers: "3.4K", Platforms: []string{"youtube"}},
		{ID: "b-3", Name: "Cinder Coffee", Category: "food", Location: "Braga", Rating: 4.6, Followers: "800", Platforms: []string{"tiktok"}},
		{ID: "b-4", Name: "Drift Surf School", Category: "sports", Location: "Ericeira", Rating: 3.9, Followers: "1.2M", Platforms: []string{"instagram", "youtube"}},
	}
}

func TestCatalogService_ListFilterSortPage(t *testing.T) {
	repo := &stubBusinessRepo{records: catalogFixture()}
	svc := NewCatalogService(repo, nil, nil, zerolog.Nop())

	res, err := svc.ListBusinesses(context.Background(), ports.ListBusinessesInput{
		Category: "food",
		SortBy:   query.SortByRating,
	})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if res.Total != 2 {
		t.Fatalf("expected 2 food businesses, got %d", res.Total)
	}
	if res.Items[0].ID != "b-3" || res.Items[1].ID != "b-1" {
		t.Fatalf("unexpected rating order: %v, %v", res.Items[0].ID, res.Items[1].ID)
	}
	if res.Page != 1 || res.Limit != defaultPageSize || res.TotalPages != 1 {
		t.Fatalf("unexpected paging: page=%d limit=%d pages=%d", res.Page, res.Limit, res.TotalPages)
	}
}

func TestCatalogService_ListPagination(t *testing.T) {
	repo := &stubBusinessRepo{records: catalogFixture()}
	svc := NewCatalogService(repo, nil, nil, zerolog.Nop())

	res, err := svc.ListBusinesses(context.Background(), ports.ListBusinessesInput{Page: 2, Limit: 3})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if res.Total != 4 || res.TotalPages != 2 {
		t.Fatalf("unexpected totals: %d items, %d pages", res.Total, res.TotalPages)
	}
	if len(res.Items) != 1 || res.Items[0].ID != "b-4" {
		t.Fatalf("unexpected second page: %+v", res.Items)
	}

	// A page past the end is empty, not an error.
	res, err = svc.ListBusinesses(context.Background(), ports.ListBusinessesInput{Page: 9, Limit: 3})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(res.Items) != 0 {
		t.Fatalf("expected empty overflow page, got %+v", res.Items)
	}
}

func TestCatalogService_GetBusinessLocal(t *testing.T) {
	repo := &stubBusinessRepo{records: catalogFixture()}
	profiles := &stubProfileClient{}
	svc := NewCatalogService(repo, profiles, nil, zerolog.Nop())

	b, err := svc.GetBusiness(context.Background(), "b-2")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if b.Name != "Beacon Fitness" {
		t.Fatalf("unexpected business: %+v", b)
	}
	if profiles.calls != 0 {
		t.Fatalf("remote profile fetched for a local record")
	}
}

func TestCatalogService_GetBusinessRemoteFallback(t *testing.T) {
	repo := &stubBusinessRepo{records: catalogFixture()}
	profiles := &stubProfileClient{business: &domain.Business{ID: "r-9", Name: "Remote Studio"}}
	svc := NewCatalogService(repo, profiles, nil, zerolog.Nop())

	b, err := svc.GetBusiness(context.Background(), "r-9")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if b.Name != "Remote Studio" || profiles.calls != 1 {
		t.Fatalf("remote fallback not used: %+v calls=%d", b, profiles.calls)
	}
}

func TestCatalogService_GetBusinessNotFound(t *testing.T) {
	repo := &stubBusinessRepo{records: catalogFixture()}
	svc := NewCatalogService(repo, nil, nil, zerolog.Nop())

	if _, err := svc.GetBusiness(context.Background(), "missing"); !errors.Is(err, domain.ErrBusinessNotFound) {
		t.Fatalf("expected ErrBusinessNotFound, got %v", err)
	}

	profiles := &stubProfileClient{err: domain.ErrBusinessNotFound}
	svc = NewCatalogService(repo, profiles, nil, zerolog.Nop())
	if _, err := svc.GetBusiness(context.Background(), "missing"); !errors.Is(err, domain.ErrBusinessNotFound) {
		t.Fatalf("expected ErrBusinessNotFound from remote, got %v", err)
	}
}

func TestCatalogService_RecommendationsRemote(t *testing.T) {
	repo := &stubBusinessRepo{records: catalogFixture()}
	remote := &stubRecommendClient{recs: []ports.Recommendation{
		{Business: domain.Business{ID: "b-3"}, Ideas: []string{"joint pop-up tasting"}},
		{Business: domain.Business{ID: "b-2"}, Ideas: []string{"post-workout snack bundle"}},
	}}
	svc := NewCatalogService(repo, nil, remote, zerolog.Nop())

	recs, err := svc.Recommendations(context.Background(), "b-1", 5)
	if err != nil {
		t.Fatalf("recommendations failed: %v", err)
	}
	if len(recs) != 2 || recs[0].Business.ID != "b-3" {
		t.Fatalf("unexpected remote recommendations: %+v", recs)
	}
	if len(recs[0].Ideas) == 0 {
		t.Fatalf("collaboration ideas dropped")
	}
}

func TestCatalogService_RecommendationsFallback(t *testing.T) {
	repo := &stubBusinessRepo{records: catalogFixture()}
	remote := &stubRecommendClient{err: errors.New("matcher unreachable")}
	svc := NewCatalogService(repo, nil, remote, zerolog.Nop())

	recs, err := svc.Recommendations(context.Background(), "b-1", 2)
	if err != nil {
		t.Fatalf("recommendations failed: %v", err)
	}
	if len(recs) != 2 {
		t.Fatalf("expected 2 local recommendations, got %d", len(recs))
	}
	// Same-category business outranks same-location, anchor excluded.
	if recs[0].Business.ID != "b-3" || recs[1].Business.ID != "b-2" {
		t.Fatalf("unexpected local ranking: %v, %v", recs[0].Business.ID, recs[1].Business.ID)
	}
	for _, r := range recs {
		if len(r.Ideas) != 0 {
			t.Fatalf("local fallback should carry no ideas: %+v", r)
		}
	}
}

func TestCatalogService_Stats(t *testing.T) {
	repo := &stubBusinessRepo{records: catalogFixture()}
	svc := NewCatalogService(repo, nil, nil, zerolog.Nop())

	stats, err := svc.Stats(context.Background())
	if err != nil {
		t.Fatalf("stats failed: %v", err)
	}
	if stats.Total != 4 || stats.Categories != 3 {
		t.Fatalf("unexpected stats: %+v", stats)
	}
}

func TestCatalogService_ListRepositoryError(t *testing.T) {
	repo := &stubBusinessRepo{listErr: domain.ErrCatalogUnavailable}
	svc := NewCatalogService(repo, nil, nil, zerolog.Nop())

	if _, err := svc.ListBusinesses(context.Background(), ports.ListBusinessesInput{}); !errors.Is(err, domain.ErrCatalogUnavailable) {
		t.Fatalf("expected ErrCatalogUnavailable, got %v", err)
	}
}
