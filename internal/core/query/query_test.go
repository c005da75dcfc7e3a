package query

import (
	"reflect"
	"testing"

	"github.com/collabhub/partner-directory/internal/core/domain"
)

func sampleRecords() []domain.Business {
	return []domain.Business{
		{ID: "1", Name: "Aurora Roastery", Description: "Specialty coffee roaster", Category: "Food", Location: "Portland, OR", Rating: 4.8, Followers: "12.5K", Platforms: []string{"Instagram"}, TopRated: true},
		{ID: "2", Name: "Summit Trail Gear", Description: "Outdoor equipment brand", Category: "Outdoor", Location: "Denver, CO", Rating: 4.6, Followers: "89K", Platforms: []string{"Instagram", "YouTube"}},
		{ID: "3", Name: "Pixelforge Studio", Description: "Independent game studio", Category: "Entertainment", Location: "Austin, TX", Rating: 4.4, Followers: "230K", Platforms: []string{"Twitch"}, Recent: true},
		{ID: "4", Name: "Harbor Coffee", Description: "Neighborhood coffee chain", Category: "Food", Location: "Seattle, WA", Rating: 4.2, Followers: "8.7K", Platforms: []string{"Instagram"}, Recent: true},
	}
}

func ids(records []domain.Business) []string {
	out := make([]string, 0, len(records))
	for _, b := range records {
		out = append(out, b.ID)
	}
	return out
}

func TestFilter_EmptyCriteriaMatchesAll(t *testing.T) {
	records := sampleRecords()
	got := Filter(records, domain.Criteria{})
	if !reflect.DeepEqual(ids(got), ids(records)) {
		t.Fatalf("expected all records in order %v, got %v", ids(records), ids(got))
	}
	// The result must be an independent copy, not a view of the input.
	got[0].Name = "mutated"
	if records[0].Name == "mutated" {
		t.Fatalf("filter result aliases the input slice")
	}
}

func TestFilter_MinRating(t *testing.T) {
	records := []domain.Business{
		{Name: "A", Rating: 3, Category: "X"},
		{Name: "B", Rating: 5, Category: "Y"},
	}
	got := Filter(records, domain.Criteria{MinRating: 4})
	if len(got) != 1 || got[0].Name != "B" {
		t.Fatalf("expected only B, got %v", ids(got))
	}
}

func TestFilter_FreeTextAcrossFields(t *testing.T) {
	records := sampleRecords()

	// "coffee" matches record 1 by description and record 4 by name.
	got := Filter(records, domain.Criteria{Query: "COFFEE"})
	if !reflect.DeepEqual(ids(got), []string{"1", "4"}) {
		t.Fatalf("unexpected matches: %v", ids(got))
	}

	// location substring
	got = Filter(records, domain.Criteria{Query: "austin"})
	if !reflect.DeepEqual(ids(got), []string{"3"}) {
		t.Fatalf("unexpected matches: %v", ids(got))
	}
}

func TestFilter_AllCriteriaAreANDed(t *testing.T) {
	records := sampleRecords()
	got := Filter(records, domain.Criteria{Category: "Food", Platform: "Instagram", MinRating: 4.5})
	if !reflect.DeepEqual(ids(got), []string{"1"}) {
		t.Fatalf("expected only record 1, got %v", ids(got))
	}
}

func TestFilter_Narrowing(t *testing.T) {
	records := sampleRecords()
	strict := Filter(records, domain.Criteria{Category: "Food", MinRating: 4.5})
	loose := Filter(records, domain.Criteria{Category: "Food"})

	if len(strict) > len(loose) || len(loose) > len(records) {
		t.Fatalf("narrowing violated: %d > %d > %d", len(records), len(loose), len(strict))
	}
	for _, b := range strict {
		if b.Category != "Food" || b.Rating < 4.5 {
			t.Fatalf("record %s does not satisfy criteria", b.ID)
		}
	}
}

func TestFilter_DoesNotMutateInput(t *testing.T) {
	records := sampleRecords()
	before := ids(records)
	_ = Filter(records, domain.Criteria{Category: "Food"})
	if !reflect.DeepEqual(ids(records), before) {
		t.Fatalf("input mutated")
	}
}

func TestSort_Name(t *testing.T) {
	got := Sort(sampleRecords(), SortByName, Ascending)
	want := []string{"1", "4", "3", "2"}
	if !reflect.DeepEqual(ids(got), want) {
		t.Fatalf("expected %v, got %v", want, ids(got))
	}

	got = Sort(sampleRecords(), SortByName, Descending)
	want = []string{"2", "3", "4", "1"}
	if !reflect.DeepEqual(ids(got), want) {
		t.Fatalf("expected %v, got %v", want, ids(got))
	}
}

func TestSort_Followers(t *testing.T) {
	got := Sort(sampleRecords(), SortByFollowers, Descending)
	// 230K > 89K > 12.5K > 8.7K
	want := []string{"3", "2", "1", "4"}
	if !reflect.DeepEqual(ids(got), want) {
		t.Fatalf("expected %v, got %v", want, ids(got))
	}
}

func TestSort_Recency(t *testing.T) {
	got := Sort(sampleRecords(), SortByRecency, Ascending)
	// Recent first (3, 4 by rating desc), then top-rated (1), then the rest.
	want := []string{"3", "4", "1", "2"}
	if !reflect.DeepEqual(ids(got), want) {
		t.Fatalf("expected %v, got %v", want, ids(got))
	}
}

func TestSort_StableOnTies(t *testing.T) {
	records := []domain.Business{
		{ID: "a", Name: "Same", Rating: 4},
		{ID: "b", Name: "Same", Rating: 4},
		{ID: "c", Name: "Same", Rating: 4},
	}
	for _, field := range []string{SortByName, SortByRating, SortByFollowers, SortByRecency} {
		got := Sort(records, field, Ascending)
		if !reflect.DeepEqual(ids(got), []string{"a", "b", "c"}) {
			t.Fatalf("field %s: tie order not preserved: %v", field, ids(got))
		}
	}
}

func TestSort_UnknownFieldKeepsOrder(t *testing.T) {
	records := sampleRecords()
	got := Sort(records, "bogus", Ascending)
	if !reflect.DeepEqual(ids(got), ids(records)) {
		t.Fatalf("unexpected reorder: %v", ids(got))
	}
}

func TestParseFollowers(t *testing.T) {
	cases := []struct {
		in   string
		want float64
	}{
		{"12.5K", 12500},
		{"1.2M", 1200000},
		{"980", 980},
		{"89k", 89000},
		{"", 0},
		{"abc", 0},
		{"-5K", 0},
	}
	for _, tc := range cases {
		if got := ParseFollowers(tc.in); got != tc.want {
			t.Fatalf("ParseFollowers(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestStats(t *testing.T) {
	stats := Stats(sampleRecords())
	if stats.Total != 4 {
		t.Fatalf("total = %d", stats.Total)
	}
	if stats.Categories != 3 {
		t.Fatalf("categories = %d", stats.Categories)
	}
	if stats.Locations != 4 {
		t.Fatalf("locations = %d", stats.Locations)
	}
	// (4.8+4.6+4.4+4.2)/4 = 4.5
	if stats.AverageRating != 4.5 {
		t.Fatalf("average = %v", stats.AverageRating)
	}
	if stats.TopRated != 1 || stats.Recent != 2 {
		t.Fatalf("flags: top=%d recent=%d", stats.TopRated, stats.Recent)
	}
}

func TestStats_EmptyInput(t *testing.T) {
	stats := Stats(nil)
	if stats.Total != 0 || stats.AverageRating != 0 {
		t.Fatalf("empty stats: %+v", stats)
	}
}

func TestRecommend_RankingAndExclusion(t *testing.T) {
	records := sampleRecords()
	anchor := records[0] // Food in Portland

	got := Recommend(records, anchor, 10)
	for _, b := range got {
		if b.ID == anchor.ID {
			t.Fatalf("anchor not excluded")
		}
	}
	// Same category first (4), then the rest by rating descending (2, 3).
	want := []string{"4", "2", "3"}
	if !reflect.DeepEqual(ids(got), want) {
		t.Fatalf("expected %v, got %v", want, ids(got))
	}
}

func TestRecommend_Limit(t *testing.T) {
	got := Recommend(sampleRecords(), sampleRecords()[0], 1)
	if len(got) != 1 {
		t.Fatalf("expected 1 recommendation, got %d", len(got))
	}
}

func TestSuggest(t *testing.T) {
	records := []domain.Business{
		{Name: "Aurora Roastery", Category: "Food", Location: "Portland, OR"},
		{Name: "Cedar Lane Bakery", Category: "Food", Location: "Portland, OR"},
	}

	got := Suggest(records, "food", 10)
	if !reflect.DeepEqual(got, []string{"Food"}) {
		t.Fatalf("expected deduplicated [Food], got %v", got)
	}

	got = Suggest(records, "port", 10)
	if !reflect.DeepEqual(got, []string{"Portland, OR"}) {
		t.Fatalf("expected [Portland, OR], got %v", got)
	}

	if got := Suggest(records, "", 10); got != nil {
		t.Fatalf("empty query should yield nil, got %v", got)
	}

	if got := Suggest(records, "o", 2); len(got) != 2 {
		t.Fatalf("limit not applied: %v", got)
	}
}
