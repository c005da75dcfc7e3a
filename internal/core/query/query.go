// Package query implements the pure transformations behind the directory's
// browse surface: filtering, sorting, statistics, recommendations, and search
// suggestions over an in-memory business list. Every function is
// referentially transparent and never mutates its input slice.
package query

import (
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/collabhub/partner-directory/internal/core/domain"
	"github.com/collabhub/partner-directory/internal/core/ports"
)

// Sortable fields accepted by Sort.
const (
	SortByName      = "name"
	SortByRating    = "rating"
	SortByFollowers = "followers"
	SortByRecency   = "recency"
)

// Sort directions.
const (
	Ascending  = "asc"
	Descending = "desc"
)

// Filter keeps the records matching ALL active criteria dimensions. A zero
// criteria field matches everything, so Filter(records, domain.Criteria{})
// returns a copy of the input.
func Filter(records []domain.Business, c domain.Criteria) []domain.Business {
	out := make([]domain.Business, 0, len(records))
	if c.IsZero() {
		return append(out, records...)
	}
	term := strings.ToLower(strings.TrimSpace(c.Query))
	for _, b := range records {
		if term != "" && !matchesTerm(b, term) {
			continue
		}
		if c.Category != "" && b.Category != c.Category {
			continue
		}
		if c.Location != "" && !strings.Contains(strings.ToLower(b.Location), strings.ToLower(c.Location)) {
			continue
		}
		if c.Platform != "" && !hasPlatform(b.Platforms, c.Platform) {
			continue
		}
		if b.Rating < c.MinRating {
			continue
		}
		out = append(out, b)
	}
	return out
}

func matchesTerm(b domain.Business, term string) bool {
	for _, field := range []string{b.Name, b.Description, b.Category, b.Location} {
		if strings.Contains(strings.ToLower(field), term) {
			return true
		}
	}
	return false
}

func hasPlatform(platforms []string, want string) bool {
	for _, p := range platforms {
		if strings.EqualFold(p, want) {
			return true
		}
	}
	return false
}

// Sort returns a stably sorted copy of records. Ties preserve input order for
// every field. Unknown fields leave the order unchanged; direction "desc"
// reverses the comparison.
func Sort(records []domain.Business, field, direction string) []domain.Business {
	out := make([]domain.Business, len(records))
	copy(out, records)

	less := comparator(field)
	if less == nil {
		return out
	}
	if direction == Descending {
		inner := less
		less = func(a, b domain.Business) bool { return inner(b, a) }
	}

	sort.SliceStable(out, func(i, j int) bool { return less(out[i], out[j]) })
	return out
}

func comparator(field string) func(a, b domain.Business) bool {
	switch field {
	case SortByName:
		return func(a, b domain.Business) bool { return a.Name < b.Name }
	case SortByRating:
		return func(a, b domain.Business) bool { return a.Rating < b.Rating }
	case SortByFollowers:
		return func(a, b domain.Business) bool {
			return ParseFollowers(a.Followers) < ParseFollowers(b.Followers)
		}
	case SortByRecency:
		// Recent entries first, then top-rated, then rating descending.
		return func(a, b domain.Business) bool {
			if a.Recent != b.Recent {
				return a.Recent
			}
			if a.TopRated != b.TopRated {
				return a.TopRated
			}
			return a.Rating > b.Rating
		}
	default:
		return nil
	}
}

// ParseFollowers converts a K/M-suffixed follower string ("12.5K", "1.2M",
// "980") to a numeric count. Malformed input parses to 0.
func ParseFollowers(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}

	multiplier := 1.0
	switch s[len(s)-1] {
	case 'k', 'K':
		multiplier = 1_000
		s = s[:len(s)-1]
	case 'm', 'M':
		multiplier = 1_000_000
		s = s[:len(s)-1]
	}

	n, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || n < 0 {
		return 0
	}
	return n * multiplier
}

// Stats derives summary statistics. The average rating of an empty catalog is
// defined as 0; otherwise it is the mean rounded to one decimal.
func Stats(records []domain.Business) ports.CatalogStats {
	categories := make(map[string]struct{})
	locations := make(map[string]struct{})

	var ratingSum float64
	var topRated, recent int
	for _, b := range records {
		categories[b.Category] = struct{}{}
		locations[b.Location] = struct{}{}
		ratingSum += b.Rating
		if b.TopRated {
			topRated++
		}
		if b.Recent {
			recent++
		}
	}

	var avg float64
	if len(records) > 0 {
		avg = math.Round(ratingSum/float64(len(records))*10) / 10
	}

	return ports.CatalogStats{
		Total:         len(records),
		Categories:    len(categories),
		Locations:     len(locations),
		AverageRating: avg,
		TopRated:      topRated,
		Recent:        recent,
	}
}

// Recommend ranks records against the anchor business: same category first,
// then same location, then rating descending. The anchor itself is excluded.
func Recommend(records []domain.Business, anchor domain.Business, limit int) []domain.Business {
	candidates := make([]domain.Business, 0, len(records))
	for _, b := range records {
		if b.ID == anchor.ID {
			continue
		}
		candidates = append(candidates, b)
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]
		if sc, other := a.Category == anchor.Category, b.Category == anchor.Category; sc != other {
			return sc
		}
		if sl, other := a.Location == anchor.Location, b.Location == anchor.Location; sl != other {
			return sl
		}
		return a.Rating > b.Rating
	})

	if limit > 0 && len(candidates) > limit {
		candidates = candidates[:limit]
	}
	return candidates
}

// Suggest returns an ordered, de-duplicated set of name/category/location
// values that contain the query (case-insensitive), capped at limit. An
// empty query yields nil.
func Suggest(records []domain.Business, query string, limit int) []string {
	term := strings.ToLower(strings.TrimSpace(query))
	if term == "" {
		return nil
	}

	seen := make(map[string]struct{})
	var out []string
	add := func(value string) {
		if value == "" || !strings.Contains(strings.ToLower(value), term) {
			return
		}
		if _, dup := seen[value]; dup {
			return
		}
		seen[value] = struct{}{}
		out = append(out, value)
	}

	for _, b := range records {
		add(b.Name)
		add(b.Category)
		add(b.Location)
		if limit > 0 && len(out) >= limit {
			break
		}
	}

	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}
