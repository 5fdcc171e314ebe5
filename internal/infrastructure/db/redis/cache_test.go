package redis

import (
	"testing"

	"github.com/cinevault/catalog-api/internal/core/ports"
)

func TestCacheKey_SeparatorInFieldsDoesNotCollide(t *testing.T) {
	// Both filters would flatten to the same "a:title::1:10" suffix if the
	// fields were joined with bare separators.
	a := ports.ListMoviesFilter{Search: "a", Sort: "title:", Page: 1, Limit: 10}
	b := ports.ListMoviesFilter{Search: "a:title", Sort: "", Page: 1, Limit: 10}

	if ka, kb := cacheKey(0, a), cacheKey(0, b); ka == kb {
		t.Fatalf("distinct filters share key %q", ka)
	}
}

func TestCacheKey_DistinctFiltersDistinctKeys(t *testing.T) {
	filters := []ports.ListMoviesFilter{
		{Page: 1, Limit: 10},
		{Search: "dune", Page: 1, Limit: 10},
		{Search: "dune", Sort: "rating", Page: 1, Limit: 10},
		{Search: "dune:rating", Page: 1, Limit: 10},
		{Search: `du"ne`, Page: 1, Limit: 10},
		{Search: `du\ne`, Page: 1, Limit: 10},
		{Search: "dune", Page: 2, Limit: 10},
		{Search: "dune", Page: 1, Limit: 20},
	}

	seen := make(map[string]ports.ListMoviesFilter, len(filters))
	for _, f := range filters {
		key := cacheKey(0, f)
		if prev, dup := seen[key]; dup {
			t.Fatalf("filters %+v and %+v share key %q", prev, f, key)
		}
		seen[key] = f
	}
}

func TestCacheKey_VersionBumpChangesKey(t *testing.T) {
	f := ports.ListMoviesFilter{Search: "dune", Sort: "rating", Page: 1, Limit: 10}
	if cacheKey(0, f) == cacheKey(1, f) {
		t.Fatalf("version bump did not change key")
	}
}
