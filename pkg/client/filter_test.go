package client

import (
	"reflect"
	"testing"
)

func TestFilterByCategory(t *testing.T) {
	items := FallbackMedia()

	all := FilterByCategory(items, "all")
	if !reflect.DeepEqual(all, items) {
		t.Fatal("category=all changed the set")
	}
	// filtering is idempotent
	if !reflect.DeepEqual(FilterByCategory(all, "all"), all) {
		t.Fatal("double filter changed the set")
	}

	arch := FilterByCategory(items, "Architecture")
	if len(arch) != 2 {
		t.Fatalf("architecture: got %d items", len(arch))
	}
	for _, m := range arch {
		if m.Category != "Architecture" {
			t.Fatalf("stray item: %+v", m)
		}
	}

	if got := FilterByCategory(items, "Nope"); len(got) != 0 {
		t.Fatalf("unknown category: got %d items", len(got))
	}

	// the source slice is never mutated
	if !reflect.DeepEqual(items, FallbackMedia()) {
		t.Fatal("input mutated")
	}
}

func TestFallbacksAreNonEmpty(t *testing.T) {
	if len(FallbackMedia()) == 0 {
		t.Fatal("empty fallback portfolio")
	}
	s := DefaultSettings()
	if s.SiteTitle != "FINDELMUNNDO" || s.Tagline == "" {
		t.Fatalf("defaults = %+v", s)
	}

	cats := FallbackCategories()
	want := map[string]int64{"Portrait": 1, "Architecture": 2, "Abstract": 1, "Experimental": 2}
	if len(cats) != len(want) {
		t.Fatalf("got %d categories", len(cats))
	}
	for _, c := range cats {
		if want[c.Name] != c.Count {
			t.Fatalf("category %s count = %d, want %d", c.Name, c.Count, want[c.Name])
		}
	}
}
