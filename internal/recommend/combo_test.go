package recommend

import (
	"fmt"
	"reflect"
	"testing"

	"github.com/minseo040526/reccomendationaisystem/internal/menu"
)

func bundleNames(b Bundle) string {
	return nameSignature(b.Items)
}

func TestRecommendScenario(t *testing.T) {
	cfg := DefaultConfig()
	items := []menu.Item{
		{Name: "A", Price: 3000, Sweetness: 2, Tags: []string{"sweet"}},
		{Name: "B", Price: 5000, Sweetness: 4, Tags: []string{"popular"}, Popular: true},
		{Name: "C", Price: 4000, Sweetness: 3, Tags: []string{"sweet", "popular"}, Popular: true},
	}
	q := Query{ChosenTags: []string{"sweet"}, TargetSweetness: 3, Budget: 9000, TopK: 3}

	// C alone: 1 match * 3 + sweet 3 + popular 3 = 9, the highest single item
	if got := cfg.Score(items[2], q.ChosenTags, q.TargetSweetness); got != 9 {
		t.Fatalf("score(C) = %d, want 9", got)
	}

	bundles, err := cfg.Recommend(items, q)
	if err != nil {
		t.Fatalf("recommend failed: %v", err)
	}
	if len(bundles) == 0 {
		t.Fatal("expected bundles")
	}
	if got := bundleNames(bundles[0]); got != "A\x1fC" {
		t.Fatalf("expected {A,C} ranked first, got %q", got)
	}
	if bundles[0].TotalPrice != 7000 {
		t.Fatalf("expected {A,C} total 7000, got %d", bundles[0].TotalPrice)
	}
	// {A,B,C} totals 12000 and must never appear
	for _, b := range bundles {
		if b.TotalPrice > q.Budget {
			t.Fatalf("bundle %q exceeds budget: %d", bundleNames(b), b.TotalPrice)
		}
	}
}

func TestRecommendStructuralInvariants(t *testing.T) {
	cfg := DefaultConfig()
	items := make([]menu.Item, 0, 20)
	for i := 0; i < 20; i++ {
		items = append(items, menu.Item{
			Name:      fmt.Sprintf("item-%02d", i),
			Price:     500 + 300*i,
			Sweetness: i % 6,
			Popular:   i%4 == 0,
		})
	}
	q := Query{TargetSweetness: 3, Budget: 4000, TopK: 3}

	bundles, err := cfg.Recommend(items, q)
	if err != nil {
		t.Fatalf("recommend failed: %v", err)
	}
	if len(bundles) > q.TopK {
		t.Fatalf("got %d bundles, topK is %d", len(bundles), q.TopK)
	}
	seen := map[string]bool{}
	for _, b := range bundles {
		if b.TotalPrice > q.Budget {
			t.Fatalf("bundle over budget: %d", b.TotalPrice)
		}
		if b.Size < 1 || b.Size > cfg.MaxBundleSize || b.Size != len(b.Items) {
			t.Fatalf("bad bundle size %d with %d items", b.Size, len(b.Items))
		}
		sig := bundleNames(b)
		if seen[sig] {
			t.Fatalf("duplicate name set %q", sig)
		}
		seen[sig] = true
	}
}

func TestRecommendPoolCeiling(t *testing.T) {
	cfg := DefaultConfig()
	// 12 well-matching but unaffordable items fill the pool; a cheap
	// mismatched item ranks 13th and is cut before enumeration.
	items := make([]menu.Item, 0, 13)
	for i := 0; i < 12; i++ {
		items = append(items, menu.Item{
			Name:      fmt.Sprintf("fancy-%02d", i),
			Price:     10000,
			Sweetness: 3,
			Tags:      []string{"sweet"},
		})
	}
	items = append(items, menu.Item{Name: "cheap", Price: 100, Sweetness: 0})

	q := Query{ChosenTags: []string{"sweet"}, TargetSweetness: 3, Budget: 500, TopK: 3}
	bundles, err := cfg.Recommend(items, q)
	if err != nil {
		t.Fatalf("recommend failed: %v", err)
	}
	// the cheap item is the only affordable one, but it sits below the
	// ceiling: the documented trade-off demands an empty result
	if len(bundles) != 0 {
		t.Fatalf("expected empty result, got %d bundles", len(bundles))
	}
}

func TestRecommendPrefersLargerBundleOnTie(t *testing.T) {
	cfg := DefaultConfig()
	// X alone and {Y,Z} tie at score 6 / price 2000; size breaks the tie
	items := []menu.Item{
		{Name: "X", Price: 2000, Sweetness: 0, Tags: []string{"a"}, Popular: true},
		{Name: "Y", Price: 1000, Sweetness: 0, Tags: []string{"a"}},
		{Name: "Z", Price: 1000, Sweetness: 0, Tags: []string{"a"}},
	}
	q := Query{ChosenTags: []string{"a"}, TargetSweetness: 5, Budget: 10000, TopK: 7}

	bundles, err := cfg.Recommend(items, q)
	if err != nil {
		t.Fatalf("recommend failed: %v", err)
	}
	posYZ, posX := -1, -1
	for i, b := range bundles {
		switch bundleNames(b) {
		case "Y\x1fZ":
			posYZ = i
		case "X":
			posX = i
		}
	}
	if posYZ == -1 || posX == -1 {
		t.Fatalf("expected both {Y,Z} and {X} in results: %v, %v", posYZ, posX)
	}
	if posYZ > posX {
		t.Fatalf("expected {Y,Z} (size 2) before {X} on score/price tie, got %d vs %d", posYZ, posX)
	}
}

func TestRecommendDeduplicatesByNameSet(t *testing.T) {
	cfg := DefaultConfig()
	// two raw rows sharing a name collapse to one bundle per name set
	items := []menu.Item{
		{Name: "scone", Price: 2000, Sweetness: 2},
		{Name: "scone", Price: 2000, Sweetness: 2},
		{Name: "latte", Price: 3000, Sweetness: 1},
	}
	bundles, err := cfg.Recommend(items, Query{TargetSweetness: 2, Budget: 10000, TopK: 10})
	if err != nil {
		t.Fatalf("recommend failed: %v", err)
	}
	seen := map[string]bool{}
	for _, b := range bundles {
		sig := bundleNames(b)
		if seen[sig] {
			t.Fatalf("duplicate name set %q survived dedup", sig)
		}
		seen[sig] = true
	}
}

func TestRecommendEdgeCases(t *testing.T) {
	cfg := DefaultConfig()

	t.Run("empty catalog", func(t *testing.T) {
		bundles, err := cfg.Recommend(nil, Query{Budget: 1000, TopK: 3})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(bundles) != 0 {
			t.Fatalf("expected empty result, got %d", len(bundles))
		}
	})

	t.Run("zero budget", func(t *testing.T) {
		items := []menu.Item{{Name: "a", Price: 100}}
		bundles, err := cfg.Recommend(items, Query{Budget: 0, TopK: 3})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(bundles) != 0 {
			t.Fatalf("expected empty result, got %d", len(bundles))
		}
	})

	t.Run("invalid topK", func(t *testing.T) {
		if _, err := cfg.Recommend(nil, Query{Budget: 1000, TopK: 0}); err == nil {
			t.Fatal("expected ErrInvalidQuery for topK 0")
		}
	})

	t.Run("negative budget", func(t *testing.T) {
		if _, err := cfg.Recommend(nil, Query{Budget: -1, TopK: 3}); err == nil {
			t.Fatal("expected ErrInvalidQuery for negative budget")
		}
	})
}

func TestRecommendIsDeterministic(t *testing.T) {
	cfg := DefaultConfig()
	items := make([]menu.Item, 0, 15)
	for i := 0; i < 15; i++ {
		items = append(items, menu.Item{
			Name:      fmt.Sprintf("item-%02d", i),
			Price:     800 + 150*i,
			Sweetness: (i * 2) % 6,
			Popular:   i%3 == 0,
			Tags:      []string{"sweet"},
		})
	}
	q := Query{ChosenTags: []string{"sweet"}, TargetSweetness: 2, Budget: 5000, TopK: 3}

	first, err := cfg.Recommend(items, q)
	if err != nil {
		t.Fatalf("recommend failed: %v", err)
	}
	second, err := cfg.Recommend(items, q)
	if err != nil {
		t.Fatalf("recommend failed: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatal("exhaustive mode is not deterministic across identical calls")
	}
}
