package recommend

import (
	"testing"

	"github.com/minseo040526/reccomendationaisystem/internal/menu"
)

func TestScoreFormula(t *testing.T) {
	cfg := DefaultConfig()

	cases := []struct {
		name   string
		item   menu.Item
		tags   []string
		target int
		want   int
	}{
		{
			name:   "tag match dominates",
			item:   menu.Item{Tags: []string{"sweet", "nutty"}, Sweetness: 0},
			tags:   []string{"sweet", "nutty", "salty"},
			target: 5,
			want:   6, // 2 matches * 3, sweetness gap of 5 scores 0
		},
		{
			name:   "exact sweetness",
			item:   menu.Item{Sweetness: 3},
			tags:   nil,
			target: 3,
			want:   3,
		},
		{
			name:   "sweetness one off",
			item:   menu.Item{Sweetness: 2},
			tags:   nil,
			target: 3,
			want:   2,
		},
		{
			name:   "sweetness beyond gap of three",
			item:   menu.Item{Sweetness: 0},
			tags:   nil,
			target: 4,
			want:   0,
		},
		{
			name:   "popular bonus",
			item:   menu.Item{Sweetness: 0, Popular: true},
			tags:   nil,
			target: 5,
			want:   3,
		},
		{
			name:   "all components",
			item:   menu.Item{Tags: []string{"sweet"}, Sweetness: 3, Popular: true},
			tags:   []string{"sweet"},
			target: 3,
			want:   9,
		},
		{
			name:   "duplicate chosen tags count once",
			item:   menu.Item{Tags: []string{"sweet"}, Sweetness: 0},
			tags:   []string{"sweet", "sweet"},
			target: 5,
			want:   3,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := cfg.Score(tc.item, tc.tags, tc.target)
			if got != tc.want {
				t.Fatalf("score = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestScoreBounds(t *testing.T) {
	cfg := DefaultConfig()
	chosen := []string{"a", "b", "c"}
	upper := cfg.TagWeight*len(chosen) + cfg.SweetBase + cfg.PopularBonus

	items := []menu.Item{
		{Tags: []string{"a", "b", "c"}, Sweetness: 3, Popular: true},
		{Tags: []string{"a"}, Sweetness: -7},  // malformed sweetness degrades, never fails
		{Tags: []string{"zzz"}, Sweetness: 99},
		{},
	}
	for _, it := range items {
		got := cfg.Score(it, chosen, 3)
		if got < 0 || got > upper {
			t.Fatalf("score %d for %+v out of [0,%d]", got, it, upper)
		}
	}
}
