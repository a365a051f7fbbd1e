package recommend

import (
	"sort"

	"github.com/minseo040526/reccomendationaisystem/internal/menu"
)

// ScoredItem pairs an item with its score for one request. Scores depend on
// the query and are never cached across requests.
type ScoredItem struct {
	Item  menu.Item `json:"item"`
	Score int       `json:"score"`
}

// Rank scores every item and sorts by score descending, then price ascending.
// Relative order inside a score/price tie band is unspecified. An empty input
// yields an empty slice.
func (cfg Config) Rank(items []menu.Item, chosenTags []string, targetSweetness int) []ScoredItem {
	out := make([]ScoredItem, 0, len(items))
	for _, it := range items {
		out = append(out, ScoredItem{Item: it, Score: cfg.Score(it, chosenTags, targetSweetness)})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}
		return out[i].Item.Price < out[j].Item.Price
	})
	return out
}
