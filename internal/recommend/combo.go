package recommend

import (
	"errors"
	"sort"
	"strings"

	"github.com/minseo040526/reccomendationaisystem/internal/menu"
)

// ErrInvalidQuery marks a caller contract violation (non-positive topK,
// negative budget). It is distinct from the empty result that signals
// "no viable bundle".
var ErrInvalidQuery = errors.New("invalid recommendation query")

// Query carries the per-request preferences.
type Query struct {
	ChosenTags      []string
	TargetSweetness int
	Budget          int
	TopK            int
}

// Bundle is a budget-valid set of 1..MaxBundleSize distinct items.
// Membership is unordered: bundles with the same name set are duplicates.
type Bundle struct {
	Items      []menu.Item `json:"items"`
	TotalPrice int         `json:"totalPrice"`
	TotalScore int         `json:"totalScore"`
	Size       int         `json:"size"`
}

// nameSignature is the dedup key: the sorted item names joined with a
// separator that cannot occur in a name.
func nameSignature(items []menu.Item) string {
	names := make([]string, 0, len(items))
	for _, it := range items {
		names = append(names, it.Name)
	}
	sort.Strings(names)
	return strings.Join(names, "\x1f")
}

// Recommend runs the exhaustive combination search: rank the catalog,
// truncate to PoolCeiling, enumerate every subset of size 1..MaxBundleSize,
// drop subsets over budget, sort by score desc / price asc / size desc,
// deduplicate by name set and return the first TopK bundles. An empty or
// short result is a valid outcome, not an error.
func (cfg Config) Recommend(items []menu.Item, q Query) ([]Bundle, error) {
	if q.TopK <= 0 || q.Budget < 0 {
		return nil, ErrInvalidQuery
	}

	ranked := cfg.Rank(items, q.ChosenTags, q.TargetSweetness)
	if len(ranked) > cfg.PoolCeiling {
		ranked = ranked[:cfg.PoolCeiling]
	}

	candidates := make([]Bundle, 0)
	for size := 1; size <= cfg.MaxBundleSize; size++ {
		forEachCombination(len(ranked), size, func(idxs []int) {
			total, score := 0, 0
			names := make(map[string]struct{}, len(idxs))
			for _, i := range idxs {
				total += ranked[i].Item.Price
				score += ranked[i].Score
				names[ranked[i].Item.Name] = struct{}{}
			}
			// raw catalog duplicates must not pair with themselves
			if len(names) != len(idxs) {
				return
			}
			if total > q.Budget {
				return
			}
			members := make([]menu.Item, 0, len(idxs))
			for _, i := range idxs {
				members = append(members, ranked[i].Item)
			}
			candidates = append(candidates, Bundle{
				Items:      members,
				TotalPrice: total,
				TotalScore: score,
				Size:       size,
			})
		})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].TotalScore != candidates[j].TotalScore {
			return candidates[i].TotalScore > candidates[j].TotalScore
		}
		if candidates[i].TotalPrice != candidates[j].TotalPrice {
			return candidates[i].TotalPrice < candidates[j].TotalPrice
		}
		// among equal score and price, a larger bundle is the better
		// customer outcome
		return candidates[i].Size > candidates[j].Size
	})

	out := make([]Bundle, 0, q.TopK)
	seen := make(map[string]struct{})
	for _, b := range candidates {
		sig := nameSignature(b.Items)
		if _, dup := seen[sig]; dup {
			continue
		}
		seen[sig] = struct{}{}
		out = append(out, b)
		if len(out) == q.TopK {
			break
		}
	}
	return out, nil
}

// forEachCombination calls fn with every k-subset of [0,n), in lexicographic
// order. The slice passed to fn is reused between calls.
func forEachCombination(n, k int, fn func(idxs []int)) {
	if k > n || k <= 0 {
		return
	}
	idxs := make([]int, k)
	for i := range idxs {
		idxs[i] = i
	}
	for {
		fn(idxs)
		// advance to the next combination
		i := k - 1
		for i >= 0 && idxs[i] == n-k+i {
			i--
		}
		if i < 0 {
			return
		}
		idxs[i]++
		for j := i + 1; j < k; j++ {
			idxs[j] = idxs[j-1] + 1
		}
	}
}
