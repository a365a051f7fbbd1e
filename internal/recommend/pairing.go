package recommend

import (
	"math/rand"
	"sort"

	"github.com/minseo040526/reccomendationaisystem/internal/menu"
)

// Pairings is the bounded sampling mode: draw one item from each pool
// uniformly at random and accept the pair when it fits the budget and its
// name set has not been accepted yet. Sampling stops after MaxAttempts draws
// or once TopK pairs are found. When either pool is empty or the attempt
// ceiling runs out first, remaining slots are filled with single items within
// budget, ranked by ascending sweetness delta then descending price.
//
// Results are not deterministic unless the caller seeds rng; only the
// structural invariants (budget, dedup, count <= TopK) are guaranteed.
func (cfg Config) Pairings(poolA, poolB []menu.Item, q Query, rng *rand.Rand) ([]Bundle, error) {
	if q.TopK <= 0 || q.Budget < 0 {
		return nil, ErrInvalidQuery
	}

	out := make([]Bundle, 0, q.TopK)
	seen := make(map[string]struct{})

	if len(poolA) > 0 && len(poolB) > 0 {
		for attempt := 0; attempt < cfg.MaxAttempts && len(out) < q.TopK; attempt++ {
			a := poolA[rng.Intn(len(poolA))]
			b := poolB[rng.Intn(len(poolB))]
			if a.Name == b.Name {
				continue
			}
			total := a.Price + b.Price
			if total > q.Budget {
				continue
			}
			pair := []menu.Item{a, b}
			sig := nameSignature(pair)
			if _, dup := seen[sig]; dup {
				continue
			}
			seen[sig] = struct{}{}
			out = append(out, Bundle{
				Items:      pair,
				TotalPrice: total,
				TotalScore: cfg.Score(a, q.ChosenTags, q.TargetSweetness) + cfg.Score(b, q.ChosenTags, q.TargetSweetness),
				Size:       2,
			})
		}
	}

	if len(out) < q.TopK {
		out = cfg.fillSingles(out, seen, poolA, poolB, q)
	}
	return out, nil
}

// fillSingles tops up the result with single-item bundles within budget.
func (cfg Config) fillSingles(out []Bundle, seen map[string]struct{}, poolA, poolB []menu.Item, q Query) []Bundle {
	singles := make([]menu.Item, 0, len(poolA)+len(poolB))
	singles = append(singles, poolA...)
	singles = append(singles, poolB...)

	sort.SliceStable(singles, func(i, j int) bool {
		di := sweetDelta(singles[i], q.TargetSweetness)
		dj := sweetDelta(singles[j], q.TargetSweetness)
		if di != dj {
			return di < dj
		}
		return singles[i].Price > singles[j].Price
	})

	for _, it := range singles {
		if len(out) >= q.TopK {
			break
		}
		if it.Price > q.Budget {
			continue
		}
		sig := nameSignature([]menu.Item{it})
		if _, dup := seen[sig]; dup {
			continue
		}
		seen[sig] = struct{}{}
		out = append(out, Bundle{
			Items:      []menu.Item{it},
			TotalPrice: it.Price,
			TotalScore: cfg.Score(it, q.ChosenTags, q.TargetSweetness),
			Size:       1,
		})
	}
	return out
}

func sweetDelta(it menu.Item, target int) int {
	d := it.Sweetness - target
	if d < 0 {
		d = -d
	}
	return d
}
