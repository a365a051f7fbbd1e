package recommend

import (
	"math/rand"
	"time"

	"github.com/minseo040526/reccomendationaisystem/internal/menu"
)

// Catalog is the read-only view of the menu the engine consumes.
// *menu.Service satisfies it.
type Catalog interface {
	ListBakery() []menu.Item
	ListDrinks(category string) []menu.Item
}

// Service wires the pure engine to the catalog. Each call takes an immutable
// catalog snapshot and holds no state between calls.
type Service struct {
	catalog Catalog
	cfg     Config
	newRNG  func() *rand.Rand
}

func NewService(catalog Catalog, cfg Config) *Service {
	return &Service{
		catalog: catalog,
		cfg:     cfg,
		newRNG: func() *rand.Rand {
			return rand.New(rand.NewSource(time.Now().UnixNano()))
		},
	}
}

// WithRNG overrides the random source factory (seeded in tests).
func (s *Service) WithRNG(newRNG func() *rand.Rand) *Service {
	s.newRNG = newRNG
	return s
}

// Bundles runs the exhaustive search over the bakery catalog.
func (s *Service) Bundles(q Query) ([]Bundle, error) {
	if q.TopK == 0 {
		q.TopK = s.cfg.TopK
	}
	return s.cfg.Recommend(s.catalog.ListBakery(), q)
}

// Drinks ranks a drink category by sweetness closeness and popularity alone
// (no chosen tags) and returns the top entries.
func (s *Service) Drinks(category string, targetSweetness, limit int) []ScoredItem {
	if limit <= 0 {
		limit = s.cfg.TopK
	}
	ranked := s.cfg.Rank(s.catalog.ListDrinks(category), nil, targetSweetness)
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}

// Pairings runs the sampling mode across the drink and bakery pools.
func (s *Service) Pairings(q Query) ([]Bundle, error) {
	if q.TopK == 0 {
		q.TopK = s.cfg.TopK
	}
	return s.cfg.Pairings(s.catalog.ListDrinks(""), s.catalog.ListBakery(), q, s.newRNG())
}
