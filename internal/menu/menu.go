package menu

// Item represents a single menu entry and maps to the `menu_item` table.
// JSON tags follow the camelCase convention used elsewhere in the project.
type Item struct {
	ID        int      `json:"itemId"`
	Category  string   `json:"category"`
	Name      string   `json:"name"`
	Price     int      `json:"price"`
	Sweetness int      `json:"sweetness"`
	Tags      []string `json:"tags"`
	Popular   bool     `json:"popular"`
	CreatedAt *string  `json:"createdAt,omitempty"`
	UpdatedAt *string  `json:"updatedAt,omitempty"`
}

// BakeryCategories are the categories eligible for bundle recommendations.
var BakeryCategories = []string{
	"bread",
	"sandwich",
	"salad",
	"dessert",
}

// DrinkCategories are the beverage categories used by the drink ranking
// endpoint and as the second pool in pairing mode.
var DrinkCategories = []string{
	"coffee",
	"latte",
	"ade",
	"smoothie",
	"tea",
}

// TagSet returns the item's tags as a set for intersection checks.
func (it Item) TagSet() map[string]struct{} {
	s := make(map[string]struct{}, len(it.Tags))
	for _, t := range it.Tags {
		s[t] = struct{}{}
	}
	return s
}

// InCategories reports whether the item's category is one of cats.
func (it Item) InCategories(cats []string) bool {
	for _, c := range cats {
		if it.Category == c {
			return true
		}
	}
	return false
}
