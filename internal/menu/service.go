package menu

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List() []Item {
	return s.repo.List()
}

// ListBakery returns the items eligible for bundle recommendations.
func (s *Service) ListBakery() []Item {
	return s.repo.ListByCategories(BakeryCategories)
}

// ListDrinks returns beverage items, optionally narrowed to one category.
func (s *Service) ListDrinks(category string) []Item {
	if category == "" {
		return s.repo.ListByCategories(DrinkCategories)
	}
	return s.repo.ListByCategories([]string{category})
}

func (s *Service) GetByID(id int) (Item, error) {
	return s.repo.GetByID(id)
}

func (s *Service) Create(it Item) (Item, error) {
	return s.repo.Create(it)
}

func (s *Service) Update(id int, it Item) (Item, error) {
	return s.repo.Update(id, it)
}

func (s *Service) Delete(id int) error {
	return s.repo.Delete(id)
}

func (s *Service) Tags() []string {
	return s.repo.Tags()
}

// ResetItems replaces all items with the given list (used for dev / seeding).
func (s *Service) ResetItems(items []Item) error {
	return s.repo.Reset(items)
}

// ImportCSV loads the catalog from a CSV file and replaces the current items.
func (s *Service) ImportCSV(path string, cfg LoaderConfig) error {
	items, err := LoadCSVFile(path, cfg)
	if err != nil {
		return err
	}
	return s.repo.Reset(items)
}
