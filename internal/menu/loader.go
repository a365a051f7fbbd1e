package menu

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"
)

// LoaderConfig controls how raw catalog rows are normalized.
type LoaderConfig struct {
	// PopularSynonyms is the tag set that marks an item as popular.
	PopularSynonyms []string
	// CoreTags, when non-empty, restricts tags to this whitelist after
	// normalization. Empty means free vocabulary.
	CoreTags []string
}

// DefaultLoaderConfig returns the loader settings used in production.
func DefaultLoaderConfig() LoaderConfig {
	return LoaderConfig{
		PopularSynonyms: []string{"popular", "bestseller", "signature"},
	}
}

var tagSplitter = regexp.MustCompile(`[,\|/; ]+`)

// ParseTags splits raw tag text on commas, pipes, slashes, semicolons and
// spaces, strips every '#', trims, and drops empties and literal "nan".
// Duplicates are removed keeping first-seen order.
func ParseTags(raw string, cfg LoaderConfig) []string {
	tokens := tagSplitter.Split(raw, -1)
	seen := make(map[string]struct{}, len(tokens))
	out := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		t := strings.TrimSpace(strings.ReplaceAll(tok, "#", ""))
		if t == "" || strings.EqualFold(t, "nan") {
			continue
		}
		if len(cfg.CoreTags) > 0 && !containsString(cfg.CoreTags, t) {
			continue
		}
		if _, dup := seen[t]; dup {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}

// LoadCSV reads a menu catalog from r. The header must contain the
// category, name, price and sweetness columns; a tags column and any extra
// columns are folded into the tag text. Malformed price/sweetness values
// default to 0 rather than failing the load.
func LoadCSV(r io.Reader, cfg LoaderConfig) ([]Item, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read menu header: %w", err)
	}
	col := make(map[string]int, len(header))
	for i, h := range header {
		col[strings.TrimSpace(h)] = i
	}
	for _, required := range []string{"category", "name", "price", "sweetness"} {
		if _, ok := col[required]; !ok {
			return nil, fmt.Errorf("menu csv is missing column %q", required)
		}
	}

	known := map[string]struct{}{
		"category": {}, "name": {}, "price": {}, "sweetness": {}, "tags": {},
	}

	items := make([]Item, 0)
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read menu row: %w", err)
		}

		field := func(name string) string {
			i, ok := col[name]
			if !ok || i >= len(rec) {
				return ""
			}
			return strings.TrimSpace(rec[i])
		}

		// collect tag text from the tags column plus any extra columns,
		// walking the header so the fold order stays deterministic
		rawTags := field("tags")
		for i, h := range header {
			name := strings.TrimSpace(h)
			if _, isKnown := known[name]; isKnown {
				continue
			}
			if i < len(rec) && rec[i] != "" {
				rawTags += "," + rec[i]
			}
		}

		tags := ParseTags(rawTags, cfg)
		items = append(items, Item{
			Category:  field("category"),
			Name:      field("name"),
			Price:     atoiOrZero(field("price")),
			Sweetness: atoiOrZero(field("sweetness")),
			Tags:      tags,
			Popular:   hasAnyTag(tags, cfg.PopularSynonyms),
		})
	}
	return items, nil
}

// LoadCSVFile is a convenience wrapper around LoadCSV for a file path.
func LoadCSVFile(path string, cfg LoaderConfig) ([]Item, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open menu file: %w", err)
	}
	defer f.Close()
	return LoadCSV(f, cfg)
}

func atoiOrZero(s string) int {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return v
}

func hasAnyTag(tags []string, wanted []string) bool {
	for _, t := range tags {
		if containsString(wanted, t) {
			return true
		}
	}
	return false
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
