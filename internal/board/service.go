package board

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Service lists menu board images from a directory on disk. The files are
// served statically by main; this only produces the DTOs.
type Service struct {
	dir string
}

func NewService(dir string) *Service {
	return &Service{dir: dir}
}

var imageExtensions = map[string]struct{}{
	".png": {}, ".jpg": {}, ".jpeg": {}, ".webp": {},
}

func (s *Service) List(limit int) []Item {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return []Item{}
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(e.Name()))
		if _, ok := imageExtensions[ext]; !ok {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)

	out := make([]Item, 0, len(names))
	for i, name := range names {
		if limit > 0 && len(out) >= limit {
			break
		}
		out = append(out, Item{
			BoardID:  i + 1,
			BoardImg: "/boards/" + name,
			Alt:      fmt.Sprintf("menu board %d", i+1),
		})
	}
	return out
}
