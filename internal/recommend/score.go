package recommend

import (
	"github.com/minseo040526/reccomendationaisystem/internal/menu"
)

// Score computes the desirability of a single item for the given preferences:
// TagWeight per matched tag, plus max(0, SweetBase - |sweetness - target|),
// plus PopularBonus for popular items. It is pure and never fails; malformed
// sweetness values just produce a lower score.
func (cfg Config) Score(it menu.Item, chosenTags []string, targetSweetness int) int {
	itemTags := it.TagSet()
	chosen := make(map[string]struct{}, len(chosenTags))
	for _, t := range chosenTags {
		chosen[t] = struct{}{}
	}

	tagMatch := 0
	for t := range chosen {
		if _, ok := itemTags[t]; ok {
			tagMatch++
		}
	}

	delta := it.Sweetness - targetSweetness
	if delta < 0 {
		delta = -delta
	}
	sweetScore := cfg.SweetBase - delta
	if sweetScore < 0 {
		sweetScore = 0
	}

	popularBonus := 0
	if it.Popular {
		popularBonus = cfg.PopularBonus
	}

	return tagMatch*cfg.TagWeight + sweetScore + popularBonus
}
