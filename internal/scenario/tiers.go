package scenario

import (
	"fmt"
	"sort"
	"strings"
)

type CommentatorTier struct {
	Name        string
	Cost        float64
	Description string
}

var commentatorTiers = map[string]CommentatorTier{
	"local": {
		Name:        "local",
		Cost:        10000,
		Description: "Regional play-by-play crew, single booth.",
	},
	"regional": {
		Name:        "regional",
		Cost:        50000,
		Description: "Established broadcast team with a color commentator.",
	},
	"national": {
		Name:        "national",
		Cost:        100000,
		Description: "Headline broadcast crew with studio analysts.",
	},
}

func TierFor(name string) (CommentatorTier, error) {
	if tier, ok := commentatorTiers[strings.ToLower(strings.TrimSpace(name))]; ok {
		return tier, nil
	}
	var keys []string
	for k := range commentatorTiers {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return CommentatorTier{}, fmt.Errorf("commentator must be one of %v", keys)
}

func Tiers() []CommentatorTier {
	var out []CommentatorTier
	for _, tier := range commentatorTiers {
		out = append(out, tier)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Cost < out[j].Cost
	})
	return out
}
