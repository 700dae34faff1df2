package domain

import "strings"

// TrendingSlot is one column of a trending layout. Keys are category names
// tried in order; the first that exists for the publication is used.
type TrendingSlot struct {
	Keys  []string `yaml:"keys"`
	Quota int      `yaml:"quota"`
}

// TrendingLayout fixes the columns of the slate for the listed publication slugs.
type TrendingLayout struct {
	Publications []string       `yaml:"publications"`
	Slots        []TrendingSlot `yaml:"slots"`
	Backfill     bool           `yaml:"backfill"`
}

type TrendingSlate struct {
	Publication Publication
	Articles    []Article
}

// Slug lowercases a publication name and turns spaces and underscores into hyphens.
func Slug(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	return strings.NewReplacer(" ", "-", "_", "-").Replace(s)
}
