// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

// RankTier is one row of the rank table. Max == -1 means unbounded.
type RankTier struct {
	Title string `json:"title"`
	Min   int    `json:"min"`
	Max   int    `json:"max"`
}

// RankTiers is the fixed ascending tier table. Bounds are inclusive.
var RankTiers = []RankTier{
	{Title: "🍚 Rice Rookie", Min: 0, Max: 10},
	{Title: "🥢 Miso Mind", Min: 11, Max: 25},
	{Title: "🍣 Sashimi Scholar", Min: 26, Max: 40},
	{Title: "🌶️ Wasabi Wizard", Min: 41, Max: 75},
	{Title: "🍱 Sushi Sensei", Min: 76, Max: 99},
	{Title: "🍶 Omakase Master", Min: 100, Max: -1},
}

// RankFor maps a point total to its tier title.
func RankFor(total int) string {
	for _, t := range RankTiers {
		if total >= t.Min && (t.Max == -1 || total <= t.Max) {
			return t.Title
		}
	}
	// Negative totals cannot occur (points floor at zero), but fall back to
	// the lowest tier rather than panic.
	return RankTiers[0].Title
}
