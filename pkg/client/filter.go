package client

import "strings"

// FilterByCategory narrows items to one category. An empty or "all"
// selection returns the input unchanged; the function never mutates
// its argument, so filtering twice yields the same result.
func FilterByCategory(items []MediaItem, category string) []MediaItem {
	if category == "" || strings.EqualFold(category, "all") {
		return items
	}
	out := make([]MediaItem, 0, len(items))
	for _, m := range items {
		if m.Category == category {
			out = append(out, m)
		}
	}
	return out
}
