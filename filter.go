package pyrostock

import "strings"

// ByQuery returns a predicate that keeps items whose name or SKU contains
// the query, case-insensitively. An empty query keeps everything.
func ByQuery(query string) func(Item) bool {
	q := strings.ToLower(query)
	return func(it Item) bool {
		if q == "" {
			return true
		}
		return strings.Contains(strings.ToLower(it.Name), q) ||
			strings.Contains(strings.ToLower(it.SKU), q)
	}
}

// ByCategory returns a predicate that keeps items of the given category.
// An empty category keeps everything ("all categories").
func ByCategory(c Category) func(Item) bool {
	return func(it Item) bool {
		return c == "" || it.Category == c
	}
}
