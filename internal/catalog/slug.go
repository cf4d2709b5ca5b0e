package catalog

import "strings"

// Categories are the storefront departments in navigation order.
var Categories = []string{
	"Electronics",
	"Fashion",
	"Home & Kitchen",
	"Books",
	"Sports",
	"Beauty",
	"Automotive",
	"Toys",
}

// Slug turns a category name into its URL key, "Home & Kitchen" -> "home-kitchen".
func Slug(category string) string {
	s := strings.ToLower(strings.TrimSpace(category))
	s = strings.ReplaceAll(s, " & ", "-")
	return strings.Join(strings.Fields(s), "-")
}
