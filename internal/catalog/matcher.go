package catalog

import (
	"strings"

	"github.com/stylora/stylist-intent/internal/models"
)

// Matches reports whether a product satisfies every declared filter. Absent
// fields impose no constraint; there is no partial-match scoring here, only a
// hard AND over declared fields.
func Matches(p models.Product, filters models.QueryFilters) bool {
	if filters.Category != "" && !strings.Contains(strings.ToLower(p.Category), strings.ToLower(filters.Category)) {
		return false
	}
	if filters.Color != "" && !strings.EqualFold(p.Color, filters.Color) {
		return false
	}
	if filters.Material != "" && !strings.Contains(strings.ToLower(p.Material), strings.ToLower(filters.Material)) {
		return false
	}
	// A product without a declared gender passes any gender filter, and
	// unisex products pass regardless of the requested gender.
	if filters.Gender != "" && p.Gender != "" {
		gender := strings.ToLower(p.Gender)
		if gender != strings.ToLower(filters.Gender) && gender != "unisex" {
			return false
		}
	}
	if filters.Brand != "" && !strings.Contains(strings.ToLower(p.Brand), strings.ToLower(filters.Brand)) {
		return false
	}
	if filters.Budget != nil {
		if filters.Budget.Min != nil && p.Price < *filters.Budget.Min {
			return false
		}
		if filters.Budget.Max != nil && p.Price > *filters.Budget.Max {
			return false
		}
	}
	if len(filters.Size) > 0 && !sizesIntersect(filters.Size, p.SizeOptions) {
		return false
	}
	return true
}

func sizesIntersect(requested, available []string) bool {
	options := make(map[string]struct{}, len(available))
	for _, option := range available {
		options[strings.ToUpper(option)] = struct{}{}
	}
	for _, size := range requested {
		if _, ok := options[strings.ToUpper(size)]; ok {
			return true
		}
	}
	return false
}
