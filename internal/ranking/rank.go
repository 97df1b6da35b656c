package ranking

import (
	"sort"
	"strings"

	"github.com/stylora/stylist-intent/internal/models"
	"github.com/stylora/stylist-intent/internal/session"
)

// Score signals are additive and uncapped; a product can collect all of them.
const (
	likedBrandScore    = 3
	likedColorScore    = 2
	likedMaterialScore = 1
	likedProductScore  = 5
)

// Rank drops disliked products and orders the rest by the session's
// accumulated taste signals. The sort is stable: ties keep the candidate
// order, so identical inputs always rank identically.
func Rank(candidates []models.Product, prefs session.PreferenceState) []models.Product {
	type scoredProduct struct {
		product models.Product
		score   int
	}

	kept := make([]scoredProduct, 0, len(candidates))
	for _, p := range candidates {
		if contains(prefs.DislikedProductIDs, p.ID) {
			continue
		}

		score := 0
		if contains(prefs.LikedBrands, strings.ToLower(p.Brand)) {
			score += likedBrandScore
		}
		if contains(prefs.Colors, strings.ToLower(p.Color)) {
			score += likedColorScore
		}
		if contains(prefs.Materials, strings.ToLower(p.Material)) {
			score += likedMaterialScore
		}
		if contains(prefs.LikedProductIDs, p.ID) {
			score += likedProductScore
		}

		kept = append(kept, scoredProduct{product: p, score: score})
	}

	sort.SliceStable(kept, func(i, j int) bool {
		return kept[i].score > kept[j].score
	})

	ranked := make([]models.Product, len(kept))
	for i, sp := range kept {
		ranked[i] = sp.product
	}
	return ranked
}

func contains(list []string, value string) bool {
	for _, item := range list {
		if item == value {
			return true
		}
	}
	return false
}
