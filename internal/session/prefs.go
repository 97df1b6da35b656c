package session

import (
	"strings"

	"github.com/stylora/stylist-intent/internal/models"
)

// historyLimit bounds the interaction history to the most recent entries.
const historyLimit = 15

// ApplyFilters folds one turn's filters into the preference state, field by
// field. Brand, color and material are appended as lower-cased unique values;
// budget bounds replace the stored bound independently when supplied. Size,
// category, gender and quantity describe the current query, not a lasting
// taste signal, and are not persisted.
func ApplyFilters(state *SessionState, filters models.QueryFilters) {
	prefs := &state.Preferences

	if filters.Brand != "" {
		prefs.LikedBrands = appendUnique(prefs.LikedBrands, strings.ToLower(filters.Brand))
	}
	if filters.Color != "" {
		prefs.Colors = appendUnique(prefs.Colors, strings.ToLower(filters.Color))
	}
	if filters.Material != "" {
		prefs.Materials = appendUnique(prefs.Materials, strings.ToLower(filters.Material))
	}
	if filters.Budget != nil {
		if filters.Budget.Min != nil {
			prefs.PriceRange.Min = filters.Budget.Min
		}
		if filters.Budget.Max != nil {
			prefs.PriceRange.Max = filters.Budget.Max
		}
	}
}

// ApplyFeedback applies one explicit feedback action. A product id is in at
// most one of liked/disliked at a time, and disliking also removes it from
// saved. Unknown actions leave the state untouched and return a validation
// error.
func ApplyFeedback(state *SessionState, productID, action string) error {
	prefs := &state.Preferences

	switch action {
	case models.ActionLike:
		prefs.LikedProductIDs = appendUnique(prefs.LikedProductIDs, productID)
		prefs.DislikedProductIDs = remove(prefs.DislikedProductIDs, productID)
	case models.ActionDislike:
		prefs.DislikedProductIDs = appendUnique(prefs.DislikedProductIDs, productID)
		prefs.LikedProductIDs = remove(prefs.LikedProductIDs, productID)
		prefs.SavedProductIDs = remove(prefs.SavedProductIDs, productID)
	case models.ActionSave:
		prefs.SavedProductIDs = appendUnique(prefs.SavedProductIDs, productID)
	case models.ActionRemoveSave:
		prefs.SavedProductIDs = remove(prefs.SavedProductIDs, productID)
	default:
		return models.NewValidationError("Unsupported feedback action")
	}

	return nil
}

// AppendHistory records a completed turn, dropping the oldest entries beyond
// the history limit.
func AppendHistory(state *SessionState, entry HistoryEntry) {
	state.History = append(state.History, entry)
	if len(state.History) > historyLimit {
		state.History = state.History[len(state.History)-historyLimit:]
	}
}

func appendUnique(list []string, value string) []string {
	for _, item := range list {
		if item == value {
			return list
		}
	}
	return append(list, value)
}

func remove(list []string, value string) []string {
	filtered := list[:0]
	for _, item := range list {
		if item != value {
			filtered = append(filtered, item)
		}
	}
	return filtered
}
