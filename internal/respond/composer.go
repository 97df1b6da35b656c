package respond

import (
	"fmt"
	"strings"

	"github.com/stylora/stylist-intent/internal/models"
)

const (
	noMatchText = "I could not find a perfect match yet. Would you like to adjust the color, price range, or category?"
	genericText = "Here are a few recommendations I think you will like:"
	followUp    = "Would you like to narrow this down by delivery time, rating, or explore similar styles?"
)

const maxSuggestions = 3

// Compose derives the assistant's reply purely from the filters and the final
// result slice.
func Compose(filters models.QueryFilters, results []models.ProductSummary) models.AssistantMessage {
	if len(results) == 0 {
		return models.AssistantMessage{Text: noMatchText}
	}

	var descriptors []string
	if filters.Color != "" {
		descriptors = append(descriptors, filters.Color)
	}
	if filters.Material != "" {
		descriptors = append(descriptors, filters.Material)
	}
	if filters.Category != "" {
		category := filters.Category
		if filters.Gender != "" {
			category += " for " + filters.Gender
		}
		descriptors = append(descriptors, category)
	}

	text := genericText
	if len(descriptors) > 0 {
		text = fmt.Sprintf("Here are some %s options I picked for you:", strings.Join(descriptors, " "))
	}

	return models.AssistantMessage{
		Text:     text,
		FollowUp: followUp,
	}
}

// Suggestions returns up to three next-step prompts in fixed priority order.
func Suggestions(filters models.QueryFilters) []string {
	suggestions := []string{}
	if filters.Color == "" {
		suggestions = append(suggestions, "Show me the same style in a different color")
	}
	if filters.Budget == nil || filters.Budget.Max == nil {
		suggestions = append(suggestions, "Keep it under ₹2500")
	}
	if filters.Material == "" {
		suggestions = append(suggestions, "Find something in breathable linen")
	}
	suggestions = append(suggestions, "Show me more casual weekend outfits")

	if len(suggestions) > maxSuggestions {
		suggestions = suggestions[:maxSuggestions]
	}
	return suggestions
}
