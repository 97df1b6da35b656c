package query

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/stylora/stylist-intent/internal/models"
)

var colorKeywords = []string{
	"red",
	"blue",
	"beige",
	"black",
	"white",
	"green",
	"olive",
	"ivory",
	"teal",
	"saffron",
	"pink",
	"yellow",
	"orange",
	"brown",
}

var categoryKeywords = []string{
	"kurta",
	"sneakers",
	"shoes",
	"shirt",
	"pants",
	"jeans",
	"saree",
	"dress",
	"top",
	"jacket",
}

var materialKeywords = []string{
	"cotton",
	"linen",
	"khaadi",
	"khadi",
	"silk",
	"denim",
	"modal",
	"suede",
	"mesh",
	"leather",
	"knit",
	"chanderi",
}

// Gender groups are checked in this order; the first group with a hit wins.
var genderKeywords = []struct {
	gender string
	words  []string
}{
	{"men", []string{"men", "male", "guy"}},
	{"women", []string{"women", "female", "woman", "lady"}},
	{"unisex", []string{"unisex"}},
}

var (
	// Longer tokens first so "xl" is not consumed as "l".
	sizeRegex       = regexp.MustCompile(`\b(xxl|xl|xs|uk\d+|s|m|l)\b`)
	priceMaxRegex   = regexp.MustCompile(`(under|below|less than|upto|up to|maximum|max)\s*₹?\s*(\d+)`)
	priceRangeRegex = regexp.MustCompile(`₹?\s*(\d{3,5})\s*(to|-)\s*₹?\s*(\d{3,5})`)
	brandRegex      = regexp.MustCompile(`by ([a-z0-9\s]+)`)
	quantityRegex   = regexp.MustCompile(`(\d+)\s*(options|choices|pairs|items)`)
)

var genderWordRegexes = buildGenderWordRegexes()

func buildGenderWordRegexes() map[string]*regexp.Regexp {
	patterns := make(map[string]*regexp.Regexp)
	for _, group := range genderKeywords {
		for _, word := range group.words {
			patterns[word] = regexp.MustCompile(`\b` + regexp.QuoteMeta(word) + `\b`)
		}
	}
	return patterns
}

// Heuristic extracts filters and meta from a message using fixed vocabularies
// and patterns. It is the always-available strategy the pipeline falls back to.
func Heuristic(message string) Result {
	lower := strings.ToLower(message)

	filters := models.QueryFilters{
		Color:    firstKeyword(lower, colorKeywords),
		Category: firstKeyword(lower, categoryKeywords),
		Material: firstKeyword(lower, materialKeywords),
		Gender:   detectGender(lower),
		Budget:   parseBudget(lower),
		Size:     parseSizes(lower),
	}

	if match := brandRegex.FindStringSubmatch(lower); match != nil {
		filters.Brand = strings.TrimSpace(match[1])
	}

	meta := models.QueryMeta{}
	if match := quantityRegex.FindStringSubmatch(lower); match != nil {
		meta.Quantity, _ = strconv.Atoi(match[1])
	}

	return Result{Filters: filters, Meta: meta}
}

func firstKeyword(text string, keywords []string) string {
	for _, keyword := range keywords {
		if strings.Contains(text, keyword) {
			return keyword
		}
	}
	return ""
}

func detectGender(text string) string {
	for _, group := range genderKeywords {
		for _, word := range group.words {
			if genderWordRegexes[word].MatchString(text) {
				return group.gender
			}
		}
	}
	return ""
}

func parseSizes(text string) []string {
	var sizes []string
	for _, match := range sizeRegex.FindAllString(text, -1) {
		size := strings.ToUpper(match)
		if !contains(sizes, size) {
			sizes = append(sizes, size)
		}
	}
	return sizes
}

// parseBudget tries the two-number range pattern first, then the upper-bound
// patterns. Currency symbols are stripped by the patterns themselves.
func parseBudget(text string) *models.Budget {
	if match := priceRangeRegex.FindStringSubmatch(text); match != nil {
		return &models.Budget{
			Min: parseAmount(match[1]),
			Max: parseAmount(match[3]),
		}
	}
	if match := priceMaxRegex.FindStringSubmatch(text); match != nil {
		return &models.Budget{
			Max: parseAmount(match[2]),
		}
	}
	return nil
}

func parseAmount(value string) *float64 {
	n, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return nil
	}
	return &n
}

func contains(list []string, value string) bool {
	for _, item := range list {
		if item == value {
			return true
		}
	}
	return false
}
