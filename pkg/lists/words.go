package lists

import (
	"strings"
	"unicode/utf8"

	"github.com/ib-77/listkata/pkg/coerce"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// StringsToIntegers parses every string, using 0 for those that are not numbers.
func StringsToIntegers(numbers []string) []float64 {
	parsed := make([]float64, len(numbers))
	for i, s := range numbers {
		parsed[i] = coerce.ToNumber(s)
	}
	return parsed
}

// RemoveDollars parses amounts that may start with a single "$".
func RemoveDollars(amounts []string) []float64 {
	parsed := make([]float64, len(amounts))
	for i, s := range amounts {
		parsed[i] = coerce.Dollars(s)
	}
	return parsed
}

// ShoutIfExclaiming drops questions (any message containing "?") and
// upper-cases the remaining messages that end in "!".
func ShoutIfExclaiming(messages []string) []string {
	upper := cases.Upper(language.Und)

	shouted := make([]string, 0, len(messages))
	for _, m := range messages {
		if strings.Contains(m, "?") {
			continue
		}
		if strings.HasSuffix(m, "!") {
			m = upper.String(m)
		}
		shouted = append(shouted, m)
	}
	return shouted
}

// CountShortWords counts words of fewer than four characters.
func CountShortWords(words []string) int {
	count := 0
	for _, w := range words {
		if utf8.RuneCountInString(w) < 4 {
			count++
		}
	}
	return count
}

// AllRGB reports whether every color is red, green or blue, ignoring case.
func AllRGB(colors []string) bool {
	lower := cases.Lower(language.Und)

	for _, c := range colors {
		switch lower.String(c) {
		case "red", "green", "blue":
		default:
			return false
		}
	}
	return true
}
