package services

import (
	"strings"
	"unicode/utf8"

	"authortally/internal/models"
)

// CountAuthors tallies canonical author keys into an ordered table of counts
// and display names. Keys are assumed well-formed: all but the last character
// form the last name, the last character is the first initial.
//
// Each distinct key appears exactly once, in first-seen order, and the counts
// sum to len(keys). The display name is "<Initial>. <Lastname>", e.g.
// "doej" -> "J. Doe".
func CountAuthors(keys []string) []models.AuthorCount {
	counts := make(map[string]int)
	var order []string

	for _, key := range keys {
		if _, seen := counts[key]; !seen {
			order = append(order, key)
		}
		counts[key]++
	}

	table := make([]models.AuthorCount, 0, len(order))
	for _, key := range order {
		table = append(table, models.AuthorCount{
			Count: counts[key],
			Name:  FormatAuthorName(key),
		})
	}
	return table
}

// FormatAuthorName renders a canonical key as its display form:
// the final character upper-cased as the initial, the rest capitalized as
// the last name. Characters here are runes, not bytes — both the initial and
// the last name may be non-ASCII.
func FormatAuthorName(key string) string {
	_, size := utf8.DecodeLastRuneInString(key)
	lastName := capitalize(key[:len(key)-size])
	firstInitial := strings.ToUpper(key[len(key)-size:])
	return firstInitial + ". " + lastName
}

// capitalize upper-cases the first character and lower-cases the remainder.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	_, size := utf8.DecodeRuneInString(s)
	return strings.ToUpper(s[:size]) + strings.ToLower(s[size:])
}
