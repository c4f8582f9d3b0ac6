package services

import (
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/log"
)

// CleanAuthorNames converts raw author names into canonical lowercase keys of
// the form "<lastname><firstinitial>" (e.g. "Doe J." -> "doej").
//
// Names that are only a single token are errors in the source data and are
// skipped silently. A structurally broken entry — a value that is not a
// string, or a second token with no first character — is different: it logs a
// diagnostic identifying the offending name and stops the pass entirely,
// returning only the keys accumulated so far. Callers must therefore treat
// the result as potentially partial.
func CleanAuthorNames(names []any) []string {
	return cleanAuthorNames(names, false)
}

// CleanAuthorNamesLenient behaves like CleanAuthorNames but skips
// structurally broken entries (still logging a diagnostic) instead of
// halting, so every name in the input is considered.
func CleanAuthorNamesLenient(names []any) []string {
	return cleanAuthorNames(names, true)
}

func cleanAuthorNames(names []any, lenient bool) []string {
	cleaned := []string{}
	for _, v := range names {
		name, ok := v.(string)
		if !ok {
			log.Error("Author name is not a string", "value", v)
			if lenient {
				continue
			}
			break
		}

		// Tokens are space-separated so a trailing space yields an empty
		// second token, which is a structural failure below.
		tokens := strings.Split(name, " ")

		// Single-token names are known-bad entries; drop them quietly.
		if len(tokens) == 1 {
			continue
		}

		lastName := tokens[0]
		if tokens[1] == "" {
			log.Error("Author name has no first initial", "name", name)
			if lenient {
				continue
			}
			break
		}
		// First character, not first byte: the initial may be multibyte.
		_, size := utf8.DecodeRuneInString(tokens[1])
		firstInitial := tokens[1][:size]

		key := strings.ToLower(lastName + firstInitial)
		key = strings.ReplaceAll(key, " ", "")
		cleaned = append(cleaned, key)
	}
	return cleaned
}
