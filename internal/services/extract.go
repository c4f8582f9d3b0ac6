package services

import (
	"strings"
)

// AuthorDelimiter separates author names inside a single authors field.
const AuthorDelimiter = ", "

// ExtractAuthors flattens a sequence of raw author fields into individual
// author names, splitting each string field on ", " and preserving order
// (field order, then within-field order).
//
// Values that are not strings (for example a NULL scanned from the database)
// are passed through unsplit; CleanAuthorNames decides what to do with them.
// Empty fields are likewise kept as-is — filtering is not this stage's job.
func ExtractAuthors(fields []any) []any {
	var names []any
	for _, field := range fields {
		s, ok := field.(string)
		if !ok {
			names = append(names, field)
			continue
		}
		for _, name := range strings.Split(s, AuthorDelimiter) {
			names = append(names, name)
		}
	}
	return names
}
