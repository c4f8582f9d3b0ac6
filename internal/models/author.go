package models

// AuthorCount pairs the number of times a canonical author key was seen
// with its formatted display name (e.g. "J. Doe").
type AuthorCount struct {
	Count int    `json:"count"`
	Name  string `json:"name"`
}
