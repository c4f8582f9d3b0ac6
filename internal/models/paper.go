package models

// Paper represents one input row: a title and its delimited author list.
type Paper struct {
	Title   string `json:"title"`
	Authors string `json:"authors"`
}
