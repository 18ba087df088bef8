package entity

// SearchTerm is a normalised search term with the number of times it was used
type SearchTerm struct {
	Term  string
	Count int64
}
