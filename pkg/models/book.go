package models

// Book is one title in the catalog, identified by its code. Availability is
// mutated only by the lend and return transitions.
type Book struct {
	Code      string `json:"code"`
	Title     string `json:"title"`
	Author    string `json:"author"`
	Available bool   `json:"available"`
}

// NewBook creates an available book.
func NewBook(code, title, author string) *Book {
	return &Book{
		Code:      code,
		Title:     title,
		Author:    author,
		Available: true,
	}
}
