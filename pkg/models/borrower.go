package models

// Borrower is a registered library member. HeldBooks mirrors the borrower's
// open loans in insertion order and must stay consistent with them.
type Borrower struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	HeldBooks []*Book `json:"held_books"`
}

// NewBorrower creates a borrower holding no books.
func NewBorrower(id, name string) *Borrower {
	return &Borrower{
		ID:        id,
		Name:      name,
		HeldBooks: []*Book{},
	}
}

// HoldBook appends book to the borrower's held books.
func (b *Borrower) HoldBook(book *Book) {
	b.HeldBooks = append(b.HeldBooks, book)
}

// ReleaseBook removes the book with the given code from the borrower's held
// books. Unknown codes are a no-op.
func (b *Borrower) ReleaseBook(code string) {
	held := b.HeldBooks[:0]
	for _, book := range b.HeldBooks {
		if book.Code != code {
			held = append(held, book)
		}
	}
	b.HeldBooks = held
}

// Holds reports whether the borrower currently holds the book with the given
// code.
func (b *Borrower) Holds(code string) bool {
	for _, book := range b.HeldBooks {
		if book.Code == code {
			return true
		}
	}
	return false
}
