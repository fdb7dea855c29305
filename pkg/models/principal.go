package models

// Principal is an authenticatable identity, kept separate from Borrower:
// principals log in, borrowers take out books. Searchable by id and by name.
type Principal struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	PasswordHash string `json:"-"` // Never expose password hash
}
