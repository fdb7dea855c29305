package library

// CreateBookPayload represents the request body for registering a book.
type CreateBookPayload struct {
	Code   string `json:"code" form:"code" validate:"required,min=1,max=50"`
	Title  string `json:"title" form:"title" validate:"required,max=200"`
	Author string `json:"author" form:"author" validate:"required,max=200"`
}

// CreateBorrowerPayload represents the request body for registering a
// borrower.
type CreateBorrowerPayload struct {
	ID   string `json:"id" form:"id" validate:"required,min=1,max=50"`
	Name string `json:"name" form:"name" validate:"required,max=200"`
}

// LendPayload represents the request body for taking out a loan.
type LendPayload struct {
	BookCode   string `json:"book_code" form:"book_code" validate:"required"`
	BorrowerID string `json:"borrower_id" form:"borrower_id" validate:"required"`
}

// ReturnPayload represents the request body for returning a book.
type ReturnPayload struct {
	BookCode   string `json:"book_code" form:"book_code" validate:"required"`
	BorrowerID string `json:"borrower_id" form:"borrower_id" validate:"required"`
}
