package models

// Loan is one flat-history lending record. The borrower and book fields are
// shared references into the catalog. An empty ReturnedAt means the loan is
// still open.
type Loan struct {
	Book       *Book     `json:"book"`
	Borrower   *Borrower `json:"borrower"`
	LoanedAt   string    `json:"loaned_at"`
	ReturnedAt string    `json:"returned_at,omitempty"`
}

// Open reports whether the book has not been returned yet.
func (l *Loan) Open() bool {
	return l.ReturnedAt == ""
}

// LoanEdge is the loan-graph payload on the borrower→book edge. The graph
// keeps only the latest loan per pair, so a re-lend overwrites the prior
// edge while the flat Loan history retains both records.
type LoanEdge struct {
	Book       *Book     `json:"book"`
	Borrower   *Borrower `json:"borrower"`
	LoanedAt   string    `json:"loaned_at"`
	ReturnedAt string    `json:"returned_at,omitempty"`
}

// Open reports whether the edge's latest loan has not been returned yet.
func (e *LoanEdge) Open() bool {
	return e.ReturnedAt == ""
}
