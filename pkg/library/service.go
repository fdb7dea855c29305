package library

import (
	"strings"
	"sync"

	"github.com/openshelf/openshelf/pkg/bintree"
	"github.com/openshelf/openshelf/pkg/digraph"
	"github.com/openshelf/openshelf/pkg/errcodes"
	"github.com/openshelf/openshelf/pkg/models"
	"github.com/openshelf/openshelf/pkg/timestamp"
)

// compareBooks orders books by code; it is the one comparator used for every
// operation against the book index.
func compareBooks(a, b *models.Book) int {
	return strings.Compare(a.Code, b.Code)
}

// Holder pairs a borrower id with that borrower's latest loan of a book.
type Holder struct {
	BorrowerID string           `json:"borrower_id"`
	Loan       *models.LoanEdge `json:"loan"`
}

// Service is the lending catalog. It owns the book index, the borrower list,
// the flat loan history, and the loan graph. The graph is a last-write-wins
// index of the latest loan per (borrower, book) pair; the flat history is the
// durable record.
//
// A single mutex guards every operation: Lend touches four structures and
// Return three, and those mutations must be observed as one unit.
type Service struct {
	mu        sync.Mutex
	books     *bintree.Tree[*models.Book]
	borrowers []*models.Borrower
	loans     []*models.Loan
	loanGraph *digraph.Graph[string, *models.LoanEdge]
}

// NewService creates an empty lending catalog.
func NewService() *Service {
	return &Service{
		books:     bintree.New[*models.Book](),
		borrowers: []*models.Borrower{},
		loans:     []*models.Loan{},
		loanGraph: digraph.New[string, *models.LoanEdge](),
	}
}

// RegisterBook inserts a book into the catalog index. Duplicate codes are
// rejected here since the index itself does not detect them.
func (s *Service) RegisterBook(book *models.Book) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.books.Search(&models.Book{Code: book.Code}, compareBooks); ok {
		return errcodes.ValidationError("Book code already exists")
	}
	s.books.Insert(book, compareBooks)
	return nil
}

// FindBook looks a book up by code.
func (s *Service) FindBook(code string) (*models.Book, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	book := s.findBook(code)
	if book == nil {
		return nil, errcodes.NotFound("Book")
	}
	return book, nil
}

// RegisterBorrower appends a borrower to the catalog. No uniqueness check is
// performed; callers own id uniqueness.
func (s *Service) RegisterBorrower(borrower *models.Borrower) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.borrowers = append(s.borrowers, borrower)
}

// FindBorrower looks a borrower up by id with a linear scan.
func (s *Service) FindBorrower(id string) (*models.Borrower, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	borrower := s.findBorrower(id)
	if borrower == nil {
		return nil, errcodes.NotFound("Borrower")
	}
	return borrower, nil
}

// RemoveBorrower removes the first borrower matching id from the list and
// drops the borrower's vertex from the loan graph, cascading its edges. An
// unknown id is a silent no-op. Flat-history loan records are left untouched,
// so open loans of a removed borrower stay open in the history.
func (s *Service) RemoveBorrower(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, borrower := range s.borrowers {
		if borrower.ID == id {
			s.borrowers = append(s.borrowers[:i], s.borrowers[i+1:]...)
			break
		}
	}
	s.loanGraph.RemoveVertex(id)
}

// Lend loans the book to the borrower. It fails with a not-found error when
// either is unknown and with a conflict when the book is already on loan.
// On success it flips availability, appends to the borrower's held books,
// appends an open record to the flat history, and upserts the borrower→book
// graph edge, all under one critical section.
func (s *Service) Lend(bookCode, borrowerID string) (*models.Loan, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	book := s.findBook(bookCode)
	if book == nil {
		return nil, errcodes.NotFound("Book")
	}
	borrower := s.findBorrower(borrowerID)
	if borrower == nil {
		return nil, errcodes.NotFound("Borrower")
	}
	if !book.Available {
		return nil, errcodes.Conflict("Book is already on loan")
	}

	now := timestamp.Now()
	book.Available = false
	borrower.HoldBook(book)

	loan := &models.Loan{Book: book, Borrower: borrower, LoanedAt: now}
	s.loans = append(s.loans, loan)

	s.loanGraph.AddEdge(borrowerID, bookCode, &models.LoanEdge{
		Book:     book,
		Borrower: borrower,
		LoanedAt: now,
	})

	return loan, nil
}

// Return gives the book back. It fails only when the book or borrower is
// unknown; the book's availability is deliberately not checked, so returning
// an already-available book reports success and leaves availability as is.
// On success it flips availability, removes the book from the borrower's held
// books, stamps the most recent open flat-history record for the pair, and
// closes the graph edge in place (the edge is kept, not removed).
func (s *Service) Return(bookCode, borrowerID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	book := s.findBook(bookCode)
	if book == nil {
		return errcodes.NotFound("Book")
	}
	borrower := s.findBorrower(borrowerID)
	if borrower == nil {
		return errcodes.NotFound("Borrower")
	}

	now := timestamp.Now()
	book.Available = true
	borrower.ReleaseBook(bookCode)

	for i := len(s.loans) - 1; i >= 0; i-- {
		loan := s.loans[i]
		if loan.Book.Code == bookCode && loan.Borrower.ID == borrowerID && loan.Open() {
			loan.ReturnedAt = now
			break
		}
	}

	if edge, ok := s.loanGraph.EdgeInfo(borrowerID, bookCode); ok {
		edge.ReturnedAt = now
	}

	return nil
}

// LoansForBorrower returns the borrower's latest loan per distinct book from
// the loan graph, open or closed. This is not full history; ListLoans is.
func (s *Service) LoansForBorrower(id string) []*models.LoanEdge {
	s.mu.Lock()
	defer s.mu.Unlock()

	edges := []*models.LoanEdge{}
	for _, code := range s.loanGraph.Neighbors(id) {
		if edge, ok := s.loanGraph.EdgeInfo(id, code); ok {
			edges = append(edges, edge)
		}
	}
	return edges
}

// BorrowersHolding scans every borrower vertex for an edge targeting the book
// code and returns the matches. O(V).
func (s *Service) BorrowersHolding(bookCode string) []Holder {
	s.mu.Lock()
	defer s.mu.Unlock()

	holders := []Holder{}
	for _, vertex := range s.loanGraph.Vertices() {
		if edge, ok := s.loanGraph.EdgeInfo(vertex, bookCode); ok {
			holders = append(holders, Holder{BorrowerID: vertex, Loan: edge})
		}
	}
	return holders
}

// ListBooks returns every book sorted by code via in-order index traversal.
func (s *Service) ListBooks() []*models.Book {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.books.List()
}

// ListBorrowers returns every borrower in registration order.
func (s *Service) ListBorrowers() []*models.Borrower {
	s.mu.Lock()
	defer s.mu.Unlock()

	borrowers := make([]*models.Borrower, len(s.borrowers))
	copy(borrowers, s.borrowers)
	return borrowers
}

// ListLoans returns the full flat loan history in insertion order.
func (s *Service) ListLoans() []*models.Loan {
	s.mu.Lock()
	defer s.mu.Unlock()

	loans := make([]*models.Loan, len(s.loans))
	copy(loans, s.loans)
	return loans
}

func (s *Service) findBook(code string) *models.Book {
	book, ok := s.books.Search(&models.Book{Code: code}, compareBooks)
	if !ok {
		return nil
	}
	return book
}

func (s *Service) findBorrower(id string) *models.Borrower {
	for _, borrower := range s.borrowers {
		if borrower.ID == id {
			return borrower
		}
	}
	return nil
}
