package library

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openshelf/openshelf/pkg/errcodes"
	"github.com/openshelf/openshelf/pkg/models"
)

func registerBook(t *testing.T, svc *Service, code, title, author string) *models.Book {
	t.Helper()

	book := models.NewBook(code, title, author)
	require.NoError(t, svc.RegisterBook(book))
	return book
}

func registerBorrower(svc *Service, id, name string) *models.Borrower {
	borrower := models.NewBorrower(id, name)
	svc.RegisterBorrower(borrower)
	return borrower
}

func TestListBooksSortedByCode(t *testing.T) {
	t.Parallel()
	svc := NewService()

	registerBook(t, svc, "C3", "Third", "Author")
	registerBook(t, svc, "A1", "First", "Author")
	registerBook(t, svc, "B2", "Second", "Author")

	codes := []string{}
	for _, book := range svc.ListBooks() {
		codes = append(codes, book.Code)
	}
	assert.Equal(t, []string{"A1", "B2", "C3"}, codes)
}

func TestRegisterBookRejectsDuplicateCode(t *testing.T) {
	t.Parallel()
	svc := NewService()

	registerBook(t, svc, "B1", "Title", "Author")

	err := svc.RegisterBook(models.NewBook("B1", "Other", "Author"))
	require.Error(t, err)

	var errResp *errcodes.Error
	require.ErrorAs(t, err, &errResp)
	assert.Equal(t, http.StatusUnprocessableEntity, errResp.HTTPCode)
}

func TestFindBookNotFound(t *testing.T) {
	t.Parallel()
	svc := NewService()

	_, err := svc.FindBook("missing")
	assert.ErrorIs(t, err, errcodes.NotFound("Book"))
}

func TestLendUnknownBook(t *testing.T) {
	t.Parallel()
	svc := NewService()
	registerBorrower(svc, "U1", "Ana")

	_, err := svc.Lend("missing", "U1")
	assert.ErrorIs(t, err, errcodes.NotFound("Book"))
}

func TestLendUnknownBorrower(t *testing.T) {
	t.Parallel()
	svc := NewService()
	registerBook(t, svc, "B1", "Title", "Author")

	_, err := svc.Lend("B1", "missing")
	assert.ErrorIs(t, err, errcodes.NotFound("Borrower"))
}

func TestLendMarksBookUnavailable(t *testing.T) {
	t.Parallel()
	svc := NewService()
	registerBook(t, svc, "B1", "Title", "Author")
	registerBorrower(svc, "U1", "Ana")

	loan, err := svc.Lend("B1", "U1")
	require.NoError(t, err)
	assert.NotEmpty(t, loan.LoanedAt)
	assert.True(t, loan.Open())

	book, err := svc.FindBook("B1")
	require.NoError(t, err)
	assert.False(t, book.Available)
}

func TestLendHeldBooksContainsBookOnce(t *testing.T) {
	t.Parallel()
	svc := NewService()
	registerBook(t, svc, "B1", "Title", "Author")
	borrower := registerBorrower(svc, "U1", "Ana")

	_, err := svc.Lend("B1", "U1")
	require.NoError(t, err)

	count := 0
	for _, book := range borrower.HeldBooks {
		if book.Code == "B1" {
			count++
		}
	}
	assert.Equal(t, 1, count)

	require.NoError(t, svc.Return("B1", "U1"))
	assert.False(t, borrower.Holds("B1"))
}

func TestLendAlreadyOnLoan(t *testing.T) {
	t.Parallel()
	svc := NewService()
	registerBook(t, svc, "B1", "Title", "Author")
	registerBorrower(svc, "U1", "Ana")
	registerBorrower(svc, "U2", "Berta")

	_, err := svc.Lend("B1", "U1")
	require.NoError(t, err)

	_, err = svc.Lend("B1", "U2")
	assert.ErrorIs(t, err, errcodes.Conflict("Book is already on loan"))
}

func TestReturnClosesMostRecentOpenLoan(t *testing.T) {
	t.Parallel()
	svc := NewService()
	registerBook(t, svc, "B1", "Title", "Author")
	registerBorrower(svc, "U1", "Ana")

	_, err := svc.Lend("B1", "U1")
	require.NoError(t, err)
	require.NoError(t, svc.Return("B1", "U1"))

	book, err := svc.FindBook("B1")
	require.NoError(t, err)
	assert.True(t, book.Available)

	loans := svc.ListLoans()
	require.Len(t, loans, 1)
	assert.False(t, loans[0].Open())
	assert.NotEmpty(t, loans[0].ReturnedAt)
}

func TestReturnUnknownBookOrBorrower(t *testing.T) {
	t.Parallel()
	svc := NewService()
	registerBook(t, svc, "B1", "Title", "Author")
	registerBorrower(svc, "U1", "Ana")

	assert.ErrorIs(t, svc.Return("missing", "U1"), errcodes.NotFound("Book"))
	assert.ErrorIs(t, svc.Return("B1", "missing"), errcodes.NotFound("Borrower"))
}

func TestReturnAvailableBookStillSucceeds(t *testing.T) {
	t.Parallel()
	svc := NewService()
	registerBook(t, svc, "B1", "Title", "Author")
	registerBorrower(svc, "U1", "Ana")

	// Never lent; availability is not checked so this is a successful no-op.
	require.NoError(t, svc.Return("B1", "U1"))

	book, err := svc.FindBook("B1")
	require.NoError(t, err)
	assert.True(t, book.Available)
	assert.Empty(t, svc.ListLoans())
}

func TestLoansForBorrowerTwoBooks(t *testing.T) {
	t.Parallel()
	svc := NewService()
	registerBook(t, svc, "A", "First", "Author")
	registerBook(t, svc, "B", "Second", "Author")
	registerBorrower(svc, "U1", "Ana")

	_, err := svc.Lend("A", "U1")
	require.NoError(t, err)
	_, err = svc.Lend("B", "U1")
	require.NoError(t, err)

	edges := svc.LoansForBorrower("U1")
	require.Len(t, edges, 2)
	assert.Equal(t, "A", edges[0].Book.Code)
	assert.Equal(t, "B", edges[1].Book.Code)
}

func TestRelendOverwritesGraphEdgeKeepsHistory(t *testing.T) {
	t.Parallel()
	svc := NewService()
	registerBook(t, svc, "A", "Title", "Author")
	registerBorrower(svc, "U1", "Ana")

	_, err := svc.Lend("A", "U1")
	require.NoError(t, err)
	require.NoError(t, svc.Return("A", "U1"))
	_, err = svc.Lend("A", "U1")
	require.NoError(t, err)

	// The graph holds only the latest loan per pair; the second lend
	// overwrote the closed edge with an open one.
	edges := svc.LoansForBorrower("U1")
	require.Len(t, edges, 1)
	assert.True(t, edges[0].Open())

	// The flat history retains both records.
	loans := svc.ListLoans()
	require.Len(t, loans, 2)
	assert.False(t, loans[0].Open())
	assert.True(t, loans[1].Open())
}

func TestReturnUpdatesGraphEdgeInPlace(t *testing.T) {
	t.Parallel()
	svc := NewService()
	registerBook(t, svc, "A", "Title", "Author")
	registerBorrower(svc, "U1", "Ana")

	_, err := svc.Lend("A", "U1")
	require.NoError(t, err)
	require.NoError(t, svc.Return("A", "U1"))

	// The edge is closed, not removed.
	edges := svc.LoansForBorrower("U1")
	require.Len(t, edges, 1)
	assert.False(t, edges[0].Open())
	assert.NotEmpty(t, edges[0].ReturnedAt)
}

func TestBorrowersHolding(t *testing.T) {
	t.Parallel()
	svc := NewService()
	registerBook(t, svc, "A", "Title", "Author")
	registerBook(t, svc, "B", "Other", "Author")
	registerBorrower(svc, "U1", "Ana")
	registerBorrower(svc, "U2", "Berta")

	_, err := svc.Lend("A", "U1")
	require.NoError(t, err)
	_, err = svc.Lend("B", "U2")
	require.NoError(t, err)

	holders := svc.BorrowersHolding("A")
	require.Len(t, holders, 1)
	assert.Equal(t, "U1", holders[0].BorrowerID)
	assert.Equal(t, "A", holders[0].Loan.Book.Code)

	assert.Empty(t, svc.BorrowersHolding("missing"))
}

func TestRemoveBorrowerCascadesGraphNotHistory(t *testing.T) {
	t.Parallel()
	svc := NewService()
	registerBook(t, svc, "A", "Title", "Author")
	registerBorrower(svc, "U1", "Ana")

	_, err := svc.Lend("A", "U1")
	require.NoError(t, err)

	svc.RemoveBorrower("U1")

	_, err = svc.FindBorrower("U1")
	assert.ErrorIs(t, err, errcodes.NotFound("Borrower"))
	assert.Empty(t, svc.ListBorrowers())
	assert.Empty(t, svc.LoansForBorrower("U1"))

	// The flat history record is not retroactively closed.
	loans := svc.ListLoans()
	require.Len(t, loans, 1)
	assert.True(t, loans[0].Open())
}

func TestRemoveBorrowerUnknownIsNoop(t *testing.T) {
	t.Parallel()
	svc := NewService()
	registerBorrower(svc, "U1", "Ana")

	svc.RemoveBorrower("missing")

	assert.Len(t, svc.ListBorrowers(), 1)
}

func TestListBorrowersInsertionOrder(t *testing.T) {
	t.Parallel()
	svc := NewService()
	registerBorrower(svc, "U3", "Carla")
	registerBorrower(svc, "U1", "Ana")
	registerBorrower(svc, "U2", "Berta")

	ids := []string{}
	for _, borrower := range svc.ListBorrowers() {
		ids = append(ids, borrower.ID)
	}
	assert.Equal(t, []string{"U3", "U1", "U2"}, ids)
}

func TestLendReturnScenario(t *testing.T) {
	t.Parallel()
	svc := NewService()
	registerBook(t, svc, "B1", "Title", "Author")
	registerBorrower(svc, "U1", "Ana")

	_, err := svc.Lend("B1", "U1")
	require.NoError(t, err)

	_, err = svc.Lend("B1", "U1")
	assert.ErrorIs(t, err, errcodes.Conflict("Book is already on loan"))

	require.NoError(t, svc.Return("B1", "U1"))

	book, err := svc.FindBook("B1")
	require.NoError(t, err)
	assert.True(t, book.Available)
}
