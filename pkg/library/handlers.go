package library

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/openshelf/openshelf/pkg/models"
)

type handler struct {
	libraryService *Service
}

func (h *handler) createBook(c echo.Context) error {
	params := CreateBookPayload{}
	if err := c.Bind(&params); err != nil {
		return errors.WithStack(err)
	}

	book := models.NewBook(params.Code, params.Title, params.Author)
	if err := h.libraryService.RegisterBook(book); err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, book)
}

func (h *handler) retrieveBook(c echo.Context) error {
	book, err := h.libraryService.FindBook(c.Param("code"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, book)
}

func (h *handler) listBooks(c echo.Context) error {
	books := h.libraryService.ListBooks()

	resp := struct {
		Books []*models.Book `json:"books"`
		Total int            `json:"total"`
	}{books, len(books)}

	return c.JSON(http.StatusOK, resp)
}

func (h *handler) createBorrower(c echo.Context) error {
	params := CreateBorrowerPayload{}
	if err := c.Bind(&params); err != nil {
		return errors.WithStack(err)
	}

	borrower := models.NewBorrower(params.ID, params.Name)
	h.libraryService.RegisterBorrower(borrower)

	return c.JSON(http.StatusCreated, borrower)
}

func (h *handler) retrieveBorrower(c echo.Context) error {
	borrower, err := h.libraryService.FindBorrower(c.Param("id"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, borrower)
}

func (h *handler) removeBorrower(c echo.Context) error {
	h.libraryService.RemoveBorrower(c.Param("id"))

	return c.NoContent(http.StatusNoContent)
}

func (h *handler) listBorrowers(c echo.Context) error {
	borrowers := h.libraryService.ListBorrowers()

	resp := struct {
		Borrowers []*models.Borrower `json:"borrowers"`
		Total     int                `json:"total"`
	}{borrowers, len(borrowers)}

	return c.JSON(http.StatusOK, resp)
}

func (h *handler) borrowerLoans(c echo.Context) error {
	loans := h.libraryService.LoansForBorrower(c.Param("id"))

	resp := struct {
		Loans []*models.LoanEdge `json:"loans"`
		Total int                `json:"total"`
	}{loans, len(loans)}

	return c.JSON(http.StatusOK, resp)
}

func (h *handler) bookHolders(c echo.Context) error {
	holders := h.libraryService.BorrowersHolding(c.Param("code"))

	resp := struct {
		Holders []Holder `json:"holders"`
		Total   int      `json:"total"`
	}{holders, len(holders)}

	return c.JSON(http.StatusOK, resp)
}

func (h *handler) lend(c echo.Context) error {
	params := LendPayload{}
	if err := c.Bind(&params); err != nil {
		return errors.WithStack(err)
	}

	loan, err := h.libraryService.Lend(params.BookCode, params.BorrowerID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, loan)
}

func (h *handler) returnBook(c echo.Context) error {
	params := ReturnPayload{}
	if err := c.Bind(&params); err != nil {
		return errors.WithStack(err)
	}

	if err := h.libraryService.Return(params.BookCode, params.BorrowerID); err != nil {
		return err
	}

	book, err := h.libraryService.FindBook(params.BookCode)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, book)
}

func (h *handler) listLoans(c echo.Context) error {
	loans := h.libraryService.ListLoans()

	resp := struct {
		Loans []*models.Loan `json:"loans"`
		Total int            `json:"total"`
	}{loans, len(loans)}

	return c.JSON(http.StatusOK, resp)
}
