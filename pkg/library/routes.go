package library

import (
	"github.com/labstack/echo/v4"

	"github.com/openshelf/openshelf/pkg/sessions"
)

// RegisterRoutes registers all catalog routes. Every route requires an
// authenticated session.
func RegisterRoutes(e *echo.Echo, libraryService *Service, authMiddleware *sessions.Middleware) {
	h := &handler{
		libraryService: libraryService,
	}

	books := e.Group("/books")
	books.Use(authMiddleware.Authenticate)
	books.GET("", h.listBooks)
	books.POST("", h.createBook)
	books.GET("/:code", h.retrieveBook)
	books.GET("/:code/holders", h.bookHolders)

	borrowers := e.Group("/borrowers")
	borrowers.Use(authMiddleware.Authenticate)
	borrowers.GET("", h.listBorrowers)
	borrowers.POST("", h.createBorrower)
	borrowers.GET("/:id", h.retrieveBorrower)
	borrowers.DELETE("/:id", h.removeBorrower)
	borrowers.GET("/:id/loans", h.borrowerLoans)

	loans := e.Group("/loans")
	loans.Use(authMiddleware.Authenticate)
	loans.GET("", h.listLoans)
	loans.POST("", h.lend)
	loans.POST("/return", h.returnBook)
}
