package httpapi

import (
	"errors"
	"strconv"

	"bookshelf-be/internal/book"
	"bookshelf-be/internal/httpapi/response"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type BookHandler struct {
	svc book.Service
}

func NewBookHandler(svc book.Service) *BookHandler {
	return &BookHandler{svc: svc}
}

func (h *BookHandler) List(c *gin.Context) {
	books, err := h.svc.ListBooks(c.Request.Context())
	if err != nil {
		response.InternalError(c, "failed to list books")
		return
	}
	response.Success(c, toBookResponses(books))
}

func (h *BookHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	b, err := h.svc.GetBook(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, book.ErrBookNotFound) {
			response.NotFound(c, "book not found")
			return
		}
		response.InternalError(c, "failed to get book")
		return
	}
	response.Success(c, toBookResponse(*b))
}

// ByCategory serves /api/books/category/:category, where "all", "featured"
// and "new-release" are pseudo-categories rather than catalog values.
func (h *BookHandler) ByCategory(c *gin.Context) {
	ctx := c.Request.Context()
	category := c.Param("category")

	var (
		books []book.Book
		err   error
	)
	switch category {
	case "all":
		books, err = h.svc.ListBooks(ctx)
	case "featured":
		books, err = h.svc.ListFeatured(ctx)
	case "new-release":
		books, err = h.svc.ListNewReleases(ctx)
	default:
		books, err = h.svc.ListByCategory(ctx, category)
	}
	if err != nil {
		response.InternalError(c, "failed to list books")
		return
	}
	response.Success(c, toBookResponses(books))
}

func (h *BookHandler) Search(c *gin.Context) {
	books, err := h.svc.SearchBooks(c.Request.Context(), c.Param("query"))
	if err != nil {
		response.InternalError(c, "failed to search books")
		return
	}
	response.Success(c, toBookResponses(books))
}

func (h *BookHandler) AdminCreate(c *gin.Context) {
	input, ok := bindBookInput(c)
	if !ok {
		return
	}

	b, err := h.svc.AddBook(c.Request.Context(), input)
	if err != nil {
		writeBookError(c, err)
		return
	}
	response.Created(c, toBookResponse(*b))
}

// AdminUpdate replaces the stored record with the submitted one; there is no
// partial-merge semantics beyond what the client sends.
func (h *BookHandler) AdminUpdate(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req BookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	price, err := decimal.NewFromString(req.Price)
	if err != nil {
		response.ValidationFailed(c, map[string]string{"price": "price must be a decimal number"})
		return
	}

	updated, err := h.svc.UpdateBook(c.Request.Context(), book.Book{
		ID:          id,
		Title:       req.Title,
		Author:      req.Author,
		Description: req.Description,
		Price:       price,
		ImageURL:    req.ImageURL,
		Category:    req.Category,
		Stock:       req.Stock,
		Rating:      req.Rating,
		ReviewCount: req.ReviewCount,
		Featured:    req.Featured,
		NewRelease:  req.NewRelease,
	})
	if err != nil {
		writeBookError(c, err)
		return
	}
	response.Success(c, toBookResponse(*updated))
}

func (h *BookHandler) AdminDelete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.svc.RemoveBook(c.Request.Context(), id); err != nil {
		response.InternalError(c, "failed to delete book")
		return
	}
	response.NoContent(c)
}

func bindBookInput(c *gin.Context) (book.BookInput, bool) {
	var req BookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return book.BookInput{}, false
	}

	price, err := decimal.NewFromString(req.Price)
	if err != nil {
		response.ValidationFailed(c, map[string]string{"price": "price must be a decimal number"})
		return book.BookInput{}, false
	}

	return book.BookInput{
		Title:       req.Title,
		Author:      req.Author,
		Description: req.Description,
		Price:       price,
		ImageURL:    req.ImageURL,
		Category:    req.Category,
		Stock:       req.Stock,
		Rating:      req.Rating,
		ReviewCount: req.ReviewCount,
		Featured:    req.Featured,
		NewRelease:  req.NewRelease,
	}, true
}

func writeBookError(c *gin.Context, err error) {
	var vErr *book.ValidationError
	switch {
	case errors.As(err, &vErr):
		response.ValidationFailed(c, vErr.Fields)
	case errors.Is(err, book.ErrBookNotFound):
		response.NotFound(c, "book not found")
	default:
		response.InternalError(c, "catalog operation failed")
	}
}

func parseID(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		response.BadRequest(c, "invalid id")
		return 0, false
	}
	return uint(id), true
}
