package httpapi

import (
	"errors"

	"bookshelf-be/internal/cart"
	"bookshelf-be/internal/httpapi/response"
	"bookshelf-be/internal/middleware"

	"github.com/gin-gonic/gin"
)

type CartHandler struct {
	svc cart.Service
}

func NewCartHandler(svc cart.Service) *CartHandler {
	return &CartHandler{svc: svc}
}

// Get returns the caller's cart with lines resolved against the live catalog,
// plus the derived subtotal and unit count.
func (h *CartHandler) Get(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Unauthorized(c, "not authenticated")
		return
	}

	lines, err := h.svc.GetCart(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, cart.ErrBookNotFound) {
			response.NotFound(c, "a book in the cart no longer exists")
			return
		}
		response.InternalError(c, "failed to load cart")
		return
	}
	response.Success(c, toCartResponse(lines))
}

func (h *CartHandler) Add(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Unauthorized(c, "not authenticated")
		return
	}

	var req AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "book_id and quantity are required")
		return
	}

	item, err := h.svc.AddToCart(c.Request.Context(), cart.AddToCartParams{
		UserID:   userID,
		BookID:   req.BookID,
		Quantity: req.Quantity,
	})
	if err != nil {
		writeCartError(c, err)
		return
	}

	response.Created(c, gin.H{
		"id":       item.ID,
		"book_id":  item.BookID,
		"quantity": item.Quantity,
	})
}

func (h *CartHandler) UpdateQuantity(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Unauthorized(c, "not authenticated")
		return
	}
	lineID, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req UpdateCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "quantity is required")
		return
	}

	item, err := h.svc.UpdateQuantity(c.Request.Context(), cart.UpdateQuantityParams{
		UserID:   userID,
		LineID:   lineID,
		Quantity: req.Quantity,
	})
	if err != nil {
		writeCartError(c, err)
		return
	}

	response.Success(c, gin.H{
		"id":       item.ID,
		"book_id":  item.BookID,
		"quantity": item.Quantity,
	})
}

func (h *CartHandler) Remove(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Unauthorized(c, "not authenticated")
		return
	}
	lineID, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.svc.RemoveFromCart(c.Request.Context(), userID, lineID); err != nil {
		writeCartError(c, err)
		return
	}
	response.NoContent(c)
}

func (h *CartHandler) Clear(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Unauthorized(c, "not authenticated")
		return
	}

	if err := h.svc.ClearCart(c.Request.Context(), userID); err != nil {
		response.InternalError(c, "failed to clear cart")
		return
	}
	response.NoContent(c)
}

func writeCartError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, cart.ErrInvalidQuantity):
		response.BadRequest(c, "quantity must be at least 1")
	case errors.Is(err, cart.ErrBookNotFound):
		response.NotFound(c, "book not found")
	case errors.Is(err, cart.ErrCartItemNotFound):
		response.NotFound(c, "cart item not found")
	default:
		response.InternalError(c, "cart operation failed")
	}
}
