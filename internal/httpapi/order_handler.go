package httpapi

import (
	"errors"

	"bookshelf-be/internal/httpapi/response"
	"bookshelf-be/internal/middleware"
	"bookshelf-be/internal/order"

	"github.com/gin-gonic/gin"
)

type OrderHandler struct {
	svc order.Service
}

func NewOrderHandler(svc order.Service) *OrderHandler {
	return &OrderHandler{svc: svc}
}

// Place checks out the caller's cart. The whole placement either commits or
// leaves cart and catalog untouched.
func (h *OrderHandler) Place(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Unauthorized(c, "not authenticated")
		return
	}

	o, items, err := h.svc.PlaceOrder(c.Request.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, order.ErrCartEmpty):
			response.BadRequest(c, "cart is empty")
		case errors.Is(err, order.ErrBookNotFound):
			response.NotFound(c, "a book in the cart no longer exists")
		default:
			response.InternalError(c, "failed to place order")
		}
		return
	}

	response.Created(c, gin.H{
		"order": toOrderResponse(*o),
		"items": toOrderItemResponses(items),
	})
}

func (h *OrderHandler) List(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Unauthorized(c, "not authenticated")
		return
	}

	orders, err := h.svc.GetOrders(c.Request.Context(), userID)
	if err != nil {
		response.InternalError(c, "failed to list orders")
		return
	}

	out := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, toOrderResponse(o))
	}
	response.Success(c, out)
}

func (h *OrderHandler) Items(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Unauthorized(c, "not authenticated")
		return
	}
	orderID, ok := parseID(c, "id")
	if !ok {
		return
	}

	items, err := h.svc.GetOrderItems(c.Request.Context(), userID, orderID)
	if err != nil {
		if errors.Is(err, order.ErrOrderNotFound) {
			response.NotFound(c, "order not found")
			return
		}
		response.InternalError(c, "failed to load order items")
		return
	}
	response.Success(c, toOrderItemResponses(items))
}
