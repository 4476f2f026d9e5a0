package httpapi

import (
	"time"

	"bookshelf-be/internal/book"
	"bookshelf-be/internal/cart"
	"bookshelf-be/internal/order"
	"bookshelf-be/internal/user"
)

// Monetary amounts cross the wire as two-place decimal strings.

type BookResponse struct {
	ID          uint    `json:"id"`
	Title       string  `json:"title"`
	Author      string  `json:"author"`
	Description string  `json:"description"`
	Price       string  `json:"price"`
	ImageURL    string  `json:"image_url"`
	Category    string  `json:"category"`
	Stock       int     `json:"stock"`
	Rating      float64 `json:"rating"`
	ReviewCount int     `json:"review_count"`
	Featured    bool    `json:"featured"`
	NewRelease  bool    `json:"new_release"`
}

func toBookResponse(b book.Book) BookResponse {
	return BookResponse{
		ID:          b.ID,
		Title:       b.Title,
		Author:      b.Author,
		Description: b.Description,
		Price:       b.Price.StringFixed(2),
		ImageURL:    b.ImageURL,
		Category:    b.Category,
		Stock:       b.Stock,
		Rating:      b.Rating,
		ReviewCount: b.ReviewCount,
		Featured:    b.Featured,
		NewRelease:  b.NewRelease,
	}
}

func toBookResponses(books []book.Book) []BookResponse {
	out := make([]BookResponse, 0, len(books))
	for _, b := range books {
		out = append(out, toBookResponse(b))
	}
	return out
}

type BookRequest struct {
	Title       string  `json:"title"`
	Author      string  `json:"author"`
	Description string  `json:"description"`
	Price       string  `json:"price"`
	ImageURL    string  `json:"image_url"`
	Category    string  `json:"category"`
	Stock       int     `json:"stock"`
	Rating      float64 `json:"rating"`
	ReviewCount int     `json:"review_count"`
	Featured    bool    `json:"featured"`
	NewRelease  bool    `json:"new_release"`
}

type RegisterRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type UserResponse struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	IsAdmin  bool   `json:"is_admin"`
}

type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

func toUserResponse(u *user.User) UserResponse {
	return UserResponse{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
		IsAdmin:  u.IsAdmin,
	}
}

type AddToCartRequest struct {
	BookID   uint `json:"book_id" binding:"required"`
	Quantity int  `json:"quantity" binding:"required"`
}

type UpdateCartRequest struct {
	Quantity int `json:"quantity" binding:"required"`
}

type CartLineResponse struct {
	ID       uint         `json:"id"`
	BookID   uint         `json:"book_id"`
	Quantity int          `json:"quantity"`
	AddedAt  time.Time    `json:"added_at"`
	Book     BookResponse `json:"book"`
}

type CartResponse struct {
	Items    []CartLineResponse `json:"items"`
	Subtotal string             `json:"subtotal"`
	Count    int                `json:"count"`
}

func toCartResponse(lines []cart.Line) CartResponse {
	items := make([]CartLineResponse, 0, len(lines))
	for _, l := range lines {
		items = append(items, CartLineResponse{
			ID:       l.ID,
			BookID:   l.BookID,
			Quantity: l.Quantity,
			AddedAt:  l.AddedAt,
			Book:     toBookResponse(l.Book),
		})
	}
	return CartResponse{
		Items:    items,
		Subtotal: cart.Subtotal(lines).StringFixed(2),
		Count:    cart.Count(lines),
	}
}

type OrderResponse struct {
	ID        uint      `json:"id"`
	Total     string    `json:"total"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

type OrderItemResponse struct {
	ID       uint   `json:"id"`
	OrderID  uint   `json:"order_id"`
	BookID   uint   `json:"book_id"`
	Quantity int    `json:"quantity"`
	Price    string `json:"price"`
}

func toOrderResponse(o order.Order) OrderResponse {
	return OrderResponse{
		ID:        o.ID,
		Total:     o.Total.StringFixed(2),
		Status:    string(o.Status),
		CreatedAt: o.CreatedAt,
	}
}

func toOrderItemResponses(items []order.OrderItem) []OrderItemResponse {
	out := make([]OrderItemResponse, 0, len(items))
	for _, item := range items {
		out = append(out, OrderItemResponse{
			ID:       item.ID,
			OrderID:  item.OrderID,
			BookID:   item.BookID,
			Quantity: item.Quantity,
			Price:    item.Price.StringFixed(2),
		})
	}
	return out
}
