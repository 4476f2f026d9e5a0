package httpapi

import (
	"bookshelf-be/internal/book"
	"bookshelf-be/internal/cart"
	"bookshelf-be/internal/httpapi/response"
	"bookshelf-be/internal/metrics"
	"bookshelf-be/internal/middleware"
	"bookshelf-be/internal/order"
	"bookshelf-be/internal/user"

	"github.com/gin-gonic/gin"
)

type Services struct {
	Books  book.Service
	Users  user.Service
	Carts  cart.Service
	Orders order.Service
	Stats  *metrics.Stats
}

// NewRouter wires the REST surface. Catalog reads and auth are public; cart
// and order routes require a token; catalog mutations require the admin flag.
func NewRouter(svcs Services) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logging(svcs.Stats))
	r.Use(middleware.RateLimit())

	api := r.Group("/api")

	api.GET("/health", func(c *gin.Context) {
		response.Success(c, gin.H{
			"status":        "ok",
			"requests":      svcs.Stats.Requests.Load(),
			"orders_placed": svcs.Stats.OrdersPlaced.Load(),
			"units_sold":    svcs.Stats.UnitsSold.Load(),
		})
	})

	books := NewBookHandler(svcs.Books)
	api.GET("/books", books.List)
	api.GET("/books/:id", books.Get)
	api.GET("/books/category/:category", books.ByCategory)
	api.GET("/books/search/:query", books.Search)

	users := NewUserHandler(svcs.Users)
	api.POST("/users/register", users.Register)
	api.POST("/users/login", users.Login)

	carts := NewCartHandler(svcs.Carts)
	cartGroup := api.Group("/cart", middleware.Auth())
	cartGroup.GET("", carts.Get)
	cartGroup.POST("", carts.Add)
	cartGroup.PATCH("/:id", carts.UpdateQuantity)
	cartGroup.DELETE("/:id", carts.Remove)
	cartGroup.DELETE("", carts.Clear)

	orders := NewOrderHandler(svcs.Orders)
	orderGroup := api.Group("/orders", middleware.Auth())
	orderGroup.POST("", orders.Place)
	orderGroup.GET("", orders.List)
	orderGroup.GET("/:id/items", orders.Items)

	admin := api.Group("/admin", middleware.Auth(), middleware.RequireAdmin())
	admin.POST("/books", books.AdminCreate)
	admin.PUT("/books/:id", books.AdminUpdate)
	admin.DELETE("/books/:id", books.AdminDelete)

	return r
}
