package order

import "errors"

var (
	ErrOrderNotFound = errors.New("order not found")
	ErrCartEmpty     = errors.New("cart is empty")
	ErrBookNotFound  = errors.New("book referenced by cart no longer exists")
)
