package book

import "github.com/shopspring/decimal"

// Book is the authoritative catalog record. The catalog store exclusively
// owns these; carts and orders refer to them by id only.
type Book struct {
	ID          uint
	Title       string
	Author      string
	Description string
	Price       decimal.Decimal
	ImageURL    string
	Category    string
	Stock       int
	Rating      float64
	ReviewCount int
	Featured    bool
	NewRelease  bool
}

// BookInput is the admin payload for creating a book. The id is assigned by
// the store. Rating and review count are display data supplied as-is; nothing
// here computes them.
type BookInput struct {
	Title       string
	Author      string
	Description string
	Price       decimal.Decimal
	ImageURL    string
	Category    string
	Stock       int
	Rating      float64
	ReviewCount int
	Featured    bool
	NewRelease  bool
}
