package model

import "github.com/shopspring/decimal"

// Product is one line item. Its id is scoped to the owning order, so
// deleting one takes both identifiers.
type Product struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	Price      decimal.Decimal `json:"price"`
	Currency   string          `json:"currency"`
	Quantity   int             `json:"quantity"`
	TotalPrice decimal.Decimal `json:"totalPrice"`
}

// ProductInput is the POST .../products payload. TotalPrice is computed
// server-side from price and quantity.
type ProductInput struct {
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Currency string          `json:"currency"`
	Quantity int             `json:"quantity"`
}
