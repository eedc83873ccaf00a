package model

import "github.com/shopspring/decimal"

// CartLine is one rendered line of a cart, priced at the current menu price.
type CartLine struct {
	ItemID   uint            `json:"item_id"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Quantity int             `json:"quantity"`
	Subtotal decimal.Decimal `json:"subtotal"`
}

// CartView is the priced view of a session cart.
type CartView struct {
	Lines []CartLine      `json:"lines"`
	Total decimal.Decimal `json:"total"`
}

// Admission is the outcome of a successful checkout.
type Admission struct {
	EntryID  uint `json:"entry_id"`
	Position int  `json:"position"`
}
