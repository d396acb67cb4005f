package models

// OrderLine is one billed row of a finalized order. Name and price are
// denormalized copies taken from the menu item at the time it was added.
type OrderLine struct {
	ItemID   uint    `json:"id"`
	Name     string  `json:"name" binding:"required"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity" binding:"required,gt=0"`
}

// Order is an immutable snapshot of a cart at checkout time.
type Order struct {
	Lines []OrderLine `json:"lines"`
	Total float64     `json:"total"`
}
