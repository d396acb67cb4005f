package cart

import (
	"errors"

	"github.com/dh139/cafef/models"
)

// ErrEmptyCart is returned by Finalize when nothing has been added.
var ErrEmptyCart = errors.New("cart is empty")

// Cart accumulates selected menu items for a single customer session. It is
// not safe for concurrent use; each session owns its own cart.
type Cart struct {
	lines []models.OrderLine
}

// New returns an empty cart.
func New() *Cart {
	return &Cart{}
}

// AddItem adds one unit of the given menu item. A line already holding the
// item has its quantity incremented; otherwise a new line is appended.
func (c *Cart) AddItem(id uint, name string, price float64) {
	for i := range c.lines {
		if c.lines[i].ItemID == id {
			c.lines[i].Quantity++
			return
		}
	}
	c.lines = append(c.lines, models.OrderLine{
		ItemID:   id,
		Name:     name,
		Price:    price,
		Quantity: 1,
	})
}

// ChangeQuantity adjusts the quantity of an existing line by delta. Unknown
// ids are ignored. A line whose quantity drops to zero or below is removed
// outright — a cart never holds a non-positive quantity.
func (c *Cart) ChangeQuantity(id uint, delta int) {
	for i := range c.lines {
		if c.lines[i].ItemID != id {
			continue
		}
		c.lines[i].Quantity += delta
		if c.lines[i].Quantity <= 0 {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
		}
		return
	}
}

// Lines returns a copy of the current lines in insertion order.
func (c *Cart) Lines() []models.OrderLine {
	out := make([]models.OrderLine, len(c.lines))
	copy(out, c.lines)
	return out
}

// Total recomputes the running total from scratch on every call so it can
// never drift from the lines.
func (c *Cart) Total() float64 {
	var total float64
	for _, l := range c.lines {
		total += l.Price * float64(l.Quantity)
	}
	return total
}

// Finalize snapshots the cart into an immutable order. Fails with
// ErrEmptyCart when no lines are present. The cart itself is left untouched.
func (c *Cart) Finalize() (models.Order, error) {
	if len(c.lines) == 0 {
		return models.Order{}, ErrEmptyCart
	}
	return models.Order{
		Lines: c.Lines(),
		Total: c.Total(),
	}, nil
}
