// Package cart holds shopping cart state: an insertion-ordered set of
// lines keyed by product, and a session-scoped store of carts.
package cart

import (
	"aesthetic-cakes/internal/model"

	"github.com/shopspring/decimal"
)

// MaxQuantity is the largest quantity a single cart line can hold.
const MaxQuantity = 99

// Cart is an ordered collection of cart lines, unique by product key.
// Lines keep the position at which their product was first added.
// A line's quantity is always between 1 and MaxQuantity; setting it to 0
// removes the line.
//
// A Cart is not safe for concurrent use. Store serialises access.
type Cart struct {
	order []model.ProductKey
	lines map[model.ProductKey]*model.CartLine
}

// New returns an empty cart.
func New() *Cart {
	return &Cart{
		lines: make(map[model.ProductKey]*model.CartLine),
	}
}

// Add puts one unit of product into the cart. An existing line is
// incremented in place, stopping at MaxQuantity; otherwise a new line is
// appended.
func (c *Cart) Add(product model.Product) {
	key := product.Key()
	if line, ok := c.lines[key]; ok {
		if line.Quantity < MaxQuantity {
			line.Quantity++
		}
		return
	}

	c.order = append(c.order, key)
	c.lines[key] = &model.CartLine{
		Key:      key,
		Product:  product,
		Quantity: 1,
	}
}

// UpdateQuantity sets the quantity of an existing line. A quantity of 0
// removes the line. Absent keys and quantities outside 0..MaxQuantity are
// ignored.
func (c *Cart) UpdateQuantity(key model.ProductKey, quantity int) {
	if quantity == 0 {
		c.Remove(key)
		return
	}
	if quantity < 0 || quantity > MaxQuantity {
		return
	}

	if line, ok := c.lines[key]; ok {
		line.Quantity = quantity
	}
}

// Remove deletes the line for key, if present.
func (c *Cart) Remove(key model.ProductKey) {
	if _, ok := c.lines[key]; !ok {
		return
	}

	delete(c.lines, key)
	for i, k := range c.order {
		if k == key {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
}

// TotalCount returns the sum of all line quantities.
func (c *Cart) TotalCount() int {
	total := 0
	for _, line := range c.lines {
		total += line.Quantity
	}
	return total
}

// Len returns the number of distinct lines.
func (c *Cart) Len() int {
	return len(c.order)
}

// Quantity returns the quantity held for key, or 0.
func (c *Cart) Quantity(key model.ProductKey) int {
	if line, ok := c.lines[key]; ok {
		return line.Quantity
	}
	return 0
}

// Lines returns a copy of the lines in insertion order.
func (c *Cart) Lines() []model.CartLine {
	lines := make([]model.CartLine, 0, len(c.order))
	for _, key := range c.order {
		lines = append(lines, *c.lines[key])
	}
	return lines
}

// Clone returns an independent copy of the cart.
func (c *Cart) Clone() *Cart {
	clone := &Cart{
		order: make([]model.ProductKey, len(c.order)),
		lines: make(map[model.ProductKey]*model.CartLine, len(c.lines)),
	}
	copy(clone.order, c.order)
	for key, line := range c.lines {
		l := *line
		clone.lines[key] = &l
	}
	return clone
}

// View renders the cart with per-line totals and a subtotal. Lines whose
// display price carries no amount are marked unpriced and left out of the
// subtotal.
func (c *Cart) View() model.CartResponse {
	resp := model.CartResponse{
		Lines:    make([]model.CartLineView, 0, len(c.order)),
		Subtotal: decimal.Zero,
	}

	for _, line := range c.Lines() {
		view := model.CartLineView{
			Key:       line.Key.String(),
			Product:   line.Product,
			Quantity:  line.Quantity,
			LineTotal: decimal.Zero,
		}
		if price, ok := model.ParsePrice(line.Product.Price); ok {
			view.Priced = true
			view.LineTotal = price.Mul(decimal.NewFromInt(int64(line.Quantity)))
			resp.Subtotal = resp.Subtotal.Add(view.LineTotal)
		}
		resp.Lines = append(resp.Lines, view)
		resp.TotalCount += line.Quantity
	}

	return resp
}
