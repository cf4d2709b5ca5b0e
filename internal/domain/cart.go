package domain

import (
	"time"
)

type Cart struct {
	Items      []CartItem
	TotalItems int
	TotalPrice Money
}

func (c Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

// CartItem is a line item. Display and price fields are copied from the
// product when the line is created and never follow later catalog edits.
type CartItem struct {
	ProductID ProductID
	Name      string
	Image     string
	Category  string
	Price     Money
	Quantity  int

	AddedAt time.Time
}

func NewCartItem(p Product, quantity int, addedAt time.Time) CartItem {
	return CartItem{
		ProductID: p.ID,
		Name:      p.Name,
		Image:     p.Image,
		Category:  p.Category,
		Price:     p.Price,
		Quantity:  quantity,
		AddedAt:   addedAt,
	}
}

func (i CartItem) LineTotal() Money {
	return i.Price.Mul(i.Quantity)
}
