package inventory

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Item is a retail item. It is a value type: copies share nothing
// mutable with the original.
type Item struct {
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Category Category        `json:"category"`
}

// NewItem creates an item priced with a float, as catalogs are usually written.
func NewItem(name string, price float64, category Category) Item {
	return Item{Name: name, Price: decimal.NewFromFloat(price), Category: category}
}

// Equal reports whether i and o have the same name, price, and category.
// Prices are compared numerically so 1.5 and 1.50 are equal.
func (i Item) Equal(o Item) bool {
	return i.Name == o.Name && i.Category == o.Category && i.Price.Equal(o.Price)
}

func (i Item) String() string {
	return fmt.Sprintf("Item [name=%s, price=%s, category=%s]", i.Name, i.Price, i.Category)
}
