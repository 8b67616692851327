package inventory

import (
	"fmt"
)

// Category is one of the fixed item categories.
type Category int

const (
	Beverages Category = iota
	BreadBakery
	CannedJarredGoods
	DairyProducts
	DryBakingGood
	FrozenProducts
	Meat
	FarmProduce
	HomeCleaners
	PaperGoods
	HomeCare

	numCategories
)

var categoryNames = [numCategories]string{
	Beverages:         "Beverages",
	BreadBakery:       "BreadBakery",
	CannedJarredGoods: "CannedJarredGoods",
	DairyProducts:     "DairyProducts",
	DryBakingGood:     "DryBakingGood",
	FrozenProducts:    "FrozenProducts",
	Meat:              "Meat",
	FarmProduce:       "FarmProduce",
	HomeCleaners:      "HomeCleaners",
	PaperGoods:        "PaperGoods",
	HomeCare:          "HomeCare",
}

// Categories returns every category in declaration order.
func Categories() []Category {
	r := make([]Category, 0, numCategories)
	for c := Category(0); c < numCategories; c++ {
		r = append(r, c)
	}
	return r
}

// Valid reports whether c is one of the declared categories.
func (c Category) Valid() bool {
	return c >= 0 && c < numCategories
}

func (c Category) String() string {
	if !c.Valid() {
		return fmt.Sprintf("Category(%d)", int(c))
	}
	return categoryNames[c]
}

// ParseCategory returns the category named s.
func ParseCategory(s string) (Category, error) {
	for c, name := range categoryNames {
		if name == s {
			return Category(c), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidCategory, s)
}

// MarshalText encodes c as its name.
func (c Category) MarshalText() ([]byte, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCategory, int(c))
	}
	return []byte(categoryNames[c]), nil
}

// UnmarshalText decodes a category name.
func (c *Category) UnmarshalText(text []byte) error {
	parsed, err := ParseCategory(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
