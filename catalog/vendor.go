// Package catalog holds vendor product catalogs.
package catalog

import (
	"encoding/json"
	"sort"

	"github.com/micromdm/nanostock/inventory"
)

// Vendor is a named catalog mapping product codes to items.
// Codes are unique within a vendor but not across vendors.
type Vendor struct {
	name     string
	products map[string]inventory.Item
}

// NewVendor creates a vendor with an empty catalog.
func NewVendor(name string) *Vendor {
	return &Vendor{name: name, products: make(map[string]inventory.Item)}
}

// Name returns the vendor name.
func (v *Vendor) Name() string {
	return v.name
}

// AddProduct stores item under code, replacing any item already
// stored under that code.
func (v *Vendor) AddProduct(code string, item inventory.Item) {
	v.products[code] = item
}

// Product returns the item stored under code.
func (v *Vendor) Product(code string) (inventory.Item, bool) {
	item, ok := v.products[code]
	return item, ok
}

// Products returns a copy of the catalog.
func (v *Vendor) Products() map[string]inventory.Item {
	r := make(map[string]inventory.Item, len(v.products))
	for code, item := range v.products {
		r[code] = item
	}
	return r
}

// Codes returns the sorted product codes.
func (v *Vendor) Codes() []string {
	codes := make([]string, 0, len(v.products))
	for code := range v.products {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// Len returns the number of product codes in the catalog.
func (v *Vendor) Len() int {
	return len(v.products)
}

type jsonVendor struct {
	Name     string                    `json:"name"`
	Products map[string]inventory.Item `json:"products"`
}

// MarshalJSON encodes the vendor name and catalog.
func (v *Vendor) MarshalJSON() ([]byte, error) {
	return json.Marshal(&jsonVendor{Name: v.name, Products: v.products})
}

// UnmarshalJSON decodes a vendor encoded by MarshalJSON.
func (v *Vendor) UnmarshalJSON(b []byte) error {
	var jv jsonVendor
	if err := json.Unmarshal(b, &jv); err != nil {
		return err
	}
	v.name = jv.Name
	v.products = jv.Products
	if v.products == nil {
		v.products = make(map[string]inventory.Item)
	}
	return nil
}
