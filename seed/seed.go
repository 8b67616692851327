// Package seed loads sample inventory, vendor, and sales data from YAML.
package seed

import (
	"context"
	_ "embed"
	"fmt"
	"io"

	"github.com/micromdm/nanostock/catalog"
	"github.com/micromdm/nanostock/inventory"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

//go:embed sample.yaml
var sample []byte

// Item is an item record. Price is kept as text so it is parsed as an
// exact decimal.
type Item struct {
	Name     string `yaml:"name"`
	Price    string `yaml:"price"`
	Category string `yaml:"category"`
}

// Product is a vendor catalog record.
type Product struct {
	Code string `yaml:"code"`
	Item `yaml:",inline"`
}

// Vendor is a vendor record. Products are applied in order.
type Vendor struct {
	Name     string    `yaml:"name"`
	Products []Product `yaml:"products"`
}

// Seed is a full data set.
type Seed struct {
	Items   []Item   `yaml:"items"`
	Vendors []Vendor `yaml:"vendors"`
	Sold    []string `yaml:"sold"`
}

// Target receives seed data.
type Target interface {
	AddItem(ctx context.Context, item inventory.Item) error
	AddVendor(ctx context.Context, v *catalog.Vendor) error
	SellItem(ctx context.Context, code string) error
}

// Sample returns the embedded sample data set.
func Sample() (*Seed, error) {
	s := new(Seed)
	if err := yaml.Unmarshal(sample, s); err != nil {
		return nil, fmt.Errorf("unmarshal sample: %w", err)
	}
	return s, nil
}

// Load decodes a data set from r.
func Load(r io.Reader) (*Seed, error) {
	s := new(Seed)
	if err := yaml.NewDecoder(r).Decode(s); err != nil {
		return nil, fmt.Errorf("decoding seed: %w", err)
	}
	return s, nil
}

// InventoryItem converts the record to an inventory item.
func (i Item) InventoryItem() (inventory.Item, error) {
	c, err := inventory.ParseCategory(i.Category)
	if err != nil {
		return inventory.Item{}, fmt.Errorf("item %q: %w", i.Name, err)
	}
	price, err := decimal.NewFromString(i.Price)
	if err != nil {
		return inventory.Item{}, fmt.Errorf("item %q price: %w", i.Name, err)
	}
	return inventory.Item{Name: i.Name, Price: price, Category: c}, nil
}

// Catalog builds the vendor, adding products in record order.
func (v Vendor) Catalog() (*catalog.Vendor, error) {
	vendor := catalog.NewVendor(v.Name)
	for _, p := range v.Products {
		item, err := p.InventoryItem()
		if err != nil {
			return nil, fmt.Errorf("vendor %q code %q: %w", v.Name, p.Code, err)
		}
		vendor.AddProduct(p.Code, item)
	}
	return vendor, nil
}

// Apply adds the items, registers the vendors, and marks the sold codes, in that order.
func (s *Seed) Apply(ctx context.Context, t Target) error {
	for _, rec := range s.Items {
		item, err := rec.InventoryItem()
		if err != nil {
			return err
		}
		if err = t.AddItem(ctx, item); err != nil {
			return fmt.Errorf("adding item %q: %w", item.Name, err)
		}
	}
	for _, rec := range s.Vendors {
		v, err := rec.Catalog()
		if err != nil {
			return err
		}
		if err = t.AddVendor(ctx, v); err != nil {
			return fmt.Errorf("adding vendor %q: %w", v.Name(), err)
		}
	}
	for _, code := range s.Sold {
		if err := t.SellItem(ctx, code); err != nil {
			return fmt.Errorf("selling %q: %w", code, err)
		}
	}
	return nil
}
