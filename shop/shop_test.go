package shop

import (
	"context"
	"errors"
	"reflect"
	"sync"
	"testing"

	"github.com/micromdm/nanostock/catalog"
	"github.com/micromdm/nanostock/inventory"
	"github.com/micromdm/nanostock/report"
	"github.com/micromdm/nanostock/subsystem/vendors/storage"
	"github.com/micromdm/nanostock/subsystem/vendors/storage/inmem"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestShopInventory(t *testing.T) {
	ctx := context.Background()
	s := New(inmem.New())

	coffee := inventory.NewItem("Coffee", 2.99, inventory.Beverages)
	tea := inventory.NewItem("Tea", 1.99, inventory.Beverages)
	for _, item := range []inventory.Item{coffee, tea} {
		if err := s.AddItem(ctx, item); err != nil {
			t.Fatal(err)
		}
	}

	removed, err := s.RemoveItem(ctx, coffee)
	if err != nil {
		t.Fatal(err)
	}
	if removed == nil || !removed.Equal(tea) {
		t.Errorf("have: %v, want: %v", removed, tea)
	}

	items, err := s.Items(ctx, inventory.Beverages)
	if err != nil {
		t.Fatal(err)
	}
	if len(items) != 1 || !items[0].Equal(coffee) {
		t.Errorf("unexpected items: %v", items)
	}

	if _, err = s.RemoveItem(ctx, inventory.NewItem("Flour", 1, inventory.DryBakingGood)); !errors.Is(err, inventory.ErrContainerEmpty) {
		t.Errorf("want ErrContainerEmpty, have: %v", err)
	}

	removed, err = s.RemoveItem(ctx, inventory.NewItem("Bleach", 1, inventory.HomeCleaners))
	if err != nil || removed != nil {
		t.Errorf("unordered non-member: have: %v, %v, want: nil, nil", removed, err)
	}

	if err = s.AddItem(ctx, inventory.Item{Category: -1}); !errors.Is(err, inventory.ErrInvalidCategory) {
		t.Errorf("want ErrInvalidCategory, have: %v", err)
	}
}

func TestShopVendors(t *testing.T) {
	ctx := context.Background()
	s := New(nil)

	if err := s.AddVendor(ctx, catalog.NewVendor("")); !errors.Is(err, storage.ErrNoName) {
		t.Errorf("want ErrNoName, have: %v", err)
	}

	a := catalog.NewVendor("Vendor A")
	a.AddProduct("P1", inventory.NewItem("Juice", 1.49, inventory.Beverages))
	if err := s.AddVendor(ctx, a); err != nil {
		t.Fatal(err)
	}
	b := catalog.NewVendor("Vendor B")
	b.AddProduct("X1", inventory.NewItem("P1", 1.49, inventory.Beverages))
	if err := s.AddVendor(ctx, b); err != nil {
		t.Fatal(err)
	}

	// re-adding a vendor replaces its catalog
	a2 := catalog.NewVendor("Vendor A")
	a2.AddProduct("P1", inventory.NewItem("Toothpaste", 1.49, inventory.HomeCare))
	if err := s.AddVendor(ctx, a2); err != nil {
		t.Fatal(err)
	}
	v, err := s.Vendor(ctx, "Vendor A")
	if err != nil {
		t.Fatal(err)
	}
	if item, _ := v.Product("P1"); item.Name != "Toothpaste" {
		t.Errorf("have: %v, want: Toothpaste", item.Name)
	}

	if err = s.SellItem(ctx, ""); !errors.Is(err, ErrNoCode) {
		t.Errorf("want ErrNoCode, have: %v", err)
	}
	if err = s.SellItem(ctx, "P1"); err != nil {
		t.Fatal(err)
	}
	if !s.IsSold(ctx, "P1") {
		t.Error("expected P1 sold")
	}
	s.SellItem(ctx, "Bagels")
	codes, err := s.SoldCodes(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if have, want := codes, []string{"Bagels", "P1"}; !reflect.DeepEqual(have, want) {
		t.Errorf("sold codes: have: %v, want: %v", have, want)
	}

	lines, err := s.SalesReport(ctx)
	if err != nil {
		t.Fatal(err)
	}
	// Vendor B sells an item *named* P1
	want := []report.Line{
		{Vendor: "Vendor A", SoldCount: 0},
		{Vendor: "Vendor B", SoldCount: 1},
	}
	if len(lines) != len(want) {
		t.Fatalf("have %d lines, want %d", len(lines), len(want))
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d: have: %v, want: %v", i, lines[i], want[i])
		}
	}
}

func TestShopMetrics(t *testing.T) {
	ctx := context.Background()
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)
	s := New(nil, WithMetrics(m))

	s.AddItem(ctx, inventory.NewItem("Beef", 5, inventory.Meat))
	s.AddItem(ctx, inventory.NewItem("Pork", 4, inventory.Meat))
	s.RemoveItem(ctx, inventory.Item{Category: inventory.Meat})
	s.RemoveItem(ctx, inventory.Item{Category: inventory.Beverages})
	s.SellItem(ctx, "P1")
	s.SellItem(ctx, "P1")
	s.AddVendor(ctx, catalog.NewVendor("Vendor A"))
	s.AddVendor(ctx, catalog.NewVendor("Vendor A"))

	tests := []struct {
		name string
		c    prometheus.Collector
		want float64
	}{
		{"added", m.itemsAdded.WithLabelValues("Meat", "FIFO"), 2},
		{"removed", m.itemsRemoved.WithLabelValues("Meat", "FIFO"), 1},
		{"held", m.itemsHeld.WithLabelValues("Meat"), 1},
		{"empty", m.emptyRemovals.WithLabelValues("Beverages"), 1},
		{"sold", m.soldCodes, 1},
		{"vendors", m.vendors, 1},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if have := testutil.ToFloat64(test.c); have != test.want {
				t.Errorf("have: %v, want: %v", have, test.want)
			}
		})
	}
}

func TestShopConcurrentAccess(t *testing.T) {
	ctx := context.Background()
	s := New(nil)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				s.AddItem(ctx, inventory.NewItem("Milk", 1.49, inventory.DairyProducts))
				s.SellItem(ctx, "P1")
			}
		}()
	}
	wg.Wait()

	items, err := s.Items(ctx, inventory.DairyProducts)
	if err != nil {
		t.Fatal(err)
	}
	if have, want := len(items), 400; have != want {
		t.Errorf("have: %v, want: %v", have, want)
	}
}
