package report

import (
	"bytes"
	"testing"

	"github.com/micromdm/nanostock/catalog"
	"github.com/micromdm/nanostock/inventory"
	"github.com/micromdm/nanostock/ledger"
)

func vendorA() *catalog.Vendor {
	v := catalog.NewVendor("Vendor A")
	v.AddProduct("P1", inventory.NewItem("Juice", 1.49, inventory.Beverages))
	v.AddProduct("P1", inventory.NewItem("Soda", 1.49, inventory.Beverages))
	v.AddProduct("P2", inventory.NewItem("Dinner Rolls", 0.99, inventory.BreadBakery))
	v.AddProduct("P1", inventory.NewItem("Toothpaste", 1.49, inventory.HomeCare))
	return v
}

// TestGenerateMatchesNames pins the matching rule: sold keys are
// compared against item names, not against product codes.
func TestGenerateMatchesNames(t *testing.T) {
	v := vendorA()

	l := ledger.New()
	l.MarkSold("P1")

	lines := Generate([]*catalog.Vendor{v}, l)
	if len(lines) != 1 {
		t.Fatalf("have %d lines, want 1", len(lines))
	}
	if have, want := lines[0], (Line{Vendor: "Vendor A", SoldCount: 0}); have != want {
		t.Errorf("code P1 sold: have: %v, want: %v", have, want)
	}

	l.MarkSold("Toothpaste")
	lines = Generate([]*catalog.Vendor{v}, l)
	if have, want := lines[0].SoldCount, 1; have != want {
		t.Errorf("name Toothpaste sold: have: %v, want: %v", have, want)
	}

	// overwritten entries are gone from the catalog and never count
	l.MarkSold("Juice")
	l.MarkSold("Soda")
	lines = Generate([]*catalog.Vendor{v}, l)
	if have, want := lines[0].SoldCount, 1; have != want {
		t.Errorf("overwritten names sold: have: %v, want: %v", have, want)
	}
}

func TestGenerateCountsPerVendor(t *testing.T) {
	a := vendorA()
	b := catalog.NewVendor("Vendor B")
	b.AddProduct("X1", inventory.NewItem("Bleach", 1.49, inventory.HomeCleaners))
	b.AddProduct("X2", inventory.NewItem("Dinner Rolls", 0.99, inventory.BreadBakery))
	empty := catalog.NewVendor("Vendor C")

	l := ledger.New()
	l.MarkSold("Dinner Rolls")
	l.MarkSold("Bleach")

	lines := Generate([]*catalog.Vendor{a, b, empty}, l)
	want := []Line{
		{Vendor: "Vendor A", SoldCount: 1},
		{Vendor: "Vendor B", SoldCount: 2},
		{Vendor: "Vendor C", SoldCount: 0},
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

func TestGenerateSkipsNil(t *testing.T) {
	l := ledger.New()
	l.MarkSold("Toothpaste")

	lines := Generate([]*catalog.Vendor{nil, vendorA(), nil}, l)
	if len(lines) != 1 {
		t.Fatalf("have %d lines, want 1", len(lines))
	}
	if have, want := lines[0], (Line{Vendor: "Vendor A", SoldCount: 1}); have != want {
		t.Errorf("have: %v, want: %v", have, want)
	}

	if lines = Generate(nil, l); len(lines) != 0 {
		t.Errorf("nil slice: have %d lines, want 0", len(lines))
	}
}

func TestWrite(t *testing.T) {
	buf := new(bytes.Buffer)
	err := Write(buf, []Line{{Vendor: "Vendor A", SoldCount: 0}, {Vendor: "Vendor B", SoldCount: 3}})
	if err != nil {
		t.Fatal(err)
	}
	want := "Sales Report:\nVendor: Vendor A, Sold Count: 0\nVendor: Vendor B, Sold Count: 3\n"
	if have := buf.String(); have != want {
		t.Errorf("have: %q, want: %q", have, want)
	}
}
