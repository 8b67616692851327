package test

import (
	"context"
	"errors"
	"testing"

	"github.com/micromdm/nanostock/catalog"
	"github.com/micromdm/nanostock/inventory"
	"github.com/micromdm/nanostock/subsystem/vendors/storage"
)

func TestVendorStorage(t *testing.T, newStorage func() storage.Storage) {
	s := newStorage()
	ctx := context.Background()

	vendors, err := s.RetrieveVendors(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(vendors) != 0 {
		t.Errorf("expected no vendors, have %d", len(vendors))
	}

	_, err = s.RetrieveVendor(ctx, "Vendor A")
	if !errors.Is(err, storage.ErrVendorNotFound) {
		t.Errorf("want ErrVendorNotFound, have: %v", err)
	}

	if err = s.StoreVendor(ctx, catalog.NewVendor("")); !errors.Is(err, storage.ErrNoName) {
		t.Errorf("want ErrNoName, have: %v", err)
	}

	a := catalog.NewVendor("Vendor A")
	a.AddProduct("P1", inventory.NewItem("Juice", 1.49, inventory.Beverages))
	if err = s.StoreVendor(ctx, a); err != nil {
		t.Fatal(err)
	}

	b := catalog.NewVendor("Vendor B")
	b.AddProduct("X1", inventory.NewItem("Bleach", 1.49, inventory.HomeCleaners))
	if err = s.StoreVendor(ctx, b); err != nil {
		t.Fatal(err)
	}

	// replace Vendor A with a different catalog
	a2 := catalog.NewVendor("Vendor A")
	a2.AddProduct("P1", inventory.NewItem("Toothpaste", 1.49, inventory.HomeCare))
	a2.AddProduct("P2", inventory.NewItem("Dinner Rolls", 0.99, inventory.BreadBakery))
	if err = s.StoreVendor(ctx, a2); err != nil {
		t.Fatal(err)
	}

	v, err := s.RetrieveVendor(ctx, "Vendor A")
	if err != nil {
		t.Fatal(err)
	}
	if have, want := v.Len(), 2; have != want {
		t.Errorf("replaced vendor products: have: %v, want: %v", have, want)
	}
	item, ok := v.Product("P1")
	if !ok || item.Name != "Toothpaste" {
		t.Errorf("unexpected P1: %v", item)
	}

	vendors, err = s.RetrieveVendors(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(vendors) != 2 {
		t.Fatalf("have %d vendors, want 2", len(vendors))
	}
	if have, want := vendors[0].Name(), "Vendor A"; have != want {
		t.Errorf("first vendor: have: %v, want: %v", have, want)
	}
	if have, want := vendors[1].Name(), "Vendor B"; have != want {
		t.Errorf("second vendor: have: %v, want: %v", have, want)
	}

	// the stored vendor must not alias the caller's
	a2.AddProduct("P3", inventory.NewItem("Soap", 1.49, inventory.HomeCare))
	v, err = s.RetrieveVendor(ctx, "Vendor A")
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := v.Product("P3"); ok {
		t.Error("stored vendor changed after StoreVendor")
	}
}
