// Package storage defines types and interfaces to support the vendor registry subsystem.
package storage

import (
	"context"
	"errors"

	"github.com/micromdm/nanostock/catalog"
)

var (
	ErrVendorNotFound = errors.New("vendor not found")
	ErrNoName         = errors.New("no vendor name supplied")
)

type ReadStorage interface {
	// RetrieveVendor returns the vendor registered under name.
	// ErrVendorNotFound is returned if no such vendor was stored.
	RetrieveVendor(ctx context.Context, name string) (*catalog.Vendor, error)

	// RetrieveVendors returns every registered vendor in the order
	// each name was first stored.
	RetrieveVendors(ctx context.Context) ([]*catalog.Vendor, error)
}

type Storage interface {
	ReadStorage

	// StoreVendor registers v under its name, replacing any vendor
	// already stored under that name. A replaced vendor keeps its
	// position in the RetrieveVendors order.
	StoreVendor(ctx context.Context, v *catalog.Vendor) error
}
