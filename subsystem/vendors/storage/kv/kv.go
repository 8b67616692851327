// Package kv implements a vendor registry storage backend using JSON with key-value storage.
package kv

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/micromdm/nanostock/catalog"
	"github.com/micromdm/nanostock/subsystem/vendors/storage"
	"github.com/micromdm/nanostock/utils/kv"
)

const (
	keyPfxVendor = "vendor."
	keyIndex     = "index"
)

// KV is a vendor registry storage backend using JSON with key-value storage.
type KV struct {
	mu sync.RWMutex
	b  kv.Bucket
}

func New(b kv.Bucket) *KV {
	return &KV{b: b}
}

func (s *KV) names(ctx context.Context) ([]string, error) {
	raw, err := s.b.Get(ctx, keyIndex)
	if errors.Is(err, kv.ErrKeyNotFound) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("getting index: %w", err)
	}
	var names []string
	if err = json.Unmarshal(raw, &names); err != nil {
		return nil, fmt.Errorf("unmarshal index: %w", err)
	}
	return names, nil
}

func (s *KV) vendor(ctx context.Context, name string) (*catalog.Vendor, error) {
	raw, err := s.b.Get(ctx, keyPfxVendor+name)
	if errors.Is(err, kv.ErrKeyNotFound) {
		return nil, fmt.Errorf("%w: %s", storage.ErrVendorNotFound, name)
	} else if err != nil {
		return nil, fmt.Errorf("getting vendor %s: %w", name, err)
	}
	return unmarshalVendor(name, raw)
}

func unmarshalVendor(name string, raw []byte) (*catalog.Vendor, error) {
	v := new(catalog.Vendor)
	if err := json.Unmarshal(raw, v); err != nil {
		return nil, fmt.Errorf("unmarshal vendor %s: %w", name, err)
	}
	return v, nil
}

// RetrieveVendor unmarshals the JSON stored for name and returns the vendor.
func (s *KV) RetrieveVendor(ctx context.Context, name string) (*catalog.Vendor, error) {
	if name == "" {
		return nil, storage.ErrNoName
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.vendor(ctx, name)
}

// RetrieveVendors returns all vendors in registration order.
func (s *KV) RetrieveVendors(ctx context.Context) ([]*catalog.Vendor, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	names, err := s.names(ctx)
	if err != nil {
		return nil, err
	}
	keys := make([]string, len(names))
	for i, name := range names {
		keys[i] = keyPfxVendor + name
	}
	raws, err := kv.GetMap(ctx, s.b, keys)
	if err != nil {
		return nil, fmt.Errorf("getting vendors: %w", err)
	}
	vendors := make([]*catalog.Vendor, 0, len(names))
	for i, name := range names {
		raw, ok := raws[keys[i]]
		if !ok {
			return vendors, fmt.Errorf("%w: %s", storage.ErrVendorNotFound, name)
		}
		v, err := unmarshalVendor(name, raw)
		if err != nil {
			return vendors, err
		}
		vendors = append(vendors, v)
	}
	return vendors, nil
}

// StoreVendor marshals v into JSON and stores it using its name.
func (s *KV) StoreVendor(ctx context.Context, v *catalog.Vendor) error {
	if v == nil || v.Name() == "" {
		return storage.ErrNoName
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal vendor: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	found, err := s.b.Has(ctx, keyPfxVendor+v.Name())
	if err != nil {
		return fmt.Errorf("checking vendor: %w", err)
	}
	if !found {
		names, err := s.names(ctx)
		if err != nil {
			return err
		}
		rawNames, err := json.Marshal(append(names, v.Name()))
		if err != nil {
			return fmt.Errorf("marshal index: %w", err)
		}
		if err = s.b.Set(ctx, keyIndex, rawNames); err != nil {
			return fmt.Errorf("setting index: %w", err)
		}
	}
	if err = s.b.Set(ctx, keyPfxVendor+v.Name(), raw); err != nil {
		return fmt.Errorf("setting vendor: %w", err)
	}
	return nil
}
