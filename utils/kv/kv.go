// Package kv defines an interface for key-value store.
package kv

import (
	"context"
	"errors"
	"fmt"
)

// ErrKeyNotFound is returned by a Bucket Get for a key that has not been set.
var ErrKeyNotFound = errors.New("key not found")

// Bucket defines basic CRUD operations for key-value pairs in a single "namespace."
type Bucket interface {
	// Get returns the value of k. ErrKeyNotFound is returned (possibly
	// wrapped) if k was never set or has been deleted.
	Get(ctx context.Context, k string) (v []byte, err error)
	Set(ctx context.Context, k string, v []byte) error
	Has(ctx context.Context, k string) (found bool, err error)
	Delete(ctx context.Context, k string) error
}

// GetMap gets the values of keys in b. Missing keys are skipped.
func GetMap(ctx context.Context, b Bucket, keys []string) (map[string][]byte, error) {
	ret := make(map[string][]byte)
	for _, k := range keys {
		v, err := b.Get(ctx, k)
		if errors.Is(err, ErrKeyNotFound) {
			continue
		} else if err != nil {
			return ret, fmt.Errorf("getting %s: %w", k, err)
		}
		ret[k] = v
	}
	return ret, nil
}
