// Package inmem implements an in-memory vendor registry storage backend.
package inmem

import (
	"github.com/micromdm/nanostock/subsystem/vendors/storage/kv"
	"github.com/micromdm/nanostock/utils/kv/kvmap"
)

// InMem is an in-memory vendor registry storage backend.
type InMem struct {
	*kv.KV
}

// New creates a new in-memory vendor registry storage backend.
func New() *InMem {
	return &InMem{KV: kv.New(kvmap.NewBucket())}
}
