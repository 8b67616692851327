package kvmap

import (
	"context"
	"errors"
	"testing"

	"github.com/micromdm/nanostock/utils/kv"
)

func TestKVMap(t *testing.T) {
	ctx := context.Background()
	b := NewBucket()

	if _, err := b.Get(ctx, "missing"); !errors.Is(err, kv.ErrKeyNotFound) {
		t.Errorf("want ErrKeyNotFound, have: %v", err)
	}

	v := []byte("hello")
	if err := b.Set(ctx, "k", v); err != nil {
		t.Fatal(err)
	}
	v[0] = 'j'

	have, err := b.Get(ctx, "k")
	if err != nil {
		t.Fatal(err)
	}
	if string(have) != "hello" {
		t.Errorf("stored value changed with caller slice: %s", have)
	}

	found, err := b.Has(ctx, "k")
	if err != nil || !found {
		t.Errorf("has: have: %v, %v", found, err)
	}

	m, err := kv.GetMap(ctx, b, []string{"k", "missing"})
	if err != nil {
		t.Fatal(err)
	}
	if len(m) != 1 || string(m["k"]) != "hello" {
		t.Errorf("unexpected map: %v", m)
	}

	if err = b.Delete(ctx, "k"); err != nil {
		t.Fatal(err)
	}
	if found, _ = b.Has(ctx, "k"); found {
		t.Error("expected key to be deleted")
	}
}
