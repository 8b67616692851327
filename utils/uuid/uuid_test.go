package uuid

import (
	"testing"
)

func TestShortID(t *testing.T) {
	var s ShortID
	if have, want := len(s.ID()), 8; have != want {
		t.Errorf("unexpected length: have: %v, want: %v", have, want)
	}
	if s.ID() == s.ID() {
		t.Error("IDs are not unique")
	}
}
