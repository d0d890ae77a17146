package crypto

import (
	"testing"

	"github.com/google/uuid"
)

func TestUUIDGenerator_NewID_Unique(t *testing.T) {
	gen := NewUUIDGenerator()
	seen := make(map[string]struct{}, 1000)

	for i := 0; i < 1000; i++ {
		id, err := gen.NewID()
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if _, err := uuid.Parse(id); err != nil {
			t.Fatalf("expected valid uuid, got %q: %v", id, err)
		}
		if _, dup := seen[id]; dup {
			t.Fatalf("duplicate id %s", id)
		}
		seen[id] = struct{}{}
	}
}
