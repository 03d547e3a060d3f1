package idgen

import (
	"strings"
	"testing"

	"github.com/google/uuid"
)

func TestNanoIDLengthAndAlphabet(t *testing.T) {
	for _, length := range []int{6, 9, 16} {
		id := NanoID(length)()
		if len(id) != length {
			t.Errorf("NanoID(%d): got length %d", length, len(id))
		}
		for _, c := range id {
			if !strings.ContainsRune(alphabet, c) {
				t.Errorf("NanoID: unexpected character %q in %q", c, id)
			}
		}
	}
}

func TestNanoIDUniqueness(t *testing.T) {
	gen := NanoID(DefaultLength)
	seen := make(map[string]struct{}, 5000)
	for i := 0; i < 5000; i++ {
		id := gen()
		if _, ok := seen[id]; ok {
			t.Fatalf("NanoID: duplicate at iteration %d: %q", i, id)
		}
		seen[id] = struct{}{}
	}
}

func TestUUID(t *testing.T) {
	id := UUID()()
	if _, err := uuid.Parse(id); err != nil {
		t.Errorf("expected UUID generator to produce a valid UUID, got %q: %v", id, err)
	}
}

func TestSequenceAndPrefix(t *testing.T) {
	gen := Prefixed("el_", Sequence("n"))
	if a, b := gen(), gen(); a != "el_n1" || b != "el_n2" {
		t.Errorf("expected el_n1, el_n2; got %s, %s", a, b)
	}
}
