package shuffle

import (
	"strings"
	"testing"
)

func TestAssignNamesFromPool(t *testing.T) {
	poolSize := len(fruitNames) + len(animalNames)

	names := AssignNames(NewSequence(SeedFromText("names")), 5)
	if len(names) != 5 {
		t.Fatalf("got %d names, want 5", len(names))
	}

	inPool := make(map[string]bool, poolSize)
	for _, n := range fruitNames {
		inPool[n] = true
	}
	for _, n := range animalNames {
		inPool[n] = true
	}

	seen := make(map[string]bool)
	for _, n := range names {
		if n == "" {
			t.Error("empty group name")
		}
		if !inPool[n] {
			t.Errorf("name %q not drawn from the pool", n)
		}
		if seen[n] {
			t.Errorf("duplicate name %q", n)
		}
		seen[n] = true
	}
}

func TestAssignNamesDeterminism(t *testing.T) {
	a := AssignNames(NewSequence(1234), 8)
	b := AssignNames(NewSequence(1234), 8)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("name %d diverged: %q != %q", i, a[i], b[i])
		}
	}
}

func TestAssignNamesOverflow(t *testing.T) {
	poolSize := len(fruitNames) + len(animalNames)
	n := poolSize + 4

	names := AssignNames(NewSequence(SeedFromText("overflow")), n)
	if len(names) != n {
		t.Fatalf("got %d names, want %d", len(names), n)
	}

	isAdjective := make(map[string]bool, len(adjectives))
	for _, a := range adjectives {
		isAdjective[a] = true
	}

	for i := poolSize; i < n; i++ {
		adj, base, ok := strings.Cut(names[i], " ")
		if !ok {
			t.Fatalf("overflow name %q has no adjective prefix", names[i])
		}
		if !isAdjective[adj] {
			t.Errorf("overflow name %q does not start with a known adjective", names[i])
		}
		// Everything after the adjective must be a verbatim pool
		// entry (glyph included).
		found := false
		for _, p := range append(append([]string{}, fruitNames...), animalNames...) {
			if base == p {
				found = true
			}
		}
		if !found {
			t.Errorf("overflow name %q base %q is not a pool entry", names[i], base)
		}
	}
}
