package schema

import (
	"strings"
	"testing"

	"github.com/protokin/kin/pkg/object"
)

func TestRegistry_RegisterAndLookup(t *testing.T) {
	reg := NewRegistry()
	animal := object.NewConstructor("Animal", nil)
	if err := reg.Register(animal); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, ok := reg.Lookup("Animal")
	if !ok || got != animal {
		t.Fatalf("Lookup(Animal) = %v, %v, want the registered constructor", got, ok)
	}
	if _, ok := reg.Lookup("Plant"); ok {
		t.Error("Lookup(Plant) reported an unregistered type")
	}
}

func TestRegistry_DuplicateName(t *testing.T) {
	reg := NewRegistry()
	first := object.NewConstructor("Animal", nil)
	second := object.NewConstructor("Animal", nil)
	if err := reg.Register(first); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	err := reg.Register(second)
	if err == nil {
		t.Fatal("expected error for duplicate name")
	}
	// Both identity tokens appear so collisions are traceable.
	if !strings.Contains(err.Error(), first.ID().String()) {
		t.Errorf("error %q does not name the registered token", err)
	}
	if !strings.Contains(err.Error(), second.ID().String()) {
		t.Errorf("error %q does not name the rejected token", err)
	}

	got, _ := reg.Lookup("Animal")
	if got != first {
		t.Error("duplicate registration displaced the original")
	}
}
