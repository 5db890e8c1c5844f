package prettyprinter

import (
	"strings"
	"testing"

	"github.com/protokin/kin/internal/schema"
	"github.com/protokin/kin/pkg/object"
)

func buildRegistry(t *testing.T, yaml string) *schema.Registry {
	t.Helper()
	doc, err := schema.Parse([]byte(yaml), "test.yaml")
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	reg, err := schema.Build(doc)
	if err != nil {
		t.Fatalf("unexpected build error: %v", err)
	}
	return reg
}

func constructor(t *testing.T, reg *schema.Registry, name string) *object.Constructor {
	t.Helper()
	c, ok := reg.Lookup(name)
	if !ok {
		t.Fatalf("type %s not registered", name)
	}
	return c
}

func TestPrintForest(t *testing.T) {
	reg := buildRegistry(t, `
types:
  - name: Animal
  - name: Dog
    extends: Animal
  - name: Puppy
    extends: Dog
  - name: Cat
    extends: Animal
  - name: Vehicle
`)
	p := NewHierarchyPrinter()
	p.PrintForest(reg)

	want := `Animal
├── Dog
│   └── Puppy
└── Cat
Vehicle
`
	if got := p.String(); got != want {
		t.Errorf("forest = %q, want %q", got, want)
	}
}

func TestPrintForest_WithMembers(t *testing.T) {
	reg := buildRegistry(t, `
types:
  - name: Animal
    members:
      eat: nom nom nom
      legs: 4
  - name: Dog
    extends: Animal
    members:
      bark: woof
  - name: Ghost
`)
	p := NewHierarchyPrinter()
	p.SetShowMembers(true)
	p.PrintForest(reg)

	want := `Animal (eat, legs)
└── Dog (bark)
Ghost
`
	if got := p.String(); got != want {
		t.Errorf("forest = %q, want %q", got, want)
	}
}

func TestPrintChain(t *testing.T) {
	reg := buildRegistry(t, `
types:
  - name: Animal
  - name: Dog
    extends: Animal
  - name: Puppy
    extends: Dog
`)
	p := NewHierarchyPrinter()
	p.PrintChain(constructor(t, reg, "Puppy"))

	want := "Puppy -> Dog -> Animal\n"
	if got := p.String(); got != want {
		t.Errorf("chain = %q, want %q", got, want)
	}
}

func TestPrintChain_Unlinked(t *testing.T) {
	reg := buildRegistry(t, `
types:
  - name: Animal
`)
	p := NewHierarchyPrinter()
	p.PrintChain(constructor(t, reg, "Animal"))

	if got := p.String(); got != "Animal\n" {
		t.Errorf("chain = %q, want %q", got, "Animal\n")
	}
}

func TestPrintMembers(t *testing.T) {
	reg := buildRegistry(t, `
types:
  - name: Animal
    members:
      eat: nom nom nom
  - name: Dog
    extends: Animal
    members:
      bark: woof
`)
	p := NewHierarchyPrinter()
	p.PrintMembers(constructor(t, reg, "Dog"))

	want := "Dog\n" +
		"  bark  \"woof\"         (Dog)\n" +
		"  eat   \"nom nom nom\"  (Animal)\n"
	if got := p.String(); got != want {
		t.Errorf("members = %q, want %q", got, want)
	}
}

func TestPrintMembers_ShadowReportsNearestOwner(t *testing.T) {
	reg := buildRegistry(t, `
types:
  - name: Animal
    members:
      eat: nom nom nom
  - name: Snake
    extends: Animal
    members:
      eat: gulp
`)
	p := NewHierarchyPrinter()
	p.PrintMembers(constructor(t, reg, "Snake"))

	got := p.String()
	if !strings.Contains(got, "(Snake)") {
		t.Errorf("members = %q, want the shadowing owner reported", got)
	}
	if strings.Contains(got, "(Animal)") {
		t.Errorf("members = %q, the shadowed definition must not appear", got)
	}
}

func TestPrintResolution(t *testing.T) {
	reg := buildRegistry(t, `
types:
  - name: Animal
    members:
      eat: nom nom nom
  - name: Dog
    extends: Animal
`)
	p := NewHierarchyPrinter()
	if err := p.PrintResolution(constructor(t, reg, "Dog"), "eat"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "eat = \"nom nom nom\" (Animal)\n"
	if got := p.String(); got != want {
		t.Errorf("resolution = %q, want %q", got, want)
	}
}

func TestPrintResolution_MissingMember(t *testing.T) {
	reg := buildRegistry(t, `
types:
  - name: Animal
`)
	p := NewHierarchyPrinter()
	if err := p.PrintResolution(constructor(t, reg, "Animal"), "fly"); err == nil {
		t.Fatal("expected error for missing member")
	}
}

func TestColorOutput(t *testing.T) {
	reg := buildRegistry(t, `
types:
  - name: Animal
`)
	p := NewHierarchyPrinter()
	p.SetColor(true)
	p.PrintChain(constructor(t, reg, "Animal"))

	if got := p.String(); !strings.Contains(got, "\033[36m") {
		t.Errorf("colored chain = %q, want an ANSI foreground code", got)
	}

	plain := NewHierarchyPrinter()
	plain.PrintChain(constructor(t, reg, "Animal"))
	if got := plain.String(); strings.Contains(got, "\033[") {
		t.Errorf("plain chain = %q, want no escape codes", got)
	}
}

func TestVisibleMembers_SkipsConstructorSlot(t *testing.T) {
	reg := buildRegistry(t, `
types:
  - name: Animal
    members:
      eat: nom nom nom
`)
	names := visibleMembers(constructor(t, reg, "Animal").Prototype())
	for _, n := range names {
		if n == object.ConstructorKey {
			t.Fatalf("visibleMembers = %v, constructor slot must stay hidden", names)
		}
	}
	if len(names) != 1 || names[0] != "eat" {
		t.Errorf("visibleMembers = %v, want [eat]", names)
	}
}
