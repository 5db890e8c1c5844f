package targets

import (
	"os"
	"runtime"
	"testing"

	"github.com/protokin/kin/internal/schema"
	"github.com/protokin/kin/pkg/object"
)

// capFuzzProcs caps fuzz worker parallelism unless the caller
// explicitly set GOMAXPROCS.
func capFuzzProcs() {
	if _, ok := os.LookupEnv("GOMAXPROCS"); ok {
		return
	}
	max := runtime.NumCPU()
	if max > 4 {
		max = 4
	}
	if runtime.GOMAXPROCS(0) > max {
		runtime.GOMAXPROCS(max)
	}
}

// =============================================================================
// FuzzSchemaParse: random bytes as YAML schema
// =============================================================================

// FuzzSchemaParse tests that schema.Parse never panics on arbitrary input.
func FuzzSchemaParse(f *testing.F) {
	capFuzzProcs()

	// Seed corpus: valid schemas
	f.Add([]byte(`types:
  - name: Animal
    members:
      eat: nom nom nom
  - name: Dog
    extends: Animal
    members:
      bark: woof
`))
	f.Add([]byte(`types:
  - name: A
  - name: B
    extends: A
  - name: C
    extends: B
`))
	f.Add([]byte(`types:
  - name: Mix
    members:
      word: hello
      count: 4
      ratio: 0.5
      armed: true
      owner: null
`))
	// Edge cases
	f.Add([]byte(""))
	f.Add([]byte("types: []"))
	f.Add([]byte("{}"))
	f.Add([]byte("null"))
	f.Add([]byte("types:\n  - name: A\n    extends: A"))
	f.Add([]byte("types:\n  - name: A\n    extends: B\n  - name: B\n    extends: A"))
	f.Add([]byte("types:\n  - name: A\n  - name: A"))
	f.Add([]byte("types:\n  - name: A\n    members:\n      constructor: x"))

	f.Fuzz(func(t *testing.T, data []byte) {
		// Must not panic; errors are expected and fine
		_, _ = schema.Parse(data, "fuzz.yaml")
	})
}

// =============================================================================
// FuzzSchemaBuild: parsed schemas must build into consistent registries
// =============================================================================

// FuzzSchemaBuild tests that every document Parse accepts either fails
// to build with an error or builds a registry whose instances honor the
// delegation invariants.
func FuzzSchemaBuild(f *testing.F) {
	capFuzzProcs()

	f.Add([]byte(`types:
  - name: Animal
    members:
      eat: nom nom nom
  - name: Dog
    extends: Animal
`))
	f.Add([]byte(`types:
  - name: C
    extends: B
  - name: B
    extends: A
  - name: A
`))
	f.Add([]byte(`types:
  - name: A
    extends: B
  - name: B
    extends: A
`))

	f.Fuzz(func(t *testing.T, data []byte) {
		doc, err := schema.Parse(data, "fuzz.yaml")
		if err != nil {
			return
		}
		reg, err := schema.Build(doc)
		if err != nil {
			return // cycles are acceptable, panics are not
		}
		checkRegistryInvariants(t, doc, reg)
	})
}

// checkRegistryInvariants verifies that every declared type can create
// instances that keep their constructor identity and delegate to their
// declared base.
func checkRegistryInvariants(t *testing.T, doc *schema.Document, reg *schema.Registry) {
	t.Helper()
	for i := range doc.Types {
		td := &doc.Types[i]
		c, ok := reg.Lookup(td.Name)
		if !ok {
			t.Errorf("type %s declared but not registered", td.Name)
			continue
		}
		inst, err := c.New()
		if err != nil {
			t.Errorf("type %s: new instance: %v", td.Name, err)
			continue
		}
		if got, ok := object.ConstructorOf(inst); !ok || got != c {
			t.Errorf("type %s: instance lost its constructor identity", td.Name)
		}
		if td.Extends != "" {
			base, ok := reg.Lookup(td.Extends)
			if !ok {
				t.Errorf("type %s: base %s not registered", td.Name, td.Extends)
				continue
			}
			if !object.InstanceOf(inst, base) {
				t.Errorf("type %s: instance does not delegate to %s", td.Name, td.Extends)
			}
		}
	}
}
