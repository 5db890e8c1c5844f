package mutator

import (
	"fmt"
	"math/rand"

	"github.com/protokin/kin/internal/schema"
)

// DocumentMutator applies random mutations to a hierarchy document.
// Every mutation preserves validity: mutated documents always build.
type DocumentMutator struct {
	rnd *rand.Rand
}

// NewDocumentMutator creates a new DocumentMutator with the given seed.
func NewDocumentMutator(seed int64) *DocumentMutator {
	return &DocumentMutator{
		rnd: rand.New(rand.NewSource(seed)),
	}
}

// Mutate applies a random mutation to the document in place.
func (m *DocumentMutator) Mutate(doc *schema.Document) {
	if len(doc.Types) == 0 {
		m.addLeaf(doc)
		return
	}
	switch m.rnd.Intn(4) {
	case 0:
		m.swapTypes(doc)
	case 1:
		m.addLeaf(doc)
	case 2:
		m.addMember(doc)
	case 3:
		m.renameType(doc)
	}
}

// swapTypes exchanges two declaration positions. Linking is
// declaration-order independent, so the built hierarchy must not
// change.
func (m *DocumentMutator) swapTypes(doc *schema.Document) {
	i := m.rnd.Intn(len(doc.Types))
	j := m.rnd.Intn(len(doc.Types))
	doc.Types[i], doc.Types[j] = doc.Types[j], doc.Types[i]
}

// addLeaf appends a new type extending a random existing one. A fresh
// leaf can never introduce a cycle.
func (m *DocumentMutator) addLeaf(doc *schema.Document) {
	td := schema.TypeDef{Name: m.freshName(doc)}
	if len(doc.Types) > 0 {
		td.Extends = doc.Types[m.rnd.Intn(len(doc.Types))].Name
	}
	doc.Types = append(doc.Types, td)
}

// addMember puts a fresh scalar member on a random type.
func (m *DocumentMutator) addMember(doc *schema.Document) {
	td := &doc.Types[m.rnd.Intn(len(doc.Types))]
	if td.Members == nil {
		td.Members = make(map[string]any)
	}
	values := []any{m.rnd.Intn(1000), m.rnd.Float64(), true, false, nil, "mutated"}
	td.Members[fmt.Sprintf("mut%d", m.rnd.Intn(1<<20))] = values[m.rnd.Intn(len(values))]
}

// renameType renames a random type and every extends reference to it.
func (m *DocumentMutator) renameType(doc *schema.Document) {
	idx := m.rnd.Intn(len(doc.Types))
	old := doc.Types[idx].Name
	fresh := m.freshName(doc)
	doc.Types[idx].Name = fresh
	for i := range doc.Types {
		if doc.Types[i].Extends == old {
			doc.Types[i].Extends = fresh
		}
	}
}

func (m *DocumentMutator) freshName(doc *schema.Document) string {
	taken := make(map[string]bool, len(doc.Types))
	for _, td := range doc.Types {
		taken[td.Name] = true
	}
	for {
		name := fmt.Sprintf("Mut%d", m.rnd.Intn(1<<16))
		if !taken[name] {
			return name
		}
	}
}
