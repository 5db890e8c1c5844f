package schema

import (
	"fmt"
	"sort"
	"strings"

	"github.com/protokin/kin/pkg/object"
)

// Build turns a validated document into a registry of linked
// constructors. Constructors register in declaration order; links run
// base-first regardless of declaration order, since a derived link
// captures its base prototype at call time. Members attach last for
// the same reason: linking replaces the prototype object outright and
// would discard anything set on it earlier.
func Build(doc *Document) (*Registry, error) {
	order, err := linkOrder(doc)
	if err != nil {
		return nil, err
	}

	reg := NewRegistry()
	ctors := make(map[string]*object.Constructor, len(doc.Types))
	for i := range doc.Types {
		c := object.NewConstructor(doc.Types[i].Name, nil)
		if err := reg.Register(c); err != nil {
			return nil, err
		}
		ctors[c.Name()] = c
	}

	for _, td := range order {
		if td.Extends != "" {
			object.Extend(ctors[td.Name], ctors[td.Extends])
		}
	}

	for _, td := range order {
		proto := ctors[td.Name].Prototype()
		for _, key := range sortedKeys(td.Members) {
			v, err := object.FromGo(td.Members[key])
			if err != nil {
				return nil, fmt.Errorf("type %s: member %s: %w", td.Name, key, err)
			}
			if err := proto.Set(key, v); err != nil {
				return nil, fmt.Errorf("type %s: member %s: %w", td.Name, key, err)
			}
		}
	}
	return reg, nil
}

// linkOrder sorts type definitions so every base precedes the types
// that extend it. Declaration order breaks ties, which keeps builds
// deterministic.
func linkOrder(doc *Document) ([]*TypeDef, error) {
	index := make(map[string]int, len(doc.Types))
	for i := range doc.Types {
		index[doc.Types[i].Name] = i
	}

	children := make(map[int][]int, len(doc.Types))
	blocked := make([]bool, len(doc.Types))
	for i := range doc.Types {
		if ext := doc.Types[i].Extends; ext != "" {
			b := index[ext]
			children[b] = append(children[b], i)
			blocked[i] = true
		}
	}

	var queue []int
	for i := range doc.Types {
		if !blocked[i] {
			queue = append(queue, i)
		}
	}

	order := make([]*TypeDef, 0, len(doc.Types))
	for len(queue) > 0 {
		i := queue[0]
		queue = queue[1:]
		order = append(order, &doc.Types[i])
		for _, d := range children[i] {
			blocked[d] = false
			queue = append(queue, d)
		}
	}

	if len(order) < len(doc.Types) {
		var stuck []string
		for i := range doc.Types {
			if blocked[i] {
				stuck = append(stuck, doc.Types[i].Name)
			}
		}
		sort.Strings(stuck)
		return nil, fmt.Errorf("inheritance cycle involving %s", strings.Join(stuck, ", "))
	}
	return order, nil
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
