package generators

import (
	"fmt"
	"math/rand"
	"strings"
)

// RandomSource abstracts the source of randomness.
type RandomSource interface {
	Intn(n int) int
	Float64() float64
}

// RandSource wraps math/rand.
type RandSource struct {
	*rand.Rand
}

// ByteSource uses a byte slice as a source of randomness, so fuzz
// inputs drive generation deterministically.
type ByteSource struct {
	data []byte
	pos  int
}

func (s *ByteSource) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	if s.pos >= len(s.data) {
		return 0
	}
	v := int(s.data[s.pos])
	s.pos++
	return v % n
}

func (s *ByteSource) Float64() float64 {
	if s.pos >= len(s.data) {
		return 0.0
	}
	v := int(s.data[s.pos])
	s.pos++
	return float64(v) / 255.0
}

// SchemaGenerator generates random hierarchy documents. Every extends
// target points at an earlier type, so generated documents always
// parse and always link.
type SchemaGenerator struct {
	src RandomSource
}

const (
	MaxTypes   = 12
	MaxMembers = 4
)

func New(seed int64) *SchemaGenerator {
	return &SchemaGenerator{src: &RandSource{rand.New(rand.NewSource(seed))}}
}

func NewFromData(data []byte) *SchemaGenerator {
	return &SchemaGenerator{src: &ByteSource{data: data}}
}

// Document renders a document with up to MaxTypes types.
func (g *SchemaGenerator) Document() []byte {
	n := g.src.Intn(MaxTypes) + 1

	var b strings.Builder
	b.WriteString("types:\n")
	for i := 0; i < n; i++ {
		fmt.Fprintf(&b, "  - name: %s\n", typeName(i))
		// Roughly two thirds of non-root types extend something.
		if i > 0 && g.src.Intn(3) != 0 {
			fmt.Fprintf(&b, "    extends: %s\n", typeName(g.src.Intn(i)))
		}
		members := g.src.Intn(MaxMembers)
		if members > 0 {
			b.WriteString("    members:\n")
			for j := 0; j < members; j++ {
				fmt.Fprintf(&b, "      %s: %s\n", memberName(i, j), g.memberValue())
			}
		}
	}
	return []byte(b.String())
}

func (g *SchemaGenerator) memberValue() string {
	switch g.src.Intn(5) {
	case 0:
		return fmt.Sprintf("%d", g.src.Intn(1000))
	case 1:
		return fmt.Sprintf("%.3f", g.src.Float64()*100)
	case 2:
		if g.src.Intn(2) == 0 {
			return "true"
		}
		return "false"
	case 3:
		return "null"
	default:
		words := []string{"nom nom nom", "woof", "gulp", "hiss", "quack", "roar"}
		return words[g.src.Intn(len(words))]
	}
}

func typeName(i int) string {
	return fmt.Sprintf("Type%d", i)
}

func memberName(typeIdx, memberIdx int) string {
	return fmt.Sprintf("m%d_%d", typeIdx, memberIdx)
}
