package prettyprinter

import (
	"bytes"
	"fmt"
	"sort"
	"strings"

	"github.com/protokin/kin/internal/schema"
	"github.com/protokin/kin/pkg/object"
)

// --- Hierarchy Printer (Output looks like a type tree) ---

// ANSI codes used by the painted variants. Each foreground code resets
// with 39, each style code with its matching reset code.
const (
	fgCyan     = 36
	styleBold  = 1
	styleDim   = 2
	resetBold  = 22
	resetDim   = 22
	resetColor = 39
)

type HierarchyPrinter struct {
	buf     bytes.Buffer
	color   bool
	members bool
}

func NewHierarchyPrinter() *HierarchyPrinter {
	return &HierarchyPrinter{}
}

func (p *HierarchyPrinter) SetColor(on bool) {
	p.color = on
}

// SetShowMembers makes PrintForest annotate each type with the members
// its own prototype declares.
func (p *HierarchyPrinter) SetShowMembers(on bool) {
	p.members = on
}

func (p *HierarchyPrinter) String() string {
	return p.buf.String()
}

func (p *HierarchyPrinter) write(s string) {
	p.buf.WriteString(s)
}

func (p *HierarchyPrinter) writeln() {
	p.buf.WriteString("\n")
}

func (p *HierarchyPrinter) paintFg(colorCode int, s string) string {
	if !p.color {
		return s
	}
	return fmt.Sprintf("\033[%dm%s\033[%dm", colorCode, s, resetColor)
}

func (p *HierarchyPrinter) paintStyle(styleCode, resetCode int, s string) string {
	if !p.color {
		return s
	}
	return fmt.Sprintf("\033[%dm%s\033[%dm", styleCode, s, resetCode)
}

// PrintForest renders every registered type as a tree rooted at the
// types that extend nothing. Siblings keep registration order.
func (p *HierarchyPrinter) PrintForest(reg *schema.Registry) {
	children := make(map[string][]string)
	var roots []string
	for _, name := range reg.Names() {
		c, ok := reg.Lookup(name)
		if !ok {
			continue
		}
		if base, ok := object.Base(c); ok {
			children[base.Name()] = append(children[base.Name()], name)
		} else {
			roots = append(roots, name)
		}
	}
	for _, root := range roots {
		p.writeTypeName(reg, root)
		p.writeln()
		p.printSubtree(reg, root, children, "")
	}
}

func (p *HierarchyPrinter) printSubtree(reg *schema.Registry, name string, children map[string][]string, prefix string) {
	kids := children[name]
	for i, kid := range kids {
		last := i == len(kids)-1
		p.write(prefix)
		if last {
			p.write("└── ")
		} else {
			p.write("├── ")
		}
		p.writeTypeName(reg, kid)
		p.writeln()
		if last {
			p.printSubtree(reg, kid, children, prefix+"    ")
		} else {
			p.printSubtree(reg, kid, children, prefix+"│   ")
		}
	}
}

// writeTypeName paints name and, when member display is on, the
// members declared on the type's own prototype.
func (p *HierarchyPrinter) writeTypeName(reg *schema.Registry, name string) {
	p.write(p.paintFg(fgCyan, name))
	if !p.members {
		return
	}
	c, ok := reg.Lookup(name)
	if !ok {
		return
	}
	var own []string
	for _, k := range c.Prototype().Keys() {
		if k == object.ConstructorKey {
			continue
		}
		own = append(own, k)
	}
	if len(own) == 0 {
		return
	}
	p.write(" ")
	p.write(p.paintStyle(styleDim, resetDim, "("+strings.Join(own, ", ")+")"))
}

// PrintChain renders the delegation chain starting at c, one hop per
// arrow: Dog -> Animal.
func (p *HierarchyPrinter) PrintChain(c *object.Constructor) {
	p.write(p.paintFg(fgCyan, c.Name()))
	for cur := c; ; {
		base, ok := object.Base(cur)
		if !ok {
			break
		}
		p.write(" -> ")
		p.write(p.paintFg(fgCyan, base.Name()))
		cur = base
	}
	p.writeln()
}

// PrintMembers renders every member visible on instances of c together
// with the type that supplies it, nearest shadowing definition first.
func (p *HierarchyPrinter) PrintMembers(c *object.Constructor) {
	p.write(p.paintStyle(styleBold, resetBold, c.Name()))
	p.writeln()

	names := visibleMembers(c.Prototype())

	// Align the value column the way match arms align their arrows.
	maxNameLen := 0
	values := make([]string, len(names))
	origins := make([]string, len(names))
	for i, name := range names {
		v, owner, ok := c.Prototype().Resolve(name)
		if !ok {
			values[i] = "<???>"
			origins[i] = "<???>"
			continue
		}
		values[i] = v.Inspect()
		origins[i] = originOf(owner)
		if len(name) > maxNameLen {
			maxNameLen = len(name)
		}
	}
	maxValLen := 0
	for _, v := range values {
		if len(v) > maxValLen {
			maxValLen = len(v)
		}
	}

	for i, name := range names {
		p.write("  ")
		p.write(name)
		for j := len(name); j < maxNameLen; j++ {
			p.write(" ")
		}
		p.write("  ")
		p.write(values[i])
		for j := len(values[i]); j < maxValLen; j++ {
			p.write(" ")
		}
		p.write("  ")
		p.write(p.paintStyle(styleDim, resetDim, "("+origins[i]+")"))
		p.writeln()
	}
}

// PrintResolution renders a single member lookup on c.
func (p *HierarchyPrinter) PrintResolution(c *object.Constructor, member string) error {
	v, owner, ok := c.Prototype().Resolve(member)
	if !ok {
		return fmt.Errorf("member not found: %s on %s", member, c.Name())
	}
	p.write(member)
	p.write(" = ")
	p.write(v.Inspect())
	p.write(" ")
	p.write(p.paintStyle(styleDim, resetDim, "("+originOf(owner)+")"))
	p.writeln()
	return nil
}

// visibleMembers collects member names reachable from proto through
// its chain. The constructor identity slot is plumbing, not a declared
// member, and stays out of listings.
func visibleMembers(proto *object.Object) []string {
	seen := make(map[string]bool)
	var names []string
	for cur := proto; cur != nil; cur = cur.Prototype() {
		for _, k := range cur.Keys() {
			if k == object.ConstructorKey || seen[k] {
				continue
			}
			seen[k] = true
			names = append(names, k)
		}
	}
	sort.Strings(names)
	return names
}

func originOf(owner *object.Object) string {
	if c, ok := object.ConstructorOf(owner); ok {
		return c.Name()
	}
	return "<???>"
}
