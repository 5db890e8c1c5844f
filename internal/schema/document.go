// Package schema loads type hierarchy documents and builds live
// constructor registries from them.
//
// A document is YAML of the form:
//
//	types:
//	  - name: Animal
//	    members:
//	      eat: nom nom nom
//	  - name: Dog
//	    extends: Animal
//	    members:
//	      bark: woof
//
// Parse validates names, extends targets and member values. Build
// links the declared hierarchy base-first and attaches members only
// after linking, because a link replaces the prototype object and
// captures the base prototype as it is at that moment.
package schema

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"gopkg.in/yaml.v3"

	"github.com/protokin/kin/pkg/object"
)

// Document is a parsed hierarchy description.
type Document struct {
	Types []TypeDef `yaml:"types"`
}

// TypeDef declares one constructor: its name, the optional type it
// extends, and the members carried on its prototype.
type TypeDef struct {
	Name    string         `yaml:"name"`
	Extends string         `yaml:"extends,omitempty"`
	Members map[string]any `yaml:"members,omitempty"`
}

var identRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Load reads and parses the document at path.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading schema %s: %w", path, err)
	}
	return Parse(data, path)
}

// FindSchema walks up from dir looking for a kin.yaml (or kin.yml)
// and returns its path, or "" when no schema exists up to the
// filesystem root.
func FindSchema(dir string) (string, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolving directory: %w", err)
	}

	for {
		candidate := filepath.Join(dir, "kin.yaml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}

		candidate = filepath.Join(dir, "kin.yml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", nil
		}
		dir = parent
	}
}

// Parse decodes a document and validates it. path appears in error
// messages only.
func Parse(data []byte, path string) (*Document, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if err := doc.validate(path); err != nil {
		return nil, err
	}
	return &doc, nil
}

func (d *Document) validate(path string) error {
	seen := make(map[string]bool, len(d.Types))
	for i, td := range d.Types {
		if td.Name == "" {
			return fmt.Errorf("%s: types[%d]: name is required", path, i)
		}
		if !identRe.MatchString(td.Name) {
			return fmt.Errorf("%s: types[%d]: invalid name %q", path, i, td.Name)
		}
		if seen[td.Name] {
			return fmt.Errorf("%s: types[%d]: duplicate type %s", path, i, td.Name)
		}
		seen[td.Name] = true
	}

	// Extends targets resolve against the whole document, so they are
	// only checked once every name is known.
	for i, td := range d.Types {
		if td.Extends != "" {
			if td.Extends == td.Name {
				return fmt.Errorf("%s: types[%d] (%s): extends itself", path, i, td.Name)
			}
			if !seen[td.Extends] {
				return fmt.Errorf("%s: types[%d] (%s): extends undefined type %s", path, i, td.Name, td.Extends)
			}
		}
		for _, key := range sortedKeys(td.Members) {
			if !identRe.MatchString(key) {
				return fmt.Errorf("%s: types[%d] (%s): invalid member name %q", path, i, td.Name, key)
			}
			if key == object.ConstructorKey {
				return fmt.Errorf("%s: types[%d] (%s): member %q is reserved", path, i, td.Name, key)
			}
			if _, err := object.FromGo(td.Members[key]); err != nil {
				return fmt.Errorf("%s: types[%d] (%s): member %s: %w", path, i, td.Name, key, err)
			}
		}
	}
	return nil
}
