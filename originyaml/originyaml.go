// Package originyaml imports origin-registry manifests from YAML. It lets
// deployments extend the shape table declaratively at process start:
//
//	origins:
//	  - attr: RuneSequence
//	    origin: string
//	  - attr: Buffer
//	    origin: '[]byte'
//
// YAML can only name types, so Apply resolves origin names through a type
// catalog; BuiltinTypes covers the common Go shapes and callers merge their
// own entries on top.
package originyaml

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"reflect"

	"gopkg.in/yaml.v3"

	beartype "github.com/pbourke/beartype"
)

// Entry associates a shape name with a named origin type.
type Entry struct {
	Attr   string `yaml:"attr"`
	Origin string `yaml:"origin"`
}

// Manifest is one YAML document's worth of registry entries.
type Manifest struct {
	Origins []Entry `yaml:"origins"`
}

// Parse scans a possibly multi-document YAML stream and merges every
// document's entries in order.
func Parse(data []byte) (Manifest, error) {
	var out Manifest
	dec := yaml.NewDecoder(bytes.NewReader(data))
	for {
		var doc Manifest
		if err := dec.Decode(&doc); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return Manifest{}, fmt.Errorf("originyaml: %w", err)
		}
		out.Origins = append(out.Origins, doc.Origins...)
	}
	return out, nil
}

// Apply parses data and registers every entry into reg, resolving origin
// names through catalog (nil means BuiltinTypes). The registry is left
// partially extended when a later entry fails; manifests are expected to be
// validated at process start where any failure is fatal anyway.
func Apply(data []byte, reg *beartype.OriginRegistry, catalog map[string]reflect.Type) error {
	m, err := Parse(data)
	if err != nil {
		return err
	}
	if catalog == nil {
		catalog = BuiltinTypes()
	}
	for i, e := range m.Origins {
		if e.Attr == "" {
			return fmt.Errorf("originyaml: entry %d: attr is required", i)
		}
		origin, ok := catalog[e.Origin]
		if !ok {
			return fmt.Errorf("originyaml: entry %d (%s): unknown origin type %q", i, e.Attr, e.Origin)
		}
		if err := reg.Register(beartype.Attr(e.Attr), origin); err != nil {
			return fmt.Errorf("originyaml: entry %d (%s): %w", i, e.Attr, err)
		}
	}
	return nil
}

// BuiltinTypes returns the default origin-name catalog.
func BuiltinTypes() map[string]reflect.Type {
	return map[string]reflect.Type{
		"string":         reflect.TypeOf(""),
		"bool":           reflect.TypeOf(false),
		"int":            reflect.TypeOf(int(0)),
		"int64":          reflect.TypeOf(int64(0)),
		"float64":        reflect.TypeOf(float64(0)),
		"[]byte":         reflect.TypeOf([]byte(nil)),
		"[]any":          reflect.TypeOf([]any(nil)),
		"map[string]any": reflect.TypeOf(map[string]any(nil)),
	}
}
