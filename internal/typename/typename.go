// Package typename renders fully-qualified runtime type names for
// diagnostics and validator representations. This package is internal and
// not part of the public API.
package typename

import (
	"fmt"
	"reflect"
)

// Qualified returns the package-qualified name of t, e.g.
// "io.Reader" or "github.com/pbourke/beartype/vale_test.Sized".
// Unnamed and builtin types fall back to reflect's own syntax.
func Qualified(t reflect.Type) string {
	if t == nil {
		return "<nil>"
	}
	if pkg := t.PkgPath(); pkg != "" && t.Name() != "" {
		return pkg + "." + t.Name()
	}
	return t.String()
}

// ValueLabel renders an arbitrary value for inclusion in a diagnostic
// message: qualified name for reflect.Type values, %q for strings, %v with
// a type prefix otherwise.
func ValueLabel(v any) string {
	switch x := v.(type) {
	case nil:
		return "<nil>"
	case reflect.Type:
		return Qualified(x)
	case string:
		return fmt.Sprintf("%q", x)
	default:
		return fmt.Sprintf("%v (%T)", x, x)
	}
}
