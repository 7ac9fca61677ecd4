package beartype

import (
	"reflect"
	"strings"

	"github.com/pbourke/beartype/internal/typename"
)

// HintKind identifies a descriptor variant.
type HintKind int

const (
	HintClass HintKind = iota
	HintAttr
	HintParameterized
)

// Hint is the root descriptor interface. A hint declares what shape of data
// is acceptable: a bare runtime type, a named parameterized shape, or a shape
// applied to argument hints.
//
// Hints participate in hash-based registry lookup, so implementations must be
// comparable; a hint whose dynamic type is not comparable surfaces as an
// unhashable_input issue rather than as "no origin".
type Hint interface {
	HintKind() HintKind
	String() string
}

// Class is a bare runtime type acting as its own origin.
type Class struct {
	Type reflect.Type
}

// ClassOf returns the Class hint for the dynamic type of v.
func ClassOf(v any) Class { return Class{Type: reflect.TypeOf(v)} }

func (Class) HintKind() HintKind { return HintClass }

func (c Class) String() string { return typename.Qualified(c.Type) }

// Attr is a named, argumentless parameterized-descriptor shape. Its origin
// type, if any, comes from the origin registry.
type Attr string

func (Attr) HintKind() HintKind { return HintAttr }

func (a Attr) String() string { return string(a) }

// Builtin shapes. Mapping through Callable carry registered origin types;
// Union, Optional and Any deliberately resolve to no origin.
const (
	Mapping  Attr = "Mapping"
	Sequence Attr = "Sequence"
	Set      Attr = "Set"
	Chan     Attr = "Chan"
	Callable Attr = "Callable"
	Union    Attr = "Union"
	Optional Attr = "Optional"
	Any      Attr = "Any"
)

// Parameterized is a shape applied to argument hints, e.g. Mapping[Class(string), Any].
// The canonical form is the pointer returned by Subscript: pointers are
// comparable and therefore usable in hash-based lookup, while the bare struct
// (it carries an Args slice) is not.
type Parameterized struct {
	Attr Attr
	Args []Hint
}

// Subscript applies a shape to argument hints.
func Subscript(attr Attr, args ...Hint) *Parameterized {
	return &Parameterized{Attr: attr, Args: args}
}

func (*Parameterized) HintKind() HintKind { return HintParameterized }

func (p *Parameterized) String() string {
	b := &strings.Builder{}
	b.WriteString(string(p.Attr))
	b.WriteString("[")
	for i, a := range p.Args {
		if i > 0 {
			b.WriteString(", ")
		}
		if a == nil {
			b.WriteString("<nil>")
			continue
		}
		b.WriteString(a.String())
	}
	b.WriteString("]")
	return b.String()
}

// HintRepr renders an arbitrary descriptor for diagnostics. It tolerates nil
// and non-Hint values so error paths never panic while formatting.
func HintRepr(h any) string {
	switch v := h.(type) {
	case nil:
		return "<nil>"
	case Hint:
		return v.String()
	default:
		return typename.ValueLabel(h)
	}
}
