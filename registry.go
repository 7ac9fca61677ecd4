package beartype

import (
	"errors"
	"reflect"

	"github.com/pbourke/beartype/i18n"
)

// ErrNilOrigin indicates Register was called without an origin type.
var ErrNilOrigin = errors.New("beartype: Register requires a non-nil origin type")

// OriginRegistry maps descriptor values to the runtime types backing their
// shallow membership tests. The registry is populated at process start
// (package init plus any Register calls made during startup, e.g. from an
// originyaml manifest) and treated as read-only afterwards; origin
// resolution reads it without locking.
type OriginRegistry struct {
	origins map[Hint]reflect.Type
}

// NewOriginRegistry returns an empty registry. Most callers want
// DefaultOrigins instead; isolated registries exist for tests and for
// embedders with their own shape catalogue.
func NewOriginRegistry() *OriginRegistry {
	return &OriginRegistry{origins: map[Hint]reflect.Type{}}
}

// Register associates a descriptor value with its origin type. Registering a
// non-hashable descriptor fails with unhashable_input; registering a nil
// origin is rejected so lookup misses stay unambiguous.
func (r *OriginRegistry) Register(h Hint, origin reflect.Type) (err error) {
	if origin == nil {
		return ErrNilOrigin
	}
	defer func() {
		if recover() != nil {
			err = Issues{{
				Code:    CodeUnhashableInput,
				Message: i18n.T(CodeUnhashableInput, nil),
				Hint:    HintRepr(h),
			}}
		}
	}()
	r.origins[h] = origin
	return nil
}

// Lookup returns the origin registered for h, or nil when none is known.
// Indexing the table with a non-comparable descriptor panics inside the map
// runtime; that panic is converted into an unhashable_input issue so callers
// can tell "bad key" apart from "no origin".
func (r *OriginRegistry) Lookup(h Hint) (origin reflect.Type, err error) {
	defer func() {
		if recover() != nil {
			origin = nil
			err = Issues{{
				Code:    CodeUnhashableInput,
				Message: i18n.T(CodeUnhashableInput, nil),
				Hint:    HintRepr(h),
			}}
		}
	}()
	origin = r.origins[h]
	return origin, nil
}

// Each calls fn for every registered (descriptor, origin) pair, in
// unspecified order.
func (r *OriginRegistry) Each(fn func(h Hint, origin reflect.Type)) {
	for h, origin := range r.origins {
		fn(h, origin)
	}
}

// DefaultOrigins is the process-wide registry consulted by OriginOf and
// OriginOfOrNil. Collaborators may extend it at process start.
var DefaultOrigins = NewOriginRegistry()

func init() {
	for attr, origin := range map[Attr]reflect.Type{
		Mapping:  reflect.TypeOf(map[string]any(nil)),
		Sequence: reflect.TypeOf([]any(nil)),
		Set:      reflect.TypeOf(map[any]struct{}(nil)),
		Chan:     reflect.TypeOf((chan any)(nil)),
		Callable: reflect.TypeOf((func())(nil)),
	} {
		// Builtin attrs are comparable; Register cannot fail here.
		_ = DefaultOrigins.Register(attr, origin)
	}
	// Union, Optional and Any stay unregistered: they originate from no
	// single runtime type.
}
