package beartype

import (
	"reflect"

	"github.com/pbourke/beartype/i18n"
)

// OriginOf returns the origin type of h: the runtime type whose membership
// test is a sound shallow approximation of the descriptor. A bare Class is
// its own origin; every other descriptor is resolved through DefaultOrigins.
//
// Resolution is intentionally not memoized: it reduces to a single map probe
// and must observe registry extensions made at process start.
//
// Fails with no_origin when nothing resolves and with unhashable_input when
// h cannot be used as a lookup key.
func OriginOf(h Hint) (reflect.Type, error) {
	return DefaultOrigins.OriginOf(h)
}

// OriginOfOrNil behaves like OriginOf but reports an unresolvable descriptor
// as a nil origin instead of an error. Non-hashable descriptors still fail
// with unhashable_input; a bad key is a caller bug, not a missing origin.
func OriginOfOrNil(h Hint) (reflect.Type, error) {
	return DefaultOrigins.OriginOfOrNil(h)
}

// OriginOf resolves against this registry. See the package-level OriginOf.
func (r *OriginRegistry) OriginOf(h Hint) (reflect.Type, error) {
	origin, err := r.OriginOfOrNil(h)
	if err != nil {
		return nil, err
	}
	if origin == nil {
		return nil, Issues{{
			Code:    CodeNoOrigin,
			Message: i18n.T(CodeNoOrigin, nil),
			Hint:    HintRepr(h),
		}}
	}
	return origin, nil
}

// OriginOfOrNil resolves against this registry. See the package-level
// OriginOfOrNil.
func (r *OriginRegistry) OriginOfOrNil(h Hint) (reflect.Type, error) {
	if c, ok := h.(Class); ok {
		// A class is its own origin, even an unregistered one.
		return c.Type, nil
	}
	return r.Lookup(h)
}
