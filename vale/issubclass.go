package vale

import (
	"fmt"
	"reflect"

	beartype "github.com/pbourke/beartype"
	"github.com/pbourke/beartype/i18n"
	"github.com/pbourke/beartype/internal/typename"
)

// IsSubclass validates that a value is itself a runtime type conforming to
// at least one of the subscripted interface types. Go's subtype relation is
// interface satisfaction, so every candidate must be an interface type; a
// concrete candidate is rejected at subscription time as not usable for a
// conformance test (distinct from not being a type at all).
//
//	reader := reflect.TypeOf((*io.Reader)(nil)).Elem()
//	v, err := vale.IsSubclass.Subscribe(reader)
//	v.IsValid(reflect.TypeOf(&bytes.Buffer{})) // true
//	v.IsValid("not a type")                    // false, never an error
var IsSubclass = NewKind("IsSubclass", subclassArgs, subclassPredicate)

func subscriptionIssue(hint string, params map[string]any) beartype.Issues {
	return beartype.Issues{{
		Code:    beartype.CodeInvalidSubscription,
		Message: i18n.T(beartype.CodeInvalidSubscription, nil),
		Hint:    hint,
		Params:  params,
	}}
}

func subclassArgs(args []any) error {
	if len(args) == 0 {
		return subscriptionIssue("at least one class required", nil)
	}
	for i, a := range args {
		t, ok := a.(reflect.Type)
		if !ok || t == nil {
			return subscriptionIssue(
				fmt.Sprintf("argument %d (%s) is not a class", i, typename.ValueLabel(a)),
				map[string]any{"index": i, "arg": typename.ValueLabel(a)},
			)
		}
		if t.Kind() != reflect.Interface {
			return subscriptionIssue(
				fmt.Sprintf("argument %d (%s) is a class but not issubclassable: only interface types support conformance tests", i, typename.Qualified(t)),
				map[string]any{"index": i, "arg": typename.Qualified(t), "kind": t.Kind().String()},
			)
		}
	}
	return nil
}

func subclassPredicate(args []any) func(any) bool {
	candidates := make([]reflect.Type, len(args))
	for i, a := range args {
		candidates[i] = a.(reflect.Type)
	}
	return func(v any) bool {
		t, ok := v.(reflect.Type)
		if !ok || t == nil {
			return false
		}
		for _, c := range candidates {
			if t.Implements(c) {
				return true
			}
		}
		return false
	}
}
