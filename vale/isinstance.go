package vale

import (
	"fmt"
	"reflect"

	"github.com/pbourke/beartype/internal/typename"
)

// IsInstance validates that a value's dynamic type is assignable to at
// least one of the subscripted types. Unlike IsSubclass the value under
// test is an ordinary value, not a type, and candidates may be any runtime
// type: assignment to a concrete candidate means "is exactly that type",
// assignment to an interface candidate means "implements it".
var IsInstance = NewKind("IsInstance", instanceArgs, instancePredicate)

func instanceArgs(args []any) error {
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
	}
	return nil
}

func instancePredicate(args []any) func(any) bool {
	candidates := make([]reflect.Type, len(args))
	for i, a := range args {
		candidates[i] = a.(reflect.Type)
	}
	return func(v any) bool {
		t := reflect.TypeOf(v)
		if t == nil {
			return false
		}
		for _, c := range candidates {
			if t.AssignableTo(c) {
				return true
			}
		}
		return false
	}
}
