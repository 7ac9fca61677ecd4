package vale

// isKind exists so Is-built leaves carry a kind like every other leaf.
// Go functions are not comparable, so arbitrary predicates cannot be
// canonicalized into cache keys; the kind therefore rejects direct
// subscription and construction happens only through Is.
var isKind = NewKind("Is",
	func(args []any) error {
		return subscriptionIssue("Is subscribes through vale.Is, not Subscribe", nil)
	},
	func(args []any) func(any) bool {
		return func(any) bool { return false }
	},
)

// Is builds a named leaf validator from an arbitrary one-argument
// predicate. Each call returns a fresh object — Is validators are not
// memoized — but the result composes and renders exactly like subscripted
// validators, as Is[name].
//
// pred must be pure and must not panic; validation of a constructed
// validator never fails, it only answers false.
func Is(name string, pred func(any) bool) (*Subscripted, error) {
	if name == "" {
		return nil, subscriptionIssue("a predicate name is required", nil)
	}
	if pred == nil {
		return nil, subscriptionIssue("a predicate function is required", map[string]any{"name": name})
	}
	return &Subscripted{
		kind:  isKind,
		args:  []any{name},
		check: pred,
		repr:  "Is[" + name + "]",
	}, nil
}

// MustIs is Is for statically-known predicates; it panics on a malformed
// subscription.
func MustIs(name string, pred func(any) bool) *Subscripted {
	v, err := Is(name, pred)
	if err != nil {
		panic(err)
	}
	return v
}
