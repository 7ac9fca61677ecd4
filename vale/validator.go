package vale

// Op identifies a validator variant.
type Op int

const (
	OpLeaf Op = iota
	OpAnd
	OpOr
	OpNot
)

// Validator is the closed capability set shared by leaf and composite
// validators: a pure membership predicate plus a human-readable
// representation. IsValid never panics and never reports an error; any value
// the validator cannot affirmatively accept is simply false.
type Validator interface {
	// IsValid reports whether v satisfies the validator. Pure and reentrant;
	// safe to call concurrently, including from composite predicates.
	IsValid(v any) bool
	// Op identifies the variant, primarily so representations can decide
	// which operands need parenthesizing.
	Op() Op
	// String renders the validator for diagnostics and generated-code
	// comments. The format is part of the contract:
	// Kind[Arg1, Arg2] for leaves, (L) & (R), (L) | (R), ~(V) for
	// composites, with parentheses omitted around leaf operands.
	String() string

	// AndAlso returns a validator satisfied when both this and other are.
	AndAlso(other Validator) Validator
	// OrElse returns a validator satisfied when either this or other is.
	OrElse(other Validator) Validator
	// Negate returns a validator satisfied when this one is not.
	Negate() Validator
}

// Subscripted is an immutable leaf validator produced by subscripting a
// Kind. Instances are canonical: equal (kind, arguments) pairs share one
// object, enforced by the cache, so reference equality doubles as semantic
// equality.
type Subscripted struct {
	kind  *Kind
	args  []any
	check func(any) bool
	repr  string
}

// Kind returns the factory that produced this validator.
func (s *Subscripted) Kind() *Kind { return s.kind }

// Args returns a copy of the canonical argument tuple, in subscription order.
func (s *Subscripted) Args() []any {
	out := make([]any, len(s.args))
	copy(out, s.args)
	return out
}

func (s *Subscripted) IsValid(v any) bool { return s.check(v) }

func (s *Subscripted) Op() Op { return OpLeaf }

func (s *Subscripted) String() string { return s.repr }

func (s *Subscripted) AndAlso(other Validator) Validator { return And(s, other) }

func (s *Subscripted) OrElse(other Validator) Validator { return Or(s, other) }

func (s *Subscripted) Negate() Validator { return Not(s) }
