package vale

import (
	"strings"

	"github.com/pbourke/beartype/internal/typename"
)

// ArgRule validates a raw subscription argument tuple. A nil return accepts
// the tuple; otherwise the returned error (normally beartype.Issues with
// code invalid_subscription) surfaces unchanged to the subscriber.
type ArgRule func(args []any) error

// PredicateBuilder compiles an already-validated argument tuple into the
// leaf predicate. The builder may capture args; it is called at most once
// per canonical tuple.
type PredicateBuilder func(args []any) func(any) bool

// Kind is a stateless validator factory: a canonical name, an
// argument-validation rule, and a predicate builder. Subscribing a Kind
// yields the canonical Subscripted validator for the argument tuple.
type Kind struct {
	name     string
	validate ArgRule
	build    PredicateBuilder
	cache    *Cache
}

// NewKind builds a Kind over the process-wide default cache.
func NewKind(name string, rule ArgRule, builder PredicateBuilder) *Kind {
	return NewKindWithCache(name, rule, builder, defaultCache)
}

// NewKindWithCache builds a Kind over an explicit cache. Kinds sharing a
// cache still never collide: the kind itself is part of every cache key.
func NewKindWithCache(name string, rule ArgRule, builder PredicateBuilder, cache *Cache) *Kind {
	if cache == nil {
		cache = defaultCache
	}
	return &Kind{name: name, validate: rule, build: builder, cache: cache}
}

// Name returns the kind's canonical name as it appears in representations.
func (k *Kind) Name() string { return k.name }

// Subscribe returns the canonical validator for the given argument tuple,
// validating and constructing it on first use. Order and multiplicity are
// part of identity: Subscribe(A, B) and Subscribe(B, A) are distinct
// objects even when their predicates agree.
func (k *Kind) Subscribe(args ...any) (*Subscripted, error) {
	return k.cache.GetOrCreate(k, args)
}

// MustSubscribe is Subscribe for statically-known arguments; it panics on a
// malformed subscription.
func (k *Kind) MustSubscribe(args ...any) *Subscripted {
	v, err := k.Subscribe(args...)
	if err != nil {
		panic(err)
	}
	return v
}

// render produces the leaf representation: the kind name followed by the
// bracketed, comma-joined argument labels in subscription order.
func (k *Kind) render(args []any) string {
	b := &strings.Builder{}
	b.WriteString(k.name)
	b.WriteString("[")
	for i, a := range args {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(typename.ValueLabel(a))
	}
	b.WriteString("]")
	return b.String()
}
