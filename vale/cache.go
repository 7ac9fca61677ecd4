package vale

import (
	"sync"

	beartype "github.com/pbourke/beartype"
	"github.com/pbourke/beartype/i18n"
)

// Cache is the identity table behind validator subscription: for any
// (kind, canonical arguments) pair it hands out exactly one Subscripted
// object for the life of the cache. Entries are never evicted — argument
// spaces are small and reference identity must survive re-subscription.
//
// Kinds constructed with NewKind share the process-wide default cache;
// tests build isolated kinds over NewCache to observe hit/miss behavior
// deterministically.
type Cache struct {
	mu      sync.Mutex
	entries map[cacheKey]*Subscripted
}

// NewCache returns an empty, independent identity cache.
func NewCache() *Cache {
	return &Cache{entries: map[cacheKey]*Subscripted{}}
}

var defaultCache = NewCache()

type cacheKey struct {
	kind *Kind
	args any // canonical packing of the argument tuple, see packArgs
}

// packArgs folds an argument tuple into a single comparable value while
// preserving order and multiplicity. Fixed-size arrays of any are comparable
// when their elements are; longer tuples nest. Tuples of different lengths
// pack into distinct dynamic types, so they can never collide.
func packArgs(args []any) any {
	switch len(args) {
	case 0:
		return [0]any{}
	case 1:
		return [1]any{args[0]}
	case 2:
		return [2]any{args[0], args[1]}
	case 3:
		return [3]any{args[0], args[1], args[2]}
	case 4:
		return [4]any{args[0], args[1], args[2], args[3]}
	default:
		return packedPair{
			head: [4]any{args[0], args[1], args[2], args[3]},
			tail: packArgs(args[4:]),
		}
	}
}

type packedPair struct {
	head [4]any
	tail any
}

// GetOrCreate returns the canonical validator for (k, args), constructing
// and inserting it on first subscription. The whole sequence runs under the
// cache mutex so a racing first subscription constructs exactly one object;
// losers receive the winner's. A hit returns the existing object without
// re-validating. On miss, k's argument rule runs first and a failure leaves
// the cache unmodified.
//
// A non-comparable argument cannot become part of a cache key; it is
// reported as an invalid_subscription issue. Panics out of the kind's own
// rule or builder are collaborator bugs and propagate unchanged.
func (c *Cache) GetOrCreate(k *Kind, args []any) (*Subscripted, error) {
	key := cacheKey{kind: k, args: packArgs(args)}

	c.mu.Lock()
	defer c.mu.Unlock()

	hit, ok, err := c.probe(key)
	if err != nil {
		return nil, err
	}
	if ok {
		return hit, nil
	}
	if err := k.validate(args); err != nil {
		return nil, err
	}
	canonical := make([]any, len(args))
	copy(canonical, args)
	v := &Subscripted{
		kind:  k,
		args:  canonical,
		check: k.build(canonical),
		repr:  k.render(canonical),
	}
	// probe proved the key hashable, so the insert cannot panic.
	c.entries[key] = v
	return v, nil
}

// probe looks key up under the caller-held mutex. Hashing a non-comparable
// argument panics inside the map runtime; only that probe is guarded, so
// the panic converts into an invalid_subscription issue without masking
// failures elsewhere.
func (c *Cache) probe(key cacheKey) (v *Subscripted, ok bool, err error) {
	defer func() {
		if recover() != nil {
			v, ok = nil, false
			err = beartype.Issues{{
				Code:    beartype.CodeInvalidSubscription,
				Message: i18n.T(beartype.CodeInvalidSubscription, nil),
				Hint:    "subscription argument is not hashable",
			}}
		}
	}()
	v, ok = c.entries[key]
	return v, ok, nil
}

// Len reports the number of cached validators. Intended for tests.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
