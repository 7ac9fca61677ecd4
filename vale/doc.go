package vale

// Package vale is the validator DSL: factories (Kinds) turn subscription
// arguments into immutable, memoized predicate objects that compose with
// And/Or/Not into larger validators.
//
// Subscribing a Kind with equal arguments always yields the identical
// object, so validators are safe to use as map keys and in identity-based
// deduplication. Composite validators share their operands' structure but
// are not themselves memoized.
//
// Typical usage:
//
//  reader := reflect.TypeOf((*io.Reader)(nil)).Elem()
//  closer := reflect.TypeOf((*io.Closer)(nil)).Elem()
//
//  v, err := vale.IsSubclass.Subscribe(reader, closer)
//  ok := v.IsValid(reflect.TypeOf(&os.File{})) // type implements io.Reader
//
//  small, _ := vale.Is("small", func(x any) bool { n, ok := x.(int); return ok && n < 10 })
//  both := v.OrElse(small)
//
