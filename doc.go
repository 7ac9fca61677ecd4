package beartype

// Package beartype provides:
//
// - A closed descriptor model (Hint) for declaring acceptable value shapes
// - Origin resolution (OriginOf/OriginOfOrNil) mapping descriptors to the
//   runtime type backing their shallow membership test
// - A stable error model via Issues (code, message, offending representation)
// - A composable validator DSL under vale/ with identity-preserving caching
//
// Design policy:
// - Keep only public APIs in the root package; put detailed implementations under internal/.
// - Place the validator DSL under vale/, the YAML registry importer under
//   originyaml/, and the CLI under cmd/beartype.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//  origin, err := beartype.OriginOf(beartype.Mapping)
//
//  v, err := vale.IsSubclass.Subscribe(reflect.TypeOf((*io.Reader)(nil)).Elem())
//  ok := v.IsValid(reflect.TypeOf(&bytes.Buffer{}))
//
