package vale_test

import (
	"reflect"
	"strings"
	"testing"

	beartype "github.com/pbourke/beartype"
	"github.com/pbourke/beartype/vale"
)

// A three-level conformance chain plus a disjoint hierarchy.
type Base interface{ base() }
type Mid interface {
	Base
	mid()
}
type Leaf interface {
	Mid
	leaf()
}
type Other interface{ other() }

// leafImpl satisfies the whole chain; otherImpl only the disjoint side.
type leafImpl struct{}

func (leafImpl) base() {}
func (leafImpl) mid()  {}
func (leafImpl) leaf() {}

type otherImpl struct{}

func (otherImpl) other() {}

var (
	baseT  = reflect.TypeOf((*Base)(nil)).Elem()
	midT   = reflect.TypeOf((*Mid)(nil)).Elem()
	leafT  = reflect.TypeOf((*Leaf)(nil)).Elem()
	otherT = reflect.TypeOf((*Other)(nil)).Elem()
)

func TestIsSubclass_IdentityMemoization(t *testing.T) {
	v1, err := vale.IsSubclass.Subscribe(baseT)
	if err != nil {
		t.Fatalf("subscribe: %v", err)
	}
	v2, err := vale.IsSubclass.Subscribe(baseT)
	if err != nil {
		t.Fatalf("subscribe again: %v", err)
	}
	if v1 != v2 {
		t.Fatalf("expected identical object for equal subscription")
	}

	// an equal-but-freshly-constructed argument tuple also hits
	fresh := reflect.TypeOf((*Base)(nil)).Elem()
	v3, err := vale.IsSubclass.Subscribe(fresh)
	if err != nil {
		t.Fatalf("subscribe fresh: %v", err)
	}
	if v1 != v3 {
		t.Fatalf("expected identical object for fresh-but-equal arguments")
	}
}

func TestIsSubclass_OrderIsPartOfIdentity(t *testing.T) {
	ab := vale.IsSubclass.MustSubscribe(baseT, otherT)
	ba := vale.IsSubclass.MustSubscribe(otherT, baseT)
	if ab == ba {
		t.Fatalf("expected distinct objects for reordered arguments")
	}
	// both predicates agree regardless
	if ab.IsValid(leafT) != ba.IsValid(leafT) {
		t.Fatalf("reordered validators must agree on values")
	}
}

func TestIsSubclass_SubscriptionBoundaries(t *testing.T) {
	if _, err := vale.IsSubclass.Subscribe(); !beartype.IsInvalidSubscription(err) {
		t.Fatalf("empty subscription: expected invalid_subscription, got %v", err)
	}

	_, err := vale.IsSubclass.Subscribe("not a class")
	if !beartype.IsInvalidSubscription(err) {
		t.Fatalf("non-class: expected invalid_subscription, got %v", err)
	}

	// a concrete type is a class, but not usable for a conformance test
	_, err = vale.IsSubclass.Subscribe(reflect.TypeOf(0))
	if !beartype.IsInvalidSubscription(err) {
		t.Fatalf("non-issubclassable: expected invalid_subscription, got %v", err)
	}
	iss, _ := beartype.AsIssues(err)
	if !strings.Contains(iss[0].Hint, "not issubclassable") {
		t.Fatalf("expected the distinct suitability message, got %q", iss[0].Hint)
	}

	// a good class mixed with a bad one still fails, naming the position
	_, err = vale.IsSubclass.Subscribe(baseT, 42)
	if !beartype.IsInvalidSubscription(err) {
		t.Fatalf("mixed: expected invalid_subscription, got %v", err)
	}
	iss, _ = beartype.AsIssues(err)
	if iss[0].Params["index"] != 1 {
		t.Fatalf("expected offending position 1, got %v", iss[0].Params["index"])
	}

	if _, err := vale.IsSubclass.Subscribe(baseT); err != nil {
		t.Fatalf("good class: %v", err)
	}
}

func TestIsSubclass_SubclassSemantics(t *testing.T) {
	v := vale.IsSubclass.MustSubscribe(baseT)

	// every interface in the chain conforms, including Base itself
	for _, typ := range []reflect.Type{baseT, midT, leafT} {
		if !v.IsValid(typ) {
			t.Fatalf("expected %v to satisfy IsSubclass[Base]", typ)
		}
	}
	// a concrete type with the right method set conforms too
	if !v.IsValid(reflect.TypeOf(leafImpl{})) {
		t.Fatalf("expected leafImpl to satisfy IsSubclass[Base]")
	}

	// disjoint types and non-types are rejected, never an error
	if v.IsValid(otherT) {
		t.Fatalf("disjoint interface must not satisfy")
	}
	if v.IsValid(reflect.TypeOf(otherImpl{})) {
		t.Fatalf("disjoint implementation must not satisfy")
	}
	if v.IsValid("Over whose pines, and crags, and caverns sail") {
		t.Fatalf("non-class value must not satisfy")
	}
	if v.IsValid(nil) {
		t.Fatalf("nil must not satisfy")
	}
}

func TestIsSubclass_MultipleCandidates(t *testing.T) {
	v := vale.IsSubclass.MustSubscribe(midT, otherT)

	if !v.IsValid(leafT) || !v.IsValid(otherT) {
		t.Fatalf("expected either branch to satisfy")
	}
	if v.IsValid(baseT) {
		t.Fatalf("Base is above Mid, not below; must not satisfy")
	}
}

func TestIsSubclass_Representation(t *testing.T) {
	v := vale.IsSubclass.MustSubscribe(baseT, otherT)
	repr := v.String()
	if !strings.HasPrefix(repr, "IsSubclass[") || !strings.HasSuffix(repr, "]") {
		t.Fatalf("unexpected repr shape: %q", repr)
	}
	if !strings.Contains(repr, "vale_test.Base") || !strings.Contains(repr, "vale_test.Other") {
		t.Fatalf("expected qualified candidate names in order, got %q", repr)
	}
	if strings.Index(repr, "Base") > strings.Index(repr, "Other") {
		t.Fatalf("expected subscription order preserved, got %q", repr)
	}
}

func TestIsSubclass_PredicateIsPure(t *testing.T) {
	v := vale.IsSubclass.MustSubscribe(baseT)
	for i := 0; i < 3; i++ {
		if !v.IsValid(midT) {
			t.Fatalf("repeated calls must agree (iteration %d)", i)
		}
		if v.IsValid(otherT) {
			t.Fatalf("repeated calls must agree on rejection (iteration %d)", i)
		}
	}
}
