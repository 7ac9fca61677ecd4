package vale_test

import (
	"testing"

	beartype "github.com/pbourke/beartype"
	"github.com/pbourke/beartype/vale"
)

func TestIs_BuildsNamedPredicate(t *testing.T) {
	positive, err := vale.Is("positive", func(v any) bool {
		n, ok := v.(int)
		return ok && n > 0
	})
	if err != nil {
		t.Fatalf("is: %v", err)
	}
	if !positive.IsValid(3) || positive.IsValid(-3) || positive.IsValid("3") {
		t.Fatalf("unexpected predicate behavior")
	}
	if positive.String() != "Is[positive]" {
		t.Fatalf("unexpected repr: %q", positive.String())
	}
	if positive.Kind().Name() != "Is" {
		t.Fatalf("unexpected kind name: %q", positive.Kind().Name())
	}
}

func TestIs_RequiresNameAndPredicate(t *testing.T) {
	if _, err := vale.Is("", func(any) bool { return true }); !beartype.IsInvalidSubscription(err) {
		t.Fatalf("missing name: expected invalid_subscription, got %v", err)
	}
	if _, err := vale.Is("x", nil); !beartype.IsInvalidSubscription(err) {
		t.Fatalf("missing predicate: expected invalid_subscription, got %v", err)
	}
}

func TestIs_KindRejectsDirectSubscription(t *testing.T) {
	v := vale.MustIs("x", func(any) bool { return true })

	_, err := v.Kind().Subscribe("y")
	if !beartype.IsInvalidSubscription(err) {
		t.Fatalf("expected invalid_subscription, got %v", err)
	}
	iss, _ := beartype.AsIssues(err)
	if iss[0].Hint != "Is subscribes through vale.Is, not Subscribe" {
		t.Fatalf("unexpected hint: %q", iss[0].Hint)
	}
}

func TestIs_NotMemoized(t *testing.T) {
	pred := func(any) bool { return true }
	a := vale.MustIs("same", pred)
	b := vale.MustIs("same", pred)
	if a == b {
		t.Fatalf("Is validators are constructed fresh per call")
	}
}
