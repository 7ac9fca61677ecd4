package typename

import (
	"io"
	"reflect"
	"testing"
)

func TestQualified(t *testing.T) {
	if got := Qualified(reflect.TypeOf((*io.Reader)(nil)).Elem()); got != "io.Reader" {
		t.Fatalf("unexpected qualified name: %q", got)
	}
	if got := Qualified(reflect.TypeOf("")); got != "string" {
		t.Fatalf("unexpected builtin name: %q", got)
	}
	if got := Qualified(reflect.TypeOf([]byte(nil))); got != "[]uint8" {
		t.Fatalf("unexpected unnamed name: %q", got)
	}
	if got := Qualified(nil); got != "<nil>" {
		t.Fatalf("unexpected nil name: %q", got)
	}
}

func TestValueLabel(t *testing.T) {
	if got := ValueLabel(reflect.TypeOf((*io.Reader)(nil)).Elem()); got != "io.Reader" {
		t.Fatalf("unexpected type label: %q", got)
	}
	if got := ValueLabel("x"); got != `"x"` {
		t.Fatalf("unexpected string label: %q", got)
	}
	if got := ValueLabel(42); got != "42 (int)" {
		t.Fatalf("unexpected value label: %q", got)
	}
}
