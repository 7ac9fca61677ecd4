package beartype_test

import (
	"testing"

	beartype "github.com/pbourke/beartype"
)

func TestHint_KindsAndReprs(t *testing.T) {
	c := beartype.ClassOf(map[string]int{})
	if c.HintKind() != beartype.HintClass || c.String() != "map[string]int" {
		t.Fatalf("unexpected class hint: kind=%v repr=%q", c.HintKind(), c.String())
	}

	if beartype.Sequence.HintKind() != beartype.HintAttr || beartype.Sequence.String() != "Sequence" {
		t.Fatalf("unexpected attr hint")
	}

	p := beartype.Subscript(beartype.Sequence, beartype.ClassOf(0))
	if p.HintKind() != beartype.HintParameterized || p.String() != "Sequence[int]" {
		t.Fatalf("unexpected parameterized hint: %q", p.String())
	}
	if got := beartype.Subscript(beartype.Union, nil).String(); got != "Union[<nil>]" {
		t.Fatalf("nil argument must render, got %q", got)
	}
}

func TestHintRepr_ToleratesNonHints(t *testing.T) {
	if got := beartype.HintRepr(nil); got != "<nil>" {
		t.Fatalf("unexpected nil repr: %q", got)
	}
	if got := beartype.HintRepr(beartype.Mapping); got != "Mapping" {
		t.Fatalf("unexpected hint repr: %q", got)
	}
	if got := beartype.HintRepr("raw"); got != `"raw"` {
		t.Fatalf("unexpected foreign repr: %q", got)
	}
}
