package vale_test

import (
	"strings"
	"testing"

	j "github.com/goccy/go-json"

	"github.com/pbourke/beartype/vale"
)

func TestDescribe_LeafAndComposite(t *testing.T) {
	leaf := vale.IsSubclass.MustSubscribe(baseT)
	d := vale.Describe(leaf)
	if d.Op != "leaf" || d.Kind != "IsSubclass" || len(d.Args) != 1 {
		t.Fatalf("unexpected leaf description: %+v", d)
	}
	if d.Repr != leaf.String() {
		t.Fatalf("description must carry the repr contract")
	}

	tree := leaf.OrElse(vale.IsSubclass.MustSubscribe(otherT)).Negate()
	d = vale.Describe(tree)
	if d.Op != "not" || len(d.Operands) != 1 {
		t.Fatalf("unexpected not description: %+v", d)
	}
	inner := d.Operands[0]
	if inner.Op != "or" || len(inner.Operands) != 2 {
		t.Fatalf("unexpected or description: %+v", inner)
	}
}

func TestDescribeJSON_RoundTrips(t *testing.T) {
	v := vale.IsSubclass.MustSubscribe(baseT).AndAlso(vale.MustIs("nonzero", func(any) bool { return true }))

	data, err := vale.DescribeJSON(v)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if !strings.Contains(string(data), `"op":"and"`) {
		t.Fatalf("expected operator in JSON, got %s", data)
	}

	var back vale.Description
	if err := j.Unmarshal(data, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if back.Op != "and" || len(back.Operands) != 2 {
		t.Fatalf("unexpected round-trip: %+v", back)
	}
	if back.Operands[1].Kind != "Is" || back.Operands[1].Args[0] != "nonzero" {
		t.Fatalf("expected Is leaf preserved, got %+v", back.Operands[1])
	}
}
