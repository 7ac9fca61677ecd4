package vale

import (
	j "github.com/goccy/go-json"

	"github.com/pbourke/beartype/internal/typename"
)

// Description is the structural projection of a validator tree, suitable
// for embedding in diagnostics and machine-readable reports.
type Description struct {
	Op       string        `json:"op"`                 // "leaf" | "and" | "or" | "not"
	Kind     string        `json:"kind,omitempty"`     // leaf only: the kind's canonical name
	Args     []string      `json:"args,omitempty"`     // leaf only: argument labels in subscription order
	Operands []Description `json:"operands,omitempty"` // composites only
	Repr     string        `json:"repr"`               // the validator's String()
}

// Describe projects a validator tree into its Description.
func Describe(v Validator) Description {
	switch t := v.(type) {
	case *Subscripted:
		args := make([]string, len(t.args))
		for i, a := range t.args {
			if s, ok := a.(string); ok {
				args[i] = s
			} else {
				args[i] = typename.ValueLabel(a)
			}
		}
		return Description{Op: "leaf", Kind: t.kind.Name(), Args: args, Repr: t.String()}
	case *andValidator:
		return Description{Op: "and", Operands: describeAll(t.operands), Repr: t.String()}
	case *orValidator:
		return Description{Op: "or", Operands: describeAll(t.operands), Repr: t.String()}
	case *notValidator:
		return Description{Op: "not", Operands: describeAll([]Validator{t.operand}), Repr: t.String()}
	default:
		// Foreign Validator implementations still project their contract.
		return Description{Op: "leaf", Repr: v.String()}
	}
}

func describeAll(vs []Validator) []Description {
	out := make([]Description, len(vs))
	for i, v := range vs {
		out[i] = Describe(v)
	}
	return out
}

// DescribeJSON renders Describe(v) as JSON.
func DescribeJSON(v Validator) ([]byte, error) {
	return j.Marshal(Describe(v))
}
