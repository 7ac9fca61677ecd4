package vale

import "strings"

// And returns a validator satisfied only when every operand is. Evaluation
// short-circuits left to right. Chained conjunctions flatten, so the
// representation of A & B & C carries no redundant parentheses.
func And(l, r Validator) Validator {
	return &andValidator{operands: flattenInto(OpAnd, l, r)}
}

// Or returns a validator satisfied when any operand is. Evaluation
// short-circuits left to right; chained disjunctions flatten.
func Or(l, r Validator) Validator {
	return &orValidator{operands: flattenInto(OpOr, l, r)}
}

// Not returns a validator satisfied exactly when the operand is not.
func Not(v Validator) Validator {
	return &notValidator{operand: v}
}

// flattenInto merges operands of same-operator composites so associative
// chains stay a single flat list.
func flattenInto(op Op, vs ...Validator) []Validator {
	out := make([]Validator, 0, len(vs))
	for _, v := range vs {
		switch c := v.(type) {
		case *andValidator:
			if op == OpAnd {
				out = append(out, c.operands...)
				continue
			}
		case *orValidator:
			if op == OpOr {
				out = append(out, c.operands...)
				continue
			}
		}
		out = append(out, v)
	}
	return out
}

// operandRepr parenthesizes composite operands; leaves render bare.
func operandRepr(v Validator) string {
	if v.Op() == OpLeaf {
		return v.String()
	}
	return "(" + v.String() + ")"
}

func joinOperands(vs []Validator, sep string) string {
	b := &strings.Builder{}
	for i, v := range vs {
		if i > 0 {
			b.WriteString(sep)
		}
		b.WriteString(operandRepr(v))
	}
	return b.String()
}

type andValidator struct {
	operands []Validator
}

func (a *andValidator) IsValid(v any) bool {
	for _, op := range a.operands {
		if !op.IsValid(v) {
			return false
		}
	}
	return true
}

func (a *andValidator) Op() Op { return OpAnd }

func (a *andValidator) String() string { return joinOperands(a.operands, " & ") }

func (a *andValidator) AndAlso(other Validator) Validator { return And(a, other) }

func (a *andValidator) OrElse(other Validator) Validator { return Or(a, other) }

func (a *andValidator) Negate() Validator { return Not(a) }

type orValidator struct {
	operands []Validator
}

func (o *orValidator) IsValid(v any) bool {
	for _, op := range o.operands {
		if op.IsValid(v) {
			return true
		}
	}
	return false
}

func (o *orValidator) Op() Op { return OpOr }

func (o *orValidator) String() string { return joinOperands(o.operands, " | ") }

func (o *orValidator) AndAlso(other Validator) Validator { return And(o, other) }

func (o *orValidator) OrElse(other Validator) Validator { return Or(o, other) }

func (o *orValidator) Negate() Validator { return Not(o) }

type notValidator struct {
	operand Validator
}

func (n *notValidator) IsValid(v any) bool { return !n.operand.IsValid(v) }

func (n *notValidator) Op() Op { return OpNot }

func (n *notValidator) String() string { return "~" + operandRepr(n.operand) }

func (n *notValidator) AndAlso(other Validator) Validator { return And(n, other) }

func (n *notValidator) OrElse(other Validator) Validator { return Or(n, other) }

func (n *notValidator) Negate() Validator { return Not(n) }
