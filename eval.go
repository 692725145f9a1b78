package rpncalc

import "math"

// Eval computes the value of a postfix expression. Each operator pops its
// operands from a value stack, right operand first, and pushes its result.
//
// If an operator lacks operands or values remain after the last operation,
// the error is an *ArityError. If p is empty, the error is an
// *EmptyInputError. If any value is infinite or NaN, the error is a
// *DomainError.
func (p Postfix) Eval() (float64, error) {
	stack := make([]float64, 0, len(p))
	for _, op := range p {
		var r float64
		switch op.kind {
		case OpOperand, OpConst:
			r = op.val
		case OpFunc:
			if len(stack) < 1 {
				return 0, &ArityError{Op: op.sym, Left: len(stack)}
			}
			x := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			r = op.apply1(x)
		case OpBinary:
			if len(stack) < 2 {
				return 0, &ArityError{Op: op.sym, Left: len(stack)}
			}
			rhs := stack[len(stack)-1]
			lhs := stack[len(stack)-2]
			stack = stack[:len(stack)-2]
			r = op.apply2(lhs, rhs)
		default:
			panic("rpncalc: invalid postfix op " + op.kind.String() + " " + op.sym)
		}
		if math.IsInf(r, 0) || math.IsNaN(r) {
			return 0, &DomainError{Op: op.Symbol(), X: r}
		}
		stack = append(stack, r)
	}
	switch len(stack) {
	case 0:
		return 0, &EmptyInputError{}
	case 1:
		return stack[0], nil
	default:
		return 0, &ArityError{Left: len(stack)}
	}
}
