package rpncalc

import "strings"

// Postfix is a sequence of operations in reverse-Polish order. It never
// contains brackets.
type Postfix []Op

func (p Postfix) String() string {
	var b strings.Builder
	for i, op := range p {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(op.Symbol())
	}
	return b.String()
}

// ToPostfix reorders tokens from infix to postfix order using the
// shunting-yard algorithm. Binary operators of equal precedence associate to
// the left. Unbalanced brackets give a *BracketError.
func ToPostfix(toks []Token) (Postfix, error) {
	var (
		out   = make(Postfix, 0, len(toks))
		stack []Token
	)
	for _, tok := range toks {
		op := tok.Op
		switch op.kind {
		case OpOperand, OpConst:
			out = append(out, op)
		case OpFunc, OpBinary:
			for len(stack) > 0 {
				top := stack[len(stack)-1].Op
				if !top.isOperator() || top.prec < op.prec {
					break
				}
				out = append(out, top)
				stack = stack[:len(stack)-1]
			}
			stack = append(stack, tok)
		case OpGroup:
			if op.sym == "(" {
				stack = append(stack, tok)
				continue
			}
			for {
				if len(stack) == 0 {
					return nil, &BracketError{Col: tok.Col, Missing: "("}
				}
				top := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				if top.Op.kind == OpGroup {
					// Only open brackets are ever pushed.
					break
				}
				out = append(out, top.Op)
			}
		default:
			panic("rpncalc: invalid token " + tok.String())
		}
	}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		if top.Op.kind == OpGroup {
			return nil, &BracketError{Col: top.Col, Missing: ")"}
		}
		out = append(out, top.Op)
		stack = stack[:len(stack)-1]
	}
	return out, nil
}
