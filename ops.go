package rpncalc

import (
	"math"
	"math/big"
	"sort"
	"strconv"

	"github.com/zephyrtronium/bigfloat"
)

// OpKind classifies an Op.
type OpKind int8

const (
	opNone OpKind = iota
	// OpOperand is a literal number.
	OpOperand
	// OpConst is a named constant, e.g. PI.
	OpConst
	// OpFunc is a function of one argument, e.g. sqrt.
	OpFunc
	// OpBinary is a binary infix operator, e.g. +.
	OpBinary
	// OpGroup is an open or close bracket.
	OpGroup
)

func (k OpKind) String() string {
	switch k {
	case OpOperand:
		return "Operand"
	case OpConst:
		return "Const"
	case OpFunc:
		return "Func"
	case OpBinary:
		return "Binary"
	case OpGroup:
		return "Group"
	default:
		return "OpKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// fnID selects the computation an Op performs.
type fnID int8

const (
	fnNone fnID = iota
	fnSqrt
	fnSin
	fnCos
	fnExp
	fnAdd
	fnSub
	fnMul
	fnDiv
)

// Op is a single operation: an operand, a constant, a function, a binary
// operator, or a bracket. The zero Op is invalid.
type Op struct {
	kind OpKind
	fn   fnID
	prec int8
	sym  string
	val  float64
}

// Kind returns the op's classification.
func (op Op) Kind() OpKind {
	return op.kind
}

// Symbol returns the name the op is looked up by. For operands, it is the
// shortest decimal representation of the value.
func (op Op) Symbol() string {
	if op.kind == OpOperand {
		return strconv.FormatFloat(op.val, 'g', -1, 64)
	}
	return op.sym
}

// Prec returns the op's precedence. Higher binds tighter. Operands and
// constants have precedence 0.
func (op Op) Prec() int {
	return int(op.prec)
}

// Value returns the value of an operand or constant, or 0 for other kinds.
func (op Op) Value() float64 {
	return op.val
}

func (op Op) String() string {
	return op.Symbol()
}

// isOperator reports whether op participates in precedence comparisons.
func (op Op) isOperator() bool {
	return op.kind == OpFunc || op.kind == OpBinary
}

// Operand creates an op pushing a literal value.
func Operand(v float64) Op {
	return Op{kind: OpOperand, val: v}
}

// apply1 evaluates a unary function.
func (op Op) apply1(x float64) float64 {
	switch op.fn {
	case fnSqrt:
		return math.Sqrt(x)
	case fnSin:
		return math.Sin(x)
	case fnCos:
		return math.Cos(x)
	case fnExp:
		return math.Exp(x)
	default:
		panic("rpncalc: apply1 on " + op.kind.String() + " " + op.sym)
	}
}

// apply2 evaluates a binary operator with l on the left of the operator and r
// on the right.
func (op Op) apply2(l, r float64) float64 {
	switch op.fn {
	case fnAdd:
		return l + r
	case fnSub:
		return l - r
	case fnMul:
		return l * r
	case fnDiv:
		return l / r
	default:
		panic("rpncalc: apply2 on " + op.kind.String() + " " + op.sym)
	}
}

// Table maps symbols to operations. A Table is never modified after it is
// created, so it is safe to share between goroutines.
type Table struct {
	ops map[string]Op
}

// Lookup finds the operation for a symbol.
func (t *Table) Lookup(sym string) (Op, bool) {
	op, ok := t.ops[sym]
	return op, ok
}

// Symbols returns the table's symbols in ascending order.
func (t *Table) Symbols() []string {
	r := make([]string, 0, len(t.ops))
	for k := range t.ops {
		r = append(r, k)
	}
	sort.Strings(r)
	return r
}

// constPrec is the precision in bits used to compute constants before
// rounding to float64.
const constPrec = 64

func newTable() *Table {
	t := Table{ops: make(map[string]Op, 12)}
	learn := func(op Op) {
		if _, ok := t.ops[op.sym]; ok {
			panic("rpncalc: duplicate symbol " + op.sym)
		}
		t.ops[op.sym] = op
	}
	learn(Op{kind: OpConst, sym: "PI", val: bigconst(bigfloat.Pi)})
	learn(Op{kind: OpConst, sym: "E", val: bigconst(func(out *big.Float) *big.Float {
		var one big.Float
		one.SetPrec(constPrec).SetFloat64(1)
		return bigfloat.Exp(out, &one)
	})})
	learn(Op{kind: OpFunc, sym: "sqrt", prec: 4, fn: fnSqrt})
	learn(Op{kind: OpFunc, sym: "sin", prec: 4, fn: fnSin})
	learn(Op{kind: OpFunc, sym: "cos", prec: 4, fn: fnCos})
	learn(Op{kind: OpFunc, sym: "exp", prec: 4, fn: fnExp})
	learn(Op{kind: OpBinary, sym: "*", prec: 3, fn: fnMul})
	learn(Op{kind: OpBinary, sym: "/", prec: 3, fn: fnDiv})
	learn(Op{kind: OpBinary, sym: "+", prec: 2, fn: fnAdd})
	learn(Op{kind: OpBinary, sym: "-", prec: 2, fn: fnSub})
	learn(Op{kind: OpGroup, sym: "(", prec: 1})
	learn(Op{kind: OpGroup, sym: ")", prec: 1})
	return &t
}

// bigconst computes a constant at constPrec bits and rounds it to the
// nearest float64.
func bigconst(f func(out *big.Float) *big.Float) float64 {
	r := new(big.Float).SetPrec(constPrec)
	f(r)
	v, _ := r.Float64()
	return v
}

var defaultTable = newTable()

// DefaultTable returns the table of built-in symbols.
func DefaultTable() *Table {
	return defaultTable
}
