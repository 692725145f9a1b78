package rpncalc

import (
	"errors"
	"strconv"
)

// ErrorKind identifies a class of evaluation failure. ErrorKind implements
// error, so errors.Is(err, DivisionByZero) reports whether err is a division
// by zero.
type ErrorKind int8

const (
	kindNone ErrorKind = iota
	// UnknownToken is a token which is neither a known symbol nor a number.
	UnknownToken
	// MissingOpenBracket is a close bracket with no open bracket.
	MissingOpenBracket
	// MissingCloseBracket is an open bracket that is never closed.
	MissingCloseBracket
	// MissingOperandOrOperation is an expression with the wrong number of
	// operands for its operators.
	MissingOperandOrOperation
	// EmptyInput is an expression with nothing to evaluate.
	EmptyInput
	// DivisionByZero is a computation producing an infinite or NaN value.
	DivisionByZero
)

func (k ErrorKind) Error() string {
	switch k {
	case UnknownToken:
		return "unknown constant"
	case MissingOpenBracket:
		return `missing bracket "("`
	case MissingCloseBracket:
		return `missing bracket ")"`
	case MissingOperandOrOperation:
		return "missing operand or operation"
	case EmptyInput:
		return "empty input"
	case DivisionByZero:
		return "division by zero"
	default:
		return "rpncalc: unknown error kind " + strconv.Itoa(int(k))
	}
}

// KindOf returns the kind of an error produced by this package. If err is
// nil or did not come from this package, the result is 0.
func KindOf(err error) ErrorKind {
	var k interface{ Kind() ErrorKind }
	if errors.As(err, &k) {
		return k.Kind()
	}
	var e ErrorKind
	if errors.As(err, &e) {
		return e
	}
	return kindNone
}

// TokenError is an error indicating a token that is neither a known symbol
// nor a number. It implements InputError.
type TokenError struct {
	// Col is the position of the token.
	Col int
	// Token is the text that was not understood.
	Token string
}

func (err *TokenError) Error() string {
	return "unknown constant " + strconv.Quote(err.Token)
}

func (err *TokenError) Pos() int {
	return err.Col
}

func (err *TokenError) Kind() ErrorKind {
	return UnknownToken
}

func (err *TokenError) Is(target error) bool {
	return target == UnknownToken
}

// BracketError is an error indicating an unbalanced bracket. It implements
// InputError.
type BracketError struct {
	// Col is the position of the unbalanced bracket.
	Col int
	// Missing is the bracket that would balance it.
	Missing string
}

func (err *BracketError) Error() string {
	return err.Kind().Error()
}

func (err *BracketError) Pos() int {
	return err.Col
}

func (err *BracketError) Kind() ErrorKind {
	if err.Missing == "(" {
		return MissingOpenBracket
	}
	return MissingCloseBracket
}

func (err *BracketError) Is(target error) bool {
	return target == err.Kind()
}

// ArityError is an error indicating an operator without enough operands, or
// operands left over after every operator is applied.
type ArityError struct {
	// Op is the operator that lacked operands. It is empty when there were
	// too many operands.
	Op string
	// Left is the number of values remaining on the stack when the error was
	// detected.
	Left int
}

func (err *ArityError) Error() string {
	return MissingOperandOrOperation.Error()
}

func (err *ArityError) Kind() ErrorKind {
	return MissingOperandOrOperation
}

func (err *ArityError) Is(target error) bool {
	return target == MissingOperandOrOperation
}

// EmptyInputError is an error indicating an expression with nothing to
// evaluate, e.g. "" or "()".
type EmptyInputError struct{}

func (err *EmptyInputError) Error() string {
	return EmptyInput.Error()
}

func (err *EmptyInputError) Kind() ErrorKind {
	return EmptyInput
}

func (err *EmptyInputError) Is(target error) bool {
	return target == EmptyInput
}

// DomainError is an error indicating an operation produced an infinite or
// NaN result, most often by dividing by zero.
type DomainError struct {
	// Op is the symbol of the operation that produced the value. For a
	// literal too large to represent, it is the literal.
	Op string
	// X is the value produced.
	X float64
}

func (err *DomainError) Error() string {
	return DivisionByZero.Error()
}

func (err *DomainError) Kind() ErrorKind {
	return DivisionByZero
}

func (err *DomainError) Is(target error) bool {
	return target == DivisionByZero
}

// InputError is an error with position information.
type InputError interface {
	error
	// Pos returns the position of the error as the number of runes up to and
	// including the start of the token that caused the error.
	Pos() int
}

var (
	_ InputError = (*TokenError)(nil)
	_ InputError = (*BracketError)(nil)
)
