// Package rpncalc implements a small floating-point calculator for infix
// expressions.
//
// Expressions are made of decimal numbers, the binary operators + - * /,
// parentheses, the functions sqrt, sin, cos, and exp, and the constants PI
// and E. "2 + 3 * 4" is 14, and "sqrt(16)" is 4. Functions bind tighter than
// any operator, so "sqrt 16 + 9" is "sqrt(16) + 9"; use brackets for anything
// else.
//
// Evaluation runs in three stages which are each exported: Tokenize splits
// the source into classified tokens, ToPostfix reorders them into
// reverse-Polish notation using the shunting-yard algorithm, and Postfix.Eval
// computes the result with an explicit value stack. Calculate runs all three
// and renders the result with Format, or the error with FormatError.
//
// There are no variables and no way to add symbols. Every function in this
// package is safe for concurrent use.
//
package rpncalc
