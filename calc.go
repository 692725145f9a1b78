package rpncalc

// Compile tokenizes an expression and converts it to postfix order.
func Compile(src string) (Postfix, error) {
	toks, err := Tokenize(src)
	if err != nil {
		return nil, err
	}
	return ToPostfix(toks)
}

// Eval computes the value of an infix expression. The error, if any, is from
// the first stage to fail.
func Eval(src string) (float64, error) {
	p, err := Compile(src)
	if err != nil {
		return 0, err
	}
	return p.Eval()
}

// Calculate evaluates an infix expression and formats the result. If
// evaluation fails, the result is "error: " followed by a description of the
// problem.
func Calculate(src string) string {
	r, err := Eval(src)
	if err != nil {
		return FormatError(err)
	}
	return Format(r)
}
