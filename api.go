package main

import "io"

// New creates a Calc; without options it discards printed output and formats
// values with the fewest digits that round trip.
func New(opts ...CalcOption) *Calc {
	var calc Calc
	calc.apply(opts...)
	return &calc
}

// WithOutput sets where print writes values, and where warnings go when no
// WithWarnf function is given.
func WithOutput(w io.Writer) CalcOption { return withOutput(w) }

// WithPrecision sets the number of significant digits used to format values;
// a negative value means as many as needed to round trip.
func WithPrecision(digits int) CalcOption { return withPrecision(digits) }

// WithLogf enables trace logging of every evaluated token and the stack
// after it.
func WithLogf(logfn func(mess string, args ...interface{})) CalcOption { return withLogfn(logfn) }

// WithWarnf routes warnings, like unknown identifiers, to warnfn.
func WithWarnf(warnfn func(mess string, args ...interface{})) CalcOption { return withWarnfn(warnfn) }
