package main

import "io"

// CalcOption customizes a Calc built by New.
type CalcOption interface{ apply(calc *Calc) }

var defaults = []CalcOption{
	withOutput(io.Discard),
	withPrecision(-1),
}

func (calc *Calc) apply(opts ...CalcOption) {
	for _, opt := range defaults {
		if opt != nil {
			opt.apply(calc)
		}
	}
	for _, opt := range opts {
		if opt != nil {
			opt.apply(calc)
		}
	}
}

type withLogfn func(mess string, args ...interface{})
type withWarnfn func(mess string, args ...interface{})

func (logfn withLogfn) apply(calc *Calc) {
	calc.logfn = logfn
}

func (warnfn withWarnfn) apply(calc *Calc) {
	calc.warnfn = warnfn
}

type outputOption struct{ io.Writer }
type precisionOption int

func withOutput(w io.Writer) outputOption      { return outputOption{w} }
func withPrecision(digits int) precisionOption { return precisionOption(digits) }

func (o outputOption) apply(calc *Calc) {
	calc.out.Flush()
	calc.out = newOutput(o.Writer)
}

func (digits precisionOption) apply(calc *Calc) {
	calc.precision = int(digits)
}
