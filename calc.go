package main

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Calc evaluates lines of RPN input. It holds only configuration: every
// evaluation runs against its own Stack, so nothing carries over between
// lines.
type Calc struct {
	logging

	out       output
	warnfn    func(mess string, args ...interface{})
	precision int
}

// Stack is the operand stack of a single evaluation, top last.
type Stack []float64

func (stack *Stack) push(val float64) {
	*stack = append(*stack, val)
}

func (stack *Stack) pop() (val float64, ok bool) {
	i := len(*stack) - 1
	if i < 0 {
		return 0, false
	}
	val, *stack = (*stack)[i], (*stack)[:i]
	return val, true
}

func (stack Stack) top() (val float64, ok bool) {
	if i := len(stack) - 1; i >= 0 {
		return stack[i], true
	}
	return 0, false
}

func (stack Stack) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, val := range stack {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(formatValue(val, -1))
	}
	sb.WriteByte(']')
	return sb.String()
}

// Eval tokenizes and evaluates one line of input against a fresh stack,
// returning the value left on top of it, if any. The only errors are failures
// writing output.
func (calc *Calc) Eval(line string) (result float64, ok bool, err error) {
	var stack Stack
	err = calc.exec(&stack, Tokenize(line))
	if ferr := calc.out.Flush(); err == nil {
		err = ferr
	}
	result, ok = stack.top()
	return result, ok, err
}

func (calc *Calc) exec(stack *Stack, tokens []Token) error {
	for _, tok := range tokens {
		if err := calc.step(stack, tok); err != nil {
			return err
		}
		calc.logf(">", "%v %v", tok, *stack)
	}
	return nil
}

func (calc *Calc) step(stack *Stack, tok Token) error {
	switch tok.Kind {
	case NumberToken, ConstantToken:
		stack.push(tok.Value)

	case OperatorToken:
		if len(*stack) < 2 {
			calc.logf("#", "%v underflow", tok)
			return nil
		}
		b, _ := stack.pop()
		a, _ := stack.pop()
		stack.push(applyOperator(tok.Text, a, b))

	case FunctionToken:
		v, ok := stack.pop()
		if !ok {
			calc.logf("#", "%v underflow", tok)
			return nil
		}
		stack.push(applyFunction(tok.Text, v))

	case KeywordToken:
		// print is the only keyword
		v, ok := stack.top()
		if !ok {
			calc.logf("#", "%v underflow", tok)
			return nil
		}
		return calc.print(v)

	case IdentifierToken:
		if val, ok := lookupConstant(tok.Text); ok {
			stack.push(val)
		} else {
			return calc.warnf("unknown identifier %q", tok.Text)
		}
	}
	return nil
}

func applyOperator(op string, a, b float64) float64 {
	switch op {
	case "+":
		return a + b
	case "-":
		return a - b
	case "*":
		return a * b
	case "/":
		return a / b
	case "^":
		return math.Pow(a, b)
	}
	panic(fmt.Sprintf("invalid operator %q", op))
}

func applyFunction(name string, v float64) float64 {
	switch name {
	case "sin":
		return math.Sin(v)
	case "cos":
		return math.Cos(v)
	case "tan":
		return math.Tan(v)
	case "sqrt":
		return math.Sqrt(v)
	}
	panic(fmt.Sprintf("invalid function %q", name))
}

func (calc *Calc) print(v float64) error {
	return calc.out.printValue(calc.format(v))
}

func (calc *Calc) warnf(mess string, args ...interface{}) error {
	return calc.out.warnf(calc.warnfn, mess, args...)
}

func (calc *Calc) format(v float64) string {
	return formatValue(v, calc.precision)
}

// formatValue renders v with the given number of significant digits, or the
// fewest digits that round trip when precision is negative. Integral values
// of ordinary magnitude are written without an exponent.
func formatValue(v float64, precision int) string {
	if precision < 0 && v == math.Trunc(v) && math.Abs(v) < 1e21 {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	return strconv.FormatFloat(v, 'g', precision, 64)
}

type logging struct {
	logfn func(mess string, args ...interface{})

	markWidth int
}

func (log *logging) logf(mark, mess string, args ...interface{}) {
	if log.logfn == nil {
		return
	}
	if n := log.markWidth - len(mark); n > 0 {
		mark = strings.Repeat(mark[:1], n) + mark
	} else if n < 0 {
		log.markWidth = len(mark)
	}
	if len(args) > 0 {
		mess = fmt.Sprintf(mess, args...)
	}
	log.logfn("%v %v", mark, mess)
}
