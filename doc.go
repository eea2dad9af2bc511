/*
Rpncalc is a Reverse Polish Notation calculator.

Operands come first and operators follow them, so no parentheses or precedence
rules are needed: "3 4 + 2 *" is (3 + 4) * 2. Each line of input is a program
of its own, evaluated left to right against a fresh operand stack.

Tokens

	3  12.5      numbers: digits, optionally a dot and more digits
	+ - * / ^    pop b, then a; push a OP b (^ is a raised to b)
	sin cos tan  pop v; push f(v), angles in radians
	sqrt
	print        write the top of the stack, leaving it in place
	pi e         constants, resolved while scanning
	c g G        other names, looked up while evaluating

At each position the scanner takes the first alternative that matches, in the
order listed above, even in the middle of a longer word: "sinh" is sin then h,
"each" is e then ach. Anything that matches nothing, like "#" or a lone ".",
is skipped.

Names that are not scanned as pi or e are looked up in the constant table,
first as written and then in lowercase: G is the gravitational constant, g is
standard gravity, and PI is pi. An unknown name is reported as a warning and
leaves the stack alone.

Operators and functions applied to too few operands do nothing. Arithmetic
follows IEEE-754: 1 0 / is +Inf, and the sqrt of a negative number is NaN.

The value left on top of the stack is the line's result; the interactive shell
echoes it as "=> value".
*/
package main
