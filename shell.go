package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"golang.org/x/term"

	"github.com/jcorbin/rpncalc/internal/logio"
	"github.com/jcorbin/rpncalc/internal/panicerr"
)

// shell is a read-eval-print loop around a Calc. Each line is evaluated on
// its own; results are echoed as "=> value", and any error is reported as
// "Error: ..." before moving on to the next line. Lines are only recorded
// into history when history.path is set, which runTerminal does.
type shell struct {
	calc    *Calc
	log     logio.Logger
	out     io.Writer
	history history
}

func newShell(out io.Writer, cfg Config, opts ...CalcOption) *shell {
	sh := &shell{out: out}
	sh.log.SetOutput(out)
	sh.calc = New(append([]CalcOption{
		WithOutput(out),
		WithPrecision(cfg.Precision),
		WithWarnf(sh.log.Warnf),
	}, opts...)...)
	return sh
}

type lineReader interface {
	ReadLine() (string, error)
}

type scannerLines struct{ *bufio.Scanner }

func (sl scannerLines) ReadLine() (string, error) {
	if sl.Scan() {
		return sl.Text(), nil
	}
	if err := sl.Err(); err != nil {
		return "", err
	}
	return "", io.EOF
}

// run evaluates lines until input runs out or an exit command is read.
func (sh *shell) run(lines lineReader) error {
	for {
		line, err := lines.ReadLine()
		if err == io.EOF {
			return nil
		} else if err != nil {
			return err
		}

		line = strings.TrimSpace(line)
		switch line {
		case "":
			continue
		case "exit", "quit":
			return nil
		}

		sh.history.record(line)
		sh.evalLine(line)
	}
}

func (sh *shell) evalLine(line string) {
	err := panicerr.Recover("", func() error {
		result, ok, err := sh.calc.Eval(line)
		if err == nil && ok {
			_, err = fmt.Fprintf(sh.out, "=> %v\n", sh.calc.format(result))
		}
		return err
	})
	if stack := panicerr.PanicStack(err); stack != "" {
		sh.calc.logf("#", "panic stack: %s", stack)
	}
	sh.log.ErrorIf(err)
}

func isTerminal(f *os.File) bool {
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// runTerminal runs a shell with line editing and a prompt on the given
// terminal, restoring its mode afterwards.
func runTerminal(in, out *os.File, cfg Config, opts ...CalcOption) error {
	fd := int(in.Fd())
	state, err := term.MakeRaw(fd)
	if err != nil {
		return err
	}
	defer term.Restore(fd, state)

	t := term.NewTerminal(struct {
		io.Reader
		io.Writer
	}{in, out}, cfg.Prompt)
	sh := newShell(t, cfg, opts...)
	sh.history = history{cfg.History}
	return sh.run(t)
}
