package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

const usageHeader = `Usage: rpncalc [-trace] [-e "<code>"]

An RPN calculator: operands first, then the operator applied to them.

  rpncalc              start an interactive session
  rpncalc -e "3 4 +"   evaluate one line and exit
  rpncalc -h           show this help

Operators: + - * / ^     Functions: sin cos tan sqrt
Constants: pi e c g G    Keyword: print (show the top of the stack)

Options:
`

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	flags := flag.NewFlagSet("rpncalc", flag.ContinueOnError)
	flags.SetOutput(io.Discard)
	code := flags.String("e", "", "evaluate `code` and exit")
	trace := flags.Bool("trace", false, "enable trace logging")
	usage := func(w io.Writer) {
		io.WriteString(w, usageHeader)
		flags.SetOutput(w)
		flags.PrintDefaults()
		flags.SetOutput(io.Discard)
	}

	if err := flags.Parse(args); errors.Is(err, flag.ErrHelp) {
		usage(stdout)
		return 0
	} else if err != nil || flags.NArg() > 0 {
		fmt.Fprintf(stderr, "unknown option: %v\n\n", strings.Join(args, " "))
		usage(stderr)
		return 2
	}

	cfg, err := loadConfig(configPath())
	if err != nil {
		fmt.Fprintf(stderr, "Warning: %v\n", err)
	}

	var opts []CalcOption
	if *trace {
		opts = append(opts, WithLogf(log.New(stderr, "", log.LstdFlags).Printf))
	}

	evalFlag := false
	flags.Visit(func(f *flag.Flag) { evalFlag = evalFlag || f.Name == "e" })
	if evalFlag {
		sh := newShell(stdout, cfg, opts...)
		sh.evalLine(*code)
		return sh.log.ExitCode()
	}

	if in, ok := stdin.(*os.File); ok && isTerminal(in) {
		if out, ok := stdout.(*os.File); ok && isTerminal(out) {
			if err := runTerminal(in, out, cfg, opts...); err != nil {
				fmt.Fprintf(stderr, "Error: %v\n", err)
				return 1
			}
			return 0
		}
	}

	sh := newShell(stdout, cfg, opts...)
	if err := sh.run(scannerLines{bufio.NewScanner(stdin)}); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}
