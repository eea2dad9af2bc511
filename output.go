package main

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strings"
)

// output is where a Calc writes printed values. It is flushed when an
// evaluation ends, and before any warning is reported, so that warnings
// written through some other stream still land after the values printed
// before them.
type output struct {
	io.Writer
	flush func() error
}

func newOutput(w io.Writer) output {
	if w == nil || w == io.Discard {
		return output{Writer: io.Discard}
	}
	switch impl := w.(type) {
	case interface{ Flush() error }:
		return output{Writer: w, flush: impl.Flush}
	case *strings.Builder, *bytes.Buffer:
		return output{Writer: w}
	}
	bw := bufio.NewWriter(w)
	return output{Writer: bw, flush: bw.Flush}
}

func (out output) Flush() error {
	if out.flush == nil {
		return nil
	}
	return out.flush()
}

func (out output) printValue(s string) error {
	_, err := io.WriteString(out, s+"\n")
	return err
}

// warnf reports a warning through warnfn, or as a "Warning: ..." line of
// output when warnfn is nil.
func (out output) warnf(warnfn func(mess string, args ...interface{}), mess string, args ...interface{}) error {
	if err := out.Flush(); err != nil {
		return err
	}
	if warnfn != nil {
		warnfn(mess, args...)
		return nil
	}
	_, err := fmt.Fprintf(out, "Warning: "+mess+"\n", args...)
	return err
}
