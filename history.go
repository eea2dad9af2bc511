package main

import (
	"io"
	"os"
)

// history appends evaluated lines to a file. The file is opened and closed
// for every line; history is best effort, so any failure is ignored.
type history struct {
	path string
}

func (h history) record(line string) {
	if h.path == "" {
		return
	}
	f, err := os.OpenFile(h.path, os.O_WRONLY|os.O_APPEND|os.O_CREATE, 0o600)
	if err != nil {
		return
	}
	defer f.Close()
	io.WriteString(f, line+"\n")
}
