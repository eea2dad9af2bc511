package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lines(ss ...string) string { return strings.Join(ss, "\n") + "\n" }

func testConfig(t *testing.T) Config {
	return Config{
		Prompt:    "> ",
		History:   filepath.Join(t.TempDir(), "history"),
		Precision: -1,
	}
}

func runShell(t *testing.T, cfg Config, input string, opts ...CalcOption) string {
	var out strings.Builder
	sh := newShell(&out, cfg, opts...)
	require.NoError(t, sh.run(scannerLines{bufio.NewScanner(strings.NewReader(input))}))
	return out.String()
}

func TestShell(t *testing.T) {
	out := runShell(t, testConfig(t), lines(
		`5 3 +`,
		`2`,
		``,
		`   `,
		`foo`,
		`16 sqrt print`,
		`+`,
		`c`,
		`quit`,
		`9`,
	))
	assert.Equal(t, lines(
		`=> 8`,
		`=> 2`,
		`Warning: unknown identifier "foo"`,
		`4`,
		`=> 4`,
		`=> 299792458`,
	), out)
}

func TestShell_history(t *testing.T) {
	cfg := testConfig(t)
	var out strings.Builder
	sh := newShell(&out, cfg)
	sh.history = history{cfg.History}
	require.NoError(t, sh.run(scannerLines{bufio.NewScanner(strings.NewReader(lines(
		`5 3 +`,
		``,
		`foo`,
		`quit`,
		`9`,
	)))}))

	history, err := os.ReadFile(cfg.History)
	require.NoError(t, err, "expected a history file")
	assert.Equal(t, lines(`5 3 +`, `foo`), string(history))
}

func TestShell_lineModeHasNoHistory(t *testing.T) {
	cfg := testConfig(t)
	out := runShell(t, cfg, lines(`1`))
	assert.Equal(t, lines(`=> 1`), out)
	_, err := os.Stat(cfg.History)
	assert.True(t, errors.Is(err, os.ErrNotExist), "expected no history file, got %v", err)
}

func TestShell_exit(t *testing.T) {
	out := runShell(t, testConfig(t), lines(`1`, `exit`, `2`))
	assert.Equal(t, lines(`=> 1`), out)
}

func TestShell_eof(t *testing.T) {
	out := runShell(t, testConfig(t), "1 2 +")
	assert.Equal(t, lines(`=> 3`), out)
}

func TestShell_precision(t *testing.T) {
	cfg := testConfig(t)
	cfg.Precision = 4
	out := runShell(t, cfg, lines(`pi print`))
	assert.Equal(t, lines(`3.142`, `=> 3.142`), out)
}

func TestShell_recover(t *testing.T) {
	var out strings.Builder
	var trace []string
	sh := newShell(&out, testConfig(t), WithLogf(func(mess string, args ...interface{}) {
		if len(args) > 0 && args[0] == ">" {
			panic("boom")
		}
		trace = append(trace, fmt.Sprintf(mess, args...))
	}))
	require.NoError(t, sh.run(scannerLines{bufio.NewScanner(strings.NewReader(lines(`1`, `2`)))}))
	assert.Equal(t, lines(
		`Error: panicked: boom`,
		`Error: panicked: boom`,
	), out.String())
	assert.Equal(t, 1, sh.log.ExitCode())

	require.Len(t, trace, 2, "expected a traced panic stack per line")
	for _, line := range trace {
		assert.True(t, strings.HasPrefix(line, "# panic stack: "), "unexpected trace line %q", line)
		assert.Contains(t, line, "goroutine", "expected a stack trace in %q", line)
	}
}

type errLines struct{}

func (errLines) ReadLine() (string, error) { return "", errors.New("read fail") }

func TestShell_readError(t *testing.T) {
	var out strings.Builder
	sh := newShell(&out, testConfig(t))
	assert.EqualError(t, sh.run(errLines{}), "read fail")
}
