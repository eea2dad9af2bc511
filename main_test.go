package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type runResult struct {
	code   int
	stdout string
	stderr string
}

func runMain(t *testing.T, input string, args ...string) (res runResult) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := "history: " + filepath.Join(dir, "history") + "\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	t.Setenv(configEnv, path)

	var stdout, stderr strings.Builder
	res.code = run(args, strings.NewReader(input), &stdout, &stderr)
	res.stdout = stdout.String()
	res.stderr = stderr.String()
	return res
}

func TestRun_eval(t *testing.T) {
	res := runMain(t, "", "-e", "3 4 + print 2 *")
	assert.Equal(t, 0, res.code)
	assert.Equal(t, lines(`7`, `=> 14`), res.stdout)
	assert.Equal(t, "", res.stderr)
}

func TestRun_evalEmpty(t *testing.T) {
	res := runMain(t, "", "-e", "")
	assert.Equal(t, 0, res.code)
	assert.Equal(t, "", res.stdout)
}

func TestRun_evalWarning(t *testing.T) {
	res := runMain(t, "", "-e", "foo")
	assert.Equal(t, 0, res.code, "expected a warning not to fail")
	assert.Equal(t, lines(`Warning: unknown identifier "foo"`), res.stdout)
}

func TestRun_help(t *testing.T) {
	for _, arg := range []string{"-h", "--help", "-help"} {
		t.Run(arg, func(t *testing.T) {
			res := runMain(t, "", arg)
			assert.Equal(t, 0, res.code)
			assert.True(t, strings.HasPrefix(res.stdout, "Usage: rpncalc"), "expected usage, got %q", res.stdout)
			assert.Contains(t, res.stdout, "evaluate code and exit")
			assert.Equal(t, "", res.stderr)
		})
	}
}

func TestRun_unknownOption(t *testing.T) {
	for _, args := range [][]string{
		{"-x"},
		{"--verbose"},
		{"foo"},
		{"-e", "1", "extra"},
	} {
		t.Run(strings.Join(args, " "), func(t *testing.T) {
			res := runMain(t, "", args...)
			assert.Equal(t, 2, res.code)
			assert.True(t, strings.HasPrefix(res.stderr, "unknown option: "+strings.Join(args, " ")),
				"expected unknown option message, got %q", res.stderr)
			assert.Contains(t, res.stderr, "Usage: rpncalc")
			assert.Equal(t, "", res.stdout)
		})
	}
}

func TestRun_lines(t *testing.T) {
	res := runMain(t, lines(`5 3 +`, `2`, `c`))
	assert.Equal(t, 0, res.code)
	assert.Equal(t, lines(`=> 8`, `=> 2`, `=> 299792458`), res.stdout)
}

func TestRun_trace(t *testing.T) {
	res := runMain(t, "", "-trace", "-e", "1 2 +")
	assert.Equal(t, 0, res.code)
	assert.Equal(t, lines(`=> 3`), res.stdout)
	assert.Contains(t, res.stderr, "> operator(+) [3]")
}

func TestRun_badConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("nope: 1\n"), 0o600))
	t.Setenv(configEnv, path)

	var stdout, stderr strings.Builder
	code := run([]string{"-e", "2 2 ^"}, strings.NewReader(""), &stdout, &stderr)
	assert.Equal(t, 0, code)
	assert.Equal(t, lines(`=> 4`), stdout.String())
	assert.True(t, strings.HasPrefix(stderr.String(), "Warning: invalid config"), "got %q", stderr.String())
}
