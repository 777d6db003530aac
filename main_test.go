package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "expr.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644), "failed to write file %q", path)
	return path
}

type testCase struct {
	name     string
	args     []string
	content  string
	stdin    string
	stdout   string
	exitCode int
}

func TestRun(t *testing.T) {
	tests := []testCase{
		{name: "precedence", content: "3 + 4 * 2", stdout: "result: 11\n"},
		{name: "grouping with newline", content: "(3 + 4) * 2\n", stdout: "result: 14\n"},
		{name: "left assoc", content: "10 - 2 - 3", stdout: "result: 5\n"},
		{name: "division", content: "5 / 2", stdout: "result: 2\n"},
		{name: "empty file", content: "", stdout: "Failed to parse: unexpected void literal\n"},
		{name: "parse error", content: "(1 + 2", stdout: "Failed to parse: expected ')', but got: EOF[1:7]\n"},
		{name: "division by zero", content: "1 / 0", stdout: "Failed to parse: division by zero\n"},
		{name: "pre-seeded variable", args: []string{"-var", "x=10"}, content: "x + 1", stdout: "result: 11\n"},
		{name: "several variables", args: []string{"-var", "x=10", "-var", "y = -4"}, content: "x * y", stdout: "result: -40\n"},
		{name: "unknown variable", content: "x + 1", stdout: "Failed to parse: variable x not found\n"},
		{name: "unknown variable never prompt", args: []string{"-prompt", "never"}, content: "x + 1", stdin: "5\n", stdout: "Failed to parse: variable x not found\n"},
		{name: "prompted variable", args: []string{"-prompt", "always"}, content: "x + x", stdin: "21\n", stdout: "Enter value for x: result: 42\n"},
		{name: "prompted garbage", args: []string{"-prompt", "always"}, content: "x", stdin: "abc\n", stdout: "Enter value for x: Failed to parse: variable x not found\n"},
		{name: "ast dump", args: []string{"-ast"}, content: "1 + 2", stdout: "ast: (1 + 2)\n"},
		{name: "invalid prompt mode", args: []string{"-prompt", "sometimes"}, content: "1", exitCode: 2},
		{name: "invalid var", args: []string{"-var", "x"}, content: "1", exitCode: 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, tt.content)
			var stdout, stderr bytes.Buffer
			argv := append([]string{"arith"}, tt.args...)
			argv = append(argv, path)

			exitCode := run(argv, strings.NewReader(tt.stdin), &stdout, &stderr)
			assert.Equal(t, tt.exitCode, exitCode, "stderr: %s", stderr.String())
			if tt.name == "ast dump" {
				assert.True(t, strings.HasPrefix(stdout.String(), tt.stdout), stdout.String())
				assert.Contains(t, stdout.String(), "ast.BinaryExpr")
				assert.True(t, strings.HasSuffix(stdout.String(), "result: 3\n"), stdout.String())
				return
			}
			assert.Equal(t, tt.stdout, stdout.String())
		})
	}
}

func TestRunUsage(t *testing.T) {
	var stdout, stderr bytes.Buffer
	exitCode := run([]string{"arith"}, strings.NewReader(""), &stdout, &stderr)
	assert.Equal(t, 0, exitCode)
	assert.Equal(t, "Usage: arith [options] <file>\n", stdout.String())
}

func TestRunBadPath(t *testing.T) {
	dir := t.TempDir()
	missing := filepath.Join(dir, "missing.txt")

	var stdout, stderr bytes.Buffer
	assert.Equal(t, 1, run([]string{"arith", missing}, nil, &stdout, &stderr))
	assert.Equal(t, "File not found: "+missing+"!\n", stdout.String())

	stdout.Reset()
	assert.Equal(t, 1, run([]string{"arith", dir}, nil, &stdout, &stderr))
	assert.Equal(t, "Not a file: "+dir+"!\n", stdout.String())
}

func TestRunVerbose(t *testing.T) {
	path := writeFile(t, "2 * 3")
	var stdout, stderr bytes.Buffer
	exitCode := run([]string{"arith", "-v", path}, strings.NewReader(""), &stdout, &stderr)
	require.Equal(t, 0, exitCode)
	assert.Equal(t, "result: 6\n", stdout.String())
	assert.Contains(t, stderr.String(), `arith: Token NUMBER[1:1]: "2".`)
	assert.Contains(t, stderr.String(), "arith: Parsed (2 * 3).")
}

func TestVarsFlagString(t *testing.T) {
	v := varsFlag{}
	require.NoError(t, v.Set("b=2"))
	require.NoError(t, v.Set("a=1"))
	assert.Equal(t, "a=1,b=2", v.String())
	assert.Error(t, v.Set("=3"))
	assert.Error(t, v.Set("c=three"))
}
