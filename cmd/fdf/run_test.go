package main

import (
	"bytes"
	"strings"
	"testing"

	floyd "github.com/dpranke/floyd-datafile/go-floyd"

	"github.com/fatih/color"
	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

type result struct {
	status int
	out    string
	err    string
}

func fakeHost(stdin string, files map[string]string) (*host, *bytes.Buffer, *bytes.Buffer) {
	fs := afero.NewMemMapFs()
	for name, contents := range files {
		if err := afero.WriteFile(fs, name, []byte(contents), 0o644); err != nil {
			panic(err)
		}
	}
	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
	return &host{
		fs:         fs,
		stdin:      strings.NewReader(stdin),
		stdout:     stdout,
		stderr:     stderr,
		isTerminal: func() bool { return false },
	}, stdout, stderr
}

func runTool(t *testing.T, args []string, stdin string, files map[string]string) result {
	t.Helper()
	h, stdout, stderr := fakeHost(stdin, files)
	status := run(h, args)
	return result{status: status, out: stdout.String(), err: stderr.String()}
}

func requireText(t *testing.T, want, got string) {
	t.Helper()
	if want == got {
		return
	}
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(want, got, false)
	t.Fatalf("output mismatch:\n%s", dmp.DiffPrettyText(diffs))
}

func TestHelp(t *testing.T) {
	res := runTool(t, []string{"--help"}, "", nil)
	require.Equal(t, 0, res.status)
	require.Contains(t, res.out, "--as-json")
	require.Contains(t, res.out, "--indent")
	require.Empty(t, res.err)

	res = runTool(t, []string{"-h"}, "", nil)
	require.Equal(t, 0, res.status)
	require.Contains(t, res.out, "--code")
}

func TestInlineExpression(t *testing.T) {
	res := runTool(t, []string{"-c", "{foo: 1}"}, "", nil)
	require.Equal(t, 0, res.status, res.err)
	requireText(t, "{\n    foo: 1\n}\n", res.out)
}

func TestIndent(t *testing.T) {
	for _, args := range [][]string{
		{"--indent=None", "-c", "[1]"},
		{"--indent=2", "-c", "[1]"},
		{"--indent=  ", "-c", "[1]"},
	} {
		res := runTool(t, args, "", nil)
		require.Equal(t, 0, res.status, res.err)
		requireText(t, "[1]\n", res.out)
	}

	res := runTool(t, []string{"--indent=None", "-c", "{a: [1 {b: 2}]}"}, "", nil)
	require.Equal(t, 0, res.status, res.err)
	requireText(t, "{a: [1 {b: 2}]}\n", res.out)

	res = runTool(t, []string{"--indent", "2", "-c", "{a: {b: 2}}"}, "", nil)
	require.Equal(t, 0, res.status, res.err)
	requireText(t, "{\n  a: {\n    b: 2\n  }\n}\n", res.out)

	res = runTool(t, []string{"--indent=\t", "-c", "{a: 1}"}, "", nil)
	require.Equal(t, 0, res.status, res.err)
	requireText(t, "{\n\ta: 1\n}\n", res.out)

	res = runTool(t, []string{"--indent=xx", "-c", "{a: 1}"}, "", nil)
	require.Equal(t, 1, res.status)
	require.Contains(t, res.err, `indent unit "xx" is not whitespace`)
	require.Empty(t, res.out)
}

func TestAsJSON(t *testing.T) {
	res := runTool(t, []string{"--as-json", "-c", "{foo: 1}"}, "", nil)
	require.Equal(t, 0, res.status, res.err)
	requireText(t, "{\n    \"foo\": 1\n}\n", res.out)

	res = runTool(t, []string{"--as-json", "-c", `"foo"`}, "", nil)
	require.Equal(t, 0, res.status, res.err)
	requireText(t, "\"foo\"\n", res.out)
}

func TestReadCommand(t *testing.T) {
	res := runTool(t, []string{"-c", `"foo"`}, "", nil)
	require.Equal(t, 0, res.status, res.err)
	requireText(t, "'foo'\n", res.out)

	for _, tc := range []struct {
		args []string
		want string
	}{
		{[]string{"-c", "-1"}, "-1\n"},
		{[]string{"-c", "-4.5e3"}, "-4500.0\n"},
		{[]string{"--code", "-1"}, "-1\n"},
		{[]string{"--code=-1"}, "-1\n"},
		{[]string{"--indent", "None", "-c", "[-1 -2]"}, "[-1 -2]\n"},
	} {
		res := runTool(t, tc.args, "", nil)
		require.Equal(t, 0, res.status, "%v: %s", tc.args, res.err)
		requireText(t, tc.want, res.out)
	}
}

func TestJoinValues(t *testing.T) {
	cfg := &config{}
	h, _, _ := fakeHost("", nil)
	app := newApp(h, cfg)
	for _, tc := range []struct {
		in, want []string
	}{
		{[]string{"-c", "-1"}, []string{"--code=-1"}},
		{[]string{"--indent", "2", "--as-json", "f"}, []string{"--indent=2", "--as-json", "f"}},
		{[]string{"--indent=2", "-c"}, []string{"--indent=2", "-c"}},
		{[]string{"--", "-c", "1"}, []string{"--", "-c", "1"}},
	} {
		require.Equal(t, tc.want, joinValues(app, tc.in), "%v", tc.in)
	}
}

func TestReadFromStdin(t *testing.T) {
	res := runTool(t, nil, "\"foo\"\n", nil)
	require.Equal(t, 0, res.status, res.err)
	requireText(t, "'foo'\n", res.out)

	res = runTool(t, []string{"-"}, "[1 2]", nil)
	require.Equal(t, 0, res.status, res.err)
	requireText(t, "[1 2]\n", res.out)
}

func TestReadFromAFile(t *testing.T) {
	files := map[string]string{"foo.fdf": "\"foo\"\n"}
	res := runTool(t, []string{"foo.fdf"}, "", files)
	require.Equal(t, 0, res.status, res.err)
	requireText(t, "'foo'\n", res.out)
}

func TestMissingFile(t *testing.T) {
	res := runTool(t, []string{"missing.fdf"}, "", nil)
	require.Equal(t, 1, res.status)
	require.True(t, strings.HasPrefix(res.err, "error: could not read \"missing.fdf\""), res.err)
	require.Empty(t, res.out)
}

func TestUnknownSwitch(t *testing.T) {
	res := runTool(t, []string{"--unknown-switch"}, "", nil)
	require.Equal(t, 2, res.status)
	requireText(t,
		"usage: fdf [options] [FILE]\n"+
			"    -h/--help for help\n"+
			"\n"+
			"error: unrecognized arguments: --unknown-switch\n",
		res.err)
	require.Empty(t, res.out)

	res = runTool(t, []string{"-x", "-c", "1"}, "", nil)
	require.Equal(t, 2, res.status)
	require.Contains(t, res.err, "error: unrecognized arguments: -x\n")
}

func TestTooManyArguments(t *testing.T) {
	res := runTool(t, []string{"a.fdf", "b.fdf"}, "", nil)
	require.Equal(t, 2, res.status)
	require.True(t, strings.HasPrefix(res.err, "usage: fdf [options] [FILE]\n"), res.err)
}

func TestVersion(t *testing.T) {
	res := runTool(t, []string{"--version"}, "", nil)
	require.Equal(t, 0, res.status)
	requireText(t, floyd.Version+"\n", res.out)
}

func TestDecodeError(t *testing.T) {
	res := runTool(t, []string{"-c", "[1 2"}, "", nil)
	require.Equal(t, 1, res.status)
	require.Contains(t, res.err, "unterminated collection")
	require.Contains(t, res.err, "line=1, col=4")
	require.Empty(t, res.out)

	res = runTool(t, []string{"-c", ""}, "", nil)
	require.Equal(t, 1, res.status)
	require.Contains(t, res.err, "empty document")
}

func TestStrictJSON(t *testing.T) {
	res := runTool(t, []string{"--strict-json", "-c", `{"a": [1, 2]}`}, "", nil)
	require.Equal(t, 0, res.status, res.err)
	requireText(t, "{\n    a: [1 2]\n}\n", res.out)

	res = runTool(t, []string{"--strict-json", "-c", "{a: 1}"}, "", nil)
	require.Equal(t, 1, res.status)
}

func TestRejectDuplicateKeys(t *testing.T) {
	res := runTool(t, []string{"--indent=None", "-c", "{a: 1 a: 2}"}, "", nil)
	require.Equal(t, 0, res.status, res.err)
	requireText(t, "{a: 2}\n", res.out)

	res = runTool(t, []string{"--reject-duplicate-keys", "-c", "{a: 1 a: 2}"}, "", nil)
	require.Equal(t, 1, res.status)
	require.Contains(t, res.err, "duplicate key")
}

func TestMaxDepth(t *testing.T) {
	res := runTool(t, []string{"--max-depth=2", "-c", "[[[1]]]"}, "", nil)
	require.Equal(t, 1, res.status)
	require.Contains(t, res.err, "nesting too deep")
}

func TestTokens(t *testing.T) {
	res := runTool(t, []string{"--tokens", "-c", "[a 1]"}, "", nil)
	require.Equal(t, 0, res.status, res.err)
	requireText(t, "1:0\tTLSquare\t[\n1:1\tTLiteral\ta\n1:3\tTInteger\t1\n1:4\tTRSquare\t]\n", res.out)
}

func TestColor(t *testing.T) {
	plain := runTool(t, []string{"--no-color", "-c", "[1]"}, "", nil)
	require.Equal(t, 0, plain.status, plain.err)
	requireText(t, "[1]\n", plain.out)

	old := color.NoColor
	color.NoColor = false
	defer func() { color.NoColor = old }()

	colored := runTool(t, []string{"--color", "-c", "[1]"}, "", nil)
	require.Equal(t, 0, colored.status, colored.err)
	require.Contains(t, colored.out, "\x1b[")

	h, stdout, _ := fakeHost("", nil)
	h.isTerminal = func() bool { return true }
	require.Equal(t, 0, run(h, []string{"-c", "[1]"}))
	require.Contains(t, stdout.String(), "\x1b[")

	h, stdout, _ = fakeHost("", nil)
	h.isTerminal = func() bool { return true }
	require.Equal(t, 0, run(h, []string{"--no-color", "-c", "[1]"}))
	requireText(t, "[1]\n", stdout.String())
}

func TestDebugLog(t *testing.T) {
	res := runTool(t, []string{"--debug", "-c", "[1]"}, "", nil)
	require.Equal(t, 0, res.status)
	requireText(t, "[1]\n", res.out)
	require.Contains(t, res.err, "msg=\"read input\"")
	require.Contains(t, res.err, "source=--code")
	require.Contains(t, res.err, "size=\"3 B\"")
}

func TestIndentOption(t *testing.T) {
	v, err := floyd.Loads("{a: [1]}")
	require.NoError(t, err)
	for _, tc := range []struct {
		in   string
		want string
	}{
		{"None", "{a: [1]}"},
		{"0", "{\na: [1]\n}"},
		{"3", "{\n   a: [1]\n}"},
		{"\t", "{\n\ta: [1]\n}"},
	} {
		got, err := floyd.Dumps(v, indentOption(tc.in))
		require.NoError(t, err)
		require.Equal(t, tc.want, got, tc.in)
	}
}

func TestUnrecognized(t *testing.T) {
	cfg := &config{}
	h, _, _ := fakeHost("", nil)
	app := newApp(h, cfg)
	require.Empty(t, unrecognized(app, []string{"-c", "--nope", "--indent", "-x", "--as-json", "--no-as-json", "--", "--what"}))
	require.Equal(t, []string{"--nope", "-q"}, unrecognized(app, []string{"--nope", "-q", "file"}))
	require.Empty(t, unrecognized(app, []string{"-c{a: 1}", "-h"}))
}
