package cmd

import (
	"bytes"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) string {
	out := &bytes.Buffer{}
	rootCmd.SetOut(out)
	rootCmd.SetErr(out)
	rootCmd.SetArgs(append(args, "--no-color"))
	require.Nil(t, rootCmd.Execute())
	return out.String()
}

const document = `
k1: v1
a: b
zeta: alpha
`

func TestShowCommand(t *testing.T) {
	path := writeFile(t, "pairs.yaml", document)
	out := execute(t, "show", path)
	require.Equal(t, "PairSet([\"k1\"~\"v1\", \"a\"~\"b\", \"zeta\"~\"alpha\"])\n", out)

	out = execute(t, "show", "--sorted", path)
	require.Equal(t, "a\nalpha\nb\nk1\nv1\nzeta\n", out)
	showSorted = false
}

func TestGetCommand(t *testing.T) {
	path := writeFile(t, "pairs.yaml", document)
	out := execute(t, "get", path, "v1", "a")
	require.Equal(t, "v1\tk1\na\tb\n", out)

	out = execute(t, "--error-mode", "lenient", "get", path, "missing", "alpha")
	require.Equal(t, "missing\t<none>\nalpha\tzeta\n", out)
	errorModeFlag = ""
}

func TestExportCommand(t *testing.T) {
	path := writeFile(t, "pairs.json", `[["x", "y"], ["1", "2"]]`)
	out := execute(t, "export", path)
	var tuples [][2]string
	require.Nil(t, json.Unmarshal([]byte(out), &tuples))
	require.Equal(t, [][2]string{{"x", "y"}, {"1", "2"}}, tuples)
}

func TestValidateCommand(t *testing.T) {
	first := writeFile(t, "first.yaml", document)
	second := writeFile(t, "second.json", `{"p": "q"}`)
	out := execute(t, "validate", first, second)
	require.Contains(t, out, first+": ok, 3 pairs\n")
	require.Contains(t, out, second+": ok, 1 pairs\n")
}
