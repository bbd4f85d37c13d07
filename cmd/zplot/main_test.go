package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"
)

// run executes the root command with args and returns stdout.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		// Flag values persist on the package-level commands between runs.
		reset := func(f *pflag.Flag) {
			_ = f.Value.Set(f.DefValue)
			f.Changed = false
		}
		rootCmd.PersistentFlags().VisitAll(reset)
		for _, c := range rootCmd.Commands() {
			c.Flags().VisitAll(reset)
		}
	})
	err := rootCmd.Execute()
	return out.String(), err
}

type figureDoc struct {
	Data []struct {
		Name string `json:"name"`
	} `json:"data"`
}

func TestGrid_JSONToStdout(t *testing.T) {
	out, err := run(t, "grid", "--func", "sin(z)", "--x", "-4,4,2", "--y", "-4,4,2", "--reim", "im", "--steps", "5", "--log-level", "error")
	require.NoError(t, err)

	var doc figureDoc
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	require.Len(t, doc.Data, 5)
	require.Equal(t, "-4", doc.Data[0].Name)
}

func TestGrid_Errors(t *testing.T) {
	_, err := run(t, "grid", "--func", "sin(", "--log-level", "error")
	require.Error(t, err)

	_, err = run(t, "grid", "--x", "4,-4", "--log-level", "error")
	require.Error(t, err)

	_, err = run(t, "grid", "--reim", "sideways", "--log-level", "error")
	require.Error(t, err)

	_, err = run(t, "grid", "--log-level", "shouty")
	require.Error(t, err)
}

func TestPoints_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pts.svg")
	_, err := run(t, "points", "1+1i", "2+1i", "--func", "z^2", "--name", "seg", "-o", path, "--log-level", "error")
	require.NoError(t, err)

	info, err := os.Stat(path)
	require.NoError(t, err)
	require.Positive(t, info.Size())
}

func TestDemo_PrintScene(t *testing.T) {
	out, err := run(t, "demo", "--print-scene", "--log-level", "error")
	require.NoError(t, err)
	require.Contains(t, out, "function: sin(z)")
}

func TestScene_OutOverride(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "s.yaml")
	require.NoError(t, os.WriteFile(src, []byte("function: exp(z)\nx: [-1, 1]\ny: [-3, 3]\noutput: {path: ignored.png}\n"), 0o600))

	out, err := run(t, "scene", src, "--out", "-", "--log-level", "error")
	require.NoError(t, err)

	var doc figureDoc
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	require.Len(t, doc.Data, 3+7)
	_, err = os.Stat(filepath.Join(dir, "ignored.png"))
	require.True(t, os.IsNotExist(err))
}

func TestFuncsAndVersion(t *testing.T) {
	out, err := run(t, "funcs")
	require.NoError(t, err)
	require.Contains(t, out, "sin")

	out, err = run(t, "version")
	require.NoError(t, err)
	require.Contains(t, out, "zplot version dev")
}
