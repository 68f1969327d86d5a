package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the root command with args and returns its stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	if args == nil {
		// A nil slice makes cobra fall back to os.Args.
		args = []string{}
	}
	out := &bytes.Buffer{}
	rootCmd.SetOut(out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		flagOutput = ""
		flagNoBadge = false
		_ = rootCmd.Flags().Set("engine", "native")
		_ = rootCmd.Flags().Set("format", "markdown")
	})

	err := rootCmd.Execute()
	return out.String(), err
}

func TestRootCommand_Convert(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "doc.html")
	require.NoError(t, os.WriteFile(src, []byte(`<h2>Doc</h2><ul><li>a</li><li>b</li></ul>`), 0644))
	dst := filepath.Join(dir, "README.md")

	out, err := execute(t, src, "-o", dst, "--no-badge")
	require.NoError(t, err)
	assert.Equal(t, "✓ Written: "+dst+"\n", out)

	data, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, "# Doc\n\n# Doc\n- a\n- b\n", string(data))
}

func TestRootCommand_InvalidEngine(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "doc.html")
	require.NoError(t, os.WriteFile(src, []byte(`<p>x</p>`), 0644))

	_, err := execute(t, src, "--engine", "pandoc")
	assert.ErrorContains(t, err, "invalid options")

	_, statErr := os.Stat(filepath.Join(dir, "doc.md"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestRootCommand_MissingArgument(t *testing.T) {
	_, err := execute(t)
	assert.Error(t, err)
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "docmd dev\n", out)
}
