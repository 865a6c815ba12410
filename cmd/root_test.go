package cmd

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveDefaults(t *testing.T) {
	cmd := NewRootCmd()
	require.NoError(t, cmd.ParseFlags(nil))

	cfg, err := resolve(cmd, options{}, "results.csv")
	require.NoError(t, err)
	assert.Equal(t, "results.csv", cfg.Input.Path)
	assert.Equal(t, 0, cfg.Input.Index)
	assert.Equal(t, "family_data.csv", cfg.Input.Families)
	assert.Equal(t, "fig", cfg.Output.Dir)
	assert.False(t, cfg.Output.HTML)
	assert.False(t, cfg.Output.SkipExport)
}

func TestResolveFlagsOverrideConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "santaviz.yaml")
	require.NoError(t, os.WriteFile(path, []byte("input:\n  index: 4\n  families: conf.csv\noutput:\n  dir: conf-fig\n"), 0o644))

	cmd := NewRootCmd()
	require.NoError(t, cmd.ParseFlags([]string{"-c", path, "-i", "2", "--html", "--no-export"}))
	opts := options{config: path, index: 2, html: true, noExport: true, families: "family_data.csv", output: "fig"}

	cfg, err := resolve(cmd, opts, "results.csv")
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.Input.Index)
	// Untouched flags keep the file values.
	assert.Equal(t, "conf.csv", cfg.Input.Families)
	assert.Equal(t, "conf-fig", cfg.Output.Dir)
	assert.True(t, cfg.Output.HTML)
	assert.True(t, cfg.Output.SkipExport)
}

func TestResolveRejectsNegativeIndex(t *testing.T) {
	cmd := NewRootCmd()
	require.NoError(t, cmd.ParseFlags([]string{"--index=-1"}))

	_, err := resolve(cmd, options{index: -1}, "results.csv")
	assert.Error(t, err)
}

func TestRootRequiresInput(t *testing.T) {
	cmd := NewRootCmd()
	cmd.SetArgs(nil)
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	assert.Error(t, cmd.Execute())
}
