package cliconfig_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shaobingxie/gochess/cliconfig"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFillsDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "gochess.toml")
	require.NoError(t, os.WriteFile(path, []byte(`start_fen = "8/8/8/8/8/8/8/k6K w - -"`), 0o644))

	cfg, err := cliconfig.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "bitboard", cfg.Engine)
	assert.Equal(t, "8/8/8/8/8/8/8/k6K w - -", cfg.StartFEN)
}

func TestLoadRejectsMissingFile(t *testing.T) {
	_, err := cliconfig.Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}
