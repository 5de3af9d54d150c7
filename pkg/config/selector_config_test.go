package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colstorehq/coltable/pkg/config"
)

func TestDefaultSelectorConfig(t *testing.T) {
	cfg := config.DefaultSelectorConfig()
	assert.Equal(t, 65535, cfg.MaxInlineLength)
	assert.InDelta(t, 0.2, cfg.EagerExceptionFrequency, 1e-9)
}

func TestLoadSelectorConfig_EnvSubstitution(t *testing.T) {
	t.Setenv("COLTABLE_MAX_INLINE", "128")

	dir := t.TempDir()
	path := filepath.Join(dir, "selector.yaml")
	contents := "max_inline_length: ${COLTABLE_MAX_INLINE}\neager_exception_frequency: 0.5\n"
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))

	cfg, err := config.LoadSelectorConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 128, cfg.MaxInlineLength)
	assert.InDelta(t, 0.5, cfg.EagerExceptionFrequency, 1e-9)
}

func TestLoadSelectorConfig_MissingFile(t *testing.T) {
	_, err := config.LoadSelectorConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}
