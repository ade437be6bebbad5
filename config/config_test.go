package config

import (
	"os"
	"path/filepath"
	"testing"

	C "github.com/Cmiroslaf/BEFA-Library/constant"
	"github.com/Cmiroslaf/BEFA-Library/log"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBefa_Config_Parse(t *testing.T) {
	t.Run("full", func(t *testing.T) {
		configFile := `
log-level: debug
format: msgpack
pattern: "(stri*ng)"
input: stringstriingstriiing
min-length: 7
upper-case: true
top: 3`
		cfg, err := Parse([]byte(configFile))
		require.NoError(t, err)
		assert.Equal(t, log.DEBUG, cfg.General.LogLevel)
		assert.Equal(t, C.MSGPACK, cfg.Scan.Format)
		assert.Equal(t, "(stri*ng)", cfg.Scan.Pattern)
		assert.Equal(t, "stringstriingstriiing", cfg.Scan.Input)
		assert.Equal(t, 7, cfg.Scan.MinLength)
		assert.True(t, cfg.Scan.UpperCase)
		assert.Equal(t, 3, cfg.Scan.Top)
	})

	t.Run("defaults", func(t *testing.T) {
		cfg, err := Parse([]byte(""))
		require.NoError(t, err)
		assert.Equal(t, log.INFO, cfg.General.LogLevel)
		assert.Equal(t, C.TEXT, cfg.Scan.Format)
		assert.Equal(t, DefaultPattern, cfg.Scan.Pattern)
		assert.Equal(t, -1, cfg.Scan.Top)
	})

	t.Run("invalid", func(t *testing.T) {
		for _, configFile := range []string{
			"log-level: loud",
			"format: xml",
			`pattern: "("`,
			"min-length: -1",
			"input: a\ninput-file: b",
		} {
			_, err := Parse([]byte(configFile))
			assert.Error(t, err, configFile)
		}
	})
}

func TestReadRawConfig(t *testing.T) {
	dir := t.TempDir()

	rawCfg, err := ReadRawConfig(filepath.Join(dir, "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultRawConfig(), rawCfg)

	input := filepath.Join(dir, "input.txt")
	require.NoError(t, os.WriteFile(input, []byte("mov push"), 0o644))
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("input-file: "+input), 0o644))

	rawCfg, err = ReadRawConfig(path)
	require.NoError(t, err)
	cfg, err := ParseRawConfig(rawCfg)
	require.NoError(t, err)
	assert.Equal(t, "mov push", cfg.Scan.Input)
}
