package hub

import (
	"os"
	"path/filepath"
	"testing"

	C "github.com/Cmiroslaf/BEFA-Library/constant"
	"github.com/Cmiroslaf/BEFA-Library/log"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Options(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("pattern: \"(a+)\"\ninput-file: /does/not/exist\nformat: json"), 0o644))
	defer log.SetLevel(log.INFO)

	cfg, err := Parse(path,
		WithInput("aaa b aa"),
		WithMinLength(2),
		WithUpperCase(true),
		WithTop(5),
		WithLogLevel(log.ERROR),
	)
	require.NoError(t, err)
	assert.Equal(t, "(a+)", cfg.Scan.Pattern)
	assert.Equal(t, "aaa b aa", cfg.Scan.Input)
	assert.Equal(t, C.JSON, cfg.Scan.Format)
	assert.Equal(t, 2, cfg.Scan.MinLength)
	assert.True(t, cfg.Scan.UpperCase)
	assert.Equal(t, 5, cfg.Scan.Top)
	assert.Equal(t, log.ERROR, log.Level())
}

func TestParse_MissingFile(t *testing.T) {
	defer log.SetLevel(log.INFO)

	cfg, err := Parse(filepath.Join(t.TempDir(), "none.yaml"), WithPattern("x"), WithFormat(C.YAML))
	require.NoError(t, err)
	assert.Equal(t, "x", cfg.Scan.Pattern)
	assert.Equal(t, C.YAML, cfg.Scan.Format)
}

func TestParse_InvalidOption(t *testing.T) {
	_, err := Parse("", WithPattern("("))
	assert.Error(t, err)

	_, err = Parse("", WithInputFile(filepath.Join(t.TempDir(), "missing.txt")))
	assert.Error(t, err)
}
