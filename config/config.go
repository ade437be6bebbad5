package config

import (
	"errors"
	"fmt"
	"os"

	C "github.com/Cmiroslaf/BEFA-Library/constant"
	"github.com/Cmiroslaf/BEFA-Library/log"

	regexp "github.com/dlclark/regexp2"
	"gopkg.in/yaml.v3"
)

// General config
type General struct {
	LogLevel log.LogLevel
	LogFile  string
}

// Scan config
type Scan struct {
	Pattern   string
	Input     string
	MinLength int
	UpperCase bool
	Format    C.OutputFormat
	Top       int
}

// Config is befa config manager
type Config struct {
	General *General
	Scan    *Scan
}

type RawConfig struct {
	LogLevel  log.LogLevel   `yaml:"log-level" json:"log-level"`
	LogFile   string         `yaml:"log-file" json:"log-file"`
	Format    C.OutputFormat `yaml:"format" json:"format"`
	Pattern   string         `yaml:"pattern" json:"pattern"`
	Input     string         `yaml:"input" json:"input"`
	InputFile string         `yaml:"input-file" json:"input-file"`
	MinLength int            `yaml:"min-length" json:"min-length"`
	UpperCase bool           `yaml:"upper-case" json:"upper-case"`
	Top       int            `yaml:"top" json:"top"`
}

// DefaultPattern yields every whitespace separated word.
const DefaultPattern = `(\S+)`

func DefaultRawConfig() *RawConfig {
	return &RawConfig{
		LogLevel: log.INFO,
		Format:   C.TEXT,
		Pattern:  DefaultPattern,
		Top:      -1,
	}
}

// Parse config
func Parse(buf []byte) (*Config, error) {
	rawCfg, err := UnmarshalRawConfig(buf)
	if err != nil {
		return nil, err
	}

	return ParseRawConfig(rawCfg)
}

func UnmarshalRawConfig(buf []byte) (*RawConfig, error) {
	rawCfg := DefaultRawConfig()
	if err := yaml.Unmarshal(buf, rawCfg); err != nil {
		return nil, err
	}

	return rawCfg, nil
}

// ReadRawConfig loads the config file at path, a missing file yields the
// defaults.
func ReadRawConfig(path string) (*RawConfig, error) {
	if path == "" {
		return DefaultRawConfig(), nil
	}
	buf, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return DefaultRawConfig(), nil
		}
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	return UnmarshalRawConfig(buf)
}

func ParseRawConfig(rawCfg *RawConfig) (*Config, error) {
	config := &Config{}

	general, err := parseGeneral(rawCfg)
	if err != nil {
		return nil, err
	}
	config.General = general

	scan, err := parseScan(rawCfg)
	if err != nil {
		return nil, err
	}
	config.Scan = scan

	return config, nil
}

func parseGeneral(cfg *RawConfig) (*General, error) {
	return &General{
		LogLevel: cfg.LogLevel,
		LogFile:  cfg.LogFile,
	}, nil
}

func parseScan(cfg *RawConfig) (*Scan, error) {
	if cfg.Pattern == "" {
		return nil, errors.New("pattern is empty")
	}
	if _, err := regexp.Compile(cfg.Pattern, regexp.None); err != nil {
		return nil, fmt.Errorf("invalid pattern %q: %w", cfg.Pattern, err)
	}
	if cfg.MinLength < 0 {
		return nil, fmt.Errorf("min-length must not be negative: %d", cfg.MinLength)
	}
	if cfg.Input != "" && cfg.InputFile != "" {
		return nil, errors.New("input and input-file are mutually exclusive")
	}

	input := cfg.Input
	if cfg.InputFile != "" {
		buf, err := os.ReadFile(cfg.InputFile)
		if err != nil {
			return nil, fmt.Errorf("read input %s: %w", cfg.InputFile, err)
		}
		input = string(buf)
	}

	return &Scan{
		Pattern:   cfg.Pattern,
		Input:     input,
		MinLength: cfg.MinLength,
		UpperCase: cfg.UpperCase,
		Format:    cfg.Format,
		Top:       cfg.Top,
	}, nil
}
