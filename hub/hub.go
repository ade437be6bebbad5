package hub

import (
	C "github.com/Cmiroslaf/BEFA-Library/constant"
	"github.com/Cmiroslaf/BEFA-Library/config"
	"github.com/Cmiroslaf/BEFA-Library/hub/executor"
	"github.com/Cmiroslaf/BEFA-Library/log"
)

type Option func(*config.RawConfig)

func WithPattern(pattern string) Option {
	return func(cfg *config.RawConfig) {
		cfg.Pattern = pattern
	}
}

// WithInput replaces both input and input-file of the config file.
func WithInput(input string) Option {
	return func(cfg *config.RawConfig) {
		cfg.Input = input
		cfg.InputFile = ""
	}
}

func WithInputFile(path string) Option {
	return func(cfg *config.RawConfig) {
		cfg.Input = ""
		cfg.InputFile = path
	}
}

func WithFormat(format C.OutputFormat) Option {
	return func(cfg *config.RawConfig) {
		cfg.Format = format
	}
}

func WithLogLevel(level log.LogLevel) Option {
	return func(cfg *config.RawConfig) {
		cfg.LogLevel = level
	}
}

func WithMinLength(minLength int) Option {
	return func(cfg *config.RawConfig) {
		cfg.MinLength = minLength
	}
}

func WithUpperCase(upper bool) Option {
	return func(cfg *config.RawConfig) {
		cfg.UpperCase = upper
	}
}

func WithTop(top int) Option {
	return func(cfg *config.RawConfig) {
		cfg.Top = top
	}
}

// Parse reads the config file at path, applies options over it and
// dispatches the result.
func Parse(path string, options ...Option) (*config.Config, error) {
	rawCfg, err := config.ReadRawConfig(path)
	if err != nil {
		return nil, err
	}

	for _, option := range options {
		option(rawCfg)
	}

	cfg, err := config.ParseRawConfig(rawCfg)
	if err != nil {
		return nil, err
	}

	executor.ApplyConfig(cfg)
	return cfg, nil
}
