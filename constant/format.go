package constant

import (
	"encoding/json"
	"errors"

	"gopkg.in/yaml.v3"
)

var (
	// OutputFormatMapping is a mapping for OutputFormat enum
	OutputFormatMapping = map[string]OutputFormat{
		TEXT.String():    TEXT,
		JSON.String():    JSON,
		YAML.String():    YAML,
		MSGPACK.String(): MSGPACK,
	}

	ErrInvalidFormat = errors.New("invalid output format")
)

const (
	TEXT OutputFormat = iota
	JSON
	YAML
	MSGPACK
)

// OutputFormat selects how scan reports are encoded
type OutputFormat int

func ParseOutputFormat(s string) (OutputFormat, error) {
	format, exist := OutputFormatMapping[s]
	if !exist {
		return TEXT, ErrInvalidFormat
	}
	return format, nil
}

// UnmarshalYAML unserialize OutputFormat with yaml
func (f *OutputFormat) UnmarshalYAML(value *yaml.Node) error {
	var tp string
	if err := value.Decode(&tp); err != nil {
		return err
	}
	format, err := ParseOutputFormat(tp)
	if err != nil {
		return err
	}
	*f = format
	return nil
}

// UnmarshalJSON unserialize OutputFormat with json
func (f *OutputFormat) UnmarshalJSON(data []byte) error {
	var tp string
	if err := json.Unmarshal(data, &tp); err != nil {
		return err
	}
	format, err := ParseOutputFormat(tp)
	if err != nil {
		return err
	}
	*f = format
	return nil
}

// MarshalYAML serialize OutputFormat with yaml
func (f OutputFormat) MarshalYAML() (any, error) {
	return f.String(), nil
}

// MarshalJSON serialize OutputFormat with json
func (f OutputFormat) MarshalJSON() ([]byte, error) {
	return json.Marshal(f.String())
}

func (f OutputFormat) String() string {
	switch f {
	case TEXT:
		return "text"
	case JSON:
		return "json"
	case YAML:
		return "yaml"
	case MSGPACK:
		return "msgpack"
	default:
		return "unknown"
	}
}
