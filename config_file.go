package rotolog

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	kjson "github.com/knadh/koanf/parsers/json"
	kyaml "github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
)

// ConfigFormat identifies the serialization of a configuration document.
type ConfigFormat string

const (
	FormatJSON ConfigFormat = "json"
	FormatYAML ConfigFormat = "yaml"
)

// fileConfig is the wire form of Config: durations travel as strings
// ("100ms", "24h") and the formatter is not loadable from a file.
type fileConfig struct {
	FilePath     string `koanf:"file_path"`
	Encoding     string `koanf:"encoding"`
	Async        bool   `koanf:"async"`
	AlwaysFlush  bool   `koanf:"always_flush"`
	MaxSizeBytes int64  `koanf:"max_size_bytes"`
	MaxAge       string `koanf:"max_age"`
	MaxBackups   int    `koanf:"max_backups"`
	BufferSize   int    `koanf:"buffer_size"`
}

// LoadConfig reads a JSON or YAML configuration file, detecting the format
// from the extension (.json, .yaml, .yml). The result is validated.
func LoadConfig(path string) (Config, error) {
	format, err := detectFormat(path)
	if err != nil {
		return Config{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config: %w", err)
	}
	return ParseConfig(data, format)
}

// ParseConfig builds a validated Config from raw document bytes.
func ParseConfig(data []byte, format ConfigFormat) (Config, error) {
	var parser koanf.Parser
	switch format {
	case FormatJSON:
		parser = kjson.Parser()
	case FormatYAML:
		parser = kyaml.Parser()
	default:
		return Config{}, fmt.Errorf("unsupported config format %q", format)
	}

	k := koanf.New(".")
	if err := k.Load(rawbytes.Provider(data), parser); err != nil {
		return Config{}, fmt.Errorf("parsing config: %w", err)
	}

	var fc fileConfig
	if err := k.Unmarshal("", &fc); err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}

	cfg := Config{
		FilePath:     fc.FilePath,
		Encoding:     fc.Encoding,
		Async:        fc.Async,
		AlwaysFlush:  fc.AlwaysFlush,
		MaxSizeBytes: fc.MaxSizeBytes,
		MaxBackups:   fc.MaxBackups,
		BufferSize:   fc.BufferSize,
	}
	if fc.MaxAge != emptyString {
		age, err := time.ParseDuration(fc.MaxAge)
		if err != nil {
			return Config{}, fmt.Errorf("parsing max_age: %w", err)
		}
		cfg.MaxAge = age
	}

	if err := validateConfig(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func detectFormat(path string) (ConfigFormat, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("cannot detect config format of %q", path)
	}
}
