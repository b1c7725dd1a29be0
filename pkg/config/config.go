package config

import (
	_ "embed"
	stderrors "errors"
	"os"
	"strings"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/exporter/pkg/decode"
	"github.com/arthur-debert/exporter/pkg/errors"
	"github.com/arthur-debert/exporter/pkg/exporter"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

//go:embed embedded/defaults.toml
var defaultConfig []byte

// UserConfigFile is the user config path, relative to XDG_CONFIG_HOME.
const UserConfigFile = "exporter/config.toml"

// EnvPrefix prefixes environment overrides. Nested keys are separated by a
// double underscore: EXPORTER_EXPORT__MAX_LENGTH sets export.max_length.
const EnvPrefix = "EXPORTER_"

// Color modes
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config is the complete exporter configuration.
type Config struct {
	Export exporter.Config `koanf:"export"`
	Output Output          `koanf:"output"`
	Input  Input           `koanf:"input"`
}

// Output holds settings for how rendered text is written.
type Output struct {
	Color string `koanf:"color"`
}

// Input holds settings for how documents are read.
type Input struct {
	Format string `koanf:"format"`
}

type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, stderrors.New("not implemented")
}

// Load builds the configuration. explicitPath may be empty; when set, the
// file must exist.
func Load(explicitPath string) (*Config, error) {
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load defaults")
	}

	// 2. User config, if any
	if userPath, err := xdg.SearchConfigFile(UserConfigFile); err == nil {
		if err := k.Load(file.Provider(userPath), toml.Parser()); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to load user config from %s", userPath).
				WithDetail("path", userPath)
		}
	}

	// 3. Explicit config file
	if explicitPath != "" {
		if _, err := os.Stat(explicitPath); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigLoad, "cannot read config %s", explicitPath).
				WithDetail("path", explicitPath)
		}
		if err := k.Load(file.Provider(explicitPath), toml.Parser()); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to load config from %s", explicitPath).
				WithDetail("path", explicitPath)
		}
	}

	// 4. Environment
	err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "__", ".")
	}), nil)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load env vars")
	}

	// 5. Unmarshal
	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks values the type system cannot.
func (c *Config) Validate() error {
	if c.Export.MaxLength < 0 {
		return errors.Newf(errors.ErrConfigValid, "export.max_length must not be negative, got %d", c.Export.MaxLength)
	}

	switch c.Output.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return errors.Newf(errors.ErrConfigValid, "output.color must be auto, always or never, got %q", c.Output.Color)
	}

	if c.Input.Format != "" {
		if _, err := decode.ParseFormat(c.Input.Format); err != nil {
			return errors.Wrap(err, errors.ErrConfigValid, "invalid input.format")
		}
	}
	return nil
}
