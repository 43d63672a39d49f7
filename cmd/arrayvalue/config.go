package main

import (
	"fmt"
	"strings"
	"unicode/utf8"

	koanfyaml "github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"

	"github.com/shapestone/shape-array/pkg/array"
)

const envPrefix = "ARRAYVALUE_"

// Output formats.
const (
	formatText = "text"
	formatJSON = "json"
)

// config holds the command settings.
type config struct {
	Separator string `koanf:"separator"`
	Format    string `koanf:"format"`
	Compact   bool   `koanf:"compact"`
}

// loadConfig resolves the settings with the following priority (highest to
// lowest):
//  1. Flags explicitly set on the command line
//  2. Environment variables (ARRAYVALUE_SEPARATOR -> separator)
//  3. The YAML file named by --config
//  4. Defaults
func loadConfig(flags *pflag.FlagSet) (*config, error) {
	k := koanf.New(".")

	defaults := map[string]any{
		"separator": ",",
		"format":    formatText,
		"compact":   false,
	}
	if err := k.Load(confmap.Provider(defaults, "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if f := flags.Lookup("config"); f != nil && f.Value.String() != "" {
		if err := k.Load(file.Provider(f.Value.String()), koanfyaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file: %w", err)
		}
	}

	envProvider := env.Provider(envPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, envPrefix))
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	var errs []string
	flags.Visit(func(f *pflag.Flag) {
		if !k.Exists(f.Name) {
			return
		}
		if err := k.Set(f.Name, f.Value.String()); err != nil {
			errs = append(errs, fmt.Sprintf("flag %s: %v", f.Name, err))
		}
	})
	if len(errs) > 0 {
		return nil, fmt.Errorf("failed to apply flags: %s", strings.Join(errs, "; "))
	}

	cfg := &config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return cfg, cfg.validate()
}

func (c *config) validate() error {
	if utf8.RuneCountInString(c.Separator) != 1 {
		return fmt.Errorf("separator must be a single character, got %q", c.Separator)
	}
	if c.Format != formatText && c.Format != formatJSON {
		return fmt.Errorf("unknown format %q (want %s or %s)", c.Format, formatText, formatJSON)
	}
	return c.options().Validate()
}

// options returns the array options for the configuration.
func (c *config) options() array.Options {
	sep, _ := utf8.DecodeRuneInString(c.Separator)
	return array.Options{
		Separator:           sep,
		SpaceAfterSeparator: !c.Compact,
	}
}
