// Package config defines the data structures related to configuration and
// includes functions for loading and checking the config.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/iwvelando/calculator-catalog/pkg/calculator"
	"github.com/iwvelando/calculator-catalog/pkg/constants"
	"github.com/iwvelando/calculator-catalog/pkg/validation"
)

// EnvPrefix prefixes environment variable overrides, e.g.
// CALCULATOR_CATALOG_LOGGING_LEVEL=debug.
const EnvPrefix = "CALCULATOR_CATALOG"

// Configuration holds all configuration for calculator-catalog.
type Configuration struct {
	Logging LoggingConfig `yaml:"logging,omitempty"`
	Output  OutputConfig  `yaml:"output,omitempty"`
	Presets []Preset      `yaml:"presets,omitempty"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`      // debug, info, warn, error
	Format     string `yaml:"format,omitempty"`     // json, console
	OutputFile string `yaml:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format string `yaml:"format,omitempty"` // pretty, csv, json, yaml
}

// Preset is a named, saved set of inputs for one calculator. Values are
// "key=value" assignments so field keys keep their case.
type Preset struct {
	Name       string   `yaml:"name"`
	Calculator string   `yaml:"calculator"`
	Values     []string `yaml:"values,omitempty"`
}

// Inputs parses the preset's assignments.
func (p Preset) Inputs() (map[string]string, error) {
	inputs, err := ParseAssignments(p.Values)
	if err != nil {
		return nil, fmt.Errorf("preset %q: %w", p.Name, err)
	}
	return inputs, nil
}

// NewPreset builds a preset from inputs, with assignments sorted by the
// calculator's field order.
func NewPreset(name string, def calculator.Definition, inputs map[string]string) Preset {
	p := Preset{Name: name, Calculator: def.Slug}
	for _, f := range def.Fields {
		if v, ok := inputs[f.Key]; ok {
			p.Values = append(p.Values, f.Key+"="+v)
		}
	}
	return p
}

// WritePresets writes presets as a YAML config fragment that can be pasted
// into a configuration file.
func WritePresets(w io.Writer, presets ...Preset) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(Configuration{Presets: presets}); err != nil {
		return fmt.Errorf("encoding presets: %w", err)
	}
	return enc.Close()
}

// ParseAssignments parses "key=value" strings. The value may be empty or
// contain further "=" signs; a later assignment to a key wins.
func ParseAssignments(assignments []string) (map[string]string, error) {
	out := make(map[string]string, len(assignments))
	for _, a := range assignments {
		key, value, ok := strings.Cut(a, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, fmt.Errorf("expected key=value, got %q", a)
		}
		out[key] = value
	}
	return out, nil
}

// Default returns the configuration used when no file is present.
func Default() *Configuration {
	return &Configuration{
		Logging: LoggingConfig{Level: "info", Format: "json"},
		Output:  OutputConfig{Format: constants.OutputFormatPretty},
	}
}

func newViper() *viper.Viper {
	v := viper.New()
	defaults := Default()
	v.SetDefault("logging.level", defaults.Logging.Level)
	v.SetDefault("logging.format", defaults.Logging.Format)
	v.SetDefault("logging.outputFile", "")
	v.SetDefault("output.format", defaults.Output.Format)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there.
func LoadConfiguration(configPath string) (*Configuration, error) {
	v := newViper()
	v.SetConfigFile(configPath)
	v.SetConfigType("yml")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}
	return decode(v)
}

// LoadOrDefault loads configPath. When the file does not exist and required
// is false, the defaults (with environment overrides) are returned instead.
func LoadOrDefault(configPath string, required bool) (*Configuration, error) {
	if _, err := os.Stat(configPath); errors.Is(err, os.ErrNotExist) && !required {
		return decode(newViper())
	}
	return LoadConfiguration(configPath)
}

func decode(v *viper.Viper) (*Configuration, error) {
	var configuration Configuration
	if err := v.Unmarshal(&configuration); err != nil {
		return nil, fmt.Errorf("unable to decode into struct: %w", err)
	}
	return &configuration, nil
}

// Preset returns the preset with the given name.
func (c *Configuration) Preset(name string) (Preset, bool) {
	for _, p := range c.Presets {
		if p.Name == name {
			return p, true
		}
	}
	return Preset{}, false
}

// ValidateConfiguration performs general validation of the configuration
// against the calculators in registry and returns warnings.
func (c *Configuration) ValidateConfiguration(registry *calculator.Registry) []string {
	var warnings []string
	if err := validation.ValidateOutputFormat(c.Output.Format); c.Output.Format != "" && err != nil {
		warnings = append(warnings, err.Error())
	}
	if err := validation.ValidateLogLevel(c.Logging.Level); err != nil {
		warnings = append(warnings, err.Error())
	}
	if err := validation.ValidateLogFormat(c.Logging.Format); err != nil {
		warnings = append(warnings, err.Error())
	}

	seen := make(map[string]bool, len(c.Presets))
	for i, p := range c.Presets {
		if p.Name == "" {
			warnings = append(warnings, fmt.Sprintf("preset %d has no name", i+1))
		} else if seen[p.Name] {
			warnings = append(warnings, fmt.Sprintf("preset %q is defined more than once; the first is used", p.Name))
		}
		seen[p.Name] = true

		def, ok := registry.Lookup(p.Calculator)
		if !ok {
			warnings = append(warnings, fmt.Sprintf("preset %q names unknown calculator %q", p.Name, p.Calculator))
			continue
		}
		inputs, err := p.Inputs()
		if err != nil {
			warnings = append(warnings, err.Error())
			continue
		}
		for _, w := range validation.ValidateInputs(def, inputs) {
			warnings = append(warnings, fmt.Sprintf("preset %q: %s", p.Name, w))
		}
	}
	return warnings
}
