package config

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/randalmurphal/singleton/pkg/singleton"
	"github.com/randalmurphal/singleton/pkg/singleton/observability"
)

// Settings describe how a registry should be wired.
type Settings struct {
	// LogLevel enables activity logging at the given level when non-empty.
	// One of "debug", "info", "warn", "error".
	LogLevel string `yaml:"log_level" json:"log_level"`

	// Metrics enables OpenTelemetry metrics.
	Metrics bool `yaml:"metrics" json:"metrics"`

	// Tracing enables OpenTelemetry tracing.
	Tracing bool `yaml:"tracing" json:"tracing"`

	// Preload lists type names to get-or-create at startup.
	Preload []Preload `yaml:"preload" json:"preload"`
}

// Preload names one instance to construct eagerly.
type Preload struct {
	// Type is a type name enrolled in the registry's catalog,
	// such as "*db.Pool".
	Type string `yaml:"type" json:"type"`

	// Params are the construction parameters, already stringified.
	Params []string `yaml:"params" json:"params"`
}

// FromFile loads settings from a file, auto-detecting format by extension.
// Supported extensions: .yaml, .yml, .json
func FromFile(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, fmt.Errorf("read config file: %w", err)
	}

	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".yaml", ".yml":
		return FromYAML(data)
	case ".json":
		return FromJSON(data)
	default:
		return Settings{}, fmt.Errorf("unsupported config file extension: %s", ext)
	}
}

// FromYAML parses YAML data into Settings.
func FromYAML(data []byte) (Settings, error) {
	var s Settings
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Settings{}, fmt.Errorf("parse yaml: %w", err)
	}
	return s, nil
}

// FromJSON parses JSON data into Settings.
func FromJSON(data []byte) (Settings, error) {
	var s Settings
	if err := json.Unmarshal(data, &s); err != nil {
		return Settings{}, fmt.Errorf("parse json: %w", err)
	}
	return s, nil
}

// Level returns the slog level for LogLevel, defaulting to info.
func (s Settings) Level() slog.Level {
	switch strings.ToLower(s.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Options turns the settings into registry options. The logger is only
// attached when LogLevel is set; callers control the handler.
func (s Settings) Options(logger *slog.Logger) []singleton.Option {
	var opts []singleton.Option
	if s.LogLevel != "" && logger != nil {
		opts = append(opts, singleton.WithLogger(logger))
	}
	if s.Metrics {
		opts = append(opts, singleton.WithMetrics(observability.NewMetricsRecorder()))
	}
	if s.Tracing {
		opts = append(opts, singleton.WithTracing(observability.NewSpanManager()))
	}
	return opts
}

// Apply get-or-creates every preload entry. It stops at the first failure
// so a misconfigured preload surfaces at startup rather than on first use.
func (s Settings) Apply(ctx context.Context, r *singleton.Registry) error {
	for _, p := range s.Preload {
		params := make([]any, len(p.Params))
		for i, v := range p.Params {
			params[i] = v
		}
		if _, err := r.GetOrCreateNamed(ctx, p.Type, params...); err != nil {
			return fmt.Errorf("preload %q: %w", p.Type, err)
		}
	}
	return nil
}
