// Package config handles exporter configuration loading and management.
package config

import (
	"errors"
	"fmt"

	"github.com/Masterminds/semver/v3"
)

// ErrInvalid is returned by Validate.
var ErrInvalid = errors.New("invalid config")

// MinMayaVersion is the oldest target version the exporter writes.
const MinMayaVersion = "2012"

// Config holds all exporter settings.
type Config struct {
	Export  ExportConfig  `yaml:"export" toml:"export"`
	Logging LoggingConfig `yaml:"logging" toml:"logging"`
}

// ExportConfig holds output scene settings.
type ExportConfig struct {
	MayaVersion string  `yaml:"maya_version" toml:"maya_version"`
	LinearUnit  string  `yaml:"linear_unit" toml:"linear_unit"`   // meter or centimeter
	FrameRate   float32 `yaml:"frame_rate" toml:"frame_rate"`     // 0 uses the clip's rate
	TexturePath string  `yaml:"texture_path" toml:"texture_path"` // prefix for file texture paths
	Output      string  `yaml:"output" toml:"output"`
	Application string  `yaml:"application" toml:"application"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level" toml:"level"`
	LogFile string `yaml:"log_file" toml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Export: ExportConfig{
			MayaVersion: "2018",
			LinearUnit:  "meter",
			Application: "export2maya",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Validate checks settings that cannot be fixed up silently.
func (c *Config) Validate() error {
	v, err := semver.NewVersion(c.Export.MayaVersion)
	if err != nil {
		return fmt.Errorf("%w: maya_version %q: %v", ErrInvalid, c.Export.MayaVersion, err)
	}
	if v.LessThan(semver.MustParse(MinMayaVersion)) {
		return fmt.Errorf("%w: maya_version %s is older than %s", ErrInvalid, v.Original(), MinMayaVersion)
	}
	switch c.Export.LinearUnit {
	case "meter", "centimeter":
	default:
		return fmt.Errorf("%w: linear_unit %q (want meter or centimeter)", ErrInvalid, c.Export.LinearUnit)
	}
	if c.Export.FrameRate < 0 {
		return fmt.Errorf("%w: frame_rate %v", ErrInvalid, c.Export.FrameRate)
	}
	switch c.Logging.Level {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: logging level %q", ErrInvalid, c.Logging.Level)
	}
	return nil
}
